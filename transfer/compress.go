package transfer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/harune/mediasqueeze-go/tool"
	"github.com/harune/mediasqueeze-go/types"
)

// SubmitCompression asks the backend to compress a previously uploaded file.
// Same contract as SubmitFile: a nil error only signals that a well-formed
// response arrived, CompressResult.Success carries the backend verdict.
func SubmitCompression(ctx context.Context, backendURL string, request *types.CompressRequest) (*types.CompressResult, error) {
	if backendURL == "" || request == nil {
		return nil, fmt.Errorf("invalid parameters: backendURL and request must not be empty")
	}
	if request.Filename == "" {
		return nil, fmt.Errorf("invalid parameters: request.Filename must not be empty")
	}

	payload, err := sonic.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal compress request: %v", err)
	}

	url := tool.BuildCompressURL(backendURL)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create compress request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := tool.GetHttpClient()
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send compress request: %v", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			tool.DefaultLogger.Errorf("Failed to close response body: %v", err)
		}
	}()

	respBody, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return nil, fmt.Errorf("failed to read compress response body: %v", readErr)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		if msg := extractErrorMessage(respBody); msg != "" {
			return nil, fmt.Errorf("%s", msg)
		}
		return nil, fmt.Errorf("compression failed: %s", resp.Status)
	}

	var result types.CompressResult
	if err := sonic.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to parse compress response: %v", err)
	}

	tool.DefaultLogger.Infof("Compress request sent successfully to %s", url)
	return &result, nil
}

// RequestCleanup asks the backend to sweep stale uploaded and compressed
// files. Fire-and-forget from the UI's point of view.
func RequestCleanup(ctx context.Context, backendURL string) (*types.CleanupResult, error) {
	if backendURL == "" {
		return nil, fmt.Errorf("invalid parameters: backendURL must not be empty")
	}

	url := tool.BuildCleanupURL(backendURL)
	req, err := http.NewRequestWithContext(ctx, "POST", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cleanup request: %v", err)
	}

	client := tool.GetHttpClient()
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send cleanup request: %v", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			tool.DefaultLogger.Errorf("Failed to close response body: %v", err)
		}
	}()

	respBody, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return nil, fmt.Errorf("failed to read cleanup response body: %v", readErr)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		if msg := extractErrorMessage(respBody); msg != "" {
			return nil, fmt.Errorf("%s", msg)
		}
		return nil, fmt.Errorf("cleanup failed: %s", resp.Status)
	}

	var result types.CleanupResult
	if err := sonic.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to parse cleanup response: %v", err)
	}
	return &result, nil
}
