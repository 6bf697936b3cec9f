package transfer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/harune/mediasqueeze-go/tool"
	"github.com/harune/mediasqueeze-go/types"
)

// SubmitFile sends file data to the compression backend as a multipart
// /upload request and parses the backend's verdict.
//
// The error return covers transport failures, non-2xx statuses and bodies
// that cannot be parsed; the server's own error message is preferred when
// one is present. A nil error does not mean the upload was accepted: the
// caller must still check UploadResult.Success.
func SubmitFile(ctx context.Context, backendURL string, kind types.MediaKind, fileName string, data io.Reader) (*types.UploadResult, error) {
	if backendURL == "" {
		return nil, fmt.Errorf("invalid parameters: backendURL must not be empty")
	}
	if fileName == "" {
		return nil, fmt.Errorf("invalid parameters: fileName must not be empty")
	}
	if data == nil {
		return nil, fmt.Errorf("invalid parameters: data must not be nil")
	}

	// Check if already cancelled
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("upload cancelled: %w", ctx.Err())
	default:
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %v", err)
	}
	if _, err := io.Copy(part, data); err != nil {
		return nil, fmt.Errorf("failed to read file data: %v", err)
	}
	if err := writer.WriteField("file_type", kind.String()); err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %v", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish multipart body: %v", err)
	}

	url := tool.BuildUploadURL(backendURL)
	req, err := http.NewRequestWithContext(ctx, "POST", url, &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload request: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	client := tool.GetHttpClient()
	resp, err := client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("upload cancelled: %w", ctx.Err())
		}
		return nil, fmt.Errorf("failed to send upload request: %v", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			tool.DefaultLogger.Errorf("Failed to close response body: %v", err)
		}
	}()

	respBody, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return nil, fmt.Errorf("failed to read upload response body: %v", readErr)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		if msg := extractErrorMessage(respBody); msg != "" {
			return nil, fmt.Errorf("%s", msg)
		}
		return nil, fmt.Errorf("upload failed: %s", resp.Status)
	}

	var result types.UploadResult
	if err := sonic.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to parse upload response: %v", err)
	}

	tool.DefaultLogger.Infof("Upload request sent successfully to %s", url)
	return &result, nil
}

// extractErrorMessage pulls the server-provided error string out of an error
// response body, returning "" when there is none.
func extractErrorMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var errorResponse struct {
		Error string `json:"error"`
	}
	if err := sonic.Unmarshal(body, &errorResponse); err != nil {
		return ""
	}
	return errorResponse.Error
}
