package controllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/harune/mediasqueeze-go/api/models"
	"github.com/harune/mediasqueeze-go/types"
)

func newCompressRequest(body string) *http.Request {
	req, _ := http.NewRequest("POST", "/api/agent/v1/compress", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// seedUploadedFile places a file into the session slot the way a finished
// upload would.
func seedUploadedFile(t *testing.T, kind types.MediaKind, storageName string) {
	t.Helper()
	epoch, ok := models.TryBeginUpload(kind, storageName)
	if !ok {
		t.Fatal("Failed to claim upload slot")
	}
	stored := models.StoreUploadedFile(epoch, kind, &types.UploadedFile{
		StorageName:  storageName,
		OriginalName: "original-" + storageName,
		SizeLabel:    "2.00 MB",
		DownloadURL:  "/download/original/" + storageName,
	})
	models.FinishUpload(kind)
	if !stored {
		t.Fatal("Failed to seed uploaded file")
	}
}

func TestSubmitCompressionRequiresUpload(t *testing.T) {
	fb := newFakeBackend()
	defer fb.Close()
	useBackend(fb)

	router := setupRouter()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, newCompressRequest(`{"file_type":"video"}`))

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("please upload a video file first")) {
		t.Errorf("Expected upload-first prompt, got %s", w.Body.String())
	}
	if fb.compressHits.Load() != 0 {
		t.Errorf("Expected zero backend hits, got %d", fb.compressHits.Load())
	}
}

func TestSubmitCompressionSuccess(t *testing.T) {
	fb := newFakeBackend()
	defer fb.Close()
	fb.compressBody = `{"success":true,"compressed_filename":"abc123_compressed.png","compressed_size":"0.50 MB","compression_ratio":75.0,"download_url":"/download/compressed/abc123_compressed.png"}`
	useBackend(fb)
	seedUploadedFile(t, types.MediaKindImage, "abc123.png")

	router := setupRouter()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, newCompressRequest(`{"file_type":"image","quality":80,"max_width":1280}`))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if fb.compressHits.Load() != 1 {
		t.Errorf("Expected one backend hit, got %d", fb.compressHits.Load())
	}

	// The backend saw the stored storage name and the per-request overrides.
	sent, _ := fb.lastCompressRequest.Load().(types.CompressRequest)
	if sent.Filename != "abc123.png" {
		t.Errorf("Expected backend to receive storage name abc123.png, got %q", sent.Filename)
	}
	if sent.Quality != 80 {
		t.Errorf("Expected quality override 80, got %d", sent.Quality)
	}
	if sent.MaxWidth != 1280 {
		t.Errorf("Expected max width override 1280, got %d", sent.MaxWidth)
	}

	panel, ok := models.GetResultPanel(types.MediaKindImage)
	if !ok {
		t.Fatal("Expected result panel to be set after compression")
	}
	if panel.CompressedFilename != "abc123_compressed.png" {
		t.Errorf("Expected compressed filename, got %q", panel.CompressedFilename)
	}
	if panel.CompressedSize != "0.50 MB" {
		t.Errorf("Expected compressed size 0.50 MB, got %q", panel.CompressedSize)
	}
	if panel.CompressionRatio != 75.0 {
		t.Errorf("Expected compression ratio 75.0, got %v", panel.CompressionRatio)
	}
	if panel.DownloadURL != fb.server.URL+"/download/compressed/abc123_compressed.png" {
		t.Errorf("Expected rebased download URL, got %q", panel.DownloadURL)
	}
}

func TestSubmitCompressionUsesStoredSettings(t *testing.T) {
	fb := newFakeBackend()
	defer fb.Close()
	fb.compressBody = `{"success":true,"compressed_filename":"clip_c.mp4","compressed_size":"1.00 MB","compression_ratio":50.0,"download_url":"/d/clip_c.mp4"}`
	useBackend(fb)
	seedUploadedFile(t, types.MediaKindVideo, "clip.mp4")

	router := setupRouter()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, newCompressRequest(`{"file_type":"video"}`))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	sent, _ := fb.lastCompressRequest.Load().(types.CompressRequest)
	if sent.Quality != types.DefaultVideoQuality {
		t.Errorf("Expected default video quality %d, got %d", types.DefaultVideoQuality, sent.Quality)
	}
}

func TestSubmitCompressionOutOfRangeQuality(t *testing.T) {
	fb := newFakeBackend()
	defer fb.Close()
	fb.compressBody = `{"success":true,"compressed_filename":"a_c.png","compressed_size":"0.10 MB","compression_ratio":10.0,"download_url":"/d/a_c.png"}`
	useBackend(fb)
	seedUploadedFile(t, types.MediaKindImage, "a.png")

	router := setupRouter()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, newCompressRequest(`{"file_type":"image","quality":250}`))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	sent, _ := fb.lastCompressRequest.Load().(types.CompressRequest)
	if sent.Quality != types.DefaultImageQuality {
		t.Errorf("Expected out-of-range quality to fall back to %d, got %d", types.DefaultImageQuality, sent.Quality)
	}
}

func TestSubmitCompressionBackendError(t *testing.T) {
	fb := newFakeBackend()
	defer fb.Close()
	fb.compressStatus = http.StatusInternalServerError
	fb.compressBody = `{"error":"ffmpeg not found"}`
	useBackend(fb)
	seedUploadedFile(t, types.MediaKindVideo, "clip.mp4")

	router := setupRouter()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, newCompressRequest(`{"file_type":"video"}`))

	if w.Code != http.StatusBadGateway {
		t.Errorf("Expected status 502, got %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("ffmpeg not found")) {
		t.Errorf("Expected server message, got %s", w.Body.String())
	}
	if _, ok := models.GetResultPanel(types.MediaKindVideo); ok {
		t.Error("Expected no result panel after failed compression")
	}

	// The uploaded file stays available for a retry.
	if _, ok := models.GetUploadedFile(types.MediaKindVideo); !ok {
		t.Error("Expected uploaded file to survive a failed compression")
	}
}

func TestSubmitCompressionAllowedDuringUpload(t *testing.T) {
	fb := newFakeBackend()
	defer fb.Close()
	fb.compressBody = `{"success":true,"compressed_filename":"a_c.png","compressed_size":"0.10 MB","compression_ratio":10.0,"download_url":"/d/a_c.png"}`
	useBackend(fb)
	seedUploadedFile(t, types.MediaKindImage, "a.png")

	// An unrelated upload being in flight does not block compression.
	if _, ok := models.TryBeginUpload(types.MediaKindVideo, "clip.mp4"); !ok {
		t.Fatal("Failed to claim upload slot")
	}
	defer models.FinishUpload(types.MediaKindVideo)

	router := setupRouter()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, newCompressRequest(`{"file_type":"image"}`))

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if fb.compressHits.Load() != 1 {
		t.Errorf("Expected one backend hit, got %d", fb.compressHits.Load())
	}
}

func TestCoerceInt(t *testing.T) {
	cases := []struct {
		name     string
		value    any
		fallback int
		want     int
	}{
		{"nil uses fallback", nil, 85, 85},
		{"json number", float64(70), 85, 70},
		{"plain int", 42, 85, 42},
		{"numeric string", "1920", 0, 1920},
		{"empty string uses fallback", "", 85, 85},
		{"blank string uses fallback", "   ", 85, 85},
		{"non-numeric string", "abc", 85, 0},
		{"unexpected type", true, 85, 0},
	}
	for _, tc := range cases {
		if got := coerceInt(tc.value, tc.fallback); got != tc.want {
			t.Errorf("%s: coerceInt(%v, %d) = %d, want %d", tc.name, tc.value, tc.fallback, got, tc.want)
		}
	}
}
