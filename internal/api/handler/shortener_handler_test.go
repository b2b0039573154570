package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	apimiddleware "github.com/clipforge/clip-shortener/internal/api/middleware"
	"github.com/clipforge/clip-shortener/internal/core/domain"
	"github.com/clipforge/clip-shortener/internal/core/ports"
	"github.com/clipforge/clip-shortener/internal/infrastructure/storage"
)

type stubShortenerService struct {
	processYouTubeFn func(ctx context.Context, userID int64, url string) (*ports.ProcessResult, error)
	processUploadFn  func(ctx context.Context, userID int64, filename string) (*ports.ProcessResult, error)
	listVideosFn     func(ctx context.Context, userID int64) ([]domain.ProcessedVideo, error)
}

func (s *stubShortenerService) ProcessYouTube(ctx context.Context, userID int64, url string) (*ports.ProcessResult, error) {
	return s.processYouTubeFn(ctx, userID, url)
}

func (s *stubShortenerService) ProcessUpload(ctx context.Context, userID int64, filename string) (*ports.ProcessResult, error) {
	return s.processUploadFn(ctx, userID, filename)
}

func (s *stubShortenerService) ListVideos(ctx context.Context, userID int64) ([]domain.ProcessedVideo, error) {
	return s.listVideosFn(ctx, userID)
}

type stubUploadStore struct {
	saved   string
	saveErr error
}

func (s *stubUploadStore) Save(_ io.Reader, originalName string) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	s.saved = originalName
	return "1700000000-" + originalName, nil
}

func sampleResult(userID int64) *ports.ProcessResult {
	return &ports.ProcessResult{
		Video: domain.Video{ID: 10, OwnerID: userID, Title: "Epic Moments", Source: domain.SourceYouTube, Duration: 300},
		Clips: []domain.Clip{
			{ID: 11, VideoID: 10, StartTime: 12, EndTime: 42, TitleSuggestion: "Wait for it", Hashtags: `["#viral","#fyp"]`, Description: "You won't believe this"},
		},
	}
}

func authedContext(e *echo.Echo, req *http.Request, userID int64) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(apimiddleware.CtxUserID, userID)
	return c, rec
}

func TestShortenerHandler_ProcessYouTube_Success(t *testing.T) {
	stub := &stubShortenerService{
		processYouTubeFn: func(_ context.Context, userID int64, url string) (*ports.ProcessResult, error) {
			if userID != 7 || url != "https://youtu.be/abc" {
				t.Fatalf("unexpected args: %d %s", userID, url)
			}
			return sampleResult(userID), nil
		},
	}
	handler := NewShortenerHandler(stub, &stubUploadStore{})

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/api/shortener/process-youtube", strings.NewReader(`{"url":"https://youtu.be/abc"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, rec := authedContext(e, req, 7)

	if err := handler.ProcessYouTube(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	video, ok := resp["video"].(map[string]any)
	if !ok || video["id"] != float64(10) {
		t.Fatalf("unexpected video payload: %+v", resp["video"])
	}
	clips, ok := resp["clips"].([]any)
	if !ok || len(clips) != 1 {
		t.Fatalf("unexpected clips payload: %+v", resp["clips"])
	}
	clip := clips[0].(map[string]any)
	hashtags, ok := clip["hashtags"].(string)
	if !ok {
		t.Fatalf("hashtags must serialize as a string, got %T", clip["hashtags"])
	}
	var tags []string
	if err := json.Unmarshal([]byte(hashtags), &tags); err != nil {
		t.Errorf("hashtags string must parse as a JSON array: %v", err)
	}
}

func TestShortenerHandler_ProcessYouTube_InvalidURL(t *testing.T) {
	stub := &stubShortenerService{
		processYouTubeFn: func(context.Context, int64, string) (*ports.ProcessResult, error) {
			return nil, domain.NewValidationError("Please provide a valid YouTube URL")
		},
	}
	handler := NewShortenerHandler(stub, &stubUploadStore{})

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/api/shortener/process-youtube", strings.NewReader(`{"url":"https://vimeo.com/1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, rec := authedContext(e, req, 7)

	_ = handler.ProcessYouTube(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Please provide a valid YouTube URL") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestShortenerHandler_ProcessYouTube_MissingURL(t *testing.T) {
	stub := &stubShortenerService{
		processYouTubeFn: func(context.Context, int64, string) (*ports.ProcessResult, error) {
			t.Fatal("service must not be called when the url field is absent")
			return nil, nil
		},
	}
	handler := NewShortenerHandler(stub, &stubUploadStore{})

	e := echo.New()
	e.Validator = NewValidator()
	for _, body := range []string{`{}`, `{"url":""}`} {
		req := httptest.NewRequest(http.MethodPost, "/api/shortener/process-youtube", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		c, rec := authedContext(e, req, 7)

		_ = handler.ProcessYouTube(c)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %d", body, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Please provide a valid YouTube URL") {
			t.Errorf("body %s: unexpected response %s", body, rec.Body.String())
		}
	}
}

func TestShortenerHandler_ProcessYouTube_MissingClaims(t *testing.T) {
	stub := &stubShortenerService{
		processYouTubeFn: func(context.Context, int64, string) (*ports.ProcessResult, error) {
			t.Fatal("service must not be called without claims")
			return nil, nil
		},
	}
	handler := NewShortenerHandler(stub, &stubUploadStore{})

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/api/shortener/process-youtube", strings.NewReader(`{"url":"https://youtu.be/abc"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ProcessYouTube(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func multipartUpload(t *testing.T, field, filename string) (*http.Request, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	if _, err := part.Write([]byte("fake video bytes")); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/shortener/upload-video", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req, filename
}

func TestShortenerHandler_UploadVideo_Success(t *testing.T) {
	store := &stubUploadStore{}
	stub := &stubShortenerService{
		processUploadFn: func(_ context.Context, userID int64, filename string) (*ports.ProcessResult, error) {
			if filename != "1700000000-demo.mp4" {
				t.Fatalf("expected the stored filename, got %q", filename)
			}
			result := sampleResult(userID)
			result.Video.Source = domain.SourceUpload
			return result, nil
		},
	}
	handler := NewShortenerHandler(stub, store)

	e := echo.New()
	req, _ := multipartUpload(t, "video", "demo.mp4")
	c, rec := authedContext(e, req, 3)

	if err := handler.UploadVideo(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if store.saved != "demo.mp4" {
		t.Errorf("upload not persisted, saved=%q", store.saved)
	}
}

func TestShortenerHandler_UploadVideo_MissingFile(t *testing.T) {
	handler := NewShortenerHandler(&stubShortenerService{}, &stubUploadStore{})

	e := echo.New()
	req, _ := multipartUpload(t, "not-video", "demo.mp4")
	c, rec := authedContext(e, req, 3)

	_ = handler.UploadVideo(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Video file is required") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestShortenerHandler_UploadVideo_UnsupportedFormat(t *testing.T) {
	store := &stubUploadStore{saveErr: storage.ErrUnsupportedType}
	handler := NewShortenerHandler(&stubShortenerService{}, store)

	e := echo.New()
	req, _ := multipartUpload(t, "video", "notes.txt")
	c, rec := authedContext(e, req, 3)

	_ = handler.UploadVideo(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Unsupported video format") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestShortenerHandler_ListVideos(t *testing.T) {
	stub := &stubShortenerService{
		listVideosFn: func(_ context.Context, userID int64) ([]domain.ProcessedVideo, error) {
			result := sampleResult(userID)
			return []domain.ProcessedVideo{{Video: result.Video, Clips: result.Clips}}, nil
		},
	}
	handler := NewShortenerHandler(stub, &stubUploadStore{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/shortener/videos", nil)
	c, rec := authedContext(e, req, 7)

	if err := handler.ListVideos(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp listVideosResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Videos) != 1 {
		t.Fatalf("expected 1 video, got %d", len(resp.Videos))
	}
}

func TestShortenerHandler_ListVideos_EmptyIsArray(t *testing.T) {
	stub := &stubShortenerService{
		listVideosFn: func(context.Context, int64) ([]domain.ProcessedVideo, error) {
			return nil, nil
		},
	}
	handler := NewShortenerHandler(stub, &stubUploadStore{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/shortener/videos", nil)
	c, rec := authedContext(e, req, 7)

	if err := handler.ListVideos(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"videos":[]`) {
		t.Errorf("empty list must serialize as [], got %s", rec.Body.String())
	}
}
