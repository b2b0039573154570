package handler

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/clipforge/clip-shortener/internal/api/metrics"
	"github.com/clipforge/clip-shortener/internal/core/domain"
	"github.com/clipforge/clip-shortener/internal/core/ports"
	"github.com/clipforge/clip-shortener/internal/infrastructure/storage"
)

// UploadStore persists an uploaded video stream and returns the stored
// filename.
type UploadStore interface {
	Save(src io.Reader, originalName string) (string, error)
}

type ShortenerHandler struct {
	shortenerService ports.ShortenerService
	uploads          UploadStore
}

func NewShortenerHandler(shortenerService ports.ShortenerService, uploads UploadStore) *ShortenerHandler {
	return &ShortenerHandler{shortenerService: shortenerService, uploads: uploads}
}

// ProcessYouTube turns a YouTube URL into clip suggestions.
//
// @Summary      Process a YouTube URL
// @Tags         shortener
// @Accept       json
// @Produce      json
// @Param        body  body      processYouTubeRequest  true  "Video URL"
// @Success      200   {object}  processResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorDetailResponse
// @Security     BearerAuth
// @Router       /api/shortener/process-youtube [post]
func (h *ShortenerHandler) ProcessYouTube(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req processYouTubeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Please provide a valid YouTube URL"})
	}
	// The structural check runs first; the service still owns the URL-shape
	// check, and the caller-facing message stays the same for both.
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Please provide a valid YouTube URL"})
	}

	start := time.Now()
	result, err := h.shortenerService.ProcessYouTube(c.Request().Context(), userID, req.URL)
	if err != nil {
		if msg, ok := domain.AsValidation(err); ok {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: msg})
		}
		return c.JSON(http.StatusInternalServerError, errorDetailResponse{
			Error:   "Processing failed",
			Details: err.Error(),
		})
	}

	metrics.VideosProcessedTotal.WithLabelValues(domain.SourceYouTube).Inc()
	metrics.ClipsGeneratedTotal.Add(float64(len(result.Clips)))
	metrics.ProcessingDuration.WithLabelValues(domain.SourceYouTube).Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, processResponse{
		Message: "Video processed successfully",
		Video:   result.Video,
		Clips:   result.Clips,
	})
}

// UploadVideo accepts a multipart video upload and returns clip suggestions.
//
// @Summary      Upload a video file
// @Tags         shortener
// @Accept       multipart/form-data
// @Produce      json
// @Param        video  formData  file  true  "Video file"
// @Success      200    {object}  processResponse
// @Failure      400    {object}  errorResponse
// @Failure      500    {object}  errorDetailResponse
// @Security     BearerAuth
// @Router       /api/shortener/upload-video [post]
func (h *ShortenerHandler) UploadVideo(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	file, err := c.FormFile("video")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Video file is required"})
	}

	src, err := file.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorDetailResponse{
			Error:   "Processing failed",
			Details: err.Error(),
		})
	}
	defer src.Close()

	stored, err := h.uploads.Save(src, file.Filename)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedType) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "Unsupported video format"})
		}
		return c.JSON(http.StatusInternalServerError, errorDetailResponse{
			Error:   "Processing failed",
			Details: err.Error(),
		})
	}

	start := time.Now()
	result, err := h.shortenerService.ProcessUpload(c.Request().Context(), userID, stored)
	if err != nil {
		if msg, ok := domain.AsValidation(err); ok {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: msg})
		}
		return c.JSON(http.StatusInternalServerError, errorDetailResponse{
			Error:   "Processing failed",
			Details: err.Error(),
		})
	}

	metrics.VideosProcessedTotal.WithLabelValues(domain.SourceUpload).Inc()
	metrics.ClipsGeneratedTotal.Add(float64(len(result.Clips)))
	metrics.ProcessingDuration.WithLabelValues(domain.SourceUpload).Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, processResponse{
		Message: "Video processed successfully",
		Video:   result.Video,
		Clips:   result.Clips,
	})
}

// ListVideos returns the caller's processed videos with their clips.
//
// @Summary      List processed videos
// @Tags         shortener
// @Produce      json
// @Success      200  {object}  listVideosResponse
// @Failure      500  {object}  errorDetailResponse
// @Security     BearerAuth
// @Router       /api/shortener/videos [get]
func (h *ShortenerHandler) ListVideos(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	videos, err := h.shortenerService.ListVideos(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorDetailResponse{
			Error:   "Failed to fetch videos",
			Details: err.Error(),
		})
	}
	if videos == nil {
		videos = []domain.ProcessedVideo{}
	}

	return c.JSON(http.StatusOK, listVideosResponse{Videos: videos})
}
