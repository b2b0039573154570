package handler

import "github.com/clipforge/clip-shortener/internal/core/domain"

type processYouTubeRequest struct {
	URL string `json:"url" validate:"required"`
}

type processResponse struct {
	Message string        `json:"message"`
	Video   domain.Video  `json:"video"`
	Clips   []domain.Clip `json:"clips"`
}

type listVideosResponse struct {
	Videos []domain.ProcessedVideo `json:"videos"`
}
