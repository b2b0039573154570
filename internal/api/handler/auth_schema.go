package handler

import "github.com/clipforge/clip-shortener/internal/core/domain"

type registerRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Message     string       `json:"message"`
	AccessToken string       `json:"access_token"`
	User        *domain.User `json:"user"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type errorDetailResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}
