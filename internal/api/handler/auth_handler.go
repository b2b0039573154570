package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clipforge/clip-shortener/internal/api/metrics"
	"github.com/clipforge/clip-shortener/internal/core/domain"
	"github.com/clipforge/clip-shortener/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new user account and returns a fresh access token.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorDetailResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "All fields are required"})
	}

	token, user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		if msg, ok := domain.AsValidation(err); ok {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: msg})
		}
		if errors.Is(err, domain.ErrUserExists) {
			return c.JSON(http.StatusConflict, errorResponse{Error: "User already exists"})
		}
		return c.JSON(http.StatusInternalServerError, errorDetailResponse{
			Error:   "Registration failed",
			Details: err.Error(),
		})
	}

	metrics.RegistrationsTotal.Inc()

	return c.JSON(http.StatusCreated, authResponse{
		Message:     "User registered successfully",
		AccessToken: token,
		User:        user,
	})
}

// Login authenticates a user and returns an access token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorDetailResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Email and password are required"})
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if msg, ok := domain.AsValidation(err); ok {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: msg})
		}
		// Only rejected credentials count as failed logins; malformed
		// requests never reached the credential check.
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "Invalid credentials"})
		}
		if errors.Is(err, domain.ErrAccountDeactivated) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "Account is deactivated"})
		}
		return c.JSON(http.StatusInternalServerError, errorDetailResponse{
			Error:   "Login failed",
			Details: err.Error(),
		})
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, authResponse{
		Message:     "Login successful",
		AccessToken: token,
		User:        user,
	})
}
