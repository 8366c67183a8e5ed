package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"innovated/internal/api/v1/dto"
	"innovated/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// AuthHandler handles the demo login and registration endpoints
type AuthHandler struct {
	authService service.AuthService
	validate    *validator.Validate
	logger      zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService service.AuthService, v *validator.Validate, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, validate: v, logger: logger}
}

// RegisterRoutes mounts auth routes
func (h *AuthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/api/auth/login", http.HandlerFunc(h.login))
	mux.Handle("/api/auth/register", http.HandlerFunc(h.register))
}

// login godoc
// @Summary Log in
// @Description Verifies a username/password pair. No token is issued; the
// @Description response carries a sanitized user projection only.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginDTO true "Login request"
// @Success 200 {object} dto.AuthResponseDTO
// @Failure 400 {object} handler.MessageResponse "Username and password are required"
// @Failure 401 {object} handler.MessageResponse "Invalid credentials"
// @Failure 500 {object} handler.MessageResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondMessage(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	var req dto.LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.Username == "" || req.Password == "" {
		respondMessage(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		// Unknown username and wrong password are deliberately the same
		// response, so account existence cannot be probed.
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondMessage(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.logger.Error().Err(err).Msg("Error during login")
		respondMessage(w, http.StatusInternalServerError, "Login failed")
		return
	}

	respondJSON(w, http.StatusOK, dto.AuthResponseDTO{
		Message: "Login successful",
		User:    dto.NewUserProjection(user),
	})
}

// register godoc
// @Summary Register
// @Description Creates a new user after validating the payload.
// @Tags auth
// @Accept json
// @Produce json
// @Param registration body dto.RegisterDTO true "Registration request"
// @Success 201 {object} dto.AuthResponseDTO
// @Failure 400 {object} handler.MessageResponse "Validation failure or duplicate username"
// @Failure 500 {object} handler.MessageResponse
// @Router /api/auth/register [post]
func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondMessage(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	var req dto.RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	user, err := h.authService.Register(r.Context(), req.ToModel())
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			respondMessage(w, http.StatusBadRequest, "Username already exists")
			return
		}
		h.logger.Error().Err(err).Msg("Error registering user")
		respondMessage(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	respondJSON(w, http.StatusCreated, dto.AuthResponseDTO{
		Message: "User registered successfully",
		User:    dto.NewUserProjection(user),
	})
}

// validationMessage flattens validator errors into one readable sentence
// per failing field.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Validation failed: " + err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
		switch fe.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", field))
		case "min":
			parts = append(parts, fmt.Sprintf("%s must be at least %s characters", field, fe.Param()))
		case "email":
			parts = append(parts, fmt.Sprintf("%s must be a valid email address", field))
		default:
			parts = append(parts, fmt.Sprintf("%s is invalid", field))
		}
	}
	return "Validation failed: " + strings.Join(parts, "; ")
}
