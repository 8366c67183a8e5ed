package handler

import (
	"net/http"
	"testing"

	"innovated/internal/repository"
	"innovated/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// newTestMux wires handlers onto a fresh in-memory store, without the
// CORS/logging wrappers the real router adds.
func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	storage := repository.NewMemStorage()
	validate := validator.New(validator.WithRequiredStructEnabled())
	logger := zerolog.Nop()

	mux := http.NewServeMux()
	NewCourseHandler(service.NewCatalogService(storage), logger).RegisterRoutes(mux)
	NewAuthHandler(service.NewAuthService(storage), validate, logger).RegisterRoutes(mux)
	return mux
}
