package service

import (
	"context"
	"errors"

	"innovated/internal/model"
	"innovated/internal/repository"
)

var ErrCourseNotFound = errors.New("course not found")

// CatalogService defines the interface for catalog queries
type CatalogService interface {
	// ListCourses returns the catalog, optionally filtered by level. An
	// empty level (or the "all" sentinel) returns every course.
	ListCourses(ctx context.Context, level string) ([]model.Course, error)
	// GetCourse retrieves a single course by its ID
	GetCourse(ctx context.Context, id int) (*model.Course, error)
}

// catalogService is the implementation of CatalogService
type catalogService struct {
	storage repository.Storage
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(storage repository.Storage) CatalogService {
	return &catalogService{storage: storage}
}

func (s *catalogService) ListCourses(ctx context.Context, level string) ([]model.Course, error) {
	if level == "" {
		return s.storage.GetCourses(ctx)
	}
	return s.storage.GetCoursesByLevel(ctx, level)
}

func (s *catalogService) GetCourse(ctx context.Context, id int) (*model.Course, error) {
	c, err := s.storage.GetCourse(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCourseNotFound
	}
	return c, nil
}
