package repository

import (
	"context"

	"innovated/internal/model"
)

// LevelAll is the sentinel filter value meaning "no level filtering".
const LevelAll = "all"

// Storage defines the interface for interacting with course and user data.
// Absent records are reported as a nil result with a nil error; errors are
// reserved for genuine backend failures.
type Storage interface {
	// GetUser retrieves a user by its ID
	GetUser(ctx context.Context, id int) (*model.User, error)
	// GetUserByUsername retrieves the first user whose username matches
	// exactly (case-sensitive), in insertion order
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	// CreateUser assigns the next sequential ID, stamps the creation
	// timestamp and stores the record
	CreateUser(ctx context.Context, u *model.User) (*model.User, error)

	// GetCourses retrieves all courses in insertion order
	GetCourses(ctx context.Context) ([]model.Course, error)
	// GetCoursesByLevel retrieves the courses whose level matches
	// case-insensitively; LevelAll returns everything
	GetCoursesByLevel(ctx context.Context, level string) ([]model.Course, error)
	// GetCourse retrieves a course by its ID
	GetCourse(ctx context.Context, id int) (*model.Course, error)
	// CreateCourse assigns the next sequential ID and stores the record
	CreateCourse(ctx context.Context, c *model.Course) (*model.Course, error)
}
