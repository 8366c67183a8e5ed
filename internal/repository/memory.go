package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"innovated/internal/model"
)

// MemStorage is the in-memory Storage implementation. All records live in
// process memory and reset on restart. IDs are assigned from per-entity
// monotonic counters starting at 1 and are never reused.
//
// Unlike the database-backed implementation there is no engine below us to
// serialize access, so a single RWMutex guards both maps and both counters:
// a mutation can never observe a half-applied peer mutation.
type MemStorage struct {
	mu              sync.RWMutex
	users           map[int]model.User
	courses         map[int]model.Course
	userNextID      int
	courseNextID    int
	userInsertOrder []int
}

// NewMemStorage builds a store pre-seeded with the demo catalog.
func NewMemStorage() *MemStorage {
	s := &MemStorage{
		users:        make(map[int]model.User),
		courses:      make(map[int]model.Course),
		userNextID:   1,
		courseNextID: 1,
	}
	s.seedCourses()
	return s
}

func (s *MemStorage) GetUser(_ context.Context, id int) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *MemStorage) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.userInsertOrder {
		if u := s.users[id]; u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

func (s *MemStorage) CreateUser(_ context.Context, u *model.User) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *u
	stored.ID = s.userNextID
	s.userNextID++
	stored.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	s.users[stored.ID] = stored
	s.userInsertOrder = append(s.userInsertOrder, stored.ID)
	return &stored, nil
}

func (s *MemStorage) GetCourses(_ context.Context) ([]model.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.coursesLocked(), nil
}

func (s *MemStorage) GetCoursesByLevel(_ context.Context, level string) ([]model.Course, error) {
	if level == LevelAll {
		return s.GetCourses(context.Background())
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	filtered := []model.Course{}
	for _, c := range s.coursesLocked() {
		if strings.EqualFold(c.Level, level) {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

func (s *MemStorage) GetCourse(_ context.Context, id int) (*model.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.courses[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (s *MemStorage) CreateCourse(_ context.Context, c *model.Course) (*model.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *c
	stored.ID = s.courseNextID
	s.courseNextID++
	s.courses[stored.ID] = stored
	return &stored, nil
}

// coursesLocked returns all courses in insertion order. Courses are never
// deleted, so walking the ID sequence reproduces insertion order exactly.
// Callers must hold at least a read lock.
func (s *MemStorage) coursesLocked() []model.Course {
	courses := []model.Course{}
	for id := 1; id < s.courseNextID; id++ {
		if c, ok := s.courses[id]; ok {
			courses = append(courses, c)
		}
	}
	return courses
}

func (s *MemStorage) seedCourses() {
	for _, c := range SeedCourses() {
		course := c
		course.ID = s.courseNextID
		s.courseNextID++
		s.courses[course.ID] = course
	}
}
