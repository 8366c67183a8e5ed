package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"innovated/internal/model"

	"github.com/rs/zerolog"
)

// PostgresStorage is the database-backed Storage implementation. It keeps
// the exact semantics of MemStorage: sequential IDs per entity, insertion
// order on listings, case-insensitive level filtering, and no uniqueness
// constraints below the route layer.
type PostgresStorage struct {
	db     *sql.DB
	logger zerolog.Logger
}

// One statement per entry: pgx's extended query protocol does not accept
// multi-statement strings.
var postgresSchema = []string{`
CREATE TABLE IF NOT EXISTS courses (
	id SERIAL PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	level TEXT NOT NULL,
	price INTEGER NOT NULL,
	instructor TEXT NOT NULL,
	rating INTEGER,
	image_url TEXT NOT NULL,
	duration TEXT NOT NULL,
	bullets JSONB,
	category TEXT NOT NULL,
	detailed_description TEXT NOT NULL DEFAULT ''
);`, `
CREATE TABLE IF NOT EXISTS users (
	id SERIAL PRIMARY KEY,
	username TEXT NOT NULL,
	password TEXT NOT NULL,
	email TEXT NOT NULL,
	full_name TEXT,
	created_at TEXT NOT NULL
);`}

// NewPostgresStorage creates the schema if it does not exist yet and seeds
// the demo catalog into an empty courses table.
func NewPostgresStorage(ctx context.Context, db *sql.DB, logger zerolog.Logger) (*PostgresStorage, error) {
	s := &PostgresStorage{db: db, logger: logger}
	for _, stmt := range postgresSchema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return nil, err
		}
	}
	if err := s.seedCourses(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *PostgresStorage) GetUser(ctx context.Context, id int) (*model.User, error) {
	query := `SELECT id, username, password, email, full_name, created_at FROM users WHERE id = $1`
	return scanUser(s.db.QueryRowContext(ctx, query, id))
}

func (s *PostgresStorage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	// First match in insertion order, same as the in-memory scan.
	query := `SELECT id, username, password, email, full_name, created_at FROM users WHERE username = $1 ORDER BY id LIMIT 1`
	return scanUser(s.db.QueryRowContext(ctx, query, username))
}

func (s *PostgresStorage) CreateUser(ctx context.Context, u *model.User) (*model.User, error) {
	stored := *u
	stored.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	query := `INSERT INTO users (username, password, email, full_name, created_at)
              VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := s.db.QueryRowContext(ctx, query,
		stored.Username, stored.Password, stored.Email, stored.FullName, stored.CreatedAt,
	).Scan(&stored.ID)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (s *PostgresStorage) GetCourses(ctx context.Context) ([]model.Course, error) {
	query := courseSelect + ` ORDER BY id`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	return collectCourses(rows)
}

func (s *PostgresStorage) GetCoursesByLevel(ctx context.Context, level string) ([]model.Course, error) {
	if level == LevelAll {
		return s.GetCourses(ctx)
	}
	query := courseSelect + ` WHERE lower(level) = lower($1) ORDER BY id`
	rows, err := s.db.QueryContext(ctx, query, level)
	if err != nil {
		return nil, err
	}
	return collectCourses(rows)
}

func (s *PostgresStorage) GetCourse(ctx context.Context, id int) (*model.Course, error) {
	query := courseSelect + ` WHERE id = $1`
	c, err := scanCourse(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *PostgresStorage) CreateCourse(ctx context.Context, c *model.Course) (*model.Course, error) {
	stored := *c
	bullets, err := json.Marshal(stored.Bullets)
	if err != nil {
		return nil, err
	}
	query := `INSERT INTO courses (title, description, level, price, instructor, rating, image_url, duration, bullets, category, detailed_description)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	err = s.db.QueryRowContext(ctx, query,
		stored.Title, stored.Description, stored.Level, stored.Price, stored.Instructor,
		stored.Rating, stored.ImageURL, stored.Duration, bullets, stored.Category, stored.DetailedDescription,
	).Scan(&stored.ID)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// seedCourses inserts the demo catalog only when the table is empty, so a
// restart against an existing database never duplicates the seed.
func (s *PostgresStorage) seedCourses(ctx context.Context) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM courses`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, c := range SeedCourses() {
		course := c
		if _, err := s.CreateCourse(ctx, &course); err != nil {
			return err
		}
	}
	s.logger.Info().Msg("Seeded demo catalog into empty courses table")
	return nil
}

const courseSelect = `SELECT id, title, description, level, price, instructor, rating, image_url, duration, bullets, category, detailed_description FROM courses`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Username, &u.Password, &u.Email, &u.FullName, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func scanCourse(row rowScanner) (*model.Course, error) {
	var c model.Course
	var bullets []byte
	err := row.Scan(&c.ID, &c.Title, &c.Description, &c.Level, &c.Price, &c.Instructor,
		&c.Rating, &c.ImageURL, &c.Duration, &bullets, &c.Category, &c.DetailedDescription)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if len(bullets) > 0 {
		if err := json.Unmarshal(bullets, &c.Bullets); err != nil {
			return nil, err
		}
	}
	return &c, nil
}

func collectCourses(rows *sql.Rows) ([]model.Course, error) {
	defer rows.Close()

	// Empty result is a normal outcome; return an empty slice, not nil.
	courses := []model.Course{}
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return courses, nil
}
