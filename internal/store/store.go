// Package store persists users and their doctor profiles.
package store

import (
	"context"
	"errors"
	"strings"

	"github.com/harentsoaR/tabibi-api/internal/models"
)

var (
	ErrNotFound       = errors.New("store: not found")
	ErrDuplicateEmail = errors.New("store: email already registered")
)

// AccountUpdate is applied by UpdateAccount. Profile is upserted when UserType
// is doctor and removed otherwise.
type AccountUpdate struct {
	Name         string
	UserType     string
	PasswordHash string // empty keeps the current password
	Location     *models.Location
	Profile      models.ProfileFields
}

type Store interface {
	// CreateUser inserts u and, for doctors, u.Profile in one transaction.
	CreateUser(ctx context.Context, u *models.User) error
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	// UserByID returns the user with its profile joined.
	UserByID(ctx context.Context, id string) (*models.User, error)
	// UpdateAccount rewrites the account. Doctors get their profile inserted or
	// overwritten; any other user type loses its profile.
	UpdateAccount(ctx context.Context, id string, upd AccountUpdate) error
	// DeleteUser removes the profile and then the user.
	DeleteUser(ctx context.Context, id string) error
	// ListDoctors returns doctors, profile joined, whose name, email or
	// specialization contains q case-insensitively. An empty q matches all.
	ListDoctors(ctx context.Context, q string) ([]models.User, error)
	DoctorByID(ctx context.Context, id string) (*models.User, error)
	Ping(ctx context.Context) error
	Close() error
}

// likePattern turns q into a lowercase LIKE pattern matching q anywhere,
// with LIKE metacharacters escaped by a backslash.
func likePattern(q string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(q)) + "%"
}
