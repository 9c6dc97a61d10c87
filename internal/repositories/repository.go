// Package repositories keeps every persistence operation behind two narrow
// interfaces, with one implementation per supported store.
package repositories

import (
	"context"
	"errors"

	"acronym-finder/internal/schemas"
)

var (
	// ErrNotFound is returned when no record matches the given id or username.
	// Ids that the store could never have issued are reported the same way.
	ErrNotFound = errors.New("record not found")

	// ErrUsernameTaken is returned when a user with the same username exists.
	ErrUsernameTaken = errors.New("username already taken")
)

// AcronymRepository persists acronyms. Every operation touches a single record.
type AcronymRepository interface {
	// ListAcronyms returns acronyms in store order, skipping offset records.
	// A limit of 0 returns everything after the offset.
	ListAcronyms(ctx context.Context, offset, limit int) ([]*schemas.Acronym, error)
	GetAcronym(ctx context.Context, id string) (*schemas.Acronym, error)
	// CreateAcronym assigns ID and CreatedAt on the given acronym.
	CreateAcronym(ctx context.Context, acronym *schemas.Acronym) error
	// UpdateAcronym replaces every mutable field of the acronym with acronym.ID.
	UpdateAcronym(ctx context.Context, acronym *schemas.Acronym) error
	DeleteAcronym(ctx context.Context, id string) error
}

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser assigns ID and CreatedAt on the given user.
	CreateUser(ctx context.Context, user *schemas.User) error
	GetUserByUsername(ctx context.Context, username string) (*schemas.User, error)
	DeleteUserByUsername(ctx context.Context, username string) error
}
