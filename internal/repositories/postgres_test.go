package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"acronym-finder/internal/schemas"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var acronymColumns = []string{"acronym_id", "acronym", "definition", "category", "notes", "created_at"}

func setupPool(t *testing.T) (pgxmock.PgxPoolIface, *PostgresRepository) {
	t.Helper()

	poolMock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(poolMock.Close)

	return poolMock, NewPostgresRepository(poolMock)
}

func TestListAcronyms(t *testing.T) {
	poolMock, repo := setupPool(t)

	firstId, secondId := uuid.New(), uuid.New()
	createdAt := time.Date(2024, 1, 30, 20, 17, 9, 0, time.UTC)
	poolMock.ExpectQuery("SELECT (.+) FROM acronyms ORDER BY").
		WithArgs(0, pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(acronymColumns).
			AddRow(firstId, "DRY", "Don't Repeat Yourself", "", "", createdAt).
			AddRow(secondId, "TIRY", "This Isn't Real Yet", "testing", "made up", createdAt))

	acronyms, err := repo.ListAcronyms(context.Background(), 0, 0)
	require.NoError(t, err)
	require.Len(t, acronyms, 2)

	assert.Equal(t, firstId.String(), acronyms[0].ID)
	assert.Equal(t, "DRY", acronyms[0].Acronym)
	assert.Equal(t, secondId.String(), acronyms[1].ID)
	assert.Equal(t, "testing", acronyms[1].Category)
	assert.Equal(t, "made up", acronyms[1].Notes)
	assert.NoError(t, poolMock.ExpectationsWereMet())
}

func TestListAcronymsWithLimit(t *testing.T) {
	poolMock, repo := setupPool(t)

	poolMock.ExpectQuery("SELECT (.+) FROM acronyms ORDER BY").
		WithArgs(2, 5).
		WillReturnRows(pgxmock.NewRows(acronymColumns))

	acronyms, err := repo.ListAcronyms(context.Background(), 2, 5)
	require.NoError(t, err)
	assert.NotNil(t, acronyms)
	assert.Empty(t, acronyms)
	assert.NoError(t, poolMock.ExpectationsWereMet())
}

func TestListAcronymsQueryError(t *testing.T) {
	poolMock, repo := setupPool(t)

	poolMock.ExpectQuery("SELECT (.+) FROM acronyms").
		WithArgs(0, pgxmock.AnyArg()).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.ListAcronyms(context.Background(), 0, 0)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestGetAcronym(t *testing.T) {
	poolMock, repo := setupPool(t)

	acronymId := uuid.New()
	poolMock.ExpectQuery("SELECT (.+) FROM acronyms WHERE acronym_id").
		WithArgs(acronymId).
		WillReturnRows(pgxmock.NewRows(acronymColumns).
			AddRow(acronymId, "TIRY", "This Isn't Real Yet", "", "", time.Now()))

	acronym, err := repo.GetAcronym(context.Background(), acronymId.String())
	require.NoError(t, err)
	assert.Equal(t, acronymId.String(), acronym.ID)
	assert.Equal(t, "This Isn't Real Yet", acronym.Definition)
	assert.NoError(t, poolMock.ExpectationsWereMet())
}

func TestGetAcronymNotFound(t *testing.T) {
	poolMock, repo := setupPool(t)

	acronymId := uuid.New()
	poolMock.ExpectQuery("SELECT (.+) FROM acronyms WHERE acronym_id").
		WithArgs(acronymId).
		WillReturnRows(pgxmock.NewRows(acronymColumns))

	_, err := repo.GetAcronym(context.Background(), acronymId.String())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, poolMock.ExpectationsWereMet())
}

func TestMalformedIdsNeverReachTheDatabase(t *testing.T) {
	poolMock, repo := setupPool(t)
	ctx := context.Background()

	_, err := repo.GetAcronym(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, ErrNotFound)

	err = repo.UpdateAcronym(ctx, &schemas.Acronym{ID: "not-a-uuid", Acronym: "A", Definition: "B"})
	assert.ErrorIs(t, err, ErrNotFound)

	err = repo.DeleteAcronym(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, poolMock.ExpectationsWereMet())
}

func TestCreateAcronym(t *testing.T) {
	poolMock, repo := setupPool(t)

	poolMock.ExpectExec("INSERT INTO acronyms").
		WithArgs(pgxmock.AnyArg(), "TIRY", "This Isn't Real Yet", "", "", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	acronym := &schemas.Acronym{Acronym: "TIRY", Definition: "This Isn't Real Yet"}
	require.NoError(t, repo.CreateAcronym(context.Background(), acronym))

	_, err := uuid.Parse(acronym.ID)
	assert.NoError(t, err)
	assert.NotNil(t, acronym.CreatedAt)
	assert.NoError(t, poolMock.ExpectationsWereMet())
}

func TestUpdateAcronym(t *testing.T) {
	poolMock, repo := setupPool(t)

	acronymId := uuid.New()
	poolMock.ExpectExec("UPDATE acronyms SET").
		WithArgs(acronymId, "DRY", "Do Repeat Yourself", "jokes", "").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateAcronym(context.Background(), &schemas.Acronym{
		ID:         acronymId.String(),
		Acronym:    "DRY",
		Definition: "Do Repeat Yourself",
		Category:   "jokes",
	})
	assert.NoError(t, err)
	assert.NoError(t, poolMock.ExpectationsWereMet())
}

func TestUpdateAcronymNotFound(t *testing.T) {
	poolMock, repo := setupPool(t)

	acronymId := uuid.New()
	poolMock.ExpectExec("UPDATE acronyms SET").
		WithArgs(acronymId, "DRY", "Do Repeat Yourself", "", "").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.UpdateAcronym(context.Background(), &schemas.Acronym{
		ID:         acronymId.String(),
		Acronym:    "DRY",
		Definition: "Do Repeat Yourself",
	})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, poolMock.ExpectationsWereMet())
}

func TestDeleteAcronym(t *testing.T) {
	testCases := []struct {
		name     string
		affected int64
		err      error
	}{
		{"Deleted", 1, nil},
		{"NotFound", 0, ErrNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			poolMock, repo := setupPool(t)

			acronymId := uuid.New()
			poolMock.ExpectExec("DELETE FROM acronyms").
				WithArgs(acronymId).
				WillReturnResult(pgxmock.NewResult("DELETE", tc.affected))

			err := repo.DeleteAcronym(context.Background(), acronymId.String())
			if tc.err == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.err)
			}
			assert.NoError(t, poolMock.ExpectationsWereMet())
		})
	}
}

func TestCreateUser(t *testing.T) {
	poolMock, repo := setupPool(t)

	poolMock.ExpectExec("INSERT INTO users").
		WithArgs(pgxmock.AnyArg(), "alice", "digest", "Alice", "Liddell", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	user := &schemas.User{Username: "alice", Password: "digest", FirstName: "Alice", LastName: "Liddell"}
	require.NoError(t, repo.CreateUser(context.Background(), user))
	assert.NotEmpty(t, user.ID)
	assert.NoError(t, poolMock.ExpectationsWereMet())
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	poolMock, repo := setupPool(t)

	poolMock.ExpectExec("INSERT INTO users").
		WithArgs(pgxmock.AnyArg(), "alice", "digest", "", "", pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

	err := repo.CreateUser(context.Background(), &schemas.User{Username: "alice", Password: "digest"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
	assert.NoError(t, poolMock.ExpectationsWereMet())
}

func TestGetUserByUsername(t *testing.T) {
	poolMock, repo := setupPool(t)

	userId := uuid.New()
	columns := []string{"user_id", "username", "password", "first_name", "last_name", "created_at"}
	poolMock.ExpectQuery("SELECT (.+) FROM users WHERE username").
		WithArgs("alice").
		WillReturnRows(pgxmock.NewRows(columns).AddRow(userId, "alice", "digest", "Alice", "", time.Now()))

	user, err := repo.GetUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, userId.String(), user.ID)
	assert.Equal(t, "digest", user.Password)
	assert.Equal(t, "Alice", user.FirstName)

	poolMock.ExpectQuery("SELECT (.+) FROM users WHERE username").
		WithArgs("bob").
		WillReturnRows(pgxmock.NewRows(columns))

	_, err = repo.GetUserByUsername(context.Background(), "bob")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, poolMock.ExpectationsWereMet())
}

func TestDeleteUserByUsername(t *testing.T) {
	poolMock, repo := setupPool(t)

	poolMock.ExpectExec("DELETE FROM users").
		WithArgs("alice").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	poolMock.ExpectExec("DELETE FROM users").
		WithArgs("alice").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.NoError(t, repo.DeleteUserByUsername(context.Background(), "alice"))
	assert.ErrorIs(t, repo.DeleteUserByUsername(context.Background(), "alice"), ErrNotFound)
	assert.NoError(t, poolMock.ExpectationsWereMet())
}
