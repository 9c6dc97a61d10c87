package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"acronym-finder/internal/interfaces"
	"acronym-finder/internal/repositories/migrations"
	"acronym-finder/internal/schemas"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// uniqueViolation is the SQLSTATE PostgreSQL reports for a violated unique constraint.
const uniqueViolation = "23505"

// PostgresRepository implements AcronymRepository and UserRepository on a pgx pool.
type PostgresRepository struct {
	pool interfaces.PgxPoolIface
}

func NewPostgresRepository(pool interfaces.PgxPoolIface) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// RunMigrations applies the embedded migrations to the database behind databaseURL.
// goose works on database/sql, so it gets its own short-lived connection.
func RunMigrations(ctx context.Context, databaseURL string) error {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

func (r *PostgresRepository) ListAcronyms(ctx context.Context, offset, limit int) ([]*schemas.Acronym, error) {
	// LIMIT NULL is the same as no limit at all
	var limitArg interface{}
	if limit > 0 {
		limitArg = limit
	}

	queryString := `SELECT acronym_id, acronym, definition, category, notes, created_at
		FROM acronyms ORDER BY created_at, acronym_id OFFSET $1 LIMIT $2`
	rows, err := r.pool.Query(ctx, queryString, offset, limitArg)
	if err != nil {
		return nil, fmt.Errorf("list acronyms: %w", err)
	}
	defer rows.Close()

	acronyms := make([]*schemas.Acronym, 0)
	for rows.Next() {
		acronym, err := scanAcronym(rows)
		if err != nil {
			return nil, fmt.Errorf("scan acronym: %w", err)
		}
		acronyms = append(acronyms, acronym)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list acronyms: %w", err)
	}

	return acronyms, nil
}

func (r *PostgresRepository) GetAcronym(ctx context.Context, id string) (*schemas.Acronym, error) {
	acronymId, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}

	queryString := `SELECT acronym_id, acronym, definition, category, notes, created_at
		FROM acronyms WHERE acronym_id = $1`
	acronym, err := scanAcronym(r.pool.QueryRow(ctx, queryString, acronymId))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get acronym: %w", err)
	}

	return acronym, nil
}

func (r *PostgresRepository) CreateAcronym(ctx context.Context, acronym *schemas.Acronym) error {
	acronymId := uuid.New()
	createdAt := time.Now()

	queryString := `INSERT INTO acronyms (acronym_id, acronym, definition, category, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.pool.Exec(ctx, queryString, acronymId, acronym.Acronym, acronym.Definition,
		acronym.Category, acronym.Notes, createdAt); err != nil {
		return fmt.Errorf("create acronym: %w", err)
	}

	acronym.ID = acronymId.String()
	acronym.CreatedAt = &createdAt
	return nil
}

func (r *PostgresRepository) UpdateAcronym(ctx context.Context, acronym *schemas.Acronym) error {
	acronymId, err := uuid.Parse(acronym.ID)
	if err != nil {
		return ErrNotFound
	}

	queryString := `UPDATE acronyms SET acronym = $2, definition = $3, category = $4, notes = $5
		WHERE acronym_id = $1`
	tag, err := r.pool.Exec(ctx, queryString, acronymId, acronym.Acronym, acronym.Definition,
		acronym.Category, acronym.Notes)
	if err != nil {
		return fmt.Errorf("update acronym: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *PostgresRepository) DeleteAcronym(ctx context.Context, id string) error {
	acronymId, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}

	tag, err := r.pool.Exec(ctx, "DELETE FROM acronyms WHERE acronym_id = $1", acronymId)
	if err != nil {
		return fmt.Errorf("delete acronym: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *PostgresRepository) CreateUser(ctx context.Context, user *schemas.User) error {
	userId := uuid.New()
	createdAt := time.Now()

	queryString := `INSERT INTO users (user_id, username, password, first_name, last_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.pool.Exec(ctx, queryString, userId, user.Username, user.Password,
		user.FirstName, user.LastName, createdAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrUsernameTaken
		}
		return fmt.Errorf("create user: %w", err)
	}

	user.ID = userId.String()
	user.CreatedAt = &createdAt
	return nil
}

func (r *PostgresRepository) GetUserByUsername(ctx context.Context, username string) (*schemas.User, error) {
	queryString := `SELECT user_id, username, password, first_name, last_name, created_at
		FROM users WHERE username = $1`

	var (
		userId    uuid.UUID
		createdAt time.Time
	)
	user := &schemas.User{}
	if err := r.pool.QueryRow(ctx, queryString, username).Scan(&userId, &user.Username, &user.Password,
		&user.FirstName, &user.LastName, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	user.ID = userId.String()
	user.CreatedAt = &createdAt
	return user, nil
}

func (r *PostgresRepository) DeleteUserByUsername(ctx context.Context, username string) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM users WHERE username = $1", username)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func scanAcronym(row pgx.Row) (*schemas.Acronym, error) {
	var (
		acronymId uuid.UUID
		createdAt time.Time
	)
	acronym := &schemas.Acronym{}
	if err := row.Scan(&acronymId, &acronym.Acronym, &acronym.Definition,
		&acronym.Category, &acronym.Notes, &createdAt); err != nil {
		return nil, err
	}

	acronym.ID = acronymId.String()
	acronym.CreatedAt = &createdAt
	return acronym, nil
}
