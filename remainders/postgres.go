package remainders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/remainders-go/apperror"
)

// PostgresStore is the pgx-backed implementation of Store.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) ListByOwner(ctx context.Context, ownerID int64) ([]Remainder, error) {
	query := `SELECT id, user_id, title, description, remainder_date, permanent, created_at
	          FROM remainders
	          WHERE user_id = $1
	          ORDER BY id`

	rows, err := s.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list remainders", err)
	}
	defer rows.Close()

	remainders := []Remainder{}
	for rows.Next() {
		rem, err := scanRemainder(rows)
		if err != nil {
			return nil, apperror.NewDatabaseError("failed to scan remainder", err)
		}
		remainders = append(remainders, *rem)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to list remainders", err)
	}
	return remainders, nil
}

func (s *PostgresStore) GetByID(ctx context.Context, ownerID, id int64) (*Remainder, error) {
	query := `SELECT id, user_id, title, description, remainder_date, permanent, created_at
	          FROM remainders
	          WHERE id = $1 AND user_id = $2`

	rem, err := scanRemainder(s.pool.QueryRow(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("remainder not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to get remainder", err)
	}
	return rem, nil
}

func (s *PostgresStore) Create(ctx context.Context, rem *Remainder) (*Remainder, error) {
	query := `INSERT INTO remainders (user_id, title, description, remainder_date, permanent)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id, created_at`

	err := s.pool.QueryRow(ctx, query,
		rem.UserID, rem.Title, rem.Description, rem.RemainderDate.Time, rem.Permanent).
		Scan(&rem.ID, &rem.CreatedAt)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to create remainder", err)
	}
	return rem, nil
}

// UpdatePartial builds the SET clause from the fields actually supplied, so
// anything the client left out keeps its stored value. The owner predicate is
// part of the WHERE clause, not a separate check.
func (s *PostgresStore) UpdatePartial(ctx context.Context, ownerID, id int64, req UpdateRequest) (*Remainder, error) {
	var setClauses []string
	var args []interface{}
	argID := 1

	if req.Title != nil {
		setClauses = append(setClauses, fmt.Sprintf("title = $%d", argID))
		args = append(args, *req.Title)
		argID++
	}
	if req.Description != nil {
		setClauses = append(setClauses, fmt.Sprintf("description = $%d", argID))
		args = append(args, *req.Description)
		argID++
	}
	if req.RemainderDate != nil {
		setClauses = append(setClauses, fmt.Sprintf("remainder_date = $%d", argID))
		args = append(args, req.RemainderDate.Time)
		argID++
	}
	if req.Permanent != nil {
		setClauses = append(setClauses, fmt.Sprintf("permanent = $%d", argID))
		args = append(args, *req.Permanent)
		argID++
	}

	if len(setClauses) == 0 {
		// Nothing to change; still owner-scoped.
		return s.GetByID(ctx, ownerID, id)
	}

	args = append(args, id, ownerID)
	query := fmt.Sprintf(`UPDATE remainders SET %s
	          WHERE id = $%d AND user_id = $%d
	          RETURNING id, user_id, title, description, remainder_date, permanent, created_at`,
		strings.Join(setClauses, ", "), argID, argID+1)

	rem, err := scanRemainder(s.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("remainder not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to update remainder", err)
	}
	return rem, nil
}

// Replace overwrites every mutable column with the request values. Omitted
// payload fields arrive here as type defaults and reset the column.
func (s *PostgresStore) Replace(ctx context.Context, ownerID, id int64, req ReplaceRequest) (*Remainder, error) {
	query := `UPDATE remainders
	          SET title = $1, description = $2, remainder_date = $3, permanent = $4
	          WHERE id = $5 AND user_id = $6
	          RETURNING id, user_id, title, description, remainder_date, permanent, created_at`

	rem, err := scanRemainder(s.pool.QueryRow(ctx, query,
		req.Title, req.Description, req.RemainderDate.Time, req.Permanent, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("remainder not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to replace remainder", err)
	}
	return rem, nil
}

func (s *PostgresStore) Delete(ctx context.Context, ownerID, id int64) error {
	query := `DELETE FROM remainders WHERE id = $1 AND user_id = $2`

	tag, err := s.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		return apperror.NewDatabaseError("failed to delete remainder", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFoundError("remainder not found", nil)
	}
	return nil
}

// scanRemainder reads one row into a Remainder, converting the date column.
func scanRemainder(row pgx.Row) (*Remainder, error) {
	var rem Remainder
	var date time.Time
	err := row.Scan(&rem.ID, &rem.UserID, &rem.Title, &rem.Description,
		&date, &rem.Permanent, &rem.CreatedAt)
	if err != nil {
		return nil, err
	}
	rem.RemainderDate = DateOf(date)
	return &rem, nil
}
