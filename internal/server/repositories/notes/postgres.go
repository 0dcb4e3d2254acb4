package notes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/anvydev/notekeeper/internal/common"
	"github.com/anvydev/notekeeper/internal/dbx"
	"github.com/anvydev/notekeeper/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Note, error) {
	query :=
		`SELECT id, name, description, urgency, user_id FROM notes
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Note
	for rows.Next() {
		note := &models.Note{}
		if err := rows.Scan(&note.ID, &note.Name, &note.Description, &note.Urgency, &note.UserID); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, note *models.Note) (*models.Note, error) {
	query :=
		`INSERT INTO notes (name, description, urgency, user_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		note.Name, note.Description, note.Urgency, note.UserID).Scan(&note.ID)

	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStoreFailure, err)
	}

	return note, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Note, error) {
	query :=
		`SELECT id, name, description, urgency, user_id FROM notes
		 WHERE id = $1
		 `

	note := &models.Note{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&note.ID, &note.Name, &note.Description, &note.Urgency, &note.UserID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return note, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, name, description string) error {
	query :=
		`UPDATE notes SET name = $1, description = $2
		 WHERE id = $3
		 `

	result, err := r.db.ExecContext(ctx, query, name, description, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query :=
		`DELETE FROM notes
		 WHERE id = $1
		 `

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}

	return nil
}
