package notes

import (
	"context"

	"github.com/anvydev/notekeeper/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]*models.Note, error)
	Create(ctx context.Context, note *models.Note) (*models.Note, error)
	GetByID(ctx context.Context, id int64) (*models.Note, error)
	Update(ctx context.Context, id int64, name, description string) error
	Delete(ctx context.Context, id int64) error
}
