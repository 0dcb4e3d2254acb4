package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/anvydev/notekeeper/internal/common"
	"github.com/anvydev/notekeeper/internal/server/models"
	"github.com/anvydev/notekeeper/internal/server/repositories/notes"
)

// NotesService provides plain CRUD over notes. Ownership is recorded from
// the authenticated identity at creation time.
type NotesService struct {
	notes notes.Repository
}

func NewNotesService(repo notes.Repository) *NotesService {
	return &NotesService{notes: repo}
}

// List returns all notes; an empty table yields ErrNotFound.
func (s *NotesService) List(ctx context.Context) ([]*models.Note, error) {
	result, err := s.notes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: listing notes: %v", common.ErrInternal, err)
	}
	if len(result) == 0 {
		return nil, common.ErrNotFound
	}
	return result, nil
}

func (s *NotesService) Create(ctx context.Context, name, description, urgency string, userID int64) (*models.Note, error) {
	if name == "" || description == "" || urgency == "" {
		return nil, common.ErrMissingField
	}

	note := &models.Note{Name: name, Description: description, Urgency: urgency, UserID: userID}
	created, err := s.notes.Create(ctx, note)
	if err != nil {
		if errors.Is(err, common.ErrStoreFailure) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: creating note: %v", common.ErrInternal, err)
	}

	return created, nil
}

func (s *NotesService) GetByID(ctx context.Context, id int64) (*models.Note, error) {
	note, err := s.notes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting note: %v", common.ErrInternal, err)
	}
	return note, nil
}

func (s *NotesService) Update(ctx context.Context, id int64, name, description string) error {
	if name == "" || description == "" {
		return common.ErrMissingField
	}

	err := s.notes.Update(ctx, id, name, description)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotFound
		}
		return fmt.Errorf("%w: updating note: %v", common.ErrInternal, err)
	}
	return nil
}

func (s *NotesService) Delete(ctx context.Context, id int64) error {
	err := s.notes.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotFound
		}
		return fmt.Errorf("%w: deleting note: %v", common.ErrInternal, err)
	}
	return nil
}
