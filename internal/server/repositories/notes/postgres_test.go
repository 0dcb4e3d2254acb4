package notes

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/anvydev/notekeeper/internal/common"
	"github.com/anvydev/notekeeper/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestList_ReturnsNotes(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*name,\s*description,\s*urgency,\s*user_id\s+FROM\s+notes\s+ORDER\s+BY\s+id\s*$`

	rows := sqlmock.NewRows([]string{"id", "name", "description", "urgency", "user_id"}).
		AddRow(int64(1), "groceries", "milk", "low", int64(7)).
		AddRow(int64(2), "taxes", "file them", "high", int64(7))
	mock.ExpectQuery(q).WillReturnRows(rows)

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 || got[0].Name != "groceries" || got[1].Urgency != "high" {
		t.Fatalf("unexpected notes: %+v", got)
	}
}

func TestList_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*name,\s*description,\s*urgency,\s*user_id\s+FROM\s+notes\s+ORDER\s+BY\s+id\s*$`

	mock.ExpectQuery(q).WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "urgency", "user_id"}))

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no notes, got %+v", got)
	}
}

func TestCreate_ReturnsID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+notes\s*\(name,\s*description,\s*urgency,\s*user_id\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*RETURNING\s+id\s*$`

	mock.ExpectQuery(q).
		WithArgs("groceries", "milk", "low", int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(10)))

	n := &models.Note{Name: "groceries", Description: "milk", Urgency: "low", UserID: 7}
	got, err := repo.Create(context.Background(), n)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 10 {
		t.Fatalf("unexpected note: %+v", got)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*name,\s*description,\s*urgency,\s*user_id\s+FROM\s+notes\s+WHERE\s+id\s*=\s*\$1\s*$`

	mock.ExpectQuery(q).WithArgs(int64(99)).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99)
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected common.ErrNotFound, got %v", err)
	}
}

func TestUpdate_NoRowsAffected(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+notes\s+SET\s+name\s*=\s*\$1,\s*description\s*=\s*\$2\s+WHERE\s+id\s*=\s*\$3\s*$`

	mock.ExpectExec(q).
		WithArgs("n", "d", int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), 99, "n", "d")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected common.ErrNotFound, got %v", err)
	}
}

func TestDelete_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^DELETE\s+FROM\s+notes\s+WHERE\s+id\s*=\s*\$1\s*$`

	mock.ExpectExec(q).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), 1); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}
