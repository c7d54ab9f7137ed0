package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chairulsabri/backend-windows-explorer/internal/model"
	"github.com/chairulsabri/backend-windows-explorer/internal/repository"
)

var folderCols = []string{"id", "name", "path", "parent_id", "created_at", "updated_at"}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func int64p(v int64) *int64 { return &v }
func strp(v string) *string { return &v }

func TestFolderPostgres_Create(t *testing.T) {
	db, mock := newMock(t)
	repo := NewFolderPostgres(db)
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("returns stored record", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO folders").
			WithArgs("Work", "/Documents/Work", int64(2)).
			WillReturnRows(sqlmock.NewRows(folderCols).
				AddRow(int64(7), "Work", "/Documents/Work", int64(2), now, now))

		f, err := repo.Create(ctx, repository.FolderCreate{Name: "Work", Path: "/Documents/Work", ParentID: int64p(2)})

		require.NoError(t, err)
		assert.Equal(t, int64(7), f.ID)
		assert.Equal(t, "Work", f.Name)
		assert.Equal(t, "/Documents/Work", f.Path)
		assert.Equal(t, int64p(2), f.ParentID)
		assert.False(t, f.CreatedAt.IsZero())
		assert.False(t, f.UpdatedAt.IsZero())
	})

	t.Run("root folder stores null parent", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO folders").
			WithArgs("Root", "/", nil).
			WillReturnRows(sqlmock.NewRows(folderCols).
				AddRow(int64(1), "Root", "/", nil, now, now))

		f, err := repo.Create(ctx, repository.FolderCreate{Name: "Root", Path: "/"})

		require.NoError(t, err)
		assert.Nil(t, f.ParentID)
	})

	t.Run("missing parent maps to invalid reference", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO folders").
			WithArgs("Orphan", "/x/Orphan", int64(999)).
			WillReturnError(&pgconn.PgError{Code: "23503"})

		_, err := repo.Create(ctx, repository.FolderCreate{Name: "Orphan", Path: "/x/Orphan", ParentID: int64p(999)})

		assert.ErrorIs(t, err, repository.ErrInvalidReference)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFolderPostgres_FindByID(t *testing.T) {
	db, mock := newMock(t)
	repo := NewFolderPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM folders WHERE id = ").
			WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows(folderCols).
				AddRow(int64(2), "Documents", "/Documents", int64(1), time.Now(), time.Now()))

		f, err := repo.FindByID(ctx, 2)

		assert.NoError(t, err)
		assert.Equal(t, "Documents", f.Name)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM folders WHERE id = ").
			WithArgs(int64(404)).
			WillReturnError(sql.ErrNoRows)

		f, err := repo.FindByID(ctx, 404)

		assert.True(t, IsNoRowsError(err))
		assert.Nil(t, f)
	})
}

func TestFolderPostgres_List(t *testing.T) {
	db, mock := newMock(t)
	repo := NewFolderPostgres(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM folders WHERE name ILIKE $1 OR path ILIKE $1")).
		WithArgs("%Doc%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY name ASC, id ASC LIMIT $2 OFFSET $3")).
		WithArgs("%Doc%", 10, 20).
		WillReturnRows(sqlmock.NewRows(folderCols).
			AddRow(int64(2), "Documents", "/Documents", int64(1), time.Now(), time.Now()))

	res, err := repo.List(ctx, repository.ListQuery{Page: 3, Limit: 10, Search: "Doc", SortBy: "name", SortOrder: repository.SortAsc})

	require.NoError(t, err)
	assert.Equal(t, 25, res.Total)
	assert.Len(t, res.Items, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFolderPostgres_ListAll(t *testing.T) {
	db, mock := newMock(t)
	repo := NewFolderPostgres(db)

	mock.ExpectQuery("SELECT (.+) FROM folders ORDER BY path ASC, id ASC").
		WillReturnRows(sqlmock.NewRows(folderCols))

	folders, err := repo.ListAll(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, folders)
	assert.Empty(t, folders)
}

func TestFolderPostgres_Update(t *testing.T) {
	db, mock := newMock(t)
	repo := NewFolderPostgres(db)
	ctx := context.Background()
	now := time.Now()

	t.Run("partial update writes supplied fields only", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE folders SET name = $1, parent_id = $2, updated_at = now() WHERE id = $3")).
			WithArgs("Archive", nil, int64(5)).
			WillReturnRows(sqlmock.NewRows(folderCols).
				AddRow(int64(5), "Archive", "/Documents/Work", nil, now, now))

		f, err := repo.Update(ctx, 5, repository.FolderUpdate{Name: strp("Archive"), ParentID: model.Null[int64]()})

		require.NoError(t, err)
		assert.Equal(t, "Archive", f.Name)
		assert.Nil(t, f.ParentID)
	})

	t.Run("empty update returns current record", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM folders WHERE id = ").
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows(folderCols).
				AddRow(int64(5), "Work", "/Documents/Work", int64(2), now, now))

		f, err := repo.Update(ctx, 5, repository.FolderUpdate{})

		require.NoError(t, err)
		assert.Equal(t, "Work", f.Name)
	})

	t.Run("missing id", func(t *testing.T) {
		mock.ExpectQuery("UPDATE folders SET").
			WithArgs("x", int64(404)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.Update(ctx, 404, repository.FolderUpdate{Name: strp("x")})

		assert.True(t, IsNoRowsError(err))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFolderPostgres_Delete(t *testing.T) {
	db, mock := newMock(t)
	repo := NewFolderPostgres(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM folders WHERE id = ").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM folders WHERE id = ").
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM folders WHERE id = ").
		WithArgs(int64(9)).
		WillReturnError(errors.New("connection reset"))

	deleted, err := repo.Delete(ctx, 3)
	assert.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, 404)
	assert.NoError(t, err)
	assert.False(t, deleted)

	_, err = repo.Delete(ctx, 9)
	assert.EqualError(t, err, "connection reset")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFolderPostgres_MoveInTransaction(t *testing.T) {
	db, mock := newMock(t)
	repo := NewFolderPostgres(db)
	tm := NewTransactionManager(db)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE folders SET parent_id = ").
		WithArgs(int64(3), "/Pictures/Work", int64(5)).
		WillReturnRows(sqlmock.NewRows(folderCols).
			AddRow(int64(5), "Work", "/Pictures/Work", int64(3), now, now))
	mock.ExpectExec("WITH RECURSIVE subtree").
		WithArgs(int64(5), "/Documents/Work/", "/Pictures/Work/").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := tm.ExecTx(context.Background(), func(ctx context.Context) error {
		if _, err := repo.Reparent(ctx, 5, int64p(3), "/Pictures/Work"); err != nil {
			return err
		}
		n, err := repo.RepathDescendants(ctx, 5, "/Documents/Work/", "/Pictures/Work/")
		assert.Equal(t, int64(2), n)
		return err
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_RollbackOnError(t *testing.T) {
	db, mock := newMock(t)
	tm := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := tm.ExecTx(context.Background(), func(ctx context.Context) error {
		return errors.New("boom")
	})

	assert.EqualError(t, err, "boom")
	assert.NoError(t, mock.ExpectationsWereMet())
}
