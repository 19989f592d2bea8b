package service

import (
	"context"
	"database/sql"
	"io"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devportfolio/portfolio-backend/internal/projects/repository"
	"github.com/devportfolio/portfolio-backend/internal/storage/postgres"
)

var projectColumns = []string{"id", "title", "description", "image_url", "github_url", "live_url", "created_at"}

func setupService(t *testing.T) (*ProjectService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	log := logrus.New()
	log.SetOutput(io.Discard)

	repo := repository.NewProjectRepository(postgres.FromDB(db))
	return NewProjectService(repo, log), mock
}

func strptr(s string) *string { return &s }

func TestListAllAbsorbsStoreFault(t *testing.T) {
	svc, mock := setupService(t)

	mock.ExpectQuery(`SELECT id, title, description`).
		WillReturnError(sql.ErrConnDone)

	projects := svc.ListAll(context.Background())
	assert.NotNil(t, projects)
	assert.Empty(t, projects)
}

func TestListAllPassesThroughRows(t *testing.T) {
	svc, mock := setupService(t)

	mock.ExpectQuery(`SELECT id, title, description`).
		WillReturnRows(sqlmock.NewRows(projectColumns).
			AddRow(1, "One", "first", nil, nil, nil, time.Now()))

	projects := svc.ListAll(context.Background())
	require.Len(t, projects, 1)
	assert.Equal(t, "One", *projects[0].Title)
}

func TestGetByIDAbsorbsStoreFault(t *testing.T) {
	svc, mock := setupService(t)

	mock.ExpectQuery(`SELECT id, title, description`).
		WillReturnError(sql.ErrConnDone)

	assert.Nil(t, svc.GetByID(context.Background(), 1))
}

func TestGetByIDAbsent(t *testing.T) {
	svc, mock := setupService(t)

	mock.ExpectQuery(`SELECT id, title, description`).
		WillReturnError(sql.ErrNoRows)

	assert.Nil(t, svc.GetByID(context.Background(), 42))
}

func TestCreate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, mock := setupService(t)

		mock.ExpectQuery(`INSERT INTO projects`).
			WithArgs("T", "D", nil, nil, nil).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, time.Now()))

		ok := svc.Create(context.Background(), ProjectInput{Title: strptr("T"), Description: strptr("D")})
		assert.True(t, ok)
	})

	t.Run("store fault becomes false", func(t *testing.T) {
		svc, mock := setupService(t)

		mock.ExpectQuery(`INSERT INTO projects`).
			WillReturnError(sql.ErrConnDone)

		ok := svc.Create(context.Background(), ProjectInput{Title: strptr("T"), Description: strptr("D")})
		assert.False(t, ok)
	})
}

func TestUpdate(t *testing.T) {
	in := ProjectInput{Title: strptr("T2"), Description: strptr("D2")}

	t.Run("found", func(t *testing.T) {
		svc, mock := setupService(t)
		mock.ExpectExec(`UPDATE projects SET title`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.True(t, svc.Update(context.Background(), 2, in))
	})

	t.Run("not found", func(t *testing.T) {
		svc, mock := setupService(t)
		mock.ExpectExec(`UPDATE projects SET title`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.False(t, svc.Update(context.Background(), 2, in))
	})

	t.Run("store fault becomes false", func(t *testing.T) {
		svc, mock := setupService(t)
		mock.ExpectExec(`UPDATE projects SET title`).
			WillReturnError(sql.ErrConnDone)

		assert.False(t, svc.Update(context.Background(), 2, in))
	})
}

func TestDelete(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, mock := setupService(t)
		mock.ExpectExec(`DELETE FROM projects`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.True(t, svc.Delete(context.Background(), 3))
	})

	t.Run("not found", func(t *testing.T) {
		svc, mock := setupService(t)
		mock.ExpectExec(`DELETE FROM projects`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.False(t, svc.Delete(context.Background(), 3))
	})

	t.Run("store fault becomes false", func(t *testing.T) {
		svc, mock := setupService(t)
		mock.ExpectExec(`DELETE FROM projects`).
			WillReturnError(sql.ErrConnDone)

		assert.False(t, svc.Delete(context.Background(), 3))
	})
}
