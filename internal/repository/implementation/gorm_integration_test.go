package implementation_test

import (
	"context"
	"log"
	"os"
	"testing"

	"noteboard-be/internal/entity"
	"noteboard-be/internal/pkg/apperror"
	"noteboard-be/internal/repository/specification"
	"noteboard-be/internal/repository/unitofwork"
	"noteboard-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a real Postgres when DB_CONNECTION_STRING is set.
func newIntegrationFactory(t *testing.T) unitofwork.RepositoryFactory {
	t.Helper()

	if err := godotenv.Load("../../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	db, err := database.NewGormDBFromDSN(dsn, false)
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	return unitofwork.NewRepositoryFactory(db)
}

func TestGormRepositories(t *testing.T) {
	factory := newIntegrationFactory(t)
	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)
	suffix := uuid.NewString()[:8]

	user := &entity.User{Username: "it-" + suffix, PasswordHash: "x", Role: entity.UserRoleUser}
	require.NoError(t, uow.UserRepository().Create(ctx, user))
	require.NotEqual(t, uuid.Nil, user.Id)
	t.Cleanup(func() { _ = uow.UserRepository().Delete(ctx, user.Id) })

	t.Run("duplicate username", func(t *testing.T) {
		dup := &entity.User{Username: user.Username, PasswordHash: "y", Role: entity.UserRoleUser}
		err := uow.UserRepository().Create(ctx, dup)
		assert.Equal(t, apperror.KindDuplicateValue, apperror.KindOf(err))
	})

	notebook := &entity.Notebook{Title: "Integration", Description: "created by test", UserId: user.Id}
	require.NoError(t, uow.NotebookRepository().Create(ctx, notebook))

	note := &entity.Note{Title: "First", Content: "hello", NotebookId: notebook.Id}
	require.NoError(t, uow.NoteRepository().Create(ctx, note))

	tag := &entity.Tag{Name: "it-tag-" + suffix}
	require.NoError(t, uow.TagRepository().Create(ctx, tag))

	t.Run("replace tags", func(t *testing.T) {
		note.Tags = []*entity.Tag{tag}
		require.NoError(t, uow.NoteRepository().ReplaceTags(ctx, note))

		found, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: note.Id})
		require.NoError(t, err)
		require.Len(t, found.Tags, 1)
		assert.Equal(t, tag.Name, found.Tags[0].Name)
	})

	t.Run("deleting a tag removes membership", func(t *testing.T) {
		require.NoError(t, uow.TagRepository().Delete(ctx, tag.Id))

		found, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: note.Id})
		require.NoError(t, err)
		assert.Empty(t, found.Tags)
	})

	t.Run("deleting the owner cascades", func(t *testing.T) {
		require.NoError(t, uow.UserRepository().Delete(ctx, user.Id))

		nb, err := uow.NotebookRepository().FindOne(ctx, specification.ByID{ID: notebook.Id})
		require.NoError(t, err)
		assert.Nil(t, nb)

		n, err := uow.NoteRepository().Count(ctx, specification.ByNotebookID{NotebookID: notebook.Id})
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

func TestGormUnitOfWork_Rollback(t *testing.T) {
	factory := newIntegrationFactory(t)
	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)

	name := "rollback-" + uuid.NewString()[:8]

	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.TagRepository().Create(ctx, &entity.Tag{Name: name}))
	require.NoError(t, uow.Rollback())

	found, err := factory.NewUnitOfWork(ctx).TagRepository().FindOne(ctx, specification.ByName{Name: name})
	require.NoError(t, err)
	assert.Nil(t, found)
}
