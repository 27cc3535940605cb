package service

import (
	"context"
	"strings"
	"testing"

	"noteboard-be/internal/dto"
	"noteboard-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotebookCreate_OwnedByCurrentUser(t *testing.T) {
	env := newTestEnv(t)
	alice := env.register(t, "alice", "secret", "")
	env.register(t, "bob", "secret", "")

	nb, err := env.notebooks.Create(context.Background(), "alice", &dto.CreateNotebookRequest{
		Title:       " Groceries ",
		Description: "Weekly list",
	})
	require.NoError(t, err)
	assert.Equal(t, "Groceries", nb.Title)
	assert.Equal(t, alice.Id, nb.UserId)

	mine, err := env.notebooks.FindAllForCurrentUser(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, nb.Id, mine[0].Id)

	theirs, err := env.notebooks.FindAllForCurrentUser(context.Background(), "bob")
	require.NoError(t, err)
	assert.Empty(t, theirs)

	ghost, err := env.notebooks.FindAllForCurrentUser(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, ghost)
}

func TestNotebookCreate_Validation(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice", "secret", "")

	tests := []struct {
		name     string
		username string
		req      dto.CreateNotebookRequest
		wantKind apperror.Kind
		wantMsg  string
	}{
		{"no user", " ", dto.CreateNotebookRequest{Title: "t", Description: "d"}, apperror.KindInvalidInput, "No authenticated user found. Please log in first."},
		{"unknown user", "zed", dto.CreateNotebookRequest{Title: "t", Description: "d"}, apperror.KindNotFound, "Authenticated user 'zed' not found"},
		{"blank title", "alice", dto.CreateNotebookRequest{Title: " ", Description: "d"}, apperror.KindValidation, "Title is required"},
		{"blank description", "alice", dto.CreateNotebookRequest{Title: "t"}, apperror.KindValidation, "Description is required"},
		{"long title", "alice", dto.CreateNotebookRequest{Title: strings.Repeat("t", 101), Description: "d"}, apperror.KindValidation, "Title must be at most 100 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.notebooks.Create(context.Background(), tt.username, &tt.req)
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, apperror.KindOf(err))
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestNotebookFindAllForCurrentUser_EmptyUsername(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.notebooks.FindAllForCurrentUser(context.Background(), "")
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestNotebookUpdate_PatchAndEmbeddedNotes(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice", "secret", "")
	nb := env.notebook(t, "alice", "Recipes")
	n := env.note(t, nb.Id, "Pancakes")

	updated, err := env.notebooks.Update(context.Background(), &dto.UpdateNotebookRequest{
		Id:          nb.Id,
		Title:       strPtr("  "),
		Description: strPtr(" Family recipes "),
	})
	require.NoError(t, err)
	assert.Equal(t, "Recipes", updated.Title)
	assert.Equal(t, "Family recipes", updated.Description)
	require.Len(t, updated.Notes, 1)
	assert.Equal(t, n.Id, updated.Notes[0].Id)

	_, err = env.notebooks.Update(context.Background(), &dto.UpdateNotebookRequest{Id: uuid.New(), Title: strPtr("x")})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestNotebookDelete_CascadesToNotes(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice", "secret", "")
	nb := env.notebook(t, "alice", "Scratch")
	n := env.note(t, nb.Id, "tmp")

	require.NoError(t, env.notebooks.Delete(context.Background(), nb.Id))

	_, err := env.notes.FindById(context.Background(), n.Id)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.ErrorIs(t, env.notebooks.Delete(context.Background(), nb.Id), apperror.ErrNotFound)
}
