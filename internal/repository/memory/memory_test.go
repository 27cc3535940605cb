package memory

import (
	"context"
	"testing"

	"noteboard-be/internal/entity"
	"noteboard-be/internal/pkg/apperror"
	"noteboard-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, store *Store) (*entity.User, *entity.Notebook, *entity.Note, *entity.Tag) {
	t.Helper()
	ctx := context.Background()

	u := &entity.User{Username: "alice", PasswordHash: "h", Role: "user"}
	require.NoError(t, NewUserRepository(store).Create(ctx, u))
	nb := &entity.Notebook{Title: "nb", Description: "d", UserId: u.Id}
	require.NoError(t, NewNotebookRepository(store).Create(ctx, nb))
	n := &entity.Note{Title: "n", Content: "c", NotebookId: nb.Id}
	require.NoError(t, NewNoteRepository(store).Create(ctx, n))
	tag := &entity.Tag{Name: "t"}
	require.NoError(t, NewTagRepository(store).Create(ctx, tag))
	return u, nb, n, tag
}

func TestStore_GeneratesIdsAndTimestamps(t *testing.T) {
	store := NewStore()
	u, _, _, _ := seed(t, store)

	assert.NotEqual(t, uuid.Nil, u.Id)
	assert.False(t, u.CreatedAt.IsZero())
	assert.False(t, u.UpdatedAt.IsZero())
}

func TestStore_UniqueIndexes(t *testing.T) {
	store := NewStore()
	seed(t, store)
	ctx := context.Background()

	err := NewUserRepository(store).Create(ctx, &entity.User{Username: "alice", PasswordHash: "x"})
	assert.ErrorIs(t, err, apperror.ErrDuplicateValue)

	err = NewTagRepository(store).Create(ctx, &entity.Tag{Name: "t"})
	assert.ErrorIs(t, err, apperror.ErrDuplicateValue)
}

func TestStore_ForeignKeys(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	err := NewNotebookRepository(store).Create(ctx, &entity.Notebook{Title: "x", Description: "y", UserId: uuid.New()})
	assert.Error(t, err)

	err = NewNoteRepository(store).Create(ctx, &entity.Note{Title: "x", Content: "y", NotebookId: uuid.New()})
	assert.Error(t, err)
}

func TestStore_ReplaceTagsAndCascade(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	u, nb, n, tag := seed(t, store)
	notes := NewNoteRepository(store)

	n.AddTag(tag)
	require.NoError(t, notes.ReplaceTags(ctx, n))

	loaded, err := notes.FindOne(ctx, specification.ByID{ID: n.Id})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{tag.Id}, loaded.TagIds())

	require.NoError(t, NewUserRepository(store).Delete(ctx, u.Id))

	gone, err := NewNotebookRepository(store).FindOne(ctx, specification.ByID{ID: nb.Id})
	require.NoError(t, err)
	assert.Nil(t, gone)

	count, err := notes.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, store.noteTags)
}

func TestStore_SpecificationsOrderingAndPaging(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	tags := NewTagRepository(store)
	for _, name := range []string{"a", "b", "c", "d"} {
		require.NoError(t, tags.Create(ctx, &entity.Tag{Name: name}))
	}

	page, err := tags.FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: 2, Offset: 1},
	)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "c", page[0].Name)
	assert.Equal(t, "b", page[1].Name)

	one, err := tags.FindOne(ctx, specification.ByName{Name: "d"})
	require.NoError(t, err)
	assert.Equal(t, "d", one.Name)

	_, err = tags.FindAll(ctx, specification.UserOwnedBy{UserID: uuid.New()})
	assert.Error(t, err)

	_, err = tags.FindAll(ctx, specification.OrderBy{Field: "name"})
	assert.Error(t, err)
}

func TestStore_ReturnsCopies(t *testing.T) {
	store := NewStore()
	u, _, _, _ := seed(t, store)
	users := NewUserRepository(store)

	loaded, err := users.FindOne(context.Background(), specification.ByID{ID: u.Id})
	require.NoError(t, err)
	loaded.Username = "mutated"

	again, err := users.FindOne(context.Background(), specification.ByID{ID: u.Id})
	require.NoError(t, err)
	assert.Equal(t, "alice", again.Username)
}
