package service

import (
	"context"
	"strings"
	"testing"

	"noteboard-be/internal/dto"
	"noteboard-be/internal/pkg/apperror"
	"noteboard-be/internal/repository/specification"
	"noteboard-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreate(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.RegisterRequest
		wantKind apperror.Kind
		wantMsg  string
	}{
		{"missing username", dto.RegisterRequest{Username: "  ", Password: "pw"}, apperror.KindValidation, "Username is required."},
		{"missing password", dto.RegisterRequest{Username: "frank", Password: " "}, apperror.KindValidation, "Password is required."},
		{"username too long", dto.RegisterRequest{Username: strings.Repeat("u", 51), Password: "pw"}, apperror.KindValidation, "Username must be at most 50 characters"},
		{"password too long", dto.RegisterRequest{Username: "frank", Password: strings.Repeat("p", 73)}, apperror.KindValidation, "Password must be at most 72 bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			_, err := env.users.Create(context.Background(), &tt.req)
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, apperror.KindOf(err))
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestUserCreate_DefaultsAndHashing(t *testing.T) {
	env := newTestEnv(t)

	u, err := env.users.Create(context.Background(), &dto.RegisterRequest{Username: "  grace ", Password: " pw "})
	require.NoError(t, err)
	assert.Equal(t, "grace", u.Username)
	assert.Equal(t, "user", u.Role)

	stored, err := env.factory.NewUnitOfWork(context.Background()).UserRepository().
		FindOne(context.Background(), specification.ByID{ID: u.Id})
	require.NoError(t, err)
	assert.NotEqual(t, "pw", stored.PasswordHash)
	assert.True(t, env.hasher.Verify("pw", stored.PasswordHash))
	assert.Equal(t, []string{events.UserRegistered}, env.publisher.types())
}

func TestUserCreate_DuplicateUsername(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "heidi", "pw", "")

	_, err := env.users.Create(context.Background(), &dto.RegisterRequest{Username: " heidi", Password: "other"})
	assert.ErrorIs(t, err, apperror.ErrDuplicateValue)
	assert.Equal(t, "Username already exists.", err.Error())
}

func TestUserUpdate_MergeRules(t *testing.T) {
	env := newTestEnv(t)
	ivan := env.register(t, "ivan", "pw", "")
	env.register(t, "judy", "pw", "")

	// blank fields are ignored
	u, err := env.users.Update(context.Background(), &dto.UpdateUserRequest{Id: ivan.Id, Username: strPtr("   "), Role: strPtr("")})
	require.NoError(t, err)
	assert.Equal(t, "ivan", u.Username)
	assert.Equal(t, "user", u.Role)

	// another user's name is rejected
	_, err = env.users.Update(context.Background(), &dto.UpdateUserRequest{Id: ivan.Id, Username: strPtr("judy")})
	assert.ErrorIs(t, err, apperror.ErrDuplicateValue)

	// own name is accepted
	_, err = env.users.Update(context.Background(), &dto.UpdateUserRequest{Id: ivan.Id, Username: strPtr(" ivan ")})
	require.NoError(t, err)

	u, err = env.users.Update(context.Background(), &dto.UpdateUserRequest{
		Id:       ivan.Id,
		Username: strPtr(" ivan2 "),
		Password: strPtr(" newpw "),
		Role:     strPtr(" admin "),
	})
	require.NoError(t, err)
	assert.Equal(t, "ivan2", u.Username)
	assert.Equal(t, "admin", u.Role)

	_, err = env.auth.Authenticate(context.Background(), "ivan2", "newpw")
	assert.NoError(t, err)
}

func TestUserUpdate_NotFound(t *testing.T) {
	env := newTestEnv(t)
	id := uuid.New()

	_, err := env.users.Update(context.Background(), &dto.UpdateUserRequest{Id: id, Username: strPtr("x")})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Equal(t, "User with ID "+id.String()+" not found", err.Error())
}

func TestUserDelete_CascadesToNotebooksAndNotes(t *testing.T) {
	env := newTestEnv(t)
	ken := env.register(t, "ken", "pw", "")
	nb := env.notebook(t, "ken", "Journal")
	n := env.note(t, nb.Id, "Day 1")

	require.NoError(t, env.users.Delete(context.Background(), ken.Id))

	_, err := env.users.FindById(context.Background(), ken.Id)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	_, err = env.notebooks.FindById(context.Background(), nb.Id)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	_, err = env.notes.FindById(context.Background(), n.Id)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	assert.ErrorIs(t, env.users.Delete(context.Background(), ken.Id), apperror.ErrNotFound)
}

func TestUserFindAll_HidesPasswords(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "leo", "pw", "")
	env.register(t, "mia", "pw", "admin")

	users, total, err := env.users.FindAll(context.Background(), dto.PageQuery{})
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.EqualValues(t, 2, total)
	assert.Equal(t, "leo", users[0].Username)
	assert.Equal(t, "mia", users[1].Username)
}
