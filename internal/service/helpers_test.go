package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"noteboard-be/internal/dto"
	"noteboard-be/internal/entity"
	"noteboard-be/internal/pkg/logger"
	"noteboard-be/internal/pkg/security"
	"noteboard-be/internal/repository/memory"
	"noteboard-be/internal/repository/unitofwork"
	"noteboard-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(ctx context.Context, event events.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.EventType())
	}
	return out
}

type testEnv struct {
	store     *memory.Store
	factory   unitofwork.RepositoryFactory
	hasher    *security.BcryptHasher
	tokens    *security.JWTManager
	publisher *recordingPublisher

	auth      IAuthService
	users     IUserService
	notebooks INotebookService
	notes     INoteService
	tags      ITagService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := memory.NewStore()
	factory := memory.NewRepositoryFactory(store)
	hasher := security.NewBcryptHasher(bcrypt.MinCost)
	tokens := security.NewJWTManager("test-secret", "https://noteboard.test", time.Hour)
	pub := &recordingPublisher{}

	return &testEnv{
		store:     store,
		factory:   factory,
		hasher:    hasher,
		tokens:    tokens,
		publisher: pub,
		auth:      NewAuthService(factory, hasher, tokens, pub, logger.NewNopLogger(), true),
		users:     NewUserService(factory, hasher, pub),
		notebooks: NewNotebookService(factory),
		notes:     NewNoteService(factory),
		tags:      NewTagService(factory, pub),
	}
}

func (e *testEnv) register(t *testing.T, username, password, role string) *dto.UserResponse {
	t.Helper()
	u, err := e.users.Create(context.Background(), &dto.RegisterRequest{Username: username, Password: password, Role: role})
	require.NoError(t, err)
	return u
}

// seedLegacyUser stores a user whose password column still holds plaintext.
func (e *testEnv) seedLegacyUser(t *testing.T, username, plaintext string) *entity.User {
	t.Helper()
	u := &entity.User{Id: uuid.New(), Username: username, PasswordHash: plaintext, Role: "user"}
	require.NoError(t, e.factory.NewUnitOfWork(context.Background()).UserRepository().Create(context.Background(), u))
	return u
}

func (e *testEnv) notebook(t *testing.T, owner, title string) *dto.NotebookResponse {
	t.Helper()
	nb, err := e.notebooks.Create(context.Background(), owner, &dto.CreateNotebookRequest{Title: title, Description: title + " description"})
	require.NoError(t, err)
	return nb
}

func (e *testEnv) note(t *testing.T, notebookId uuid.UUID, title string) *dto.NoteResponse {
	t.Helper()
	n, err := e.notes.Create(context.Background(), &dto.CreateNoteRequest{
		Title:    title,
		Content:  title + " content",
		Notebook: &dto.NotebookRef{Id: &notebookId},
	})
	require.NoError(t, err)
	return n
}

func (e *testEnv) tag(t *testing.T, name string) *dto.TagResponse {
	t.Helper()
	tag, err := e.tags.Create(context.Background(), &dto.CreateTagRequest{Name: name})
	require.NoError(t, err)
	return tag
}

func strPtr(s string) *string { return &s }
