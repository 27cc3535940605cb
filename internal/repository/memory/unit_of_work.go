package memory

import (
	"context"

	"noteboard-be/internal/repository/contract"
	"noteboard-be/internal/repository/unitofwork"
)

type repositoryFactory struct {
	store *Store
}

// NewRepositoryFactory serves units of work over store.
func NewRepositoryFactory(store *Store) unitofwork.RepositoryFactory {
	return &repositoryFactory{store: store}
}

func (f *repositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &unitOfWork{store: f.store}
}

type unitOfWork struct {
	store *Store
}

func (u *unitOfWork) Begin(ctx context.Context) error { return nil }
func (u *unitOfWork) Commit() error                   { return nil }
func (u *unitOfWork) Rollback() error                 { return nil }

func (u *unitOfWork) UserRepository() contract.UserRepository {
	return NewUserRepository(u.store)
}

func (u *unitOfWork) NotebookRepository() contract.NotebookRepository {
	return NewNotebookRepository(u.store)
}

func (u *unitOfWork) NoteRepository() contract.NoteRepository {
	return NewNoteRepository(u.store)
}

func (u *unitOfWork) TagRepository() contract.TagRepository {
	return NewTagRepository(u.store)
}
