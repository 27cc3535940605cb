package memory

import (
	"context"
	"fmt"

	"noteboard-be/internal/entity"
	"noteboard-be/internal/repository/contract"
	"noteboard-be/internal/repository/specification"

	"github.com/google/uuid"
)

type NotebookRepository struct {
	store *Store
}

func NewNotebookRepository(store *Store) contract.NotebookRepository {
	return &NotebookRepository{store: store}
}

func matchNotebook(nb *entity.Notebook, spec specification.Specification) (bool, bool) {
	switch s := spec.(type) {
	case specification.ByID:
		return nb.Id == s.ID, true
	case specification.UserOwnedBy:
		return nb.UserId == s.UserID, true
	}
	return false, false
}

func (r *NotebookRepository) save(notebook *entity.Notebook) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.users.get(notebook.UserId); !ok {
		return fmt.Errorf("memory: notebook owner %s does not exist", notebook.UserId)
	}
	if old, ok := r.store.notebooks.get(notebook.Id); ok {
		notebook.CreatedAt = old.CreatedAt
	}
	r.store.stamp(&notebook.Id, &notebook.CreatedAt, &notebook.UpdatedAt)
	c := *notebook
	r.store.notebooks.put(c.Id, &c)
	return nil
}

func (r *NotebookRepository) Create(ctx context.Context, notebook *entity.Notebook) error {
	return r.save(notebook)
}

func (r *NotebookRepository) Update(ctx context.Context, notebook *entity.Notebook) error {
	return r.save(notebook)
}

func (r *NotebookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.deleteNotebookLocked(id)
	return nil
}

func (r *NotebookRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Notebook, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

func (r *NotebookRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Notebook, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	found, err := selectWhere(r.store.notebooks.list(), specs, matchNotebook)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Notebook, len(found))
	for i, nb := range found {
		c := *nb
		out[i] = &c
	}
	return out, nil
}

func (r *NotebookRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	return int64(len(all)), err
}
