package memory

import (
	"context"

	"noteboard-be/internal/entity"
	"noteboard-be/internal/pkg/apperror"
	"noteboard-be/internal/repository/contract"
	"noteboard-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) contract.UserRepository {
	return &UserRepository{store: store}
}

func matchUser(u *entity.User, spec specification.Specification) (bool, bool) {
	switch s := spec.(type) {
	case specification.ByID:
		return u.Id == s.ID, true
	case specification.ByUsername:
		return u.Username == s.Username, true
	}
	return false, false
}

func (r *UserRepository) usernameTakenLocked(username string, self uuid.UUID) bool {
	for _, u := range r.store.users.list() {
		if u.Username == username && u.Id != self {
			return true
		}
	}
	return false
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.usernameTakenLocked(user.Username, user.Id) {
		return apperror.Duplicate("Username already exists.")
	}
	r.store.stamp(&user.Id, &user.CreatedAt, &user.UpdatedAt)
	c := *user
	r.store.users.put(c.Id, &c)
	return nil
}

func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.usernameTakenLocked(user.Username, user.Id) {
		return apperror.Duplicate("Username already exists.")
	}
	if old, ok := r.store.users.get(user.Id); ok {
		user.CreatedAt = old.CreatedAt
	}
	r.store.stamp(&user.Id, &user.CreatedAt, &user.UpdatedAt)
	c := *user
	r.store.users.put(c.Id, &c)
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, nb := range r.store.notebooks.list() {
		if nb.UserId == id {
			r.store.deleteNotebookLocked(nb.Id)
		}
	}
	r.store.users.del(id)
	return nil
}

func (r *UserRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

func (r *UserRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	found, err := selectWhere(r.store.users.list(), specs, matchUser)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.User, len(found))
	for i, u := range found {
		c := *u
		out[i] = &c
	}
	return out, nil
}

func (r *UserRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	return int64(len(all)), err
}
