package memory

import (
	"context"
	"fmt"
	"sort"

	"noteboard-be/internal/entity"
	"noteboard-be/internal/pkg/apperror"
	"noteboard-be/internal/repository/contract"
	"noteboard-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TagRepository struct {
	store *Store
}

func NewTagRepository(store *Store) contract.TagRepository {
	return &TagRepository{store: store}
}

func matchTag(t *entity.Tag, spec specification.Specification) (bool, bool) {
	switch s := spec.(type) {
	case specification.ByID:
		return t.Id == s.ID, true
	case specification.ByName:
		return t.Name == s.Name, true
	}
	return false, false
}

func sortTagsByName(tags []*entity.Tag) {
	sort.SliceStable(tags, func(i, j int) bool { return tags[i].Name < tags[j].Name })
}

func (r *TagRepository) save(tag *entity.Tag) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, t := range r.store.tags.list() {
		if t.Name == tag.Name && t.Id != tag.Id {
			return apperror.Duplicate(fmt.Sprintf("Tag with name '%s' already exists", tag.Name))
		}
	}
	if old, ok := r.store.tags.get(tag.Id); ok {
		tag.CreatedAt = old.CreatedAt
	}
	r.store.stamp(&tag.Id, &tag.CreatedAt, &tag.UpdatedAt)
	c := *tag
	r.store.tags.put(c.Id, &c)
	return nil
}

func (r *TagRepository) Create(ctx context.Context, tag *entity.Tag) error {
	return r.save(tag)
}

func (r *TagRepository) Update(ctx context.Context, tag *entity.Tag) error {
	return r.save(tag)
}

// Delete removes the tag from every note that carries it.
func (r *TagRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for noteId, ids := range r.store.noteTags {
		kept := ids[:0]
		for _, tagId := range ids {
			if tagId != id {
				kept = append(kept, tagId)
			}
		}
		r.store.noteTags[noteId] = kept
	}
	r.store.tags.del(id)
	return nil
}

func (r *TagRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Tag, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

func (r *TagRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tag, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	found, err := selectWhere(r.store.tags.list(), specs, matchTag)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Tag, len(found))
	for i, t := range found {
		c := *t
		out[i] = &c
	}
	return out, nil
}

func (r *TagRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	return int64(len(all)), err
}
