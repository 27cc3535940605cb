package memory

import (
	"context"
	"fmt"

	"noteboard-be/internal/entity"
	"noteboard-be/internal/repository/contract"
	"noteboard-be/internal/repository/specification"

	"github.com/google/uuid"
)

type NoteRepository struct {
	store *Store
}

func NewNoteRepository(store *Store) contract.NoteRepository {
	return &NoteRepository{store: store}
}

func matchNote(n *entity.Note, spec specification.Specification) (bool, bool) {
	switch s := spec.(type) {
	case specification.ByID:
		return n.Id == s.ID, true
	case specification.ByNotebookID:
		return n.NotebookId == s.NotebookID, true
	case specification.ByNotebookIDs:
		return containsID(s.NotebookIDs, n.NotebookId), true
	}
	return false, false
}

// save stores the scalar columns; the tag set is only written by ReplaceTags.
func (r *NoteRepository) save(note *entity.Note) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.notebooks.get(note.NotebookId); !ok {
		return fmt.Errorf("memory: notebook %s does not exist", note.NotebookId)
	}
	if old, ok := r.store.notes.get(note.Id); ok {
		note.CreatedAt = old.CreatedAt
	}
	r.store.stamp(&note.Id, &note.CreatedAt, &note.UpdatedAt)
	c := *note
	c.Tags = nil
	r.store.notes.put(c.Id, &c)
	return nil
}

func (r *NoteRepository) Create(ctx context.Context, note *entity.Note) error {
	return r.save(note)
}

func (r *NoteRepository) Update(ctx context.Context, note *entity.Note) error {
	return r.save(note)
}

func (r *NoteRepository) ReplaceTags(ctx context.Context, note *entity.Note) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.notes.get(note.Id); !ok {
		return fmt.Errorf("memory: note %s does not exist", note.Id)
	}
	ids := make([]uuid.UUID, 0, len(note.Tags))
	for _, t := range note.Tags {
		if _, ok := r.store.tags.get(t.Id); !ok {
			return fmt.Errorf("memory: tag %s does not exist", t.Id)
		}
		if !containsID(ids, t.Id) {
			ids = append(ids, t.Id)
		}
	}
	r.store.noteTags[note.Id] = ids
	return nil
}

func (r *NoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.deleteNoteLocked(id)
	return nil
}

func (r *NoteRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

func (r *NoteRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	found, err := selectWhere(r.store.notes.list(), specs, matchNote)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Note, len(found))
	for i, n := range found {
		out[i] = r.store.loadNoteLocked(n)
	}
	return out, nil
}

func (r *NoteRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	return int64(len(all)), err
}
