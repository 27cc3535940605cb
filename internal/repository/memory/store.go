// Package memory is a process-local implementation of the repository
// contracts. It backs DB_DRIVER=memory and the service and server tests.
//
// It mirrors the constraints the SQL schema declares: unique usernames and
// tag names, foreign keys and ON DELETE CASCADE. It is not transactional;
// Begin, Commit and Rollback are accepted and do nothing.
package memory

import (
	"sync"
	"time"

	"noteboard-be/internal/entity"

	"github.com/google/uuid"
)

type Store struct {
	mu        sync.RWMutex
	users     *table[*entity.User]
	notebooks *table[*entity.Notebook]
	notes     *table[*entity.Note]
	tags      *table[*entity.Tag]
	noteTags  map[uuid.UUID][]uuid.UUID
	now       func() time.Time
}

func NewStore() *Store {
	return &Store{
		users:     newTable[*entity.User](),
		notebooks: newTable[*entity.Notebook](),
		notes:     newTable[*entity.Note](),
		tags:      newTable[*entity.Tag](),
		noteTags:  make(map[uuid.UUID][]uuid.UUID),
		now:       time.Now,
	}
}

// stamp fills the generated columns the way GORM's autoCreateTime and
// autoUpdateTime do.
func (s *Store) stamp(id *uuid.UUID, createdAt, updatedAt *time.Time) {
	now := s.now()
	if *id == uuid.Nil {
		*id = uuid.New()
	}
	if createdAt.IsZero() {
		*createdAt = now
	}
	*updatedAt = now
}

// deleteNotebookLocked removes a notebook and cascades to its notes.
func (s *Store) deleteNotebookLocked(id uuid.UUID) {
	for _, n := range s.notes.list() {
		if n.NotebookId == id {
			s.deleteNoteLocked(n.Id)
		}
	}
	s.notebooks.del(id)
}

func (s *Store) deleteNoteLocked(id uuid.UUID) {
	delete(s.noteTags, id)
	s.notes.del(id)
}

// loadNoteLocked returns a copy of the stored note with its tag set attached,
// ordered by tag name.
func (s *Store) loadNoteLocked(stored *entity.Note) *entity.Note {
	n := *stored
	ids := s.noteTags[n.Id]
	n.Tags = make([]*entity.Tag, 0, len(ids))
	for _, tagId := range ids {
		if t, ok := s.tags.get(tagId); ok {
			c := *t
			n.Tags = append(n.Tags, &c)
		}
	}
	sortTagsByName(n.Tags)
	return &n
}
