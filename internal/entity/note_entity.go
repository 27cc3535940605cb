package entity

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id         uuid.UUID
	Title      string
	Content    string
	NotebookId uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// nil means the tag set was never loaded or initialised
	Tags []*Tag
}

// HasTag reports whether the tag is a member of the note's tag set.
func (n *Note) HasTag(tagId uuid.UUID) bool {
	for _, t := range n.Tags {
		if t.Id == tagId {
			return true
		}
	}
	return false
}

// AddTag adds tag unless it is already a member. It returns true when the set changed.
func (n *Note) AddTag(tag *Tag) bool {
	if n.Tags == nil {
		n.Tags = make([]*Tag, 0, 1)
	}
	if n.HasTag(tag.Id) {
		return false
	}
	n.Tags = append(n.Tags, tag)
	return true
}

// RemoveTag drops the tag from the set if present. It returns true when the set changed.
func (n *Note) RemoveTag(tagId uuid.UUID) bool {
	if n.Tags == nil {
		return false
	}
	for i, t := range n.Tags {
		if t.Id == tagId {
			n.Tags = append(n.Tags[:i], n.Tags[i+1:]...)
			return true
		}
	}
	return false
}

// TagIds returns the ids of the tag set in order.
func (n *Note) TagIds() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(n.Tags))
	for _, t := range n.Tags {
		ids = append(ids, t.Id)
	}
	return ids
}
