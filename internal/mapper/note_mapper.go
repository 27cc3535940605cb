package mapper

import (
	"noteboard-be/internal/entity"
	"noteboard-be/internal/model"
)

type NoteMapper struct {
	tags *TagMapper
}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{tags: NewTagMapper()}
}

func (m *NoteMapper) ToEntity(n *model.Note) *entity.Note {
	if n == nil {
		return nil
	}
	tags := make([]*entity.Tag, len(n.Tags))
	for i := range n.Tags {
		tags[i] = m.tags.ToEntity(&n.Tags[i])
	}
	return &entity.Note{
		Id:         n.Id,
		Title:      n.Title,
		Content:    n.Content,
		NotebookId: n.NotebookId,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
		Tags:       tags,
	}
}

// ToModel copies scalar columns only. The tag set is persisted separately
// through NoteRepository.ReplaceTags.
func (m *NoteMapper) ToModel(n *entity.Note) *model.Note {
	if n == nil {
		return nil
	}
	return &model.Note{
		Id:         n.Id,
		Title:      n.Title,
		Content:    n.Content,
		NotebookId: n.NotebookId,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
	}
}

// TagModels converts the note's tag set to join targets.
func (m *NoteMapper) TagModels(n *entity.Note) []model.Tag {
	out := make([]model.Tag, 0, len(n.Tags))
	for _, t := range n.Tags {
		out = append(out, *m.tags.ToModel(t))
	}
	return out
}

func (m *NoteMapper) ToEntities(notes []*model.Note) []*entity.Note {
	entities := make([]*entity.Note, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
