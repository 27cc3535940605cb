package service

import (
	"noteboard-be/internal/dto"
	"noteboard-be/internal/entity"
)

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		Id:        u.Id,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toTagResponse(t *entity.Tag) *dto.TagResponse {
	return &dto.TagResponse{
		Id:        t.Id,
		Name:      t.Name,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func toNoteResponse(n *entity.Note) *dto.NoteResponse {
	tags := make([]*dto.TagResponse, 0, len(n.Tags))
	for _, t := range n.Tags {
		tags = append(tags, toTagResponse(t))
	}
	return &dto.NoteResponse{
		Id:         n.Id,
		Title:      n.Title,
		Content:    n.Content,
		NotebookId: n.NotebookId,
		Tags:       tags,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
	}
}

func toNotebookResponse(nb *entity.Notebook, notes []*entity.Note) *dto.NotebookResponse {
	res := &dto.NotebookResponse{
		Id:          nb.Id,
		Title:       nb.Title,
		Description: nb.Description,
		UserId:      nb.UserId,
		Notes:       make([]*dto.NotebookNoteSummary, 0),
		CreatedAt:   nb.CreatedAt,
		UpdatedAt:   nb.UpdatedAt,
	}
	for _, n := range notes {
		if n.NotebookId != nb.Id {
			continue
		}
		res.Notes = append(res.Notes, &dto.NotebookNoteSummary{
			Id:        n.Id,
			Title:     n.Title,
			CreatedAt: n.CreatedAt,
			UpdatedAt: n.UpdatedAt,
		})
	}
	return res
}
