package service

import (
	"context"
	"time"

	"noteboard-be/internal/dto"
	"noteboard-be/internal/entity"
	"noteboard-be/internal/pkg/apperror"
	"noteboard-be/internal/repository/specification"
	"noteboard-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type INoteService interface {
	FindAll(ctx context.Context, page dto.PageQuery) ([]*dto.NoteResponse, int64, error)
	FindById(ctx context.Context, id uuid.UUID) (*dto.NoteResponse, error)
	Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Update(ctx context.Context, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type noteService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewNoteService(uowFactory unitofwork.RepositoryFactory) INoteService {
	return &noteService{
		uowFactory: uowFactory,
	}
}

func (c *noteService) FindAll(ctx context.Context, page dto.PageQuery) ([]*dto.NoteResponse, int64, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	total, err := uow.NoteRepository().Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	notes, err := uow.NoteRepository().FindAll(ctx, pageSpecs(page)...)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*dto.NoteResponse, 0, len(notes))
	for _, n := range notes {
		result = append(result, toNoteResponse(n))
	}
	return result, total, nil
}

func (c *noteService) FindById(ctx context.Context, id uuid.UUID) (*dto.NoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	note, err := findNote(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	return toNoteResponse(note), nil
}

func findNote(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.Note, error) {
	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperror.NotFound("Note", id)
	}
	return note, nil
}

func findNotebook(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.Notebook, error) {
	notebook, err := uow.NotebookRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if notebook == nil {
		return nil, apperror.NotFound("Notebook", id)
	}
	return notebook, nil
}

func (c *noteService) Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	title, err := required(req.Title, "Title is required")
	if err != nil {
		return nil, err
	}
	content, err := required(req.Content, "Content is required")
	if err != nil {
		return nil, err
	}
	if err := checkLength("Title", title, maxTitleLength); err != nil {
		return nil, err
	}
	if err := checkLength("Content", content, maxContentLength); err != nil {
		return nil, err
	}
	if req.Notebook == nil || req.Notebook.Id == nil {
		return nil, apperror.Validation("Notebook is required to create a note.")
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	notebook, err := findNotebook(ctx, uow, *req.Notebook.Id)
	if err != nil {
		return nil, err
	}

	note := &entity.Note{
		Id:         uuid.New(),
		Title:      title,
		Content:    content,
		NotebookId: notebook.Id,
		Tags:       make([]*entity.Tag, 0),
	}
	if err := uow.NoteRepository().Create(ctx, note); err != nil {
		return nil, err
	}

	return toNoteResponse(note), nil
}

// Update applies a partial update. The tag set is left alone; it only changes
// through AddTagToNote and RemoveTagFromNote.
func (c *noteService) Update(ctx context.Context, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	note, err := findNote(ctx, uow, req.Id)
	if err != nil {
		return nil, err
	}

	if title, ok := patchValue(req.Title); ok {
		if err := checkLength("Title", title, maxTitleLength); err != nil {
			return nil, err
		}
		note.Title = title
	}
	if content, ok := patchValue(req.Content); ok {
		if err := checkLength("Content", content, maxContentLength); err != nil {
			return nil, err
		}
		note.Content = content
	}
	if req.Notebook != nil && req.Notebook.Id != nil {
		notebook, err := findNotebook(ctx, uow, *req.Notebook.Id)
		if err != nil {
			return nil, err
		}
		note.NotebookId = notebook.Id
	}

	note.UpdatedAt = time.Now()
	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, err
	}

	return toNoteResponse(note), nil
}

func (c *noteService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	note, err := findNote(ctx, uow, id)
	if err != nil {
		return err
	}
	return uow.NoteRepository().Delete(ctx, note.Id)
}
