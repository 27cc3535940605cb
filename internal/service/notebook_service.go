package service

import (
	"context"
	"strings"

	"noteboard-be/internal/dto"
	"noteboard-be/internal/entity"
	"noteboard-be/internal/pkg/apperror"
	"noteboard-be/internal/repository/specification"
	"noteboard-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const noAuthenticatedUser = "No authenticated user found. Please log in first."

type INotebookService interface {
	FindAll(ctx context.Context, page dto.PageQuery) ([]*dto.NotebookResponse, int64, error)
	FindAllForCurrentUser(ctx context.Context, username string) ([]*dto.NotebookResponse, error)
	FindById(ctx context.Context, id uuid.UUID) (*dto.NotebookResponse, error)
	Create(ctx context.Context, username string, req *dto.CreateNotebookRequest) (*dto.NotebookResponse, error)
	Update(ctx context.Context, req *dto.UpdateNotebookRequest) (*dto.NotebookResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type notebookService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewNotebookService(uowFactory unitofwork.RepositoryFactory) INotebookService {
	return &notebookService{
		uowFactory: uowFactory,
	}
}

// withNotes loads the notes of all given notebooks in one query.
func (c *notebookService) withNotes(ctx context.Context, uow unitofwork.UnitOfWork, notebooks []*entity.Notebook) ([]*dto.NotebookResponse, error) {
	result := make([]*dto.NotebookResponse, 0, len(notebooks))
	if len(notebooks) == 0 {
		return result, nil
	}

	ids := make([]uuid.UUID, 0, len(notebooks))
	for _, nb := range notebooks {
		ids = append(ids, nb.Id)
	}

	notes, err := uow.NoteRepository().FindAll(ctx, specification.ByNotebookIDs{NotebookIDs: ids})
	if err != nil {
		return nil, err
	}

	for _, nb := range notebooks {
		result = append(result, toNotebookResponse(nb, notes))
	}
	return result, nil
}

func (c *notebookService) FindAll(ctx context.Context, page dto.PageQuery) ([]*dto.NotebookResponse, int64, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	total, err := uow.NotebookRepository().Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	notebooks, err := uow.NotebookRepository().FindAll(ctx, pageSpecs(page)...)
	if err != nil {
		return nil, 0, err
	}
	result, err := c.withNotes(ctx, uow, notebooks)
	if err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

// FindAllForCurrentUser lists the notebooks owned by username. A username with
// no matching user yields an empty list.
func (c *notebookService) FindAllForCurrentUser(ctx context.Context, username string) ([]*dto.NotebookResponse, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, apperror.InvalidInput(noAuthenticatedUser)
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: username})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return make([]*dto.NotebookResponse, 0), nil
	}

	notebooks, err := uow.NotebookRepository().FindAll(ctx, specification.UserOwnedBy{UserID: user.Id})
	if err != nil {
		return nil, err
	}
	return c.withNotes(ctx, uow, notebooks)
}

func (c *notebookService) FindById(ctx context.Context, id uuid.UUID) (*dto.NotebookResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	notebook, err := c.mustFind(ctx, uow, id)
	if err != nil {
		return nil, err
	}

	res, err := c.withNotes(ctx, uow, []*entity.Notebook{notebook})
	if err != nil {
		return nil, err
	}
	return res[0], nil
}

func (c *notebookService) mustFind(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.Notebook, error) {
	notebook, err := uow.NotebookRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if notebook == nil {
		return nil, apperror.NotFound("Notebook", id)
	}
	return notebook, nil
}

func (c *notebookService) Create(ctx context.Context, username string, req *dto.CreateNotebookRequest) (*dto.NotebookResponse, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, apperror.InvalidInput(noAuthenticatedUser)
	}

	title, err := required(req.Title, "Title is required")
	if err != nil {
		return nil, err
	}
	description, err := required(req.Description, "Description is required")
	if err != nil {
		return nil, err
	}
	if err := checkLength("Title", title, maxTitleLength); err != nil {
		return nil, err
	}
	if err := checkLength("Description", description, maxDescriptionLength); err != nil {
		return nil, err
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	owner, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: username})
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, apperror.NotFoundf("Authenticated user '%s' not found", username)
	}

	notebook := &entity.Notebook{
		Id:          uuid.New(),
		Title:       title,
		Description: description,
		UserId:      owner.Id,
	}
	if err := uow.NotebookRepository().Create(ctx, notebook); err != nil {
		return nil, err
	}

	return toNotebookResponse(notebook, nil), nil
}

func (c *notebookService) Update(ctx context.Context, req *dto.UpdateNotebookRequest) (*dto.NotebookResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	notebook, err := c.mustFind(ctx, uow, req.Id)
	if err != nil {
		return nil, err
	}

	if title, ok := patchValue(req.Title); ok {
		if err := checkLength("Title", title, maxTitleLength); err != nil {
			return nil, err
		}
		notebook.Title = title
	}
	if description, ok := patchValue(req.Description); ok {
		if err := checkLength("Description", description, maxDescriptionLength); err != nil {
			return nil, err
		}
		notebook.Description = description
	}

	if err := uow.NotebookRepository().Update(ctx, notebook); err != nil {
		return nil, err
	}

	res, err := c.withNotes(ctx, uow, []*entity.Notebook{notebook})
	if err != nil {
		return nil, err
	}
	return res[0], nil
}

// Delete removes the notebook and, by cascade, its notes.
func (c *notebookService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	notebook, err := c.mustFind(ctx, uow, id)
	if err != nil {
		return err
	}
	return uow.NotebookRepository().Delete(ctx, notebook.Id)
}
