package service

import (
	"context"
	"fmt"
	"time"

	"noteboard-be/internal/dto"
	"noteboard-be/internal/entity"
	"noteboard-be/internal/pkg/apperror"
	"noteboard-be/internal/repository/contract"
	"noteboard-be/internal/repository/specification"
	"noteboard-be/internal/repository/unitofwork"
	"noteboard-be/pkg/events"

	"github.com/google/uuid"
)

type ITagService interface {
	FindAll(ctx context.Context, page dto.PageQuery) ([]*dto.TagResponse, int64, error)
	FindById(ctx context.Context, id uuid.UUID) (*dto.TagResponse, error)
	Create(ctx context.Context, req *dto.CreateTagRequest) (*dto.TagResponse, error)
	Update(ctx context.Context, req *dto.UpdateTagRequest) (*dto.TagResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error

	AddTagToNote(ctx context.Context, noteId, tagId uuid.UUID) (*dto.NoteResponse, error)
	RemoveTagFromNote(ctx context.Context, noteId, tagId uuid.UUID) (*dto.NoteResponse, error)
}

type tagService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
}

func NewTagService(uowFactory unitofwork.RepositoryFactory, publisher IPublisherService) ITagService {
	return &tagService{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

func duplicateTag(name string) error {
	return apperror.Duplicate(fmt.Sprintf("Tag with name '%s' already exists", name))
}

func (s *tagService) FindAll(ctx context.Context, page dto.PageQuery) ([]*dto.TagResponse, int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	total, err := uow.TagRepository().Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	tags, err := uow.TagRepository().FindAll(ctx, pageSpecs(page)...)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*dto.TagResponse, 0, len(tags))
	for _, t := range tags {
		result = append(result, toTagResponse(t))
	}
	return result, total, nil
}

func (s *tagService) FindById(ctx context.Context, id uuid.UUID) (*dto.TagResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	tag, err := findTag(ctx, uow.TagRepository(), id)
	if err != nil {
		return nil, err
	}
	return toTagResponse(tag), nil
}

func findTag(ctx context.Context, repo contract.TagRepository, id uuid.UUID) (*entity.Tag, error) {
	tag, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, apperror.NotFound("Tag", id)
	}
	return tag, nil
}

func (s *tagService) Create(ctx context.Context, req *dto.CreateTagRequest) (*dto.TagResponse, error) {
	name, err := required(req.Name, "Tag name is required")
	if err != nil {
		return nil, err
	}
	if err := checkLength("Tag name", name, maxTagNameLength); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.TagRepository().FindOne(ctx, specification.ByName{Name: name})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, duplicateTag(name)
	}

	tag := &entity.Tag{Id: uuid.New(), Name: name}
	if err := uow.TagRepository().Create(ctx, tag); err != nil {
		return nil, err
	}
	return toTagResponse(tag), nil
}

func (s *tagService) Update(ctx context.Context, req *dto.UpdateTagRequest) (*dto.TagResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.TagRepository()

	tag, err := findTag(ctx, repo, req.Id)
	if err != nil {
		return nil, err
	}

	if name, ok := patchValue(req.Name); ok {
		if err := checkLength("Tag name", name, maxTagNameLength); err != nil {
			return nil, err
		}
		existing, err := repo.FindOne(ctx, specification.ByName{Name: name})
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.Id != tag.Id {
			return nil, duplicateTag(name)
		}
		tag.Name = name
	}

	if err := repo.Update(ctx, tag); err != nil {
		return nil, err
	}
	return toTagResponse(tag), nil
}

// Delete removes the tag and detaches it from every note.
func (s *tagService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	tag, err := findTag(ctx, uow.TagRepository(), id)
	if err != nil {
		return err
	}
	return uow.TagRepository().Delete(ctx, tag.Id)
}

// AddTagToNote is idempotent: adding a tag the note already carries changes nothing.
func (s *tagService) AddTagToNote(ctx context.Context, noteId, tagId uuid.UUID) (*dto.NoteResponse, error) {
	return s.changeMembership(ctx, noteId, tagId, events.NoteTagged, func(note *entity.Note, tag *entity.Tag) bool {
		return note.AddTag(tag)
	})
}

// RemoveTagFromNote succeeds whether or not the note carried the tag.
func (s *tagService) RemoveTagFromNote(ctx context.Context, noteId, tagId uuid.UUID) (*dto.NoteResponse, error) {
	return s.changeMembership(ctx, noteId, tagId, events.NoteUntagged, func(note *entity.Note, tag *entity.Tag) bool {
		return note.RemoveTag(tag.Id)
	})
}

// changeMembership loads both sides, applies mutate and persists the note
// only when its tag set actually changed.
func (s *tagService) changeMembership(
	ctx context.Context,
	noteId, tagId uuid.UUID,
	eventType string,
	mutate func(note *entity.Note, tag *entity.Tag) bool,
) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := findNote(ctx, uow, noteId)
	if err != nil {
		return nil, err
	}
	tag, err := findTag(ctx, uow.TagRepository(), tagId)
	if err != nil {
		return nil, err
	}

	if !mutate(note, tag) {
		return toNoteResponse(note), nil
	}
	note.UpdatedAt = time.Now()

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, err
	}
	if err := uow.NoteRepository().ReplaceTags(ctx, note); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, events.New(eventType, map[string]interface{}{
		"note_id":  note.Id.String(),
		"tag_id":   tag.Id.String(),
		"tag_name": tag.Name,
	}))

	return toNoteResponse(note), nil
}
