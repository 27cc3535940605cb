package service

import (
	"context"
	"strings"

	"noteboard-be/internal/dto"
	"noteboard-be/internal/entity"
	"noteboard-be/internal/pkg/apperror"
	"noteboard-be/internal/pkg/security"
	"noteboard-be/internal/repository/contract"
	"noteboard-be/internal/repository/specification"
	"noteboard-be/internal/repository/unitofwork"
	"noteboard-be/pkg/events"

	"github.com/google/uuid"
)

type IUserService interface {
	FindAll(ctx context.Context, page dto.PageQuery) ([]*dto.UserResponse, int64, error)
	FindById(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
	Create(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Update(ctx context.Context, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	hasher     security.PasswordHasher
	publisher  IPublisherService
}

func NewUserService(
	uowFactory unitofwork.RepositoryFactory,
	hasher security.PasswordHasher,
	publisher IPublisherService,
) IUserService {
	return &userService{
		uowFactory: uowFactory,
		hasher:     hasher,
		publisher:  publisher,
	}
}

func (s *userService) FindAll(ctx context.Context, page dto.PageQuery) ([]*dto.UserResponse, int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	total, err := uow.UserRepository().Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	users, err := uow.UserRepository().FindAll(ctx, pageSpecs(page)...)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, toUserResponse(u))
	}
	return result, total, nil
}

func (s *userService) FindById(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := s.mustFind(ctx, uow.UserRepository(), id)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func (s *userService) mustFind(ctx context.Context, repo contract.UserRepository, id uuid.UUID) (*entity.User, error) {
	user, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User", id)
	}
	return user, nil
}

// usernameTaken reports whether another user than self already holds username.
func (s *userService) usernameTaken(ctx context.Context, repo contract.UserRepository, username string, self uuid.UUID) (bool, error) {
	existing, err := repo.FindOne(ctx, specification.ByUsername{Username: username})
	if err != nil {
		return false, err
	}
	return existing != nil && existing.Id != self, nil
}

func (s *userService) Create(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	username, err := required(req.Username, "Username is required.")
	if err != nil {
		return nil, err
	}
	password, err := required(req.Password, "Password is required.")
	if err != nil {
		return nil, err
	}
	role := security.DefaultRole(strings.TrimSpace(req.Role))
	if err := checkLength("Username", username, maxUsernameLength); err != nil {
		return nil, err
	}
	if err := checkLength("Role", role, maxRoleLength); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	taken, err := s.usernameTaken(ctx, uow.UserRepository(), username, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperror.Duplicate("Username already exists.")
	}

	hash, err := hashPassword(s.hasher, password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Id:           uuid.New(),
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, events.New(events.UserRegistered, map[string]interface{}{
		"user_id":  user.Id.String(),
		"username": user.Username,
		"role":     user.Role,
	}))

	return toUserResponse(user), nil
}

func (s *userService) Update(ctx context.Context, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.UserRepository()

	user, err := s.mustFind(ctx, repo, req.Id)
	if err != nil {
		return nil, err
	}

	changed := make([]string, 0, 3)

	if username, ok := patchValue(req.Username); ok {
		if err := checkLength("Username", username, maxUsernameLength); err != nil {
			return nil, err
		}
		taken, err := s.usernameTaken(ctx, repo, username, user.Id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperror.Duplicate("Username already exists.")
		}
		user.Username = username
		changed = append(changed, "username")
	}

	if password, ok := patchValue(req.Password); ok {
		hash, err := hashPassword(s.hasher, password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
		changed = append(changed, "password")
	}

	if role, ok := patchValue(req.Role); ok {
		if err := checkLength("Role", role, maxRoleLength); err != nil {
			return nil, err
		}
		user.Role = role
		changed = append(changed, "role")
	}

	if err := repo.Update(ctx, user); err != nil {
		return nil, err
	}

	if len(changed) > 0 {
		s.publisher.Publish(ctx, events.New(events.UserUpdated, map[string]interface{}{
			"user_id": user.Id.String(),
			"fields":  changed,
		}))
	}

	return toUserResponse(user), nil
}

// Delete removes the user together with its notebooks and their notes.
func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := s.mustFind(ctx, uow.UserRepository(), id)
	if err != nil {
		return err
	}

	if err := uow.UserRepository().Delete(ctx, user.Id); err != nil {
		return err
	}

	s.publisher.Publish(ctx, events.New(events.UserDeleted, map[string]interface{}{
		"user_id":  user.Id.String(),
		"username": user.Username,
	}))
	return nil
}
