package user

import (
	"context"

	"github.com/rh-war/hr-console-backend-go/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

type userServiceImpl struct {
	userRepo user.UserRepository
}

func NewUserService(userRepo user.UserRepository) user.UserService {
	return &userServiceImpl{userRepo: userRepo}
}

func (s *userServiceImpl) CreateUser(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, err
	}

	created, err := s.userRepo.Create(ctx, user.User{
		Name:         req.Name,
		Login:        req.Login,
		PasswordHash: string(hash),
		AvatarURL:    req.AvatarURL,
		Role:         req.Role,
	})
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(created), nil
}

func (s *userServiceImpl) GetUser(ctx context.Context, id int) (user.UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(u), nil
}

func (s *userServiceImpl) ListUsers(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToResponse(u))
	}
	return responses, nil
}

func (s *userServiceImpl) UpdateUser(ctx context.Context, req user.UpdateUserRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	u, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Login != nil {
		u.Login = *req.Login
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.PasswordHash = string(hash)
	}
	if req.AvatarURL != nil {
		u.AvatarURL = *req.AvatarURL
	}
	if req.Role != nil {
		u.Role = *req.Role
	}
	return s.userRepo.Update(ctx, u)
}

func (s *userServiceImpl) DeleteUser(ctx context.Context, id int) error {
	return s.userRepo.Delete(ctx, id)
}

func (s *userServiceImpl) MenuSections(role user.Role) []string {
	return role.MenuSections()
}
