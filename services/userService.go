package services

import (
	"lms/apperrors"
	"lms/models"
	"lms/repository"
)

type UpdateProfileCommand struct {
	FirstName      *string
	LastName       *string
	Phone          *string
	ProfilePicture *string
}

// UserService covers profile reads/updates and admin activation toggles.
type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) GetProfile(userID uint) (*models.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NotFound("User not found!")
	}
	return user, nil
}

func (s *UserService) UpdateProfile(userID uint, cmd UpdateProfileCommand) (*models.User, error) {
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	user.UpdateProfile(cmd.FirstName, cmd.LastName, cmd.Phone, cmd.ProfilePicture)

	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) ActivateUser(userID uint) (*models.User, error) {
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	user.Activate()

	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) DeactivateUser(userID uint) (*models.User, error) {
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	user.Deactivate()

	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
