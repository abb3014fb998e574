package service

import (
	"errors"

	"skillforge_backend/internal/model"
	"skillforge_backend/internal/repository"
	"skillforge_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

// ProfileUpdate is the set of fields a user may change about themselves.
// Email and role are deliberately absent.
type ProfileUpdate struct {
	Name      *string `json:"name"`
	DOB       *string `json:"dob"`
	Education *string `json:"education"`
	School    *string `json:"school"`
	State     *string `json:"state"`
	Contact   *string `json:"contact"`
}

func (s *UserService) GetByID(id string) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	return user, err
}

func (s *UserService) List(page, pageSize int) ([]model.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.UserRepo.List(page, pageSize)
}

func (s *UserService) ListByRole(role model.UserRole) ([]model.User, error) {
	return s.UserRepo.FindByRole(role)
}

func (s *UserService) UpdateProfile(userID string, update ProfileUpdate) (*model.User, error) {
	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.DOB != nil {
		user.DOB = *update.DOB
	}
	if update.Education != nil {
		user.Education = *update.Education
	}
	if update.School != nil {
		user.School = *update.School
	}
	if update.State != nil {
		user.State = *update.State
	}
	if update.Contact != nil {
		user.Contact = *update.Contact
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) ResetPassword(userID, newPassword string) error {
	user, err := s.GetByID(userID)
	if err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)
	return s.UserRepo.Update(user)
}

func (s *UserService) SetDisabled(userID string, disabled bool) error {
	user, err := s.GetByID(userID)
	if err != nil {
		return err
	}
	user.Disabled = disabled
	return s.UserRepo.Update(user)
}

func (s *UserService) Delete(userID string) error {
	if _, err := s.GetByID(userID); err != nil {
		return err
	}
	return s.UserRepo.Delete(userID)
}
