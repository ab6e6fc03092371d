package services

import (
	"KinderShelf/models"
	"KinderShelf/repositories"
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type ParentService struct {
	ParentRepo repositories.ParentRepository
	Children   *ChildService
}

func NewParentService(parentRepo repositories.ParentRepository, children *ChildService) *ParentService {
	return &ParentService{ParentRepo: parentRepo, Children: children}
}

// ParentInput is the editable part of a guardian profile.
type ParentInput struct {
	Lang        string `json:"lang"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	DeviceToken string `json:"device_token"`
}

func (s *ParentService) ReadParent(firebaseUID string) (models.Parent, error) {
	parent, err := s.ParentRepo.FindByFirebaseUID(firebaseUID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Parent{}, ErrParentNotFound
	}
	return parent, err
}

func (s *ParentService) UpdateParent(firebaseUID string, input ParentInput) (models.Parent, error) {
	parent, err := s.ReadParent(firebaseUID)
	if err != nil {
		return models.Parent{}, err
	}

	if input.Lang != "" {
		parent.Lang = input.Lang
	}
	if input.Name != "" {
		parent.Name = input.Name
	}
	if input.Email != "" && input.Email != parent.Email {
		if other, err := s.ParentRepo.FindByEmail(input.Email); err == nil && other.FirebaseUID != parent.FirebaseUID {
			return models.Parent{}, fmt.Errorf("%w: email already in use", ErrForbidden)
		}
		parent.Email = input.Email
	}
	if input.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return models.Parent{}, err
		}
		parent.Password = string(hashedPassword)
	}
	if input.DeviceToken != "" {
		parent.DeviceToken = input.DeviceToken
	}

	if err := s.ParentRepo.Save(parent); err != nil {
		return models.Parent{}, err
	}
	return parent, nil
}

// DeleteParent deletes every child of the guardian before the account itself.
func (s *ParentService) DeleteParent(ctx context.Context, firebaseUID string) error {
	children, err := s.Children.ListChildren(firebaseUID)
	if err != nil {
		return err
	}
	for _, child := range children {
		if err := s.Children.DeleteChild(ctx, child.FirebaseUID); err != nil {
			return fmt.Errorf("delete child %s: %w", child.FirebaseUID, err)
		}
	}
	return s.ParentRepo.DeleteByFirebaseUID(firebaseUID)
}
