package services

import (
	"KinderShelf/models"
	"KinderShelf/repositories"
	"KinderShelf/screentime"
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"
)

type ChildService struct {
	ChildRepo      repositories.ChildRepository
	ParentRepo     repositories.ParentRepository
	ScreenTimeRepo repositories.ScreenTimeRepository
}

func NewChildService(childRepo repositories.ChildRepository, parentRepo repositories.ParentRepository, screenTimeRepo repositories.ScreenTimeRepository) *ChildService {
	return &ChildService{ChildRepo: childRepo, ParentRepo: parentRepo, ScreenTimeRepo: screenTimeRepo}
}

// ChildInput is the editable part of a child profile.
type ChildInput struct {
	FirebaseUID string `json:"firebase_uid"`
	Name        string `json:"name"`
	Lang        string `json:"lang"`
	Age         int    `json:"age"`
	Avatar      string `json:"avatar"`
	DeviceToken string `json:"device_token"`
}

func (s *ChildService) ReadChild(firebaseUID string) (models.Child, error) {
	child, err := s.ChildRepo.FindByFirebaseUID(firebaseUID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Child{}, ErrChildNotFound
	}
	return child, err
}

func (s *ChildService) findParent(firebaseUID string) (models.Parent, error) {
	parent, err := s.ParentRepo.FindByFirebaseUID(firebaseUID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Parent{}, ErrParentNotFound
	}
	return parent, err
}

// ProvisionChild creates a child under a guardian and stores the default
// screen-time settings for it.
func (s *ChildService) ProvisionChild(ctx context.Context, parentFirebaseUID string, input ChildInput) (models.Child, error) {
	parent, err := s.findParent(parentFirebaseUID)
	if err != nil {
		return models.Child{}, err
	}
	if !parent.IsGuardian() {
		return models.Child{}, fmt.Errorf("%w: %s accounts cannot add children", ErrForbidden, parent.Role)
	}
	if input.FirebaseUID == "" || input.Name == "" {
		return models.Child{}, fmt.Errorf("%w: firebase_uid and name are required", screentime.ErrInvalidInput)
	}

	lang := input.Lang
	if lang == "" {
		lang = parent.Lang
	}

	child, err := s.ChildRepo.Save(models.Child{
		FirebaseUID:       input.FirebaseUID,
		ParentFirebaseUID: parent.FirebaseUID,
		Name:              input.Name,
		Lang:              lang,
		Age:               input.Age,
		Avatar:            input.Avatar,
		DeviceToken:       input.DeviceToken,
	})
	if err != nil {
		return models.Child{}, err
	}

	if err := s.ScreenTimeRepo.SaveSettings(ctx, child.FirebaseUID, screentime.Defaults()); err != nil {
		// Remove the row so a retry with the same firebase_uid can succeed.
		if delErr := s.ChildRepo.Delete(child); delErr != nil {
			log.Printf("[Children] Failed to roll back child %s: %v", child.FirebaseUID, delErr)
		}
		return models.Child{}, err
	}

	log.Printf("[Children] Provisioned child %s for guardian %s", child.FirebaseUID, parent.FirebaseUID)
	return child, nil
}

func (s *ChildService) ListChildren(parentFirebaseUID string) ([]models.Child, error) {
	if _, err := s.findParent(parentFirebaseUID); err != nil {
		return nil, err
	}
	return s.ChildRepo.FindByParent(parentFirebaseUID)
}

// UpdateChild changes only the fields the input sets.
func (s *ChildService) UpdateChild(firebaseUID string, input ChildInput) (models.Child, error) {
	child, err := s.ReadChild(firebaseUID)
	if err != nil {
		return models.Child{}, err
	}

	if input.Name != "" {
		child.Name = input.Name
	}
	if input.Lang != "" {
		child.Lang = input.Lang
	}
	if input.Age > 0 {
		child.Age = input.Age
	}
	if input.Avatar != "" {
		child.Avatar = input.Avatar
	}
	if input.DeviceToken != "" {
		child.DeviceToken = input.DeviceToken
	}

	return s.ChildRepo.Save(child)
}

// DeleteChild removes the child's screen-time records and then the account.
func (s *ChildService) DeleteChild(ctx context.Context, firebaseUID string) error {
	child, err := s.ReadChild(firebaseUID)
	if err != nil {
		return err
	}

	if err := s.ScreenTimeRepo.DeleteSettings(ctx, child.FirebaseUID); err != nil {
		return err
	}
	if err := s.ScreenTimeRepo.DeleteUsage(ctx, child.FirebaseUID); err != nil {
		return err
	}
	return s.ChildRepo.Delete(child)
}

// Authorize checks that the requester may act on the child: the child
// itself, or the guardian the child belongs to.
func (s *ChildService) Authorize(requesterUID, requesterType, childFirebaseUID string) (models.Child, error) {
	child, err := s.ReadChild(childFirebaseUID)
	if err != nil {
		return models.Child{}, err
	}

	switch requesterType {
	case UserTypeChild:
		if requesterUID == child.FirebaseUID {
			return child, nil
		}
	case UserTypeParent, UserTypeEducator:
		if requesterUID == child.ParentFirebaseUID {
			return child, nil
		}
	}
	return models.Child{}, fmt.Errorf("%w: %s cannot access child %s", ErrForbidden, requesterUID, childFirebaseUID)
}

// AuthorizeGuardian is Authorize restricted to guardians.
func (s *ChildService) AuthorizeGuardian(requesterUID, requesterType, childFirebaseUID string) (models.Child, error) {
	if requesterType != UserTypeParent && requesterType != UserTypeEducator {
		return models.Child{}, fmt.Errorf("%w: only parents and educators can do this", ErrForbidden)
	}
	return s.Authorize(requesterUID, requesterType, childFirebaseUID)
}
