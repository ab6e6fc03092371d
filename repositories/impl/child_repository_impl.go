package impl

import (
	"KinderShelf/models"
	"KinderShelf/repositories"

	"gorm.io/gorm"
)

type ChildRepositoryImpl struct {
	DB *gorm.DB
}

func NewChildRepository(db *gorm.DB) repositories.ChildRepository {
	return &ChildRepositoryImpl{DB: db}
}

func (r *ChildRepositoryImpl) FindByFirebaseUID(firebaseUID string) (models.Child, error) {
	var child models.Child
	if err := r.DB.Where("firebase_uid = ?", firebaseUID).First(&child).Error; err != nil {
		return models.Child{}, err
	}
	return child, nil
}

func (r *ChildRepositoryImpl) FindByParent(parentFirebaseUID string) ([]models.Child, error) {
	var children []models.Child
	err := r.DB.Where("parent_firebase_uid = ?", parentFirebaseUID).
		Order("created_at ASC").
		Find(&children).Error
	return children, err
}

// Save returns the stored row so callers see the generated ID.
func (r *ChildRepositoryImpl) Save(child models.Child) (models.Child, error) {
	if err := r.DB.Save(&child).Error; err != nil {
		return models.Child{}, err
	}
	return child, nil
}

func (r *ChildRepositoryImpl) Delete(child models.Child) error {
	return r.DB.Delete(&child).Error
}
