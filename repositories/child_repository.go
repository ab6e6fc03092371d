package repositories

import "KinderShelf/models"

type ChildRepository interface {
	FindByFirebaseUID(firebaseUID string) (models.Child, error)
	FindByParent(parentFirebaseUID string) ([]models.Child, error)
	Save(child models.Child) (models.Child, error)
	Delete(child models.Child) error
}
