package repositories

import "KinderShelf/models"

type ParentRepository interface {
	FindByFirebaseUID(firebaseUID string) (models.Parent, error)
	FindByEmail(email string) (models.Parent, error)
	Save(parent models.Parent) error
	DeleteByFirebaseUID(firebaseUID string) error
}
