package mocks

import (
	"KinderShelf/models"

	"github.com/stretchr/testify/mock"
)

type ChildRepository struct {
	mock.Mock
}

func (m *ChildRepository) FindByFirebaseUID(firebaseUID string) (models.Child, error) {
	args := m.Called(firebaseUID)
	return args.Get(0).(models.Child), args.Error(1)
}

func (m *ChildRepository) FindByParent(parentFirebaseUID string) ([]models.Child, error) {
	args := m.Called(parentFirebaseUID)
	children, _ := args.Get(0).([]models.Child)
	return children, args.Error(1)
}

func (m *ChildRepository) Save(child models.Child) (models.Child, error) {
	args := m.Called(child)
	return args.Get(0).(models.Child), args.Error(1)
}

func (m *ChildRepository) Delete(child models.Child) error {
	args := m.Called(child)
	return args.Error(0)
}
