package mocks

import (
	"KinderShelf/repositories"
	"KinderShelf/screentime"
	"context"

	"github.com/stretchr/testify/mock"
)

type ScreenTimeRepository struct {
	mock.Mock
}

func (m *ScreenTimeRepository) GetSettings(ctx context.Context, childID string) (screentime.PartialSettings, bool, error) {
	args := m.Called(ctx, childID)
	return args.Get(0).(screentime.PartialSettings), args.Bool(1), args.Error(2)
}

func (m *ScreenTimeRepository) SaveSettings(ctx context.Context, childID string, settings screentime.Settings) error {
	args := m.Called(ctx, childID, settings)
	return args.Error(0)
}

func (m *ScreenTimeRepository) DeleteSettings(ctx context.Context, childID string) error {
	args := m.Called(ctx, childID)
	return args.Error(0)
}

func (m *ScreenTimeRepository) GetUsage(ctx context.Context, childID, date string) (*screentime.Usage, error) {
	args := m.Called(ctx, childID, date)
	usage, _ := args.Get(0).(*screentime.Usage)
	return usage, args.Error(1)
}

func (m *ScreenTimeRepository) GetUsageRange(ctx context.Context, childID, from, to string) ([]screentime.Usage, error) {
	args := m.Called(ctx, childID, from, to)
	usages, _ := args.Get(0).([]screentime.Usage)
	return usages, args.Error(1)
}

func (m *ScreenTimeRepository) ListUsage(ctx context.Context, childID string) ([]screentime.Usage, error) {
	args := m.Called(ctx, childID)
	usages, _ := args.Get(0).([]screentime.Usage)
	return usages, args.Error(1)
}

func (m *ScreenTimeRepository) AddUsage(ctx context.Context, childID, date string, delta repositories.UsageDelta) (screentime.Usage, error) {
	args := m.Called(ctx, childID, date, delta)
	return args.Get(0).(screentime.Usage), args.Error(1)
}

func (m *ScreenTimeRepository) DeleteUsage(ctx context.Context, childID string) error {
	args := m.Called(ctx, childID)
	return args.Error(0)
}
