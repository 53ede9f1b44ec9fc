package services

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/comitanigiacomo/rings-closed-engine/internal/core/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Upsert(ctx context.Context, record *domain.ActivityRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (m *MockActivityRepository) UpsertMany(ctx context.Context, records []*domain.ActivityRecord) error {
	return m.Called(ctx, records).Error(0)
}

func (m *MockActivityRepository) GetByID(ctx context.Context, id string) (*domain.ActivityRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ActivityRecord), args.Error(1)
}

func (m *MockActivityRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.ActivityRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ActivityRecord), args.Error(1)
}

func (m *MockActivityRepository) ListByUserIDWithRange(ctx context.Context, userID string, from, to domain.DateComponents) ([]*domain.ActivityRecord, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ActivityRecord), args.Error(1)
}

func (m *MockActivityRepository) Delete(ctx context.Context, id string, userID string) error {
	return m.Called(ctx, id, userID).Error(0)
}

type MockSnapshotRepository struct {
	mock.Mock
}

func (m *MockSnapshotRepository) Upsert(ctx context.Context, snapshot *domain.StreakSnapshot) error {
	return m.Called(ctx, snapshot).Error(0)
}

func (m *MockSnapshotRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.StreakSnapshot, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.StreakSnapshot), args.Error(1)
}

func (m *MockSnapshotRepository) ListComputedBefore(ctx context.Context, day time.Time) ([]*domain.StreakSnapshot, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.StreakSnapshot), args.Error(1)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) GenerateToken(userID string) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}
