package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/fittrack/backend/internal/models"
	"github.com/pageza/fittrack/backend/internal/service"
	"github.com/pageza/fittrack/backend/internal/types"
)

// MockAuthService is a mock implementation of service.IAuthService
type MockAuthService struct {
	mock.Mock
}

var _ service.IAuthService = (*MockAuthService)(nil)

func (m *MockAuthService) VerifyGatewayKey(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func (m *MockAuthService) GenerateToken(userID int64, username string) (string, error) {
	args := m.Called(userID, username)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ValidateToken(token string) (*types.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.TokenClaims), args.Error(1)
}

// MockProfileService is a mock implementation of service.IProfileService
type MockProfileService struct {
	mock.Mock
}

var _ service.IProfileService = (*MockProfileService)(nil)

func (m *MockProfileService) Get(ctx context.Context, userID int64) (*models.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileService) Upsert(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileService) SubmitProfile(ctx context.Context, userID int64, req *types.UpdateProfileRequest) (*types.ProfileResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ProfileResponse), args.Error(1)
}

func (m *MockProfileService) GetProfileHistory(ctx context.Context, userID int64) ([]*types.ProfileHistory, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.ProfileHistory), args.Error(1)
}

// MockActivityService is a mock implementation of service.IActivityService
type MockActivityService struct {
	mock.Mock
}

var _ service.IActivityService = (*MockActivityService)(nil)

func (m *MockActivityService) LogWater(ctx context.Context, userID int64, amount float64) (*types.WaterLogResponse, error) {
	args := m.Called(ctx, userID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.WaterLogResponse), args.Error(1)
}

func (m *MockActivityService) LogFood(ctx context.Context, userID int64, req *types.LogFoodRequest) (*types.FoodLogResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.FoodLogResponse), args.Error(1)
}

func (m *MockActivityService) LogWorkout(ctx context.Context, userID int64, req *types.LogWorkoutRequest) (*types.WorkoutLogResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.WorkoutLogResponse), args.Error(1)
}

func (m *MockActivityService) SearchFood(ctx context.Context, userID int64, query string) (*types.FoodSearchSession, error) {
	args := m.Called(ctx, userID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.FoodSearchSession), args.Error(1)
}

// MockProgressService is a mock implementation of service.IProgressService
type MockProgressService struct {
	mock.Mock
}

var _ service.IProgressService = (*MockProgressService)(nil)

func (m *MockProgressService) Today(ctx context.Context, userID int64) (*types.ProgressReport, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ProgressReport), args.Error(1)
}

func (m *MockProgressService) Weekly(ctx context.Context, userID int64) (*types.WeeklyReport, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.WeeklyReport), args.Error(1)
}

func (m *MockProgressService) Recommendations(ctx context.Context, userID int64) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockProgressService) ExportWeekly(ctx context.Context, userID int64) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}
