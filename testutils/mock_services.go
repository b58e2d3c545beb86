package testutils

import (
	"kard-tasks/kard/database"
	"kard-tasks/kard/models"
	"kard-tasks/kard/utils/token"

	"github.com/stretchr/testify/mock"
)

// MockActivityService mocks services.ActivityServiceInterface.
type MockActivityService struct {
	mock.Mock
}

func (m *MockActivityService) ListActivities(db *database.Database, userID int64) ([]models.Activity, error) {
	args := m.Called(db, userID)
	return args.Get(0).([]models.Activity), args.Error(1)
}

func (m *MockActivityService) GetActivityById(db *database.Database, userID, id int64) (models.Activity, error) {
	args := m.Called(db, userID, id)
	return args.Get(0).(models.Activity), args.Error(1)
}

func (m *MockActivityService) CreateActivity(db *database.Database, userID int64, input models.ActivityInput) (models.Activity, error) {
	args := m.Called(db, userID, input)
	return args.Get(0).(models.Activity), args.Error(1)
}

func (m *MockActivityService) UpdateActivity(db *database.Database, userID, id int64, input models.ActivityInput) (models.Activity, error) {
	args := m.Called(db, userID, id, input)
	return args.Get(0).(models.Activity), args.Error(1)
}

func (m *MockActivityService) ToggleCompletion(db *database.Database, userID, id int64) error {
	args := m.Called(db, userID, id)
	return args.Error(0)
}

func (m *MockActivityService) ToggleImportance(db *database.Database, userID, id int64) error {
	args := m.Called(db, userID, id)
	return args.Error(0)
}

func (m *MockActivityService) DeleteActivity(db *database.Database, userID, id int64) error {
	args := m.Called(db, userID, id)
	return args.Error(0)
}

// MockUserService mocks services.UserServiceInterface.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(db *database.Database, input models.RegisterInput) (models.User, error) {
	args := m.Called(db, input)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUserService) GetUserById(db *database.Database, id int64) (models.User, error) {
	args := m.Called(db, id)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUserService) DeleteUser(db *database.Database, id int64) error {
	args := m.Called(db, id)
	return args.Error(0)
}

// MockAuthService mocks services.AuthServiceInterface.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(db *database.Database, email, password string) (string, models.User, error) {
	args := m.Called(db, email, password)
	return args.String(0), args.Get(1).(models.User), args.Error(2)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*token.JWTClaims, error) {
	args := m.Called(tokenString)
	claims, _ := args.Get(0).(*token.JWTClaims)
	return claims, args.Error(1)
}

func (m *MockAuthService) HashPassword(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ComparePasswords(hashedPassword, password string) error {
	args := m.Called(hashedPassword, password)
	return args.Error(0)
}
