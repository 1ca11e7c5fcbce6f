package services

import (
	"errors"
	"fmt"
	"testing"

	"delivery_backend/internal/models"
	"delivery_backend/internal/repositories"
)

// stubAuthRepo supports registration flows; the profile re-fetch can be made
// to fail to exercise the fallback path.
type stubAuthRepo struct {
	nextID           int64
	failProfileFetch bool
	createdRoleID    *int64
}

func (r *stubAuthRepo) CreateUser(_ repositories.SQLExecutor, user *models.User, _ string) (int64, error) {
	r.createdRoleID = user.RoleID
	r.nextID++
	return r.nextID, nil
}
func (r *stubAuthRepo) FindUserByUsername(string) (*models.User, string, error) {
	return nil, "", repositories.ErrNotFound
}
func (r *stubAuthRepo) FindUserByID(userID int64) (*models.User, error) {
	if r.failProfileFetch {
		return nil, fmt.Errorf("%w: connection reset", repositories.ErrDatabaseError)
	}
	return &models.User{ID: userID, Username: "mina", IsActive: true}, nil
}
func (r *stubAuthRepo) FindRoleByName(name string) (*models.Role, error) {
	switch name {
	case models.RoleOwner:
		return &models.Role{ID: 2, Name: models.RoleOwner}, nil
	case models.RoleCustomer:
		return &models.Role{ID: 3, Name: models.RoleCustomer}, nil
	}
	return nil, repositories.ErrNotFound
}
func (r *stubAuthRepo) SaveRefreshToken(repositories.SQLExecutor, *models.RefreshToken) error {
	return nil
}
func (r *stubAuthRepo) FindRefreshToken(string) (*models.RefreshToken, error) {
	return nil, repositories.ErrNotFound
}
func (r *stubAuthRepo) RevokeRefreshToken(repositories.SQLExecutor, string) error {
	return nil
}

func registerRequest() RegisterUserRequest {
	return RegisterUserRequest{
		Username: "mina",
		Email:    "mina@example.com",
		Password: "correct-horse",
		FullName: "Mina Park",
	}
}

func TestRegisterUserSurvivesProfileFetchFailure(t *testing.T) {
	svc := NewAuthService(&stubAuthRepo{failProfileFetch: true}, nil)

	user, err := svc.RegisterUser(registerRequest())
	if err != nil {
		t.Fatalf("RegisterUser: %v (account was created, fetch failure must not fail the request)", err)
	}
	if user == nil || user.ID == 0 {
		t.Fatalf("user = %+v, want locally-built user with assigned ID", user)
	}
	if user.Username != "mina" {
		t.Errorf("Username = %q, want %q", user.Username, "mina")
	}
}

func TestRegisterUserRejectsAdminRole(t *testing.T) {
	svc := NewAuthService(&stubAuthRepo{}, nil)

	req := registerRequest()
	req.RoleName = models.RoleAdmin
	if _, err := svc.RegisterUser(req); !errors.Is(err, ErrRoleNotFound) {
		t.Errorf("err = %v, want ErrRoleNotFound", err)
	}
}

func TestRegisterUserDefaultsToCustomerRole(t *testing.T) {
	repo := &stubAuthRepo{}
	svc := NewAuthService(repo, nil)

	if _, err := svc.RegisterUser(registerRequest()); err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	if repo.createdRoleID == nil || *repo.createdRoleID != 3 {
		t.Errorf("created role ID = %v, want 3 (Customer)", repo.createdRoleID)
	}
}
