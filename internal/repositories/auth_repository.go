package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"delivery_backend/internal/models"

	"github.com/lib/pq" // For pq.Error
)

// AuthRepository defines the interface for authentication-related database operations.
type AuthRepository interface {
	CreateUser(executor SQLExecutor, user *models.User, hashedPassword string) (int64, error)
	FindUserByUsername(username string) (*models.User, string, error) // Returns User, HashedPassword, Error
	FindUserByID(userID int64) (*models.User, error)
	FindRoleByName(name string) (*models.Role, error)
	SaveRefreshToken(executor SQLExecutor, token *models.RefreshToken) error
	FindRefreshToken(tokenID string) (*models.RefreshToken, error)
	RevokeRefreshToken(executor SQLExecutor, tokenID string) error
}

type authRepository struct {
	db *sql.DB
}

// NewAuthRepository creates a new instance of AuthRepository.
func NewAuthRepository(db *sql.DB) AuthRepository {
	return &authRepository{db: db}
}

// CreateUser inserts a new user into the database.
// It expects an SQLExecutor which can be a *sql.DB or *sql.Tx.
func (r *authRepository) CreateUser(executor SQLExecutor, user *models.User, hashedPassword string) (int64, error) {
	query := `INSERT INTO users (username, password_hash, email, full_name, phone, role_id, is_active, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	          RETURNING id`

	currentTime := time.Now()

	var roleID sql.NullInt64
	if user.RoleID != nil {
		roleID = sql.NullInt64{Int64: *user.RoleID, Valid: true}
	}

	var userID int64
	err := executor.QueryRow(
		query,
		user.Username,
		hashedPassword,
		user.Email,
		user.FullName,
		user.Phone,
		roleID,
		true, // new users start active
		currentTime,
		currentTime,
	).Scan(&userID)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			if pqErr.Code.Name() == "unique_violation" {
				return 0, fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
			}
		}
		return 0, fmt.Errorf("%w: creating user: %v", ErrDatabaseError, err)
	}
	return userID, nil
}

const userSelect = `
	SELECT u.id, u.username, u.password_hash, u.email, u.full_name, u.phone, u.role_id, u.is_active, u.created_at, u.updated_at,
	       COALESCE(ro.name, '') as role_name
	FROM users u
	LEFT JOIN roles ro ON u.role_id = ro.id`

// scanUser reads one user row from the shared userSelect column list.
func scanUser(row *sql.Row) (*models.User, string, error) {
	user := &models.User{}
	var hashedPassword string
	var roleName sql.NullString
	var roleID sql.NullInt64

	err := row.Scan(
		&user.ID, &user.Username, &hashedPassword, &user.Email, &user.FullName, &user.Phone,
		&roleID, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
		&roleName,
	)
	if err != nil {
		return nil, "", err
	}

	if roleID.Valid {
		user.RoleID = &roleID.Int64
		if roleName.Valid {
			user.Role = &models.Role{ID: roleID.Int64, Name: roleName.String}
		}
	}
	return user, hashedPassword, nil
}

// FindUserByUsername retrieves a user by their username.
// It returns the user model, their hashed password, and an error if any.
func (r *authRepository) FindUserByUsername(username string) (*models.User, string, error) {
	user, hashedPassword, err := scanUser(r.db.QueryRow(userSelect+` WHERE u.username = $1`, username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", ErrNotFound
		}
		return nil, "", fmt.Errorf("%w: finding user by username %s: %v", ErrDatabaseError, username, err)
	}
	return user, hashedPassword, nil
}

// FindUserByID retrieves a user by their ID. The password hash is not populated.
func (r *authRepository) FindUserByID(userID int64) (*models.User, error) {
	user, _, err := scanUser(r.db.QueryRow(userSelect+` WHERE u.id = $1`, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: finding user by ID %d: %v", ErrDatabaseError, userID, err)
	}
	return user, nil
}

// FindRoleByName retrieves a role by its (case-insensitive) name.
func (r *authRepository) FindRoleByName(name string) (*models.Role, error) {
	role := &models.Role{}
	query := `SELECT id, name, description, created_at, updated_at FROM roles WHERE LOWER(name) = LOWER($1)`
	err := r.db.QueryRow(query, name).Scan(&role.ID, &role.Name, &role.Description, &role.CreatedAt, &role.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: finding role %s: %v", ErrDatabaseError, name, err)
	}
	return role, nil
}

// SaveRefreshToken persists a refresh token record.
func (r *authRepository) SaveRefreshToken(executor SQLExecutor, token *models.RefreshToken) error {
	query := `INSERT INTO refresh_tokens (token_id, user_id, expires_at, revoked, created_at)
	          VALUES ($1, $2, $3, $4, $5)`
	_, err := executor.Exec(query, token.TokenID, token.UserID, token.ExpiresAt, token.Revoked, time.Now())
	if err != nil {
		return fmt.Errorf("%w: saving refresh token: %v", ErrDatabaseError, err)
	}
	return nil
}

// FindRefreshToken retrieves a refresh token by its uuid identifier.
func (r *authRepository) FindRefreshToken(tokenID string) (*models.RefreshToken, error) {
	token := &models.RefreshToken{}
	query := `SELECT token_id, user_id, expires_at, revoked, created_at FROM refresh_tokens WHERE token_id = $1`
	err := r.db.QueryRow(query, tokenID).Scan(&token.TokenID, &token.UserID, &token.ExpiresAt, &token.Revoked, &token.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: finding refresh token: %v", ErrDatabaseError, err)
	}
	return token, nil
}

// RevokeRefreshToken marks a refresh token as revoked.
func (r *authRepository) RevokeRefreshToken(executor SQLExecutor, tokenID string) error {
	result, err := executor.Exec(`UPDATE refresh_tokens SET revoked = TRUE WHERE token_id = $1`, tokenID)
	if err != nil {
		return fmt.Errorf("%w: revoking refresh token: %v", ErrDatabaseError, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: revoking refresh token: %v", ErrDatabaseError, err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
