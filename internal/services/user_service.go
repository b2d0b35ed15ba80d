package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sarjithrm/quoraUpgradProject/internal/apperr"
	"github.com/sarjithrm/quoraUpgradProject/internal/auth"
	"github.com/sarjithrm/quoraUpgradProject/internal/database"
	"github.com/sarjithrm/quoraUpgradProject/internal/dto"
	"github.com/sarjithrm/quoraUpgradProject/internal/models"
)

// UserService owns the account lifecycle: signup, sign-in/out, profile
// lookup, and the admin-only delete.
type UserService struct {
	db            *database.DB
	sessions      *SessionService
	jwtSecret     string
	tokenLifetime time.Duration
}

func NewUserService(db *database.DB, sessions *SessionService, jwtSecret string, tokenLifetime time.Duration) *UserService {
	return &UserService{
		db:            db,
		sessions:      sessions,
		jwtSecret:     jwtSecret,
		tokenLifetime: tokenLifetime,
	}
}

// SignUp registers a new account. Username uniqueness is checked before
// email uniqueness; both checks are backed by unique indexes so two
// concurrent signups with the same username cannot both succeed. The role
// is always nonadmin; admin accounts are promoted out of band.
func (s *UserService) SignUp(ctx context.Context, req *dto.SignupUserRequest) (*models.User, error) {
	var exists int
	if err := s.db.GetContext(ctx, &exists, `SELECT COUNT(1) FROM users WHERE username = $1`, req.UserName); err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists > 0 {
		return nil, usernameTaken()
	}
	if err := s.db.GetContext(ctx, &exists, `SELECT COUNT(1) FROM users WHERE email = $1`, req.EmailAddress); err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists > 0 {
		return nil, emailRegistered()
	}

	salt, err := auth.GenerateSalt()
	if err != nil {
		return nil, err
	}

	user := &models.User{
		UUID:          uuid.New(),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Username:      req.UserName,
		Email:         req.EmailAddress,
		Password:      auth.HashPassword(req.Password, salt),
		Salt:          salt,
		Country:       req.Country,
		AboutMe:       req.AboutMe,
		Dob:           req.Dob,
		ContactNumber: req.ContactNumber,
		Role:          models.UserRoleNonAdmin,
	}

	query := `
		INSERT INTO users (uuid, firstname, lastname, username, email, password, salt, country, aboutme, dob, role, contactnumber)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
	err = s.db.QueryRowContext(ctx, query,
		user.UUID, user.FirstName, user.LastName, user.Username, user.Email,
		user.Password, user.Salt, user.Country, user.AboutMe, user.Dob,
		user.Role, user.ContactNumber,
	).Scan(&user.ID)
	if err != nil {
		return nil, mapSignUpConflict(err)
	}

	return user, nil
}

// Authenticate verifies the credentials and mints a fresh session. Each
// successful call issues a new token; sessions are never reused.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.UserAuth, *models.User, error) {
	var user models.User
	query := `SELECT ` + selectUserColumns + ` FROM users WHERE username = $1`
	if err := s.db.GetContext(ctx, &user, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, apperr.AuthenticationFailed(apperr.CodeUnknownUsername, "This username does not exist")
		}
		return nil, nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !auth.VerifyPassword(password, user.Salt, user.Password) {
		return nil, nil, apperr.AuthenticationFailed(apperr.CodeWrongPassword, "Password failed")
	}

	now := time.Now()
	userAuth := &models.UserAuth{
		UUID:      uuid.New(),
		UserID:    user.ID,
		LoginAt:   now,
		ExpiresAt: now.Add(s.tokenLifetime),
	}

	token, err := auth.GenerateToken(s.jwtSecret, userAuth.UUID, user.UUID, userAuth.LoginAt, userAuth.ExpiresAt)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	userAuth.AccessToken = token

	query = `
		INSERT INTO user_auth (uuid, user_id, access_token, login_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err = s.db.QueryRowContext(ctx, query,
		userAuth.UUID, userAuth.UserID, userAuth.AccessToken, userAuth.LoginAt, userAuth.ExpiresAt,
	).Scan(&userAuth.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create session: %w", err)
	}

	return userAuth, &user, nil
}

// SignOut stamps the session's logout time. The token only has to resolve
// to an existing session; an unknown token fails with the sign-out flavor
// of SGR-001. COALESCE keeps an already-stamped logout time, so the row
// is mutated at most once.
func (s *UserService) SignOut(ctx context.Context, accessToken string) (*models.User, error) {
	var userAuth models.UserAuth
	query := `SELECT id, uuid, user_id, access_token, login_at, expires_at, logout_at FROM user_auth WHERE access_token = $1`
	if err := s.db.GetContext(ctx, &userAuth, query, accessToken); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.SignOutRestricted(apperr.CodeSignOutRestricted, "User is not Signed in")
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if _, err := s.db.ExecContext(ctx,
		`UPDATE user_auth SET logout_at = COALESCE(logout_at, $1) WHERE id = $2`,
		time.Now(), userAuth.ID,
	); err != nil {
		return nil, fmt.Errorf("failed to sign out: %w", err)
	}

	var user models.User
	query = `SELECT ` + selectUserColumns + ` FROM users WHERE id = $1`
	if err := s.db.GetContext(ctx, &user, query, userAuth.UserID); err != nil {
		return nil, fmt.Errorf("failed to get session user: %w", err)
	}
	return &user, nil
}

// GetUserProfile returns the profile of the user with the given uuid to
// any signed-in caller.
func (s *UserService) GetUserProfile(ctx context.Context, accessToken string, userUUID string) (*models.User, error) {
	_, _, err := s.sessions.ValidateAccessToken(ctx, accessToken)
	if err != nil {
		return nil, signedOutMessage(err, "get user details")
	}

	user, err := s.getUserByUUID(ctx, userUUID, "User with entered uuid does not exist")
	if err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the target account. Only admins may call it; the
// target lookup runs before the role check so a missing target reports
// USR-001 even to non-admins.
func (s *UserService) DeleteUser(ctx context.Context, accessToken string, userUUID string) (*models.User, error) {
	_, acting, err := s.sessions.ValidateAccessToken(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	target, err := s.getUserByUUID(ctx, userUUID, "User with entered uuid to be deleted does not exist")
	if err != nil {
		return nil, err
	}

	if err := auth.Authorize(acting, target.ID, auth.AdminOnly, "Unauthorized Access, Entered user is not an admin"); err != nil {
		return nil, err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, target.ID); err != nil {
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}
	return target, nil
}

func (s *UserService) getUserByUUID(ctx context.Context, userUUID, notFoundMessage string) (*models.User, error) {
	var user models.User
	query := `SELECT ` + selectUserColumns + ` FROM users WHERE uuid = $1`
	if err := s.db.GetContext(ctx, &user, query, userUUID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound(apperr.CodeUserNotFound, notFoundMessage)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func usernameTaken() error {
	return apperr.SignUpRestricted(apperr.CodeUsernameTaken, "Try any other Username, this Username has already been taken")
}

func emailRegistered() error {
	return apperr.SignUpRestricted(apperr.CodeEmailRegistered, "This user has already been registered, try with any other emailId")
}

// mapSignUpConflict translates a unique-index violation raised by a
// concurrent signup into the same coded failure the pre-checks produce.
func mapSignUpConflict(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		switch pqErr.Constraint {
		case "users_username_key":
			return usernameTaken()
		case "users_email_key":
			return emailRegistered()
		}
	}
	return fmt.Errorf("failed to create user: %w", err)
}
