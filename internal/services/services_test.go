package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/sarjithrm/quoraUpgradProject/internal/auth"
	"github.com/sarjithrm/quoraUpgradProject/internal/database"
)

const testSecret = "unit-test-secret"

var (
	userAuthColumns = []string{"id", "uuid", "user_id", "access_token", "login_at", "expires_at", "logout_at"}
	userColumns     = []string{"id", "uuid", "firstname", "lastname", "username", "email", "password", "salt", "country", "aboutme", "dob", "role", "contactnumber"}
	questionColumns = []string{"id", "uuid", "content", "created_at", "user_id"}
	answerColumns   = []string{"id", "uuid", "ans", "created_at", "user_id", "question_id"}
)

func newMockDB(t *testing.T) (*database.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &database.DB{DB: sqlx.NewDb(db, "sqlmock")}, mock
}

// mintToken produces a token that passes the signature pre-check; the
// matching user_auth row comes from the mock.
func mintToken(t *testing.T) string {
	t.Helper()
	now := time.Now()
	token, err := auth.GenerateToken(testSecret, uuid.New(), uuid.New(), now, now.Add(6*time.Hour))
	require.NoError(t, err)
	return token
}

// liveAuthRow is a user_auth row for a session that is neither signed
// out nor expired.
func liveAuthRow(token string, userID int64) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(userAuthColumns).
		AddRow(int64(7), uuid.NewString(), userID, token, now.Add(-time.Hour), now.Add(5*time.Hour), nil)
}

func userRow(id int64, username string, role string) *sqlmock.Rows {
	return userRowWithPassword(id, username, role, "salt", "stored-hash")
}

func userRowWithPassword(id int64, username, role, salt, password string) *sqlmock.Rows {
	return sqlmock.NewRows(userColumns).
		AddRow(id, uuid.NewString(), "First", "Last", username, username+"@example.com",
			password, salt, "IN", "about", "01-01-1990", role, "1234567890")
}

func expectSession(mock sqlmock.Sqlmock, token string, userID int64, username, role string) {
	mock.ExpectQuery("FROM user_auth WHERE access_token").
		WithArgs(token).
		WillReturnRows(liveAuthRow(token, userID))
	mock.ExpectQuery("FROM users WHERE id").
		WithArgs(userID).
		WillReturnRows(userRow(userID, username, role))
}
