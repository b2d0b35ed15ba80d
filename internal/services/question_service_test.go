package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarjithrm/quoraUpgradProject/internal/apperr"
)

func questionRow(id int64, questionUUID string, content string, ownerID int64) *sqlmock.Rows {
	return sqlmock.NewRows(questionColumns).
		AddRow(id, questionUUID, content, time.Now(), ownerID)
}

func TestCreateQuestionNotSignedIn(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewQuestionService(db, NewSessionService(db, testSecret))

	_, err := svc.CreateQuestion(context.Background(), "", "Why is the sky blue?")
	assert.True(t, apperr.IsCode(err, apperr.CodeNotSignedIn))
}

func TestCreateQuestionSignedOutMessage(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewQuestionService(db, NewSessionService(db, testSecret))
	token := mintToken(t)

	now := time.Now()
	mock.ExpectQuery("FROM user_auth WHERE access_token").
		WithArgs(token).
		WillReturnRows(sqlmock.NewRows(userAuthColumns).
			AddRow(int64(7), uuid.NewString(), int64(1), token,
				now.Add(-time.Hour), now.Add(5*time.Hour), now.Add(-time.Minute)))

	_, err := svc.CreateQuestion(context.Background(), token, "Why is the sky blue?")
	assert.EqualError(t, err, "ATHR-002: User is signed out.Sign in first to post a question")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateQuestion(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewQuestionService(db, NewSessionService(db, testSecret))
	token := mintToken(t)

	expectSession(mock, token, 1, "alice", "nonadmin")
	mock.ExpectQuery("INSERT INTO question").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))

	question, err := svc.CreateQuestion(context.Background(), token, "Why is the sky blue?")
	require.NoError(t, err)
	assert.Equal(t, int64(10), question.ID)
	assert.Equal(t, int64(1), question.UserID)
	assert.NotEqual(t, uuid.Nil, question.UUID)
	assert.WithinDuration(t, time.Now(), question.CreatedAt, time.Minute)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllQuestions(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewQuestionService(db, NewSessionService(db, testSecret))
	token := mintToken(t)

	expectSession(mock, token, 1, "alice", "nonadmin")
	mock.ExpectQuery("FROM question ORDER BY id").
		WillReturnRows(questionRow(10, uuid.NewString(), "Q1", 1).
			AddRow(int64(11), uuid.NewString(), "Q2", time.Now(), int64(2)))

	questions, err := svc.GetAllQuestions(context.Background(), token)
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, "Q1", questions[0].Content)
	assert.Equal(t, "Q2", questions[1].Content)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllQuestionsByUserMissingUser(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewQuestionService(db, NewSessionService(db, testSecret))
	token := mintToken(t)

	expectSession(mock, token, 1, "alice", "nonadmin")
	mock.ExpectQuery("SELECT id FROM users WHERE uuid").
		WillReturnError(sql.ErrNoRows)

	_, err := svc.GetAllQuestionsByUser(context.Background(), token, uuid.NewString())
	assert.True(t, apperr.IsCode(err, apperr.CodeUserNotFound))
	assert.EqualError(t, err, "USR-001: User with entered uuid whose question details are to be seen does not exist")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllQuestionsByUser(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewQuestionService(db, NewSessionService(db, testSecret))
	token := mintToken(t)

	expectSession(mock, token, 1, "alice", "nonadmin")
	mock.ExpectQuery("SELECT id FROM users WHERE uuid").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectQuery("FROM question WHERE user_id").
		WithArgs(int64(2)).
		WillReturnRows(questionRow(10, uuid.NewString(), "Q1", 2))

	questions, err := svc.GetAllQuestionsByUser(context.Background(), token, uuid.NewString())
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEditQuestionNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewQuestionService(db, NewSessionService(db, testSecret))
	token := mintToken(t)

	expectSession(mock, token, 1, "alice", "nonadmin")
	mock.ExpectBegin()
	mock.ExpectQuery("FROM question WHERE uuid").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := svc.EditQuestion(context.Background(), token, uuid.NewString(), "new content")
	assert.True(t, apperr.IsCode(err, apperr.CodeQuestionNotFound))
	assert.EqualError(t, err, "QUES-001: Entered question uuid does not exist")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEditQuestionNonOwner(t *testing.T) {
	// Authenticated and the question exists, but someone else owns it.
	// Admins get no special treatment on edits.
	db, mock := newMockDB(t)
	svc := NewQuestionService(db, NewSessionService(db, testSecret))
	token := mintToken(t)

	expectSession(mock, token, 2, "bob", "admin")
	mock.ExpectBegin()
	mock.ExpectQuery("FROM question WHERE uuid").
		WillReturnRows(questionRow(10, uuid.NewString(), "Q1", 1))
	mock.ExpectRollback()

	_, err := svc.EditQuestion(context.Background(), token, uuid.NewString(), "new content")
	assert.True(t, apperr.IsCode(err, apperr.CodeAccessDenied))
	assert.EqualError(t, err, "ATHR-003: Only the question owner can edit the question")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEditQuestionByOwner(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewQuestionService(db, NewSessionService(db, testSecret))
	token := mintToken(t)
	questionUUID := uuid.NewString()

	expectSession(mock, token, 1, "alice", "nonadmin")
	mock.ExpectBegin()
	mock.ExpectQuery("FROM question WHERE uuid").
		WithArgs(questionUUID).
		WillReturnRows(questionRow(10, questionUUID, "Q1", 1))
	mock.ExpectExec("UPDATE question SET content").
		WithArgs("Q2", int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	question, err := svc.EditQuestion(context.Background(), token, questionUUID, "Q2")
	require.NoError(t, err)
	assert.Equal(t, "Q2", question.Content)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteQuestionNonOwnerNonAdmin(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewQuestionService(db, NewSessionService(db, testSecret))
	token := mintToken(t)

	expectSession(mock, token, 3, "carol", "nonadmin")
	mock.ExpectBegin()
	mock.ExpectQuery("FROM question WHERE uuid").
		WillReturnRows(questionRow(10, uuid.NewString(), "Q1", 1))
	mock.ExpectRollback()

	_, err := svc.DeleteQuestion(context.Background(), token, uuid.NewString())
	assert.True(t, apperr.IsCode(err, apperr.CodeAccessDenied))
	assert.EqualError(t, err, "ATHR-003: Only the question owner or admin can delete the question")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteQuestionByOwner(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewQuestionService(db, NewSessionService(db, testSecret))
	token := mintToken(t)

	expectSession(mock, token, 1, "alice", "nonadmin")
	mock.ExpectBegin()
	mock.ExpectQuery("FROM question WHERE uuid").
		WillReturnRows(questionRow(10, uuid.NewString(), "Q1", 1))
	mock.ExpectExec("DELETE FROM question WHERE id").
		WithArgs(int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	_, err := svc.DeleteQuestion(context.Background(), token, uuid.NewString())
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteQuestionByAdminNonOwner(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewQuestionService(db, NewSessionService(db, testSecret))
	token := mintToken(t)

	expectSession(mock, token, 2, "root", "admin")
	mock.ExpectBegin()
	mock.ExpectQuery("FROM question WHERE uuid").
		WillReturnRows(questionRow(10, uuid.NewString(), "Q1", 1))
	mock.ExpectExec("DELETE FROM question WHERE id").
		WithArgs(int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	_, err := svc.DeleteQuestion(context.Background(), token, uuid.NewString())
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
