package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sarjithrm/quoraUpgradProject/internal/apperr"
	"github.com/sarjithrm/quoraUpgradProject/internal/auth"
	"github.com/sarjithrm/quoraUpgradProject/internal/database"
	"github.com/sarjithrm/quoraUpgradProject/internal/models"
)

type QuestionService struct {
	db       *database.DB
	sessions *SessionService
}

func NewQuestionService(db *database.DB, sessions *SessionService) *QuestionService {
	return &QuestionService{db: db, sessions: sessions}
}

// CreateQuestion posts a question for the signed-in user. The creation
// timestamp is the server's clock, never the caller's.
func (s *QuestionService) CreateQuestion(ctx context.Context, accessToken, content string) (*models.Question, error) {
	_, user, err := s.sessions.ValidateAccessToken(ctx, accessToken)
	if err != nil {
		return nil, signedOutMessage(err, "post a question")
	}

	question := &models.Question{
		UUID:      uuid.New(),
		Content:   content,
		CreatedAt: time.Now(),
		UserID:    user.ID,
	}
	query := `INSERT INTO question (uuid, content, created_at, user_id) VALUES ($1, $2, $3, $4) RETURNING id`
	if err := s.db.QueryRowContext(ctx, query, question.UUID, question.Content, question.CreatedAt, question.UserID).Scan(&question.ID); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}
	return question, nil
}

// GetAllQuestions lists every question, oldest first.
func (s *QuestionService) GetAllQuestions(ctx context.Context, accessToken string) ([]models.Question, error) {
	_, _, err := s.sessions.ValidateAccessToken(ctx, accessToken)
	if err != nil {
		return nil, signedOutMessage(err, "get all questions")
	}

	questions := []models.Question{}
	query := `SELECT id, uuid, content, created_at, user_id FROM question ORDER BY id`
	if err := s.db.SelectContext(ctx, &questions, query); err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return questions, nil
}

// GetAllQuestionsByUser lists the questions posted by the user with the
// given uuid.
func (s *QuestionService) GetAllQuestionsByUser(ctx context.Context, accessToken, userUUID string) ([]models.Question, error) {
	_, _, err := s.sessions.ValidateAccessToken(ctx, accessToken)
	if err != nil {
		return nil, signedOutMessage(err, "get all questions")
	}

	var userID int64
	if err := s.db.GetContext(ctx, &userID, `SELECT id FROM users WHERE uuid = $1`, userUUID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound(apperr.CodeUserNotFound, "User with entered uuid whose question details are to be seen does not exist")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	questions := []models.Question{}
	query := `SELECT id, uuid, content, created_at, user_id FROM question WHERE user_id = $1 ORDER BY id`
	if err := s.db.SelectContext(ctx, &questions, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return questions, nil
}

// EditQuestion replaces the question's content. Only the owner may edit;
// the row is locked for the read-check-write so a concurrent edit or
// delete cannot slip between the ownership check and the update.
func (s *QuestionService) EditQuestion(ctx context.Context, accessToken, questionUUID, content string) (*models.Question, error) {
	_, user, err := s.sessions.ValidateAccessToken(ctx, accessToken)
	if err != nil {
		return nil, signedOutMessage(err, "edit the question")
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	question, err := getQuestionForUpdate(ctx, tx, questionUUID, "Entered question uuid does not exist")
	if err != nil {
		return nil, err
	}

	if err := auth.Authorize(user, question.UserID, auth.OwnerOnly, "Only the question owner can edit the question"); err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, `UPDATE question SET content = $1 WHERE id = $2`, content, question.ID); err != nil {
		return nil, fmt.Errorf("failed to update question: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}

	question.Content = content
	return question, nil
}

// DeleteQuestion removes the question. The owner or any admin may delete.
func (s *QuestionService) DeleteQuestion(ctx context.Context, accessToken, questionUUID string) (*models.Question, error) {
	_, user, err := s.sessions.ValidateAccessToken(ctx, accessToken)
	if err != nil {
		return nil, signedOutMessage(err, "delete a question")
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	question, err := getQuestionForUpdate(ctx, tx, questionUUID, "Entered question uuid does not exist")
	if err != nil {
		return nil, err
	}

	if err := auth.Authorize(user, question.UserID, auth.OwnerOrAdmin, "Only the question owner or admin can delete the question"); err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM question WHERE id = $1`, question.ID); err != nil {
		return nil, fmt.Errorf("failed to delete question: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}
	return question, nil
}

func getQuestionForUpdate(ctx context.Context, tx *sqlx.Tx, questionUUID, notFoundMessage string) (*models.Question, error) {
	var question models.Question
	query := `SELECT id, uuid, content, created_at, user_id FROM question WHERE uuid = $1 FOR UPDATE`
	if err := tx.GetContext(ctx, &question, query, questionUUID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound(apperr.CodeQuestionNotFound, notFoundMessage)
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}
	return &question, nil
}
