package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sarjithrm/quoraUpgradProject/internal/apperr"
	"github.com/sarjithrm/quoraUpgradProject/internal/auth"
	"github.com/sarjithrm/quoraUpgradProject/internal/database"
	"github.com/sarjithrm/quoraUpgradProject/internal/models"
)

type AnswerService struct {
	db       *database.DB
	sessions *SessionService
}

func NewAnswerService(db *database.DB, sessions *SessionService) *AnswerService {
	return &AnswerService{db: db, sessions: sessions}
}

// AnswerDetails pairs an answer with the content of the question it
// answers, for the list endpoint.
type AnswerDetails struct {
	models.Answer
	QuestionContent string `db:"question_content"`
}

// CreateAnswer posts an answer against an existing question.
func (s *AnswerService) CreateAnswer(ctx context.Context, accessToken, questionUUID, content string) (*models.Answer, error) {
	_, user, err := s.sessions.ValidateAccessToken(ctx, accessToken)
	if err != nil {
		return nil, signedOutMessage(err, "post an answer")
	}

	var questionID int64
	if err := s.db.GetContext(ctx, &questionID, `SELECT id FROM question WHERE uuid = $1`, questionUUID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound(apperr.CodeQuestionNotFound, "The question entered is invalid")
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}

	answer := &models.Answer{
		UUID:       uuid.New(),
		Ans:        content,
		CreatedAt:  time.Now(),
		UserID:     user.ID,
		QuestionID: questionID,
	}
	query := `INSERT INTO answer (uuid, ans, created_at, user_id, question_id) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	if err := s.db.QueryRowContext(ctx, query, answer.UUID, answer.Ans, answer.CreatedAt, answer.UserID, answer.QuestionID).Scan(&answer.ID); err != nil {
		return nil, fmt.Errorf("failed to create answer: %w", err)
	}
	return answer, nil
}

// EditAnswer replaces the answer's content; owner only.
func (s *AnswerService) EditAnswer(ctx context.Context, accessToken, answerUUID, content string) (*models.Answer, error) {
	_, user, err := s.sessions.ValidateAccessToken(ctx, accessToken)
	if err != nil {
		return nil, signedOutMessage(err, "edit an answer")
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var answer models.Answer
	query := `SELECT id, uuid, ans, created_at, user_id, question_id FROM answer WHERE uuid = $1 FOR UPDATE`
	if err := tx.GetContext(ctx, &answer, query, answerUUID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound(apperr.CodeAnswerNotFound, "Entered answer uuid does not exist")
		}
		return nil, fmt.Errorf("failed to get answer: %w", err)
	}

	if err := auth.Authorize(user, answer.UserID, auth.OwnerOnly, "Only the answer owner can edit the answer"); err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, `UPDATE answer SET ans = $1 WHERE id = $2`, content, answer.ID); err != nil {
		return nil, fmt.Errorf("failed to update answer: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}

	answer.Ans = content
	return &answer, nil
}

// DeleteAnswer removes the answer; owner or any admin.
func (s *AnswerService) DeleteAnswer(ctx context.Context, accessToken, answerUUID string) (*models.Answer, error) {
	_, user, err := s.sessions.ValidateAccessToken(ctx, accessToken)
	if err != nil {
		return nil, signedOutMessage(err, "delete an answer")
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var answer models.Answer
	query := `SELECT id, uuid, ans, created_at, user_id, question_id FROM answer WHERE uuid = $1 FOR UPDATE`
	if err := tx.GetContext(ctx, &answer, query, answerUUID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound(apperr.CodeAnswerNotFound, "Entered answer uuid does not exist")
		}
		return nil, fmt.Errorf("failed to get answer: %w", err)
	}

	if err := auth.Authorize(user, answer.UserID, auth.OwnerOrAdmin, "Only the answer owner or admin can delete the answer"); err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM answer WHERE id = $1`, answer.ID); err != nil {
		return nil, fmt.Errorf("failed to delete answer: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}
	return &answer, nil
}

// GetAnswersForQuestion lists the answers to one question together with
// the question's content.
func (s *AnswerService) GetAnswersForQuestion(ctx context.Context, accessToken, questionUUID string) ([]AnswerDetails, error) {
	_, _, err := s.sessions.ValidateAccessToken(ctx, accessToken)
	if err != nil {
		return nil, signedOutMessage(err, "get the answers")
	}

	var questionID int64
	if err := s.db.GetContext(ctx, &questionID, `SELECT id FROM question WHERE uuid = $1`, questionUUID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound(apperr.CodeQuestionNotFound, "The question with entered uuid whose details are to be seen does not exist")
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}

	answers := []AnswerDetails{}
	query := `
		SELECT a.id, a.uuid, a.ans, a.created_at, a.user_id, a.question_id, q.content AS question_content
		FROM answer a
		JOIN question q ON q.id = a.question_id
		WHERE a.question_id = $1
		ORDER BY a.id
	`
	if err := s.db.SelectContext(ctx, &answers, query, questionID); err != nil {
		return nil, fmt.Errorf("failed to list answers: %w", err)
	}
	return answers, nil
}
