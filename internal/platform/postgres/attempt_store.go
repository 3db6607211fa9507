package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/dpoletti/pokertrain/internal/domain"
	"github.com/dpoletti/pokertrain/internal/store"
)

// QuestionAttemptStore implements store.QuestionAttemptStore on PostgreSQL.
type QuestionAttemptStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewQuestionAttemptStore creates a PostgreSQL-backed attempt store. The db
// handle (connection or transaction) is owned by the caller. A nil logger
// falls back to the default.
func NewQuestionAttemptStore(db store.DBTX, logger *slog.Logger) *QuestionAttemptStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &QuestionAttemptStore{
		db:     db,
		logger: logger.With(slog.String("component", "question_attempt_store")),
	}
}

var _ store.QuestionAttemptStore = (*QuestionAttemptStore)(nil)

// Create implements store.QuestionAttemptStore.Create.
func (s *QuestionAttemptStore) Create(ctx context.Context, attempt *domain.QuestionAttempt) error {
	if err := attempt.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO question_attempts
			(id, user_id, question_type, correct, response_time_ms, difficulty, question_data, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	var questionData any
	if len(attempt.QuestionData) > 0 {
		questionData = []byte(attempt.QuestionData)
	}
	_, err := s.db.ExecContext(ctx, query,
		attempt.ID, attempt.UserID, string(attempt.QuestionType),
		attempt.Correct, attempt.ResponseTimeMs, attempt.Difficulty,
		questionData, attempt.CreatedAt)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create question attempt",
			slog.String("user_id", attempt.UserID),
			slog.String("question_type", string(attempt.QuestionType)),
			slog.String("error", err.Error()))
		return mapError(err)
	}
	return nil
}

// ListRecentByUser implements store.QuestionAttemptStore.ListRecentByUser.
func (s *QuestionAttemptStore) ListRecentByUser(
	ctx context.Context,
	userID string,
	limit int,
) ([]*domain.QuestionAttempt, error) {
	query := `
		SELECT id, user_id, question_type, correct, response_time_ms, difficulty, question_data, created_at
		FROM question_attempts
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`
	rows, err := s.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, mapError(err)
	}
	defer func() { _ = rows.Close() }()

	var attempts []*domain.QuestionAttempt
	for rows.Next() {
		var attempt domain.QuestionAttempt
		var questionType string
		var responseTime sql.NullInt64
		var questionData []byte
		err := rows.Scan(
			&attempt.ID, &attempt.UserID, &questionType,
			&attempt.Correct, &responseTime, &attempt.Difficulty,
			&questionData, &attempt.CreatedAt)
		if err != nil {
			return nil, mapError(err)
		}
		attempt.QuestionType = domain.QuestionType(questionType)
		if responseTime.Valid {
			ms := int(responseTime.Int64)
			attempt.ResponseTimeMs = &ms
		}
		attempt.QuestionData = questionData
		attempts = append(attempts, &attempt)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return attempts, nil
}

// DeleteByUser implements store.QuestionAttemptStore.DeleteByUser.
func (s *QuestionAttemptStore) DeleteByUser(ctx context.Context, userID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM question_attempts WHERE user_id = $1`, userID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete question attempts",
			slog.String("user_id", userID),
			slog.String("error", err.Error()))
		return mapError(err)
	}
	return nil
}

// WithTx implements store.QuestionAttemptStore.WithTx.
func (s *QuestionAttemptStore) WithTx(tx *sql.Tx) store.QuestionAttemptStore {
	return &QuestionAttemptStore{db: tx, logger: s.logger}
}
