package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dpoletti/pokertrain/internal/domain"
	"github.com/dpoletti/pokertrain/internal/store"
)

// KnowledgeScoreStore implements store.KnowledgeScoreStore on PostgreSQL.
type KnowledgeScoreStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewKnowledgeScoreStore creates a PostgreSQL-backed score store. The db
// handle (connection or transaction) is owned by the caller. A nil logger
// falls back to the default.
func NewKnowledgeScoreStore(db store.DBTX, logger *slog.Logger) *KnowledgeScoreStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &KnowledgeScoreStore{
		db:     db,
		logger: logger.With(slog.String("component", "knowledge_score_store")),
	}
}

var _ store.KnowledgeScoreStore = (*KnowledgeScoreStore)(nil)

const scoreColumns = `id, user_id, topic, total_attempts, correct_attempts,
	current_streak, best_streak, current_difficulty, last_reviewed, created_at, updated_at`

// Create implements store.KnowledgeScoreStore.Create.
func (s *KnowledgeScoreStore) Create(ctx context.Context, score *domain.KnowledgeScore) error {
	if err := score.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO knowledge_scores (` + scoreColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := s.db.ExecContext(ctx, query,
		score.ID, score.UserID, string(score.Topic),
		score.TotalAttempts, score.CorrectAttempts,
		score.CurrentStreak, score.BestStreak, score.CurrentDifficulty,
		score.LastReviewed, score.CreatedAt, score.UpdatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			return fmt.Errorf("%w: %v", store.ErrScoreExists, err)
		}
		s.logger.ErrorContext(ctx, "failed to create knowledge score",
			slog.String("user_id", score.UserID),
			slog.String("topic", string(score.Topic)),
			slog.String("error", err.Error()))
		return mapError(err)
	}
	return nil
}

// Get implements store.KnowledgeScoreStore.Get.
func (s *KnowledgeScoreStore) Get(
	ctx context.Context,
	userID string,
	topic domain.QuestionType,
) (*domain.KnowledgeScore, error) {
	query := `SELECT ` + scoreColumns + ` FROM knowledge_scores WHERE user_id = $1 AND topic = $2`
	return s.scanScore(ctx, s.db.QueryRowContext(ctx, query, userID, string(topic)))
}

// GetForUpdate implements store.KnowledgeScoreStore.GetForUpdate. It takes a
// row lock so concurrent attempts on the same (user, topic) serialize.
func (s *KnowledgeScoreStore) GetForUpdate(
	ctx context.Context,
	userID string,
	topic domain.QuestionType,
) (*domain.KnowledgeScore, error) {
	query := `SELECT ` + scoreColumns + ` FROM knowledge_scores
		WHERE user_id = $1 AND topic = $2 FOR UPDATE`
	return s.scanScore(ctx, s.db.QueryRowContext(ctx, query, userID, string(topic)))
}

// Update implements store.KnowledgeScoreStore.Update.
func (s *KnowledgeScoreStore) Update(ctx context.Context, score *domain.KnowledgeScore) error {
	if err := score.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE knowledge_scores
		SET total_attempts = $3, correct_attempts = $4, current_streak = $5,
			best_streak = $6, current_difficulty = $7, last_reviewed = $8, updated_at = $9
		WHERE user_id = $1 AND topic = $2`
	result, err := s.db.ExecContext(ctx, query,
		score.UserID, string(score.Topic),
		score.TotalAttempts, score.CorrectAttempts, score.CurrentStreak,
		score.BestStreak, score.CurrentDifficulty, score.LastReviewed, score.UpdatedAt)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update knowledge score",
			slog.String("user_id", score.UserID),
			slog.String("topic", string(score.Topic)),
			slog.String("error", err.Error()))
		return mapError(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return mapError(err)
	}
	if rows == 0 {
		return store.ErrScoreNotFound
	}
	return nil
}

// ListByUser implements store.KnowledgeScoreStore.ListByUser.
func (s *KnowledgeScoreStore) ListByUser(ctx context.Context, userID string) ([]*domain.KnowledgeScore, error) {
	query := `SELECT ` + scoreColumns + ` FROM knowledge_scores WHERE user_id = $1`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, mapError(err)
	}
	defer func() { _ = rows.Close() }()

	var scores []*domain.KnowledgeScore
	for rows.Next() {
		score, err := scanScoreRow(rows)
		if err != nil {
			return nil, mapError(err)
		}
		scores = append(scores, score)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return scores, nil
}

// DeleteByUser implements store.KnowledgeScoreStore.DeleteByUser.
func (s *KnowledgeScoreStore) DeleteByUser(ctx context.Context, userID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM knowledge_scores WHERE user_id = $1`, userID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete knowledge scores",
			slog.String("user_id", userID),
			slog.String("error", err.Error()))
		return mapError(err)
	}
	return nil
}

// WithTx implements store.KnowledgeScoreStore.WithTx.
func (s *KnowledgeScoreStore) WithTx(tx *sql.Tx) store.KnowledgeScoreStore {
	return &KnowledgeScoreStore{db: tx, logger: s.logger}
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func (s *KnowledgeScoreStore) scanScore(ctx context.Context, row *sql.Row) (*domain.KnowledgeScore, error) {
	score, err := scanScoreRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrScoreNotFound
		}
		s.logger.ErrorContext(ctx, "failed to scan knowledge score", slog.String("error", err.Error()))
		return nil, mapError(err)
	}
	return score, nil
}

func scanScoreRow(row rowScanner) (*domain.KnowledgeScore, error) {
	var score domain.KnowledgeScore
	var topic string
	err := row.Scan(
		&score.ID, &score.UserID, &topic,
		&score.TotalAttempts, &score.CorrectAttempts,
		&score.CurrentStreak, &score.BestStreak, &score.CurrentDifficulty,
		&score.LastReviewed, &score.CreatedAt, &score.UpdatedAt)
	if err != nil {
		return nil, err
	}
	score.Topic = domain.QuestionType(topic)
	return &score, nil
}
