package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/dpoletti/pokertrain/internal/domain"
	"github.com/dpoletti/pokertrain/internal/domain/progression"
	"github.com/dpoletti/pokertrain/internal/generation"
	"github.com/dpoletti/pokertrain/internal/store"
)

// AnswerResult is the outcome of grading a submitted answer, including the
// progression state after the attempt was recorded.
type AnswerResult struct {
	Correct        bool
	CorrectAnswer  string
	Explanation    string
	Streak         int
	Accuracy       float64
	NextDifficulty int
}

// TopicStats is the per-topic slice of a user's statistics. Topics the user
// never attempted appear with zero counters and difficulty 1.
type TopicStats struct {
	Topic             domain.QuestionType
	TopicDisplay      string
	TotalAttempts     int
	CorrectAttempts   int
	Accuracy          float64
	CurrentStreak     int
	BestStreak        int
	CurrentDifficulty int
	LastReviewed      *time.Time
}

// UserStats aggregates a user's progress across all topics.
type UserStats struct {
	OverallAccuracy float64
	TotalQuestions  int
	TotalCorrect    int
	Topics          []TopicStats
	RecentAttempts  []*domain.QuestionAttempt
}

// TrainingService is the application-facing API of the training engine.
type TrainingService interface {
	// GetQuestion generates and caches a question. A nil questionType uses
	// the recommended topic; a nil difficulty uses the user's stored
	// adaptive difficulty. Difficulty is clamped to [1,5].
	GetQuestion(ctx context.Context, userID string, questionType *domain.QuestionType, difficulty *int) (*domain.Question, error)

	// SubmitAnswer grades the cached question, records the attempt and the
	// progression update in one transaction, and evicts the question from
	// the cache. Returns store.ErrQuestionNotFound when the question is
	// unknown or expired; the caller should ask the user to fetch a new one.
	SubmitAnswer(ctx context.Context, userID, questionID, answer string, responseTimeMs *int) (*AnswerResult, error)

	// Stats returns per-topic and aggregate statistics plus the most recent
	// attempts.
	Stats(ctx context.Context, userID string) (*UserStats, error)

	// Reset deletes all attempts and scores for the user.
	Reset(ctx context.Context, userID string) error
}

// recentAttemptsLimit bounds the recent-attempts log in stats responses.
const recentAttemptsLimit = 10

type trainingService struct {
	db          *sql.DB
	scores      store.KnowledgeScoreStore
	attempts    store.QuestionAttemptStore
	cache       store.QuestionCache
	generator   generation.Generator
	progression progression.Service
	logger      *slog.Logger
}

// NewTrainingService wires the training engine together. All dependencies
// are required except db, which may be nil in tests that fake the stores
// (transactions then degrade to direct calls).
func NewTrainingService(
	db *sql.DB,
	scores store.KnowledgeScoreStore,
	attempts store.QuestionAttemptStore,
	cache store.QuestionCache,
	generator generation.Generator,
	progressionSvc progression.Service,
	logger *slog.Logger,
) TrainingService {
	if logger == nil {
		logger = slog.Default()
	}
	return &trainingService{
		db:          db,
		scores:      scores,
		attempts:    attempts,
		cache:       cache,
		generator:   generator,
		progression: progressionSvc,
		logger:      logger.With(slog.String("component", "training_service")),
	}
}

func (s *trainingService) GetQuestion(
	ctx context.Context,
	userID string,
	questionType *domain.QuestionType,
	difficulty *int,
) (*domain.Question, error) {
	var qt domain.QuestionType
	if questionType != nil {
		qt = *questionType
		if !qt.Valid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownQuestionType, qt)
		}
	} else {
		scores, err := s.scores.ListByUser(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to load scores for recommendation: %w", err)
		}
		qt = s.progression.RecommendTopic(scores)
	}

	var level int
	if difficulty != nil {
		level = domain.ClampDifficulty(*difficulty)
	} else {
		score, err := s.scores.Get(ctx, userID, qt)
		switch {
		case err == nil:
			level = score.CurrentDifficulty
		case store.IsNotFoundError(err):
			level = domain.MinDifficulty
		default:
			return nil, fmt.Errorf("failed to load score for difficulty: %w", err)
		}
	}

	question, err := s.generator.Generate(qt, level)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Put(ctx, question); err != nil {
		return nil, fmt.Errorf("failed to cache question: %w", err)
	}

	s.logger.DebugContext(ctx, "generated question",
		slog.String("question_id", question.ID),
		slog.String("question_type", string(question.Type)),
		slog.Int("difficulty", question.Difficulty))
	return question, nil
}

func (s *trainingService) SubmitAnswer(
	ctx context.Context,
	userID, questionID, answer string,
	responseTimeMs *int,
) (*AnswerResult, error) {
	question, err := s.cache.Get(ctx, questionID)
	if err != nil {
		return nil, err
	}

	correct := answer == question.CorrectAnswer
	now := time.Now().UTC()

	var updated *domain.KnowledgeScore
	err = s.runInTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		scores := s.scores
		attempts := s.attempts
		if tx != nil {
			scores = scores.WithTx(tx)
			attempts = attempts.WithTx(tx)
		}

		attempt, err := domain.NewQuestionAttempt(
			userID, question.Type, correct, responseTimeMs, question.Difficulty, question.Payload)
		if err != nil {
			return err
		}
		if err := attempts.Create(ctx, attempt); err != nil {
			return err
		}

		score, err := scores.GetForUpdate(ctx, userID, question.Type)
		if store.IsNotFoundError(err) {
			score, err = domain.NewKnowledgeScore(userID, question.Type)
			if err != nil {
				return err
			}
			if err := scores.Create(ctx, score); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		updated, err = s.progression.ApplyAttempt(score, correct, now)
		if err != nil {
			return err
		}
		return scores.Update(ctx, updated)
	})
	if err != nil {
		return nil, err
	}

	// Evict only after the attempt committed; a failed submit can be retried
	// against the still-cached question.
	if err := s.cache.Delete(ctx, questionID); err != nil {
		s.logger.WarnContext(ctx, "failed to evict answered question",
			slog.String("question_id", questionID),
			slog.String("error", err.Error()))
	}

	return &AnswerResult{
		Correct:        correct,
		CorrectAnswer:  question.CorrectAnswer,
		Explanation:    question.Explanation,
		Streak:         updated.CurrentStreak,
		Accuracy:       updated.Accuracy(),
		NextDifficulty: updated.CurrentDifficulty,
	}, nil
}

func (s *trainingService) Stats(ctx context.Context, userID string) (*UserStats, error) {
	scores, err := s.scores.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load scores: %w", err)
	}

	byTopic := make(map[domain.QuestionType]*domain.KnowledgeScore, len(scores))
	totalAttempts, totalCorrect := 0, 0
	for _, score := range scores {
		byTopic[score.Topic] = score
		totalAttempts += score.TotalAttempts
		totalCorrect += score.CorrectAttempts
	}

	stats := &UserStats{
		TotalQuestions: totalAttempts,
		TotalCorrect:   totalCorrect,
	}
	if totalAttempts > 0 {
		stats.OverallAccuracy = float64(totalCorrect) / float64(totalAttempts) * 100
	}

	for _, topic := range domain.QuestionTypes {
		entry := TopicStats{
			Topic:             topic,
			TopicDisplay:      topic.DisplayName(),
			CurrentDifficulty: domain.MinDifficulty,
		}
		if score, ok := byTopic[topic]; ok {
			entry.TotalAttempts = score.TotalAttempts
			entry.CorrectAttempts = score.CorrectAttempts
			entry.Accuracy = score.Accuracy()
			entry.CurrentStreak = score.CurrentStreak
			entry.BestStreak = score.BestStreak
			entry.CurrentDifficulty = score.CurrentDifficulty
			reviewed := score.LastReviewed
			entry.LastReviewed = &reviewed
		}
		stats.Topics = append(stats.Topics, entry)
	}

	recent, err := s.attempts.ListRecentByUser(ctx, userID, recentAttemptsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent attempts: %w", err)
	}
	stats.RecentAttempts = recent

	return stats, nil
}

func (s *trainingService) Reset(ctx context.Context, userID string) error {
	err := s.runInTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		scores := s.scores
		attempts := s.attempts
		if tx != nil {
			scores = scores.WithTx(tx)
			attempts = attempts.WithTx(tx)
		}
		if err := attempts.DeleteByUser(ctx, userID); err != nil {
			return err
		}
		return scores.DeleteByUser(ctx, userID)
	})
	if err != nil {
		return fmt.Errorf("failed to reset stats: %w", err)
	}
	s.logger.InfoContext(ctx, "reset user stats", slog.String("user_id", userID))
	return nil
}

// runInTx executes fn in a database transaction when a database is present,
// and directly otherwise (test wiring with fake stores).
func (s *trainingService) runInTx(ctx context.Context, fn store.TxFn) error {
	if s.db == nil {
		return fn(ctx, nil)
	}
	return store.RunInTransaction(ctx, s.db, fn)
}
