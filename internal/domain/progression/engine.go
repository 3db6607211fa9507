// Package progression implements the per-(user, topic) difficulty state
// machine and topic recommendation. All functions are pure: they never touch
// storage and return new score instances instead of mutating their inputs.
package progression

import (
	"errors"
	"time"

	"github.com/dpoletti/pokertrain/internal/domain"
)

// Common errors.
var ErrNilScore = errors.New("knowledge score cannot be nil")

// Service applies attempt outcomes to knowledge scores and recommends the
// next topic to practice.
type Service interface {
	// ApplyAttempt computes the score after recording one attempt.
	ApplyAttempt(score *domain.KnowledgeScore, correct bool, now time.Time) (*domain.KnowledgeScore, error)

	// RecommendTopic picks the topic the user should practice next given
	// their existing scores.
	RecommendTopic(scores []*domain.KnowledgeScore) domain.QuestionType
}

type defaultService struct {
	params *Params
}

// NewDefaultService creates a progression service with default thresholds.
func NewDefaultService() Service {
	return &defaultService{params: NewDefaultParams()}
}

// NewServiceWithParams creates a progression service with custom thresholds.
func NewServiceWithParams(params *Params) Service {
	return &defaultService{params: params}
}

// ApplyAttempt implements the transition rule: bump the counters, then
// recompute difficulty. The difficulty only moves once at least
// MinAttemptsForAdjustment attempts exist; it rises on high accuracy or a
// long streak, falls on low accuracy, and always stays within [1,5].
func (s *defaultService) ApplyAttempt(
	score *domain.KnowledgeScore,
	correct bool,
	now time.Time,
) (*domain.KnowledgeScore, error) {
	if score == nil {
		return nil, ErrNilScore
	}

	updated := *score
	updated.TotalAttempts++
	if correct {
		updated.CorrectAttempts++
		updated.CurrentStreak++
		if updated.CurrentStreak > updated.BestStreak {
			updated.BestStreak = updated.CurrentStreak
		}
	} else {
		updated.CurrentStreak = 0
	}
	updated.LastReviewed = now
	updated.UpdatedAt = now
	updated.CurrentDifficulty = s.nextDifficulty(&updated)

	if err := updated.Validate(); err != nil {
		return nil, err
	}
	return &updated, nil
}

// nextDifficulty applies the adjustment ladder to an already-incremented
// score.
func (s *defaultService) nextDifficulty(score *domain.KnowledgeScore) int {
	current := score.CurrentDifficulty
	if score.TotalAttempts < s.params.MinAttemptsForAdjustment {
		return current
	}

	accuracy := score.Accuracy()
	if accuracy >= s.params.AccuracyIncreaseThreshold || score.CurrentStreak >= s.params.StreakForIncrease {
		return domain.ClampDifficulty(current + 1)
	}
	if accuracy < s.params.AccuracyDecreaseThreshold {
		return domain.ClampDifficulty(current - 1)
	}
	return current
}

// RecommendTopic picks, in order of preference: the lowest-accuracy topic
// with enough attempts, the first never-attempted topic in the fixed topic
// order, then the topic with the fewest attempts. A user with no history
// gets the first topic.
func (s *defaultService) RecommendTopic(scores []*domain.KnowledgeScore) domain.QuestionType {
	if len(scores) == 0 {
		return domain.QuestionTypes[0]
	}

	var weakest domain.QuestionType
	lowestAccuracy := 100.0
	for _, score := range scores {
		if score.TotalAttempts >= s.params.MinAttemptsForRecommendation && score.Accuracy() < lowestAccuracy {
			lowestAccuracy = score.Accuracy()
			weakest = score.Topic
		}
	}
	if weakest != "" {
		return weakest
	}

	practiced := make(map[domain.QuestionType]*domain.KnowledgeScore, len(scores))
	for _, score := range scores {
		practiced[score.Topic] = score
	}
	for _, topic := range domain.QuestionTypes {
		if _, ok := practiced[topic]; !ok {
			return topic
		}
	}

	least := scores[0]
	for _, score := range scores[1:] {
		if score.TotalAttempts < least.TotalAttempts {
			least = score
		}
	}
	return least.Topic
}
