package api

import (
	"math"
	"time"

	"github.com/dpoletti/pokertrain/internal/domain"
	"github.com/dpoletti/pokertrain/internal/domain/poker"
	"github.com/dpoletti/pokertrain/internal/service"
)

// CardResponse is the wire representation of a single card.
type CardResponse struct {
	Rank     string `json:"rank"`
	Suit     string `json:"suit"`
	Display  string `json:"display"`
	Notation string `json:"notation"`
}

// QuestionResponse is the payload for GET /api/training/question.
type QuestionResponse struct {
	QuestionID   string         `json:"question_id"`
	QuestionType string         `json:"question_type"`
	Prompt       string         `json:"prompt"`
	Cards        []CardResponse `json:"cards"`
	Cards2       []CardResponse `json:"cards2,omitempty"`
	Choices      []string       `json:"choices"`
	Difficulty   int            `json:"difficulty"`
}

// AnswerRequest is the payload for POST /api/training/answer.
type AnswerRequest struct {
	QuestionID     string `json:"question_id" validate:"required"`
	QuestionType   string `json:"question_type"`
	Answer         string `json:"answer" validate:"required"`
	ResponseTimeMs *int   `json:"response_time_ms,omitempty" validate:"omitempty,min=0"`
}

// AnswerResponse reports the graded answer and the updated progression state.
type AnswerResponse struct {
	Correct        bool    `json:"correct"`
	CorrectAnswer  string  `json:"correct_answer"`
	Explanation    string  `json:"explanation"`
	Streak         int     `json:"streak"`
	Accuracy       float64 `json:"accuracy"`
	NextDifficulty int     `json:"next_difficulty"`
}

// QuestionTypeInfo describes one available question type.
type QuestionTypeInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// QuestionTypesResponse is the payload for GET /api/training/types.
type QuestionTypesResponse struct {
	Types []QuestionTypeInfo `json:"types"`
}

// HandRankingInfo is one entry of the hand-rankings reference.
type HandRankingInfo struct {
	Rank        int    `json:"rank"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Example     string `json:"example"`
	Strength    int    `json:"strength"`
}

// RankingsResponse is the payload for GET /api/hands/rankings.
type RankingsResponse struct {
	Rankings []HandRankingInfo `json:"rankings"`
}

// ChartHand is one row of the starting-hands chart.
type ChartHand struct {
	Notation     string `json:"notation"`
	Card1        string `json:"card1"`
	Card2        string `json:"card2"`
	Suited       bool   `json:"suited"`
	Category     int    `json:"category"`
	CategoryName string `json:"category_name"`
}

// CategoryInfo describes one starting-hand tier for chart rendering.
type CategoryInfo struct {
	Value       int    `json:"value"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// StartingHandsResponse is the payload for GET /api/hands/starting.
type StartingHandsResponse struct {
	Hands      []ChartHand    `json:"hands"`
	Categories []CategoryInfo `json:"categories"`
}

// TopicStatsResponse is the per-topic slice of GET /api/stats.
type TopicStatsResponse struct {
	Topic             string  `json:"topic"`
	TopicDisplay      string  `json:"topic_display"`
	TotalAttempts     int     `json:"total_attempts"`
	CorrectAttempts   int     `json:"correct_attempts"`
	Accuracy          float64 `json:"accuracy"`
	CurrentStreak     int     `json:"current_streak"`
	BestStreak        int     `json:"best_streak"`
	CurrentDifficulty int     `json:"current_difficulty"`
	LastReviewed      *string `json:"last_reviewed"`
}

// RecentAttemptResponse is one entry of the recent-attempts log.
type RecentAttemptResponse struct {
	ID             string `json:"id"`
	QuestionType   string `json:"question_type"`
	Correct        bool   `json:"correct"`
	ResponseTimeMs *int   `json:"response_time_ms"`
	Difficulty     int    `json:"difficulty"`
	CreatedAt      string `json:"created_at"`
}

// StatsResponse is the payload for GET /api/stats.
type StatsResponse struct {
	OverallAccuracy float64                 `json:"overall_accuracy"`
	TotalQuestions  int                     `json:"total_questions"`
	TotalCorrect    int                     `json:"total_correct"`
	Topics          []TopicStatsResponse    `json:"topics"`
	RecentAttempts  []RecentAttemptResponse `json:"recent_attempts"`
}

// ResetResponse is the payload for POST /api/stats/reset.
type ResetResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HealthResponse is the payload for GET /.
type HealthResponse struct {
	Status string `json:"status"`
	App    string `json:"app"`
}

// roundAccuracy rounds a percentage to one decimal place for display.
// Progression decisions use the unrounded value internally.
func roundAccuracy(accuracy float64) float64 {
	return math.Round(accuracy*10) / 10
}

func newCardResponses(cards []poker.Card) []CardResponse {
	if len(cards) == 0 {
		return nil
	}
	out := make([]CardResponse, len(cards))
	for i, c := range cards {
		out[i] = CardResponse{
			Rank:     c.Rank.Symbol(),
			Suit:     c.Suit.Letter(),
			Display:  c.Display(),
			Notation: c.String(),
		}
	}
	return out
}

func newQuestionResponse(q *domain.Question) QuestionResponse {
	return QuestionResponse{
		QuestionID:   q.ID,
		QuestionType: string(q.Type),
		Prompt:       q.Prompt,
		Cards:        newCardResponses(q.Cards),
		Cards2:       newCardResponses(q.Cards2),
		Choices:      q.Choices,
		Difficulty:   q.Difficulty,
	}
}

func newAnswerResponse(result *service.AnswerResult) AnswerResponse {
	return AnswerResponse{
		Correct:        result.Correct,
		CorrectAnswer:  result.CorrectAnswer,
		Explanation:    result.Explanation,
		Streak:         result.Streak,
		Accuracy:       roundAccuracy(result.Accuracy),
		NextDifficulty: result.NextDifficulty,
	}
}

func newStatsResponse(stats *service.UserStats) StatsResponse {
	out := StatsResponse{
		OverallAccuracy: roundAccuracy(stats.OverallAccuracy),
		TotalQuestions:  stats.TotalQuestions,
		TotalCorrect:    stats.TotalCorrect,
		Topics:          make([]TopicStatsResponse, 0, len(stats.Topics)),
		RecentAttempts:  make([]RecentAttemptResponse, 0, len(stats.RecentAttempts)),
	}
	for _, t := range stats.Topics {
		entry := TopicStatsResponse{
			Topic:             string(t.Topic),
			TopicDisplay:      t.TopicDisplay,
			TotalAttempts:     t.TotalAttempts,
			CorrectAttempts:   t.CorrectAttempts,
			Accuracy:          roundAccuracy(t.Accuracy),
			CurrentStreak:     t.CurrentStreak,
			BestStreak:        t.BestStreak,
			CurrentDifficulty: t.CurrentDifficulty,
		}
		if t.LastReviewed != nil {
			reviewed := t.LastReviewed.Format(time.RFC3339)
			entry.LastReviewed = &reviewed
		}
		out.Topics = append(out.Topics, entry)
	}
	for _, a := range stats.RecentAttempts {
		out.RecentAttempts = append(out.RecentAttempts, RecentAttemptResponse{
			ID:             a.ID.String(),
			QuestionType:   string(a.QuestionType),
			Correct:        a.Correct,
			ResponseTimeMs: a.ResponseTimeMs,
			Difficulty:     a.Difficulty,
			CreatedAt:      a.CreatedAt.Format(time.RFC3339),
		})
	}
	return out
}
