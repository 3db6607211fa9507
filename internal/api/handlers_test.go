package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpoletti/pokertrain/internal/domain"
	"github.com/dpoletti/pokertrain/internal/domain/poker"
	"github.com/dpoletti/pokertrain/internal/service"
	"github.com/dpoletti/pokertrain/internal/store"
)

// stubTrainingService scripts the service layer for handler tests.
type stubTrainingService struct {
	question  *domain.Question
	answer    *service.AnswerResult
	stats     *service.UserStats
	err       error
	lastUser  string
	lastType  *domain.QuestionType
	lastLevel *int
	resets    int
}

func (s *stubTrainingService) GetQuestion(_ context.Context, userID string, questionType *domain.QuestionType, difficulty *int) (*domain.Question, error) {
	s.lastUser, s.lastType, s.lastLevel = userID, questionType, difficulty
	return s.question, s.err
}

func (s *stubTrainingService) SubmitAnswer(_ context.Context, userID, _, _ string, _ *int) (*service.AnswerResult, error) {
	s.lastUser = userID
	return s.answer, s.err
}

func (s *stubTrainingService) Stats(_ context.Context, userID string) (*service.UserStats, error) {
	s.lastUser = userID
	return s.stats, s.err
}

func (s *stubTrainingService) Reset(_ context.Context, userID string) error {
	s.lastUser = userID
	s.resets++
	return s.err
}

func testQuestion(t *testing.T) *domain.Question {
	t.Helper()
	cards, err := poker.ParseCards([]string{"Ah", "Ad", "Kc", "7s", "2h"})
	require.NoError(t, err)
	return &domain.Question{
		ID:            "q-1",
		Type:          domain.QuestionHandRanking,
		Prompt:        "What hand is this?",
		Cards:         cards,
		Choices:       []string{"One Pair", "Two Pair", "High Card", "Flush"},
		CorrectAnswer: "One Pair",
		Explanation:   "This is a One Pair. Two cards of the same rank.",
		Difficulty:    2,
	}
}

func TestGetQuestionHandler(t *testing.T) {
	t.Parallel()

	stub := &stubTrainingService{question: testQuestion(t)}
	handler := NewTrainingHandler(stub, "anonymous", nil)

	req := httptest.NewRequest(http.MethodGet, "/api/training/question?question_type=hand_ranking&difficulty=2", nil)
	rec := httptest.NewRecorder()
	handler.GetQuestion(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp QuestionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "q-1", resp.QuestionID)
	assert.Equal(t, "hand_ranking", resp.QuestionType)
	require.Len(t, resp.Cards, 5)
	assert.Equal(t, CardResponse{Rank: "A", Suit: "h", Display: "A♥", Notation: "Ah"}, resp.Cards[0])
	assert.Empty(t, resp.Cards2)
	assert.Equal(t, 2, resp.Difficulty)

	assert.Equal(t, "anonymous", stub.lastUser)
	require.NotNil(t, stub.lastType)
	assert.Equal(t, domain.QuestionHandRanking, *stub.lastType)
	require.NotNil(t, stub.lastLevel)
	assert.Equal(t, 2, *stub.lastLevel)
}

func TestGetQuestionHandlerOptionalParams(t *testing.T) {
	t.Parallel()

	stub := &stubTrainingService{question: testQuestion(t)}
	handler := NewTrainingHandler(stub, "anonymous", nil)

	req := httptest.NewRequest(http.MethodGet, "/api/training/question", nil)
	rec := httptest.NewRecorder()
	handler.GetQuestion(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, stub.lastType)
	assert.Nil(t, stub.lastLevel)
}

func TestGetQuestionHandlerRejectsBadParams(t *testing.T) {
	t.Parallel()

	handler := NewTrainingHandler(&stubTrainingService{}, "anonymous", nil)

	req := httptest.NewRequest(http.MethodGet, "/api/training/question?question_type=poker_face", nil)
	rec := httptest.NewRecorder()
	handler.GetQuestion(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/training/question?difficulty=hard", nil)
	rec = httptest.NewRecorder()
	handler.GetQuestion(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetQuestionHandlerUserHeader(t *testing.T) {
	t.Parallel()

	stub := &stubTrainingService{question: testQuestion(t)}
	handler := NewTrainingHandler(stub, "anonymous", nil)

	req := httptest.NewRequest(http.MethodGet, "/api/training/question", nil)
	req.Header.Set("X-User-ID", "alice")
	handler.GetQuestion(httptest.NewRecorder(), req)

	assert.Equal(t, "alice", stub.lastUser)
}

func TestSubmitAnswerHandler(t *testing.T) {
	t.Parallel()

	stub := &stubTrainingService{answer: &service.AnswerResult{
		Correct:        true,
		CorrectAnswer:  "One Pair",
		Explanation:    "This is a One Pair.",
		Streak:         3,
		Accuracy:       66.66666666,
		NextDifficulty: 2,
	}}
	handler := NewTrainingHandler(stub, "anonymous", nil)

	body := `{"question_id":"q-1","question_type":"hand_ranking","answer":"One Pair","response_time_ms":1200}`
	req := httptest.NewRequest(http.MethodPost, "/api/training/answer", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.SubmitAnswer(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AnswerResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Correct)
	assert.Equal(t, "One Pair", resp.CorrectAnswer)
	assert.Equal(t, 3, resp.Streak)
	assert.InDelta(t, 66.7, resp.Accuracy, 0.001) // rounded to one decimal
	assert.Equal(t, 2, resp.NextDifficulty)
}

func TestSubmitAnswerHandlerValidation(t *testing.T) {
	t.Parallel()

	handler := NewTrainingHandler(&stubTrainingService{}, "anonymous", nil)

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed JSON", body: `{"question_id"`},
		{name: "missing question_id", body: `{"answer":"One Pair"}`},
		{name: "missing answer", body: `{"question_id":"q-1"}`},
		{name: "negative response time", body: `{"question_id":"q-1","answer":"x","response_time_ms":-5}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodPost, "/api/training/answer", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			handler.SubmitAnswer(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestSubmitAnswerHandlerExpiredQuestion(t *testing.T) {
	t.Parallel()

	stub := &stubTrainingService{err: store.ErrQuestionNotFound}
	handler := NewTrainingHandler(stub, "anonymous", nil)

	body := `{"question_id":"gone","answer":"One Pair"}`
	req := httptest.NewRequest(http.MethodPost, "/api/training/answer", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.SubmitAnswer(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "expired")
}

func TestGetQuestionTypesHandler(t *testing.T) {
	t.Parallel()

	handler := NewTrainingHandler(&stubTrainingService{}, "anonymous", nil)

	rec := httptest.NewRecorder()
	handler.GetQuestionTypes(rec, httptest.NewRequest(http.MethodGet, "/api/training/types", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp QuestionTypesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Types, 3)
	assert.Equal(t, "hand_ranking", resp.Types[0].ID)
	assert.Equal(t, "Hand Rankings", resp.Types[0].Name)
	for _, info := range resp.Types {
		assert.NotEmpty(t, info.Description)
	}
}

func TestGetRankingsHandler(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	NewHandsHandler().GetRankings(rec, httptest.NewRequest(http.MethodGet, "/api/hands/rankings", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp RankingsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Rankings, 10)

	// Strongest first.
	assert.Equal(t, "Royal Flush", resp.Rankings[0].Name)
	assert.Equal(t, 10, resp.Rankings[0].Strength)
	assert.Equal(t, "High Card", resp.Rankings[9].Name)
	for _, r := range resp.Rankings {
		assert.NotEmpty(t, r.Description)
		assert.NotEmpty(t, r.Example)
	}
}

func TestGetStartingHandsHandler(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	NewHandsHandler().GetStartingHands(rec, httptest.NewRequest(http.MethodGet, "/api/hands/starting", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp StartingHandsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Len(t, resp.Categories, 5)
	assert.Equal(t, "Premium", resp.Categories[0].Name)
	assert.Equal(t, "Weak", resp.Categories[4].Name)
	for _, c := range resp.Categories {
		assert.NotEmpty(t, c.Description)
		assert.NotEmpty(t, c.Color)
	}

	require.NotEmpty(t, resp.Hands)
	assert.Equal(t, "AA", resp.Hands[0].Notation)
	assert.Equal(t, "Premium", resp.Hands[0].CategoryName)
	for _, h := range resp.Hands {
		assert.NotEmpty(t, h.Card1)
		assert.NotEmpty(t, h.Card2)
	}
}

func TestGetStatsHandler(t *testing.T) {
	t.Parallel()

	reviewed := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	stub := &stubTrainingService{stats: &service.UserStats{
		OverallAccuracy: 75.0,
		TotalQuestions:  4,
		TotalCorrect:    3,
		Topics: []service.TopicStats{
			{
				Topic:             domain.QuestionHandRanking,
				TopicDisplay:      "Hand Rankings",
				TotalAttempts:     4,
				CorrectAttempts:   3,
				Accuracy:          75.0,
				CurrentStreak:     2,
				BestStreak:        3,
				CurrentDifficulty: 2,
				LastReviewed:      &reviewed,
			},
			{Topic: domain.QuestionWhichWins, TopicDisplay: "Which Hand Wins", CurrentDifficulty: 1},
			{Topic: domain.QuestionStartingHand, TopicDisplay: "Starting Hands", CurrentDifficulty: 1},
		},
	}}
	handler := NewStatsHandler(stub, "anonymous", nil)

	rec := httptest.NewRecorder()
	handler.GetStats(rec, httptest.NewRequest(http.MethodGet, "/api/stats", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp StatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.InDelta(t, 75.0, resp.OverallAccuracy, 0.001)
	assert.Equal(t, 4, resp.TotalQuestions)
	require.Len(t, resp.Topics, 3)
	require.NotNil(t, resp.Topics[0].LastReviewed)
	assert.Equal(t, "2026-08-20T10:00:00Z", *resp.Topics[0].LastReviewed)
	assert.Nil(t, resp.Topics[1].LastReviewed)
	assert.NotNil(t, resp.RecentAttempts)
}

func TestResetStatsHandler(t *testing.T) {
	t.Parallel()

	stub := &stubTrainingService{}
	handler := NewStatsHandler(stub, "anonymous", nil)

	rec := httptest.NewRecorder()
	handler.ResetStats(rec, httptest.NewRequest(http.MethodPost, "/api/stats/reset", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, stub.resets)

	var resp ResetResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Message)
}

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "expired question", err: store.ErrQuestionNotFound, want: http.StatusNotFound},
		{name: "unknown type", err: domain.ErrUnknownQuestionType, want: http.StatusBadRequest},
		{name: "validation", err: domain.ErrValidation, want: http.StatusBadRequest},
		{name: "duplicate", err: store.ErrDuplicate, want: http.StatusConflict},
		{name: "anything else", err: assert.AnError, want: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessageHidesInternals(t *testing.T) {
	t.Parallel()

	msg := GetSafeErrorMessage(assert.AnError)
	assert.Equal(t, "An internal error occurred", msg)
	assert.NotContains(t, msg, assert.AnError.Error())
}
