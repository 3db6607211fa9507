package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/dpoletti/pokertrain/internal/api/shared"
	"github.com/dpoletti/pokertrain/internal/domain"
	"github.com/dpoletti/pokertrain/internal/service"
)

// TrainingHandler serves question generation and answer submission.
type TrainingHandler struct {
	training      service.TrainingService
	validator     *validator.Validate
	defaultUserID string
	logger        *slog.Logger
}

// NewTrainingHandler creates a training handler. Requests without an
// X-User-ID header act on behalf of defaultUserID.
func NewTrainingHandler(training service.TrainingService, defaultUserID string, logger *slog.Logger) *TrainingHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TrainingHandler{
		training:      training,
		validator:     validator.New(),
		defaultUserID: defaultUserID,
		logger:        logger.With(slog.String("component", "training_handler")),
	}
}

// userID resolves the acting user for a request.
func (h *TrainingHandler) userID(r *http.Request) string {
	if id := r.Header.Get("X-User-ID"); id != "" {
		return id
	}
	return h.defaultUserID
}

// GetQuestion handles GET /api/training/question. Both query parameters are
// optional: question_type defaults to the recommended topic, difficulty to
// the user's stored adaptive difficulty.
func (h *TrainingHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var questionType *domain.QuestionType
	if raw := r.URL.Query().Get("question_type"); raw != "" {
		qt := domain.QuestionType(raw)
		if !qt.Valid() {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Unknown question type")
			return
		}
		questionType = &qt
	}

	var difficulty *int
	if raw := r.URL.Query().Get("difficulty"); raw != "" {
		d, err := strconv.Atoi(raw)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Difficulty must be an integer")
			return
		}
		difficulty = &d
	}

	question, err := h.training.GetQuestion(ctx, h.userID(r), questionType, difficulty)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newQuestionResponse(question))
}

// SubmitAnswer handles POST /api/training/answer.
func (h *TrainingHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	result, err := h.training.SubmitAnswer(ctx, h.userID(r), req.QuestionID, req.Answer, req.ResponseTimeMs)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newAnswerResponse(result))
}

// questionTypeDescriptions is the reference copy shown by /api/training/types.
var questionTypeDescriptions = map[domain.QuestionType]string{
	domain.QuestionHandRanking:  "Identify the poker hand from the cards shown",
	domain.QuestionWhichWins:    "Compare two hands and determine the winner",
	domain.QuestionStartingHand: "Learn which starting hands to play preflop",
}

// GetQuestionTypes handles GET /api/training/types.
func (h *TrainingHandler) GetQuestionTypes(w http.ResponseWriter, r *http.Request) {
	types := make([]QuestionTypeInfo, 0, len(domain.QuestionTypes))
	for _, qt := range domain.QuestionTypes {
		types = append(types, QuestionTypeInfo{
			ID:          string(qt),
			Name:        qt.DisplayName(),
			Description: questionTypeDescriptions[qt],
		})
	}
	shared.RespondWithJSON(w, r, http.StatusOK, QuestionTypesResponse{Types: types})
}
