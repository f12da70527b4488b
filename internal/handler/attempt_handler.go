package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/provado/provado-backend/internal/middleware"
	"github.com/provado/provado-backend/internal/model"
	"github.com/provado/provado-backend/internal/response"
	"github.com/provado/provado-backend/internal/service"
	"github.com/provado/provado-backend/internal/validator"
)

// AttemptHandler handles the attempt lifecycle and its answer ledger.
type AttemptHandler struct {
	attemptService *service.AttemptService
	answerService  *service.AnswerService
}

// NewAttemptHandler creates a new AttemptHandler.
func NewAttemptHandler(attemptService *service.AttemptService, answerService *service.AnswerService) *AttemptHandler {
	return &AttemptHandler{
		attemptService: attemptService,
		answerService:  answerService,
	}
}

// Start godoc
// POST /api/v1/attempts
// Starts an attempt over an exam, optionally narrowed to one subject.
func (h *AttemptHandler) Start(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req model.StartAttemptRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	var subject *string
	if req.Subject != "" {
		subject = &req.Subject
	}

	attempt, err := h.attemptService.Start(c.Request.Context(), claims.UserID, req.ExamID, subject)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExamNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrExamNotFound)
		case errors.Is(err, service.ErrEmptyQuestionSet):
			response.Fail(c, http.StatusUnprocessableEntity, response.ErrEmptyQuestionSet)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"attempt": attempt})
}

// List godoc
// GET /api/v1/attempts
// Returns the caller's attempts, newest first.
func (h *AttemptHandler) List(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	attempts, err := h.attemptService.List(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"attempts": attempts})
}

// Get godoc
// GET /api/v1/attempts/:attempt_id
// Returns the resume payload: questions without the answer key plus the
// answers recorded so far.
func (h *AttemptHandler) Get(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	attemptID, err := uuid.Parse(c.Param("attempt_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	payload, err := h.attemptService.Get(c.Request.Context(), attemptID, claims.UserID)
	if err != nil {
		failAttempt(c, err)
		return
	}

	response.Success(c, http.StatusOK, payload)
}

// SubmitAnswer godoc
// POST /api/v1/attempts/:attempt_id/answers
// Records or overwrites the answer to one question of an in-progress attempt.
func (h *AttemptHandler) SubmitAnswer(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	attemptID, err := uuid.Parse(c.Param("attempt_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.SubmitAnswerRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	answer, err := h.answerService.Submit(c.Request.Context(), attemptID, claims.UserID, req.QuestionID, req.ChosenOption)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidOption):
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidOption)
		case errors.Is(err, service.ErrAttemptAlreadyFinished):
			response.Fail(c, http.StatusConflict, response.ErrAttemptAlreadyFinished)
		case errors.Is(err, service.ErrQuestionNotInAttempt):
			response.Fail(c, http.StatusUnprocessableEntity, response.ErrQuestionNotInAttempt)
		default:
			failAttempt(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"answer": answer.ForAttempt()})
}

// Finish godoc
// POST /api/v1/attempts/:attempt_id/finish
// Finishes the attempt and returns its summary. Safe to call again: later
// calls return the stored result unchanged.
func (h *AttemptHandler) Finish(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	attemptID, err := uuid.Parse(c.Param("attempt_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	summary, err := h.attemptService.Finish(c.Request.Context(), attemptID, claims.UserID)
	if err != nil {
		failAttempt(c, err)
		return
	}

	response.Success(c, http.StatusOK, summary)
}

// Review godoc
// GET /api/v1/attempts/:attempt_id/review?only_wrong=&subject=
// Returns the per-question answer-key comparison of a finished attempt.
func (h *AttemptHandler) Review(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	attemptID, err := uuid.Parse(c.Param("attempt_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	onlyWrong := c.Query("only_wrong") == "true"
	subject := c.Query("subject")

	payload, err := h.attemptService.Review(c.Request.Context(), attemptID, claims.UserID, onlyWrong, subject)
	if err != nil {
		if errors.Is(err, service.ErrAttemptNotFinished) {
			response.Fail(c, http.StatusConflict, response.ErrAttemptNotFinished)
			return
		}
		failAttempt(c, err)
		return
	}

	response.Success(c, http.StatusOK, payload)
}

// failAttempt maps attempt lookup errors. A missing attempt and an attempt
// owned by someone else answer identically so IDs cannot be probed.
func failAttempt(c *gin.Context, err error) {
	if errors.Is(err, service.ErrAttemptNotFound) || errors.Is(err, service.ErrAttemptForbidden) {
		response.Fail(c, http.StatusNotFound, response.ErrAttemptNotFound)
		return
	}
	response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
}
