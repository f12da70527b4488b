package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/provado/provado-backend/internal/response"
	"github.com/provado/provado-backend/internal/service"
)

// ExamHandler serves the read-only exam and subject catalog.
type ExamHandler struct {
	catalogService *service.CatalogService
}

// NewExamHandler creates a new ExamHandler.
func NewExamHandler(catalogService *service.CatalogService) *ExamHandler {
	return &ExamHandler{catalogService: catalogService}
}

// ListExams godoc
// GET /api/v1/exams
// Returns the full catalog, newest year first.
func (h *ExamHandler) ListExams(c *gin.Context) {
	exams, err := h.catalogService.ListExams(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"exams": exams})
}

// GetExam godoc
// GET /api/v1/exams/:exam_id
// Returns one exam with its subjects and question count.
func (h *ExamHandler) GetExam(c *gin.Context) {
	examID, err := uuid.Parse(c.Param("exam_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	exam, err := h.catalogService.GetExam(c.Request.Context(), examID)
	if err != nil {
		if errors.Is(err, service.ErrExamNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrExamNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"exam": exam})
}

// ListExamSubjects godoc
// GET /api/v1/exams/:exam_id/subjects
// Returns an exam's sorted subject list.
func (h *ExamHandler) ListExamSubjects(c *gin.Context) {
	examID, err := uuid.Parse(c.Param("exam_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	subjects, err := h.catalogService.ListSubjects(c.Request.Context(), examID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"subjects": subjects})
}

// ListSubjects godoc
// GET /api/v1/subjects
// Returns the sorted distinct subjects across all exams.
func (h *ExamHandler) ListSubjects(c *gin.Context) {
	subjects, err := h.catalogService.ListAllSubjects(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"subjects": subjects})
}

// ListExamsWithSubject godoc
// GET /api/v1/subjects/exams?subject=S
// Returns exams containing the subject, newest year first.
func (h *ExamHandler) ListExamsWithSubject(c *gin.Context) {
	subject := c.Query("subject")
	if subject == "" {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	exams, err := h.catalogService.ListExamsWithSubject(c.Request.Context(), subject)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"exams": exams})
}
