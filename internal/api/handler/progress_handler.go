package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devpath/tutorial-platform/internal/api/metrics"
	"github.com/devpath/tutorial-platform/internal/core/domain"
	"github.com/devpath/tutorial-platform/internal/core/ports"
)

type ProgressHandler struct {
	service ports.ProgressService
}

func NewProgressHandler(service ports.ProgressService) *ProgressHandler {
	return &ProgressHandler{service: service}
}

type updateProgressRequest struct {
	Completed *bool    `json:"completed"`
	Progress  *float64 `json:"progress" validate:"omitempty,gte=0,lte=100"`
}

type submitQuizRequest struct {
	Answers []int `json:"answers" validate:"required"`
}

type submitQuizResponse struct {
	Result   *domain.QuizResult     `json:"result"`
	Progress *domain.ProgressRecord `json:"progress"`
}

// List returns all of the caller's progress records, most recently
// accessed first.
//
// @Summary      List progress
// @Tags         progress
// @Produce      json
// @Security     BearerAuth
// @Success      200   {array}   domain.ProgressRecord
// @Failure      401   {object}  map[string]string
// @Router       /progress/{userId} [get]
func (h *ProgressHandler) List(c echo.Context) error {
	userID, err := ownedUserID(c)
	if err != nil {
		return err
	}

	records, err := h.service.ListAll(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	if records == nil {
		records = []domain.ProgressRecord{}
	}
	return c.JSON(http.StatusOK, records)
}

// Summary returns the caller's aggregate progress across all tutorials.
//
// @Summary      Progress summary
// @Tags         progress
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  domain.ProgressSummary
// @Router       /progress/{userId}/summary [get]
func (h *ProgressHandler) Summary(c echo.Context) error {
	userID, err := ownedUserID(c)
	if err != nil {
		return err
	}

	summary, err := h.service.Summary(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}

// Get returns the caller's progress for one tutorial. A first visit is a
// 404, which the client treats as "no progress yet", not as a failure.
//
// @Summary      Get tutorial progress
// @Tags         progress
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  domain.ProgressRecord
// @Failure      404   {object}  map[string]string
// @Router       /progress/{userId}/tutorials/{tutorialId} [get]
func (h *ProgressHandler) Get(c echo.Context) error {
	userID, err := ownedUserID(c)
	if err != nil {
		return err
	}

	record, err := h.service.Get(c.Request().Context(), userID, c.Param("tutorialId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, record)
}

// Upsert creates or merges the caller's progress for one tutorial.
//
// @Summary      Update tutorial progress
// @Tags         progress
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProgressRequest  true  "Progress fields"
// @Success      200   {object}  domain.ProgressRecord
// @Failure      400   {object}  map[string]string
// @Router       /progress/{userId}/tutorials/{tutorialId} [put]
func (h *ProgressHandler) Upsert(c echo.Context) error {
	userID, err := ownedUserID(c)
	if err != nil {
		return err
	}

	var req updateProgressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	record, err := h.service.Upsert(c.Request().Context(), userID, c.Param("tutorialId"), domain.ProgressUpdate{
		Completed: req.Completed,
		Progress:  req.Progress,
	})
	if err != nil {
		return err
	}

	metrics.ProgressUpsertsTotal.Inc()
	return c.JSON(http.StatusOK, record)
}

// SubmitQuiz scores the caller's answers for a tutorial's quiz and records
// the result as a completion update.
//
// @Summary      Submit quiz
// @Tags         progress
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitQuizRequest  true  "Selected option index per question; -1 means unanswered"
// @Success      200   {object}  submitQuizResponse
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /progress/{userId}/tutorials/{tutorialId}/quiz [post]
func (h *ProgressHandler) SubmitQuiz(c echo.Context) error {
	userID, err := ownedUserID(c)
	if err != nil {
		return err
	}

	var req submitQuizRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tutorialID := c.Param("tutorialId")
	result, record, err := h.service.SubmitQuiz(c.Request().Context(), userID, tutorialID, req.Answers)
	if err != nil {
		return err
	}

	metrics.ProgressUpsertsTotal.Inc()
	metrics.QuizSubmissionsTotal.WithLabelValues(tutorialID).Inc()
	metrics.QuizScorePercent.Observe(result.Percentage)
	return c.JSON(http.StatusOK, submitQuizResponse{Result: result, Progress: record})
}
