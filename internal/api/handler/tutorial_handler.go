package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devpath/tutorial-platform/internal/core/domain"
	"github.com/devpath/tutorial-platform/internal/core/ports"
)

// TutorialHandler serves the static tutorial catalog. Responses never
// include the correct-option indices; scoring happens server-side only.
type TutorialHandler struct {
	catalog ports.TutorialCatalog
}

func NewTutorialHandler(catalog ports.TutorialCatalog) *TutorialHandler {
	return &TutorialHandler{catalog: catalog}
}

type tutorialSummary struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Duration      string `json:"duration"`
	Level         string `json:"level"`
	SectionCount  int    `json:"section_count"`
	QuestionCount int    `json:"question_count"`
}

type questionResponse struct {
	Prompt  string   `json:"question"`
	Options []string `json:"options"`
}

type tutorialResponse struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Duration    string             `json:"duration"`
	Level       string             `json:"level"`
	Sections    []domain.Section   `json:"sections"`
	Quiz        []questionResponse `json:"quiz,omitempty"`
}

// List returns catalog metadata for all tutorials.
//
// @Summary      List tutorials
// @Tags         tutorials
// @Produce      json
// @Success      200  {array}  tutorialSummary
// @Router       /tutorials [get]
func (h *TutorialHandler) List(c echo.Context) error {
	tutorials := h.catalog.List()
	out := make([]tutorialSummary, 0, len(tutorials))
	for _, t := range tutorials {
		out = append(out, tutorialSummary{
			ID:            t.ID,
			Title:         t.Title,
			Description:   t.Description,
			Duration:      t.Duration,
			Level:         t.Level,
			SectionCount:  len(t.Sections),
			QuestionCount: len(t.Quiz),
		})
	}
	return c.JSON(http.StatusOK, out)
}

// Get returns one tutorial's full content with quiz answers stripped.
//
// @Summary      Get tutorial
// @Tags         tutorials
// @Produce      json
// @Success      200  {object}  tutorialResponse
// @Failure      404  {object}  map[string]string
// @Router       /tutorials/{id} [get]
func (h *TutorialHandler) Get(c echo.Context) error {
	tutorial, err := h.catalog.Get(c.Param("id"))
	if err != nil {
		return err
	}

	resp := tutorialResponse{
		ID:          tutorial.ID,
		Title:       tutorial.Title,
		Description: tutorial.Description,
		Duration:    tutorial.Duration,
		Level:       tutorial.Level,
		Sections:    tutorial.Sections,
	}
	for _, q := range tutorial.Quiz {
		resp.Quiz = append(resp.Quiz, questionResponse{Prompt: q.Prompt, Options: q.Options})
	}
	return c.JSON(http.StatusOK, resp)
}
