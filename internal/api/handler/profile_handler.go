package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devpath/tutorial-platform/internal/core/domain"
	"github.com/devpath/tutorial-platform/internal/core/ports"
)

type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// updateProfileRequest carries a partial update; absent fields stay
// untouched, which is why every field is a pointer.
type updateProfileRequest struct {
	Username    *string `json:"username"     validate:"omitempty,min=1,max=64"`
	DisplayName *string `json:"display_name" validate:"omitempty,max=128"`
	AvatarURL   *string `json:"avatar_url"   validate:"omitempty,max=512"`
	Website     *string `json:"website"      validate:"omitempty,max=512"`
	GithubURL   *string `json:"github_url"   validate:"omitempty,max=512"`
	Bio         *string `json:"bio"          validate:"omitempty,max=2048"`
}

// Get returns the caller's profile.
//
// @Summary      Get profile
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  domain.Profile
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /profiles/{userId} [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	userID, err := ownedUserID(c)
	if err != nil {
		return err
	}

	profile, err := h.service.Get(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// Patch partially updates the caller's profile.
//
// @Summary      Update profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Fields to update"
// @Success      200   {object}  domain.Profile
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /profiles/{userId} [patch]
func (h *ProfileHandler) Patch(c echo.Context) error {
	userID, err := ownedUserID(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.service.Update(c.Request().Context(), userID, domain.ProfileUpdate{
		Username:    req.Username,
		DisplayName: req.DisplayName,
		AvatarURL:   req.AvatarURL,
		Website:     req.Website,
		GithubURL:   req.GithubURL,
		Bio:         req.Bio,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}
