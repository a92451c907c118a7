package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pixelgram/social-api/internal/api/metrics"
	"github.com/pixelgram/social-api/internal/core/ports"
)

// UserHandler handles HTTP requests for profiles and the follow relation.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Get handles GET /v1/users/:id.
//
// @Summary      Get a user profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userDetailResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	detail, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDetailResponse(detail))
}

// Me handles GET /v1/users/me — the authenticated user's own profile.
//
// @Summary      Get own profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userDetailResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	detail, err := h.service.Get(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDetailResponse(detail))
}

// List handles GET /v1/users?limit=.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum number of users"
// @Success      200    {object}  userListResponse
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	profiles, err := h.service.List(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProfileListResponse(profiles))
}

// Search handles GET /v1/users/search?query=.
//
// @Summary      Search users by username or name
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        query  query     string  true   "Search term"
// @Param        limit  query     int     false  "Maximum number of users"
// @Success      200    {object}  userListResponse
// @Failure      400    {object}  errorResponse
// @Router       /v1/users/search [get]
func (h *UserHandler) Search(c echo.Context) error {
	query := c.QueryParam("query")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query is required")
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	profiles, err := h.service.Search(c.Request().Context(), query, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProfileListResponse(profiles))
}

// FollowToggle handles PATCH /v1/users/follow/:id.
//
// @Summary      Follow or unfollow a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Target user id"
// @Success      200  {object}  followToggleResponse
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/users/follow/{id} [patch]
func (h *UserHandler) FollowToggle(c echo.Context) error {
	actorID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	result, err := h.service.FollowToggle(c.Request().Context(), actorID, c.Param("id"))
	if err != nil {
		return err
	}

	metrics.FollowTogglesTotal.WithLabelValues(string(result.Action)).Inc()
	return c.JSON(http.StatusOK, followToggleResponse{
		Action: string(result.Action),
		Target: toProfileResponse(result.Target),
	})
}

// Followers handles GET /v1/users/:id/followers.
//
// @Summary      List a user's followers
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userListResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/users/{id}/followers [get]
func (h *UserHandler) Followers(c echo.Context) error {
	profiles, err := h.service.Followers(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProfileListResponse(profiles))
}

// Following handles GET /v1/users/:id/following.
//
// @Summary      List who a user follows
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userListResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/users/{id}/following [get]
func (h *UserHandler) Following(c echo.Context) error {
	profiles, err := h.service.Following(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProfileListResponse(profiles))
}
