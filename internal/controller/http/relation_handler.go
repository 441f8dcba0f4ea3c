package http

import (
	"net/http"

	"socialnet/internal/usecase"
	"socialnet/pkg/logger"
	"socialnet/pkg/middleware"

	"github.com/gin-gonic/gin"
)

type RelationHandler struct {
	relationUseCase usecase.RelationUseCase
	logger          *logger.Logger
}

func NewRelationHandler(relationUseCase usecase.RelationUseCase, logger *logger.Logger) *RelationHandler {
	return &RelationHandler{
		relationUseCase: relationUseCase,
		logger:          logger,
	}
}

// Follow godoc
// @Summary      Follow a user
// @Tags         relations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User to follow"
// @Success      201  {object}  entity.Follow
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /user/{id}/follow [post]
func (h *RelationHandler) Follow(c *gin.Context) {
	follow, err := h.relationUseCase.Follow(c.Request.Context(), c.GetString(middleware.UserIDKey), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, follow)
}

// Unfollow godoc
// @Summary      Unfollow a user
// @Tags         relations
// @Security     BearerAuth
// @Param        id   path  string  true  "User to unfollow"
// @Success      204
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /user/{id}/follow [delete]
func (h *RelationHandler) Unfollow(c *gin.Context) {
	if err := h.relationUseCase.Unfollow(c.Request.Context(), c.GetString(middleware.UserIDKey), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Followers godoc
// @Summary      List followers of a user
// @Tags         relations
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {array}   entity.Follow
// @Failure      404  {object}  ErrorResponse
// @Router       /user/{id}/followers [get]
func (h *RelationHandler) Followers(c *gin.Context) {
	follows, err := h.relationUseCase.Followers(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, follows)
}

// Following godoc
// @Summary      List users a user follows
// @Tags         relations
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {array}   entity.Follow
// @Failure      404  {object}  ErrorResponse
// @Router       /user/{id}/following [get]
func (h *RelationHandler) Following(c *gin.Context) {
	follows, err := h.relationUseCase.Following(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, follows)
}

// Block godoc
// @Summary      Block a user
// @Description  Also removes follow edges between both users.
// @Tags         relations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User to block"
// @Success      201  {object}  entity.Block
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /user/{id}/block [post]
func (h *RelationHandler) Block(c *gin.Context) {
	block, err := h.relationUseCase.Block(c.Request.Context(), c.GetString(middleware.UserIDKey), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, block)
}

// Unblock godoc
// @Summary      Unblock a user
// @Tags         relations
// @Security     BearerAuth
// @Param        id   path  string  true  "User to unblock"
// @Success      204
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /user/{id}/block [delete]
func (h *RelationHandler) Unblock(c *gin.Context) {
	if err := h.relationUseCase.Unblock(c.Request.Context(), c.GetString(middleware.UserIDKey), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Blocked godoc
// @Summary      List users blocked by the caller
// @Tags         relations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   entity.Block
// @Failure      401  {object}  ErrorResponse
// @Router       /user/blocked [get]
func (h *RelationHandler) Blocked(c *gin.Context) {
	blocks, err := h.relationUseCase.Blocked(c.Request.Context(), c.GetString(middleware.UserIDKey))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, blocks)
}
