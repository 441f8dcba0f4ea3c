package http

import (
	"net/http"

	"socialnet/internal/entity"
	"socialnet/internal/usecase"
	"socialnet/pkg/logger"
	"socialnet/pkg/middleware"

	"github.com/gin-gonic/gin"
)

type InteractionHandler struct {
	interactionUseCase usecase.InteractionUseCase
	logger             *logger.Logger
}

func NewInteractionHandler(interactionUseCase usecase.InteractionUseCase, logger *logger.Logger) *InteractionHandler {
	return &InteractionHandler{
		interactionUseCase: interactionUseCase,
		logger:             logger,
	}
}

type CommentRequest struct {
	Description string `json:"description"`
}

type LikesResponse struct {
	PostID     string         `json:"post_id"`
	LikesCount int            `json:"likes_count"`
	Likes      []*entity.Like `json:"likes"`
}

// LikePost godoc
// @Summary      Like a post
// @Tags         interactions
// @Produce      json
// @Security     BearerAuth
// @Param        post_id  path      string  true  "Post ID"
// @Success      201      {object}  entity.Like
// @Failure      401      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse
// @Failure      409      {object}  ErrorResponse
// @Router       /post/{post_id}/like [post]
func (h *InteractionHandler) LikePost(c *gin.Context) {
	like, err := h.interactionUseCase.Like(c.Request.Context(), c.GetString(middleware.UserIDKey), c.Param("post_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, like)
}

// UnlikePost godoc
// @Summary      Remove a like
// @Tags         interactions
// @Security     BearerAuth
// @Param        post_id  path  string  true  "Post ID"
// @Success      204
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /post/{post_id}/like [delete]
func (h *InteractionHandler) UnlikePost(c *gin.Context) {
	if err := h.interactionUseCase.Unlike(c.Request.Context(), c.GetString(middleware.UserIDKey), c.Param("post_id")); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListLikes godoc
// @Summary      List likes of a post
// @Tags         interactions
// @Produce      json
// @Param        post_id  path      string  true  "Post ID"
// @Success      200      {object}  LikesResponse
// @Failure      404      {object}  ErrorResponse
// @Router       /post/{post_id}/likes [get]
func (h *InteractionHandler) ListLikes(c *gin.Context) {
	postID := c.Param("post_id")

	likes, err := h.interactionUseCase.ListLikes(c.Request.Context(), postID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, LikesResponse{
		PostID:     postID,
		LikesCount: len(likes),
		Likes:      likes,
	})
}

// CreateComment godoc
// @Summary      Comment on a post
// @Tags         interactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        post_id  path      string          true  "Post ID"
// @Param        request  body      CommentRequest  true  "Comment"
// @Success      201      {object}  entity.Comment
// @Failure      400      {object}  ErrorResponse
// @Failure      401      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse
// @Router       /post/{post_id}/comments [post]
func (h *InteractionHandler) CreateComment(c *gin.Context) {
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	comment, err := h.interactionUseCase.Comment(c.Request.Context(), c.GetString(middleware.UserIDKey), c.Param("post_id"), req.Description)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// ListComments godoc
// @Summary      List comments of a post
// @Description  Oldest first.
// @Tags         interactions
// @Produce      json
// @Param        post_id  path      string  true  "Post ID"
// @Success      200      {array}   entity.Comment
// @Failure      404      {object}  ErrorResponse
// @Router       /post/{post_id}/comments [get]
func (h *InteractionHandler) ListComments(c *gin.Context) {
	comments, err := h.interactionUseCase.ListComments(c.Request.Context(), c.Param("post_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Description  Allowed for the comment author and the owner of the post.
// @Tags         interactions
// @Security     BearerAuth
// @Param        comment_id  path  string  true  "Comment ID"
// @Success      204
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /comment/{comment_id} [delete]
func (h *InteractionHandler) DeleteComment(c *gin.Context) {
	if err := h.interactionUseCase.DeleteComment(c.Request.Context(), c.GetString(middleware.UserIDKey), c.Param("comment_id")); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
