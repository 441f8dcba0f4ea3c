package http

import (
	"net/http"

	"socialnet/internal/entity"
	"socialnet/internal/usecase"
	"socialnet/pkg/logger"
	"socialnet/pkg/middleware"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUseCase usecase.PostUseCase
	logger      *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
		logger:      logger,
	}
}

// PostRequest carries the image as base64 in JSON. A user_id field, if
// present, is ignored.
type PostRequest struct {
	Description string `json:"description"`
	Image       []byte `json:"image" swaggertype:"string" format:"base64"`
}

// UpdatePostRequest leaves the stored image alone when image is omitted or
// null. An empty string removes it.
type UpdatePostRequest struct {
	Description string  `json:"description"`
	Image       *[]byte `json:"image" swaggertype:"string" format:"base64"`
}

// CreatePost godoc
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body PostRequest true "Post data"
// @Success      201  {object}  entity.Post
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /post [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	post, err := h.postUseCase.Create(c.Request.Context(), userID, &entity.Post{
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// GetPost godoc
// @Summary      Get post by ID
// @Description  Responds with null when the post does not exist.
// @Tags         posts
// @Produce      json
// @Param        post_id  path      string  true  "Post ID"
// @Success      200      {object}  entity.Post
// @Failure      500      {object}  ErrorResponse
// @Router       /post/{post_id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postUseCase.GetByID(c.Request.Context(), c.Param("post_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// ListPosts godoc
// @Summary      List posts
// @Description  Newest first.
// @Tags         posts
// @Produce      json
// @Success      200  {array}   entity.Post
// @Failure      500  {object}  ErrorResponse
// @Router       /post [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.postUseCase.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// UpdatePost godoc
// @Summary      Update own post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        post_id  path      string       true  "Post ID"
// @Param        request  body      UpdatePostRequest  true  "Post data"
// @Success      200      {object}  entity.Post
// @Failure      400      {object}  ErrorResponse
// @Failure      401      {object}  ErrorResponse
// @Failure      403      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /post/{post_id} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	var image []byte
	if req.Image != nil {
		image = append([]byte{}, *req.Image...)
	}

	post, err := h.postUseCase.Update(c.Request.Context(), userID, &entity.Post{
		ID:          c.Param("post_id"),
		Description: req.Description,
		Image:       image,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost godoc
// @Summary      Delete own post
// @Tags         posts
// @Security     BearerAuth
// @Param        post_id  path  string  true  "Post ID"
// @Success      204
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /post/{post_id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	if err := h.postUseCase.Delete(c.Request.Context(), userID, c.Param("post_id")); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Ping godoc
// @Summary      Liveness check for the post routes
// @Tags         posts
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /post/ping [get]
func (h *PostHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
