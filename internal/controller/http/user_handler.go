package http

import (
	"net/http"
	"time"

	"socialnet/internal/entity"
	"socialnet/internal/usecase"
	"socialnet/pkg/errs"
	"socialnet/pkg/logger"
	"socialnet/pkg/middleware"

	"github.com/gin-gonic/gin"
)

const maxAvatarSize = 5 << 20

type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      *logger.Logger
}

func NewUserHandler(userUseCase usecase.UserUseCase, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

type CreateUserRequest struct {
	Name      string  `json:"name"`
	Username  string  `json:"username"`
	Password  string  `json:"password"`
	Active    *bool   `json:"active"`
	BirthDate *string `json:"birth_date"`
}

type UpdateUserRequest struct {
	Name      *string `json:"name"`
	Username  *string `json:"username"`
	Active    *bool   `json:"active"`
	BirthDate *string `json:"birth_date"`
}

// parseBirthDate accepts a calendar date or an RFC 3339 timestamp.
func parseBirthDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", *value); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, *value)
	if err != nil {
		return nil, errs.Errorf(errs.EINVALID, "birth_date must be YYYY-MM-DD or RFC 3339")
	}
	return &t, nil
}

// CreateUser godoc
// @Summary      Create a new user
// @Description  Register a user. The password is stored as a bcrypt hash and never returned.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body CreateUserRequest true "User data"
// @Success      201  {object}  entity.User
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /user/new [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if req.Active == nil {
		badRequest(c, "active is required")
		return
	}

	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	user, err := h.userUseCase.Create(c.Request.Context(), &entity.User{
		Name:      req.Name,
		Username:  req.Username,
		Password:  req.Password,
		Active:    *req.Active,
		BirthDate: birthDate,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GetUser godoc
// @Summary      Get user by ID
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  entity.User
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /user/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userUseCase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// ListUsers godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}   entity.User
// @Failure      500  {object}  ErrorResponse
// @Router       /user [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userUseCase.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// UpdateUser godoc
// @Summary      Update the authenticated user
// @Description  Only the supplied fields change. The password cannot be changed here.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body UpdateUserRequest true "Fields to update"
// @Success      200  {object}  entity.User
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /user [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	user, err := h.userUseCase.Update(c.Request.Context(), userID, entity.UserPatch{
		Name:      req.Name,
		Username:  req.Username,
		Active:    req.Active,
		BirthDate: birthDate,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser godoc
// @Summary      Delete the authenticated user
// @Description  Removes the account with its posts, comments, likes, follows and blocks.
// @Tags         users
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /user [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userUseCase.Delete(c.Request.Context(), c.GetString(middleware.UserIDKey)); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadAvatar godoc
// @Summary      Upload profile image
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        avatar formData file true "Image file (max 5MB)"
// @Success      200  {object}  entity.User
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      503  {object}  ErrorResponse
// @Router       /user/avatar [put]
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	file, err := c.FormFile("avatar")
	if err != nil {
		badRequest(c, "Avatar file is required")
		return
	}
	if file.Size > maxAvatarSize {
		badRequest(c, "Avatar must be at most 5MB")
		return
	}

	src, err := file.Open()
	if err != nil {
		badRequest(c, "Failed to read avatar file")
		return
	}
	defer src.Close()

	user, err := h.userUseCase.UploadProfileImage(c.Request.Context(), userID, src, file.Filename, file.Header.Get("Content-Type"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Ping godoc
// @Summary      Liveness check for the user routes
// @Tags         users
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /user/ping [get]
func (h *UserHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
