package http

import (
	"net/http"

	"socialnet/pkg/jwt"
	"socialnet/pkg/middleware"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	User        *UserHandler
	Auth        *AuthHandler
	Post        *PostHandler
	Interaction *InteractionHandler
	Relation    *RelationHandler
}

// RegisterRoutes mounts every endpoint on r. authLimiter, when not nil,
// guards POST /user/auth.
func RegisterRoutes(r *gin.Engine, h Handlers, jwtService *jwt.Service, authLimiter gin.HandlerFunc) {
	authRequired := middleware.AuthMiddleware(jwtService)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	users := r.Group("/user")
	{
		users.GET("/ping", h.User.Ping)
		users.POST("/new", h.User.CreateUser)
		users.GET("", h.User.ListUsers)
		users.GET("/:id", h.User.GetUser)
		users.GET("/:id/followers", h.Relation.Followers)
		users.GET("/:id/following", h.Relation.Following)

		authChain := []gin.HandlerFunc{}
		if authLimiter != nil {
			authChain = append(authChain, authLimiter)
		}
		users.POST("/auth", append(authChain, h.Auth.Authenticate)...)

		protected := users.Group("")
		protected.Use(authRequired)
		protected.PUT("", h.User.UpdateUser)
		protected.DELETE("", h.User.DeleteUser)
		protected.PUT("/avatar", h.User.UploadAvatar)
		protected.GET("/blocked", h.Relation.Blocked)
		protected.POST("/:id/follow", h.Relation.Follow)
		protected.DELETE("/:id/follow", h.Relation.Unfollow)
		protected.POST("/:id/block", h.Relation.Block)
		protected.DELETE("/:id/block", h.Relation.Unblock)
	}

	posts := r.Group("/post")
	{
		posts.GET("/ping", h.Post.Ping)
		posts.GET("", h.Post.ListPosts)
		posts.GET("/:post_id", h.Post.GetPost)
		posts.GET("/:post_id/likes", h.Interaction.ListLikes)
		posts.GET("/:post_id/comments", h.Interaction.ListComments)

		protected := posts.Group("")
		protected.Use(authRequired)
		protected.POST("", h.Post.CreatePost)
		protected.PUT("/:post_id", h.Post.UpdatePost)
		protected.DELETE("/:post_id", h.Post.DeletePost)
		protected.POST("/:post_id/like", h.Interaction.LikePost)
		protected.DELETE("/:post_id/like", h.Interaction.UnlikePost)
		protected.POST("/:post_id/comments", h.Interaction.CreateComment)
	}

	r.DELETE("/comment/:comment_id", authRequired, h.Interaction.DeleteComment)
}
