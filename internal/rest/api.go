package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func NewApi(router *gin.Engine, posts *PostsHandler) {
	blogPosts := router.Group("/blog-posts")
	{
		blogPosts.GET("", posts.GetPosts)
		blogPosts.POST("", posts.CreatePost)
		blogPosts.GET("/:postId", posts.GetPost)
		blogPosts.PUT("/:postId", posts.ReplacePost)
		blogPosts.DELETE("/:postId", posts.DeletePost)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
}
