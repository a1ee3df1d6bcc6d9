package rest

import (
	"errors"
	"net/http"

	"github.com/dfryer1193/blogposts/api"
	"github.com/dfryer1193/blogposts/blog/application"
	"github.com/dfryer1193/blogposts/blog/domain"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type PostsHandler struct {
	postService *application.PostService
}

func NewPostsHandler(postService *application.PostService) *PostsHandler {
	return &PostsHandler{
		postService: postService,
	}
}

func (h *PostsHandler) GetPosts(c *gin.Context) {
	posts, err := h.postService.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.FromDomainList(posts))
}

func (h *PostsHandler) GetPost(c *gin.Context) {
	post, err := h.postService.Get(c.Request.Context(), c.Param("postId"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.FromDomain(post))
}

func (h *PostsHandler) CreatePost(c *gin.Context) {
	postProto := &api.PostProto{}
	if err := c.ShouldBindJSON(postProto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postService.Create(c.Request.Context(), postProto.Title, postProto.Content, postProto.Author)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, api.FromDomain(post))
}

func (h *PostsHandler) ReplacePost(c *gin.Context) {
	postProto := &api.PostProto{}
	if err := c.ShouldBindJSON(postProto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.postService.Replace(c.Request.Context(), c.Param("postId"), application.PostUpdate{
		ID:      postProto.ID,
		Title:   postProto.Title,
		Content: postProto.Content,
		Author:  postProto.Author,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *PostsHandler) DeletePost(c *gin.Context) {
	if err := h.postService.Delete(c.Request.Context(), c.Param("postId")); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// writeError maps domain errors onto HTTP status codes
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Failed to handle request")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
