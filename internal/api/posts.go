package api

import (
	"net/http"
	"strconv"

	"posts-api/internal/media"
	"posts-api/internal/store"
	"posts-api/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PostHandler struct {
	store *store.PostStore
	media *media.Store
}

func NewPostHandler(posts *store.PostStore, uploads *media.Store) *PostHandler {
	return &PostHandler{store: posts, media: uploads}
}

// CreatePost handles multipart post creation with optional image and
// video parts. The id is validated before any file is written to disk so
// a rejected request leaves no orphaned uploads behind.
func (h *PostHandler) CreatePost(c *gin.Context) {
	id := c.PostForm("id")
	if id == "" {
		id = uuid.NewString()
	} else if _, err := strconv.Atoi(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID must be a valid number"})
		return
	}

	var imagePath, videoPath string
	if fh, err := c.FormFile("image"); err == nil {
		path, err := h.media.Save(fh)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		imagePath = path
	}
	if fh, err := c.FormFile("video"); err == nil {
		path, err := h.media.Save(fh)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		videoPath = path
	}

	post := models.Post{
		ID:          id,
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Image:       imagePath,
		Video:       videoPath,
		Actress:     c.PostForm("actress"),
	}
	h.store.Insert(post)

	c.JSON(http.StatusCreated, gin.H{"message": "Post created successfully", "post": post})
}

func (h *PostHandler) GetPosts(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.All())
}

func (h *PostHandler) GetPost(c *gin.Context) {
	post, ok := h.store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
		return
	}
	c.JSON(http.StatusOK, post)
}

// UpdatePost overwrites title, description and actress where the body
// supplies a non-empty value; attached media and the id are immutable.
func (h *PostHandler) UpdatePost(c *gin.Context) {
	var req store.UpdatePost
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, ok := h.store.Update(c.Param("id"), req)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post updated successfully", "post": post})
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	if !h.store.Delete(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}
