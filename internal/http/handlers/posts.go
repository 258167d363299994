package handlers

import (
	"errors"
	"net/http"
	"strings"

	"crypto_webapp/internal/domain"
	"crypto_webapp/internal/store"

	"github.com/gin-gonic/gin"
)

type CreatePostRequest struct {
	UserID   int64  `json:"user_id"`
	Content  string `json:"content"`
	ImageURL string `json:"image_url"`
}

// ListPosts returns the feed newest first with denormalized authors.
func (h *Handler) ListPosts(c *gin.Context) {
	posts := h.Store.ListPosts()
	res := make([]domain.PostWithAuthor, 0, len(posts))
	for _, p := range posts {
		entry := domain.PostWithAuthor{Post: *p}
		if user, err := h.Store.GetUser(p.UserID); err == nil {
			entry.Username = user.Username
			entry.ProfileImage = user.ProfileImage
		}
		res = append(res, entry)
	}

	c.JSON(http.StatusOK, gin.H{"posts": res})
}

func (h *Handler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	req.Content = strings.TrimSpace(req.Content)
	fields := gin.H{}
	if req.UserID <= 0 {
		fields["user_id"] = "required"
	}
	if req.Content == "" {
		fields["content"] = "required"
	} else if len(req.Content) > h.MaxPostLength {
		fields["content"] = "too long"
	}
	if len(fields) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": fields})
		return
	}

	post, err := h.Rewards.CreatePost(req.UserID, req.Content, req.ImageURL)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create post"})
		return
	}

	h.Audit.LogPostCreate(c.Request.Context(), req.UserID, post.ID)

	c.JSON(http.StatusCreated, gin.H{"post": post})
}

// LikePost bumps the like counter; anyone can like any post any number
// of times.
func (h *Handler) LikePost(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}

	post, err := h.Rewards.LikePost(postID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	h.Audit.LogPostLike(c.Request.Context(), post.UserID, postID)

	c.JSON(http.StatusOK, gin.H{"post": post})
}
