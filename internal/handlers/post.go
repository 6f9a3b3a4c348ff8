package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ilyahahaha/vneshtata-new/internal/middleware"
)

func (h HandlerSet) GetPosts(c *gin.Context) {
	skip := 0
	if raw := c.Query("skip"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			h.failValidation(c, map[string]string{"skip": "Invalid value"})
			return
		}
		skip = parsed
	}

	viewer := middleware.CurrentUser(c)

	posts, err := h.posts.GetFeed(c.Request.Context(), viewer.ID, skip)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.ok(c, http.StatusOK, "Posts fetched", gin.H{"posts": posts})
}

type addPostRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h HandlerSet) AddPost(c *gin.Context) {
	var req addPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.failBinding(c, err)
		return
	}

	errs := map[string]string{}
	content := trimRequired(errs, "content", req.Content)
	if len(errs) > 0 {
		h.failValidation(c, errs)
		return
	}

	author := middleware.CurrentUser(c)

	post, err := h.posts.AddPost(c.Request.Context(), author.ID, content)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.ok(c, http.StatusOK, "Post published", gin.H{"post": post})
}

type likePostRequest struct {
	PostID  string `json:"postId" binding:"required"`
	Dislike bool   `json:"dislike"`
}

func (h HandlerSet) LikePost(c *gin.Context) {
	var req likePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.failBinding(c, err)
		return
	}

	errs := map[string]string{}
	postID := trimRequired(errs, "postId", req.PostID)
	if len(errs) > 0 {
		h.failValidation(c, errs)
		return
	}

	actor := middleware.CurrentUser(c)

	count, err := h.posts.Like(c.Request.Context(), actor.ID, postID, req.Dislike)
	if err != nil {
		h.fail(c, err)
		return
	}

	message := "Like added"
	if req.Dislike {
		message = "Like removed"
	}
	h.ok(c, http.StatusOK, message, gin.H{"likes": count})
}

type commentPostRequest struct {
	PostID  string `json:"postId" binding:"required"`
	Content string `json:"content" binding:"required"`
}

func (h HandlerSet) CommentPost(c *gin.Context) {
	var req commentPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.failBinding(c, err)
		return
	}

	errs := map[string]string{}
	postID := trimRequired(errs, "postId", req.PostID)
	content := trimRequired(errs, "content", req.Content)
	if len(errs) > 0 {
		h.failValidation(c, errs)
		return
	}

	author := middleware.CurrentUser(c)

	comment, err := h.posts.Comment(c.Request.Context(), author.ID, postID, content)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.ok(c, http.StatusOK, "Comment added", gin.H{"comment": comment})
}

func (h HandlerSet) GetPostComments(c *gin.Context) {
	postID := c.Param("postId")
	if postID == "" {
		h.failValidation(c, map[string]string{"postId": "This field is required"})
		return
	}

	comments, err := h.posts.GetComments(c.Request.Context(), postID)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.ok(c, http.StatusOK, "Comments fetched", gin.H{"comments": comments})
}
