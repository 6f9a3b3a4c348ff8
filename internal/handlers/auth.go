package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ilyahahaha/vneshtata-new/internal/middleware"
	"github.com/ilyahahaha/vneshtata-new/internal/models"
	"github.com/ilyahahaha/vneshtata-new/internal/service"
)

// Session is the whoami query: it echoes the cookie-derived identity,
// or the empty session when the caller is not logged in.
func (h HandlerSet) Session(c *gin.Context) {
	h.ok(c, http.StatusOK, "Session fetched", gin.H{
		"session": middleware.CurrentUser(c),
	})
}

type registerRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
}

func (h HandlerSet) RegisterUser(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.failBinding(c, err)
		return
	}

	errs := map[string]string{}
	firstName := trimRequired(errs, "firstName", req.FirstName)
	lastName := trimRequired(errs, "lastName", req.LastName)
	email := trimRequired(errs, "email", req.Email)
	password := trimRequired(errs, "password", req.Password)
	if len(errs) > 0 {
		h.failValidation(c, errs)
		return
	}

	session, err := h.auth.Register(c.Request.Context(), service.RegisterInput{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	if err := h.sessions.Issue(c, session); err != nil {
		h.fail(c, service.Internal(err))
		return
	}

	h.ok(c, http.StatusCreated, "You have successfully registered", gin.H{"session": session})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h HandlerSet) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.failBinding(c, err)
		return
	}

	errs := map[string]string{}
	email := trimRequired(errs, "email", req.Email)
	password := trimRequired(errs, "password", req.Password)
	if len(errs) > 0 {
		h.failValidation(c, errs)
		return
	}

	session, err := h.auth.Login(c.Request.Context(), service.LoginInput{
		Email:    email,
		Password: password,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	if err := h.sessions.Issue(c, session); err != nil {
		h.fail(c, service.Internal(err))
		return
	}

	h.ok(c, http.StatusCreated, "You have successfully logged in", gin.H{"session": session})
}

func (h HandlerSet) Logout(c *gin.Context) {
	h.sessions.Clear(c)

	h.ok(c, http.StatusCreated, "You have logged out", gin.H{
		"session": models.EmptySession,
	})
}
