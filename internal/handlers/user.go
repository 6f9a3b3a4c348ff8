package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ilyahahaha/vneshtata-new/internal/middleware"
	"github.com/ilyahahaha/vneshtata-new/internal/service"
)

func (h HandlerSet) GetUser(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		h.failValidation(c, map[string]string{"userId": "This field is required"})
		return
	}

	viewer := middleware.CurrentUser(c)

	user, err := h.users.GetUser(c.Request.Context(), viewer.ID, userID)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.ok(c, http.StatusOK, "User data fetched", gin.H{"user": user})
}

func (h HandlerSet) GetBusiedIDs(c *gin.Context) {
	busied, err := h.users.GetBusiedIDs(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	h.ok(c, http.StatusOK, "User IDs fetched", gin.H{"ids": busied})
}

type followRequest struct {
	UserID   string `json:"userId" binding:"required"`
	Unfollow bool   `json:"unfollow"`
}

func (h HandlerSet) Follow(c *gin.Context) {
	var req followRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.failBinding(c, err)
		return
	}

	errs := map[string]string{}
	targetID := trimRequired(errs, "userId", req.UserID)
	if len(errs) > 0 {
		h.failValidation(c, errs)
		return
	}

	actor := middleware.CurrentUser(c)

	if err := h.users.Follow(c.Request.Context(), actor.ID, targetID, req.Unfollow); err != nil {
		h.fail(c, err)
		return
	}

	message := "You are now following this user"
	if req.Unfollow {
		message = "You are no longer following this user"
	}
	h.ok(c, http.StatusCreated, message, nil)
}

type updateUserRequest struct {
	NewUserID string  `json:"newUserId" binding:"required"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
}

// UpdateUser mutates the session user's own account; the acting
// identity comes from the cookie alone.
func (h HandlerSet) UpdateUser(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.failBinding(c, err)
		return
	}

	errs := map[string]string{}
	newUserID := trimRequired(errs, "newUserId", req.NewUserID)
	if len(errs) > 0 {
		h.failValidation(c, errs)
		return
	}

	actor := middleware.CurrentUser(c)

	session, err := h.users.UpdateUser(c.Request.Context(), actor.ID, service.UpdateUserInput{
		NewUserID: newUserID,
		FirstName: trimOptional(req.FirstName),
		LastName:  trimOptional(req.LastName),
		Email:     trimOptional(req.Email),
		Password:  trimOptional(req.Password),
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	if err := h.sessions.Issue(c, session); err != nil {
		h.fail(c, service.Internal(err))
		return
	}

	h.ok(c, http.StatusCreated, "User updated", gin.H{"session": session})
}

type updateProfileRequest struct {
	Status    *string `json:"status"`
	Position  *string `json:"position"`
	Company   *string `json:"company"`
	Country   *string `json:"country"`
	Education *string `json:"education"`
	About     *string `json:"about"`
}

func (h HandlerSet) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.failBinding(c, err)
		return
	}

	actor := middleware.CurrentUser(c)

	profile, err := h.users.UpdateProfile(c.Request.Context(), actor.ID, service.UpdateProfileInput{
		Status:    trimOptional(req.Status),
		Position:  trimOptional(req.Position),
		Company:   trimOptional(req.Company),
		Country:   trimOptional(req.Country),
		Education: trimOptional(req.Education),
		About:     trimOptional(req.About),
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	h.ok(c, http.StatusCreated, "Profile updated", gin.H{"profile": profile})
}

type createEmploymentRequest struct {
	Company    string `json:"company" binding:"required"`
	Position   string `json:"position" binding:"required"`
	EmployedOn string `json:"employedOn" binding:"required"`
}

func (h HandlerSet) CreateEmployment(c *gin.Context) {
	var req createEmploymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.failBinding(c, err)
		return
	}

	errs := map[string]string{}
	company := trimRequired(errs, "company", req.Company)
	position := trimRequired(errs, "position", req.Position)
	employedOn := trimRequired(errs, "employedOn", req.EmployedOn)
	if len(errs) > 0 {
		h.failValidation(c, errs)
		return
	}

	actor := middleware.CurrentUser(c)

	employment, err := h.users.CreateEmployment(c.Request.Context(), actor.ID, service.CreateEmploymentInput{
		Company:    company,
		Position:   position,
		EmployedOn: employedOn,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	h.ok(c, http.StatusCreated, "Employment history updated", gin.H{"employment": employment})
}

func (h HandlerSet) DeleteEmployment(c *gin.Context) {
	employmentID := c.Param("employmentId")
	if employmentID == "" {
		h.failValidation(c, map[string]string{"employmentId": "This field is required"})
		return
	}

	actor := middleware.CurrentUser(c)

	if err := h.users.DeleteEmployment(c.Request.Context(), actor.ID, employmentID); err != nil {
		h.fail(c, err)
		return
	}

	h.ok(c, http.StatusCreated, "Employment deleted", nil)
}

func (h HandlerSet) UploadAvatar(c *gin.Context) {
	if h.avatars == nil {
		h.fail(c, service.Internal(errAvatarsDisabled))
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		h.failValidation(c, map[string]string{"file": "This field is required"})
		return
	}
	defer file.Close()

	actor := middleware.CurrentUser(c)

	session, err := h.avatars.Upload(c.Request.Context(), actor, file, header)
	if err != nil {
		h.fail(c, err)
		return
	}

	if err := h.sessions.Issue(c, session); err != nil {
		h.fail(c, service.Internal(err))
		return
	}

	h.ok(c, http.StatusCreated, "Avatar updated", gin.H{"session": session})
}
