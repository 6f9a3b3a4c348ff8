package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ilyahahaha/vneshtata-new/internal/middleware"
)

func (h HandlerSet) GetDialogs(c *gin.Context) {
	caller := middleware.CurrentUser(c)

	dialogs, err := h.chat.GetDialogs(c.Request.Context(), caller.ID)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.ok(c, http.StatusOK, "Dialogs fetched", gin.H{"dialogs": dialogs})
}

func (h HandlerSet) GetMessages(c *gin.Context) {
	counterpartID := c.Param("userId")
	if counterpartID == "" {
		h.failValidation(c, map[string]string{"userId": "This field is required"})
		return
	}

	caller := middleware.CurrentUser(c)

	messages, err := h.chat.GetMessages(c.Request.Context(), caller.ID, counterpartID)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.ok(c, http.StatusOK, "Messages fetched", gin.H{"messages": messages})
}

type sendMessageRequest struct {
	ReceiverID string `json:"receiverId" binding:"required"`
	Content    string `json:"content" binding:"required"`
}

// SendMessage derives the sender from the session; clients cannot send
// on behalf of another user.
func (h HandlerSet) SendMessage(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.failBinding(c, err)
		return
	}

	errs := map[string]string{}
	receiverID := trimRequired(errs, "receiverId", req.ReceiverID)
	content := trimRequired(errs, "content", req.Content)
	if len(errs) > 0 {
		h.failValidation(c, errs)
		return
	}

	sender := middleware.CurrentUser(c)

	message, err := h.chat.SendMessage(c.Request.Context(), sender.ID, receiverID, content)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.ok(c, http.StatusCreated, "Message sent", gin.H{"message": message})
}
