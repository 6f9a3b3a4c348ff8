package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/ilyahahaha/vneshtata-new/internal/ids"
	"github.com/ilyahahaha/vneshtata-new/internal/models"
	"github.com/ilyahahaha/vneshtata-new/internal/repository"
)

type messageStore interface {
	Create(ctx context.Context, message models.Message) error
	ListDialogs(ctx context.Context, userID string) ([]models.Dialog, error)
	ListBetween(ctx context.Context, userID, counterpartID string) ([]models.ChatMessage, error)
}

type ChatService struct {
	messages messageStore
	log      zerolog.Logger
}

func NewChatService(messages messageStore, log zerolog.Logger) *ChatService {
	return &ChatService{messages: messages, log: log}
}

func (s *ChatService) GetDialogs(ctx context.Context, userID string) ([]models.Dialog, error) {
	dialogs, err := s.messages.ListDialogs(ctx, userID)
	if err != nil {
		return nil, Internal(err)
	}
	return dialogs, nil
}

func (s *ChatService) GetMessages(ctx context.Context, userID, counterpartID string) ([]models.ChatMessage, error) {
	messages, err := s.messages.ListBetween(ctx, userID, counterpartID)
	if err != nil {
		return nil, Internal(err)
	}
	return messages, nil
}

// SendMessage creates a message from the session user to the receiver.
// There is no delivery or read-receipt tracking.
func (s *ChatService) SendMessage(ctx context.Context, senderID, receiverID, content string) (models.Message, error) {
	message := models.Message{
		ID:         ids.New(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		SentAt:     time.Now().UTC(),
	}

	if err := s.messages.Create(ctx, message); err != nil {
		if errors.Is(err, repository.ErrMissingReference) {
			return models.Message{}, NotFound("User with this ID not found")
		}
		return models.Message{}, Internal(err)
	}
	return message, nil
}
