package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ilyahahaha/vneshtata-new/internal/models"
)

func newChatFixture() (*ChatService, *fakeMessageStore, *fakeUserStore) {
	users := newFakeUserStore()
	users.users["ivan"] = models.User{ID: "ivan", FirstName: "Ivan", LastName: "Petrov"}
	users.users["maria"] = models.User{ID: "maria", FirstName: "Maria", LastName: "Ivanova"}
	messages := newFakeMessageStore(users)
	return NewChatService(messages, zerolog.Nop()), messages, users
}

func TestSendMessage(t *testing.T) {
	svc, messages, _ := newChatFixture()
	ctx := context.Background()

	message, err := svc.SendMessage(ctx, "ivan", "maria", "hello")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if message.SenderID != "ivan" || message.ReceiverID != "maria" {
		t.Fatalf("message endpoints: %+v", message)
	}
	if message.ID == "" || message.SentAt.IsZero() {
		t.Fatalf("message metadata unset: %+v", message)
	}
	if len(messages.messages) != 1 {
		t.Fatalf("stored messages: %d", len(messages.messages))
	}

	_, err = svc.SendMessage(ctx, "ivan", "ghost", "hello?")
	svcErr := requireServiceError(t, err, CodeNotFound)
	if svcErr.Message != "User with this ID not found" {
		t.Fatalf("unexpected message: %q", svcErr.Message)
	}
}

func TestGetMessagesOrderedOldestFirst(t *testing.T) {
	svc, _, _ := newChatFixture()
	ctx := context.Background()

	if _, err := svc.SendMessage(ctx, "ivan", "maria", "first"); err != nil {
		t.Fatalf("send: %v", err)
	}
	time.Sleep(time.Millisecond)
	if _, err := svc.SendMessage(ctx, "maria", "ivan", "second"); err != nil {
		t.Fatalf("send: %v", err)
	}

	history, err := svc.GetMessages(ctx, "ivan", "maria")
	if err != nil {
		t.Fatalf("get messages: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("history length: %d", len(history))
	}
	if history[0].Content != "first" || history[1].Content != "second" {
		t.Fatalf("history order: %+v", history)
	}
	if history[0].Sender.FirstName != "Ivan" || history[1].Sender.FirstName != "Maria" {
		t.Fatalf("sender display fields: %+v", history)
	}
}

func TestGetDialogsNewestFirst(t *testing.T) {
	svc, _, _ := newChatFixture()
	ctx := context.Background()

	if _, err := svc.SendMessage(ctx, "ivan", "maria", "older"); err != nil {
		t.Fatalf("send: %v", err)
	}
	time.Sleep(time.Millisecond)
	if _, err := svc.SendMessage(ctx, "ivan", "maria", "newer"); err != nil {
		t.Fatalf("send: %v", err)
	}
	time.Sleep(time.Millisecond)
	if _, err := svc.SendMessage(ctx, "maria", "ivan", "reply"); err != nil {
		t.Fatalf("send: %v", err)
	}

	dialogs, err := svc.GetDialogs(ctx, "ivan")
	if err != nil {
		t.Fatalf("get dialogs: %v", err)
	}

	// One row per message direction, each carrying only the latest
	// message sent that way.
	if len(dialogs) != 2 {
		t.Fatalf("dialogs: %+v", dialogs)
	}
	if dialogs[0].Content != "reply" {
		t.Fatalf("newest dialog first, got %q", dialogs[0].Content)
	}
	if dialogs[1].Content != "newer" {
		t.Fatalf("older direction must carry its latest message, got %q", dialogs[1].Content)
	}
}
