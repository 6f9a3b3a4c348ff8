package models

import "time"

type Message struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Content    string    `json:"content"`
	SentAt     time.Time `json:"sentAt"`
}

// Dialog is the most recent message exchanged with a counterpart, with
// both participants' display fields attached. The dialog list carries
// one row per ordered (sender, receiver) pair; collapsing the two
// directions of one conversation is left to the caller.
type Dialog struct {
	Sender   UserSummary `json:"sender"`
	Receiver UserSummary `json:"receiver"`
	Content  string      `json:"content"`
	SentAt   time.Time   `json:"sentAt"`
}

type ChatMessage struct {
	Sender   UserSummary `json:"sender"`
	Receiver UserSummary `json:"receiver"`
	Content  string      `json:"content"`
	SentAt   time.Time   `json:"sentAt"`
}
