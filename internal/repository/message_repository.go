package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ilyahahaha/vneshtata-new/internal/models"
)

type MessageRepository struct {
	pool *pgxpool.Pool
}

func NewMessageRepository(pool *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{pool: pool}
}

func (r *MessageRepository) Create(ctx context.Context, message models.Message) error {
	const query = `
		INSERT INTO messages (id, sender_id, receiver_id, content, sent_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		message.ID,
		message.SenderID,
		message.ReceiverID,
		message.Content,
		message.SentAt,
	)
	return translateError(err)
}

// ListDialogs returns the most recent message per ordered (sender,
// receiver) pair involving userID, newest first. A conversation with
// traffic in both directions yields two rows, one per direction;
// collapsing them by counterpart is the caller's concern.
func (r *MessageRepository) ListDialogs(ctx context.Context, userID string) ([]models.Dialog, error) {
	const query = `
		SELECT d.content, d.sent_at,
		       s.id, s.first_name, s.last_name, s.picture,
		       t.id, t.first_name, t.last_name, t.picture
		FROM (
			SELECT DISTINCT ON (m.sender_id, m.receiver_id)
			       m.sender_id, m.receiver_id, m.content, m.sent_at
			FROM messages m
			WHERE (m.sender_id = $1 OR m.receiver_id = $1)
			  AND m.sender_id <> m.receiver_id
			ORDER BY m.sender_id, m.receiver_id, m.sent_at DESC
		) d
		JOIN users s ON s.id = d.sender_id
		JOIN users t ON t.id = d.receiver_id
		ORDER BY d.sent_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dialogs := make([]models.Dialog, 0)
	for rows.Next() {
		var dialog models.Dialog
		if err := rows.Scan(
			&dialog.Content,
			&dialog.SentAt,
			&dialog.Sender.ID,
			&dialog.Sender.FirstName,
			&dialog.Sender.LastName,
			&dialog.Sender.Picture,
			&dialog.Receiver.ID,
			&dialog.Receiver.FirstName,
			&dialog.Receiver.LastName,
			&dialog.Receiver.Picture,
		); err != nil {
			return nil, err
		}
		dialogs = append(dialogs, dialog)
	}
	return dialogs, rows.Err()
}

// ListBetween returns the full history between two users, oldest first.
func (r *MessageRepository) ListBetween(ctx context.Context, userID, counterpartID string) ([]models.ChatMessage, error) {
	const query = `
		SELECT m.content, m.sent_at,
		       s.id, s.first_name, s.last_name, s.picture,
		       t.id, t.first_name, t.last_name, t.picture
		FROM messages m
		JOIN users s ON s.id = m.sender_id
		JOIN users t ON t.id = m.receiver_id
		WHERE (m.sender_id = $1 AND m.receiver_id = $2)
		   OR (m.sender_id = $2 AND m.receiver_id = $1)
		ORDER BY m.sent_at ASC
	`

	rows, err := r.pool.Query(ctx, query, userID, counterpartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]models.ChatMessage, 0)
	for rows.Next() {
		var message models.ChatMessage
		if err := rows.Scan(
			&message.Content,
			&message.SentAt,
			&message.Sender.ID,
			&message.Sender.FirstName,
			&message.Sender.LastName,
			&message.Sender.Picture,
			&message.Receiver.ID,
			&message.Receiver.FirstName,
			&message.Receiver.LastName,
			&message.Receiver.Picture,
		); err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, rows.Err()
}
