package domain

import "time"

const (
	// SystemSenderID marks messages generated by the engine itself.
	SystemSenderID   = "system"
	systemSenderName = "System"
)

// Message is one entry in a ticket thread. Immutable once created; ordering
// within a ticket is append order.
type Message struct {
	ID         string
	SenderID   string
	SenderName string
	Content    string
	CreatedAt  time.Time
	IsSystem   bool
}

// NewMessage creates a message authored by a client or agent.
func NewMessage(id, senderID, senderName, content string, now time.Time) Message {
	return Message{
		ID:         id,
		SenderID:   senderID,
		SenderName: senderName,
		Content:    content,
		CreatedAt:  now,
	}
}

// NewSystemMessage creates an engine-authored thread entry.
func NewSystemMessage(id, content string, now time.Time) Message {
	return Message{
		ID:         id,
		SenderID:   SystemSenderID,
		SenderName: systemSenderName,
		Content:    content,
		CreatedAt:  now,
		IsSystem:   true,
	}
}
