/*
Package chat contains the core logic for ZazaChat rooms, sessions, and messages.

This file defines the Message struct and its type constants. Messages are
append-only: once added to a room they are never edited or removed.
*/
package chat

import (
	"time"

	"zazachat/internal/pkg/randx"
)

// MessageType identifies the kind of a chat message.
type MessageType string

const (
	// TypeText is a plain text message authored by a user.
	TypeText MessageType = "text"

	// TypeImage is an image message; the encoded payload travels in Content.
	TypeImage MessageType = "image"

	// TypeSystem is a platform-authored notice (room created, user joined or left).
	TypeSystem MessageType = "system"
)

// SystemSender is the literal sender marker for system-generated notices.
const SystemSender = "System"

// Message represents a single entry in a room's message history.
type Message struct {
	// ID is unique within the room.
	ID string `json:"id"`

	// Sender is the authoring username, or SystemSender for system notices.
	Sender string `json:"sender"`

	// Text is the message body for text and system messages; empty for images.
	Text string `json:"text"`

	// Timestamp is the creation time in Unix milliseconds. Within a room the
	// sequence is monotonically non-decreasing.
	Timestamp int64 `json:"timestamp"`

	// Type is one of text, image, or system.
	Type MessageType `json:"type"`

	// Content carries the encoded image payload for image messages.
	Content string `json:"content,omitempty"`
}

// newUserMessage builds a user-authored message stamped with the current time.
func newUserMessage(sender string, msgType MessageType, text, content string) Message {
	return Message{
		ID:        randx.MessageID(),
		Sender:    sender,
		Text:      text,
		Timestamp: time.Now().UnixMilli(),
		Type:      msgType,
		Content:   content,
	}
}

// newSystemMessage builds a platform-authored notice.
func newSystemMessage(text string) Message {
	return Message{
		ID:        randx.MessageID(),
		Sender:    SystemSender,
		Text:      text,
		Timestamp: time.Now().UnixMilli(),
		Type:      TypeSystem,
	}
}
