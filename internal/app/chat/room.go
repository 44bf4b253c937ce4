/*
Package chat contains the core logic for ZazaChat rooms, sessions, and messages.

This file defines the Room struct. A room is keyed in the store by its
human-chosen name; the generated ID is opaque display data. Rooms persist
indefinitely, even once their user list is empty.
*/
package chat

// Room represents a named, optionally password-protected chat room.
type Room struct {
	// ID is an opaque identifier generated at creation time.
	ID string `json:"id"`

	// Name is the unique human-chosen name; it is the store's primary key.
	Name string `json:"name"`

	// Password is an optional plaintext string; empty means no password.
	// Comparison is exact-string only, a design limitation carried as-is.
	Password string `json:"password,omitempty"`

	// Users holds the usernames currently in the room, in join order,
	// without duplicates.
	Users []string `json:"users"`

	// Messages is the append-only, chronological message history.
	Messages []Message `json:"messages"`
}

// HasUser reports whether username is currently present in the room.
func (r *Room) HasUser(username string) bool {
	for _, u := range r.Users {
		if u == username {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the room. Mutations always run on a clone and
// are committed only after the store rewrite succeeds.
func (r *Room) Clone() *Room {
	c := *r
	c.Users = append([]string(nil), r.Users...)
	c.Messages = append([]Message(nil), r.Messages...)
	return &c
}

// appendMessage appends msg to the history, clamping its timestamp so the
// sequence stays monotonically non-decreasing. It returns the stored message.
func (r *Room) appendMessage(msg Message) Message {
	if n := len(r.Messages); n > 0 && msg.Timestamp < r.Messages[n-1].Timestamp {
		msg.Timestamp = r.Messages[n-1].Timestamp
	}
	r.Messages = append(r.Messages, msg)
	return msg
}

// removeUser deletes username from the user list and reports whether it was present.
func (r *Room) removeUser(username string) bool {
	for i, u := range r.Users {
		if u == username {
			r.Users = append(r.Users[:i], r.Users[i+1:]...)
			return true
		}
	}
	return false
}
