package chat

// Session is one participant's binding to at most one room. It is created on
// a successful create-or-join and cleared on exit; a cleared session accepts
// no further room operations.
type Session struct {
	// Username is the participant's chosen name, unique within the bound room.
	Username string

	// roomName is the name of the bound room, empty when unbound.
	roomName string

	// room is the session's working copy of the bound room, refreshed after
	// every mutation the session performs. The store owns the authoritative copy.
	room *Room
}

// InRoom reports whether the session is currently bound to a room.
func (s *Session) InRoom() bool {
	return s != nil && s.roomName != ""
}

// RoomName returns the name of the bound room, or the empty string.
func (s *Session) RoomName() string {
	if s == nil {
		return ""
	}
	return s.roomName
}

// Room returns the session's working copy of the bound room, or nil.
func (s *Session) Room() *Room {
	if s == nil {
		return nil
	}
	return s.room
}

// clear unbinds the session from its room.
func (s *Session) clear() {
	s.roomName = ""
	s.room = nil
}
