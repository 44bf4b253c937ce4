/*
Package chat contains the core logic for ZazaChat rooms, sessions, and messages.

This file defines the Service struct, the room/session state machine. It owns
the in-memory room map, validates every operation before mutating anything, and
rewrites the full map through the Store after each successful mutation. A
failed operation never changes the store or the in-memory state.
*/
package chat

import (
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"zazachat/internal/pkg/errs"
	"zazachat/internal/pkg/logx"
	"zazachat/internal/pkg/randx"
)

// Store is the persistence contract the service depends on. The whole room
// map is one serialized unit: Load reads it once at startup and SaveAll
// rewrites it in full after every mutation.
type Store interface {
	Load() (map[string]*Room, error)
	SaveAll(rooms map[string]*Room) error
}

// Service is the room/session state machine over the persisted room map.
type Service struct {
	// store owns the authoritative, durable room map.
	store Store

	// rooms is the in-memory image of the store, keyed by room name.
	rooms map[string]*Room

	// mu protects the rooms map. Operations run to completion under it,
	// mirroring the single event-processing sequence of the surface.
	mu sync.RWMutex

	// structured logger with service context.
	logger zerolog.Logger
}

// NewService constructs the Service and loads the room map from the store.
// A load failure (missing or corrupt data) is recovered as an empty map and
// logged; it is never fatal.
func NewService(store Store) *Service {
	serviceLogger := logx.Logger().With().Str("component", "chat").Logger()

	rooms, err := store.Load()
	if err != nil {
		serviceLogger.Warn().Err(err).Msg("Room store load failed. Starting with an empty room map.")
		rooms = nil
	}
	if rooms == nil {
		rooms = make(map[string]*Room)
	}

	return &Service{
		store:  store,
		rooms:  rooms,
		logger: serviceLogger,
	}
}

// CreateRoom creates a new room named name, makes username its first user, and
// returns a session bound to it. The room starts with a single system message
// announcing its creation.
func (s *Service) CreateRoom(name, password, username string) (*Session, *errs.CustomError) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(username) == "" {
		return nil, errs.NewError(errs.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rooms[name]; ok {
		s.logger.Warn().Str("room_name", name).Msg("Attempted to create existing room.")
		return nil, errs.NewError(errs.ErrRoomNameTaken)
	}

	id, err := randx.RoomID()
	if err != nil {
		return nil, errs.NewError(errs.ErrUnknown, err)
	}

	room := &Room{
		ID:       id,
		Name:     name,
		Password: password,
		Users:    []string{username},
	}
	room.appendMessage(newSystemMessage(fmt.Sprintf("%s created the room.", username)))

	if saveErr := s.commit(name, room); saveErr != nil {
		return nil, saveErr
	}

	s.logger.Info().
		Str("room_name", name).
		Str("room_id", id).
		Str("username", username).
		Msg("Room created.")

	return &Session{Username: username, roomName: name, room: room.Clone()}, nil
}

// JoinRoom adds username to the room named name and returns a session bound
// to it. The room password, when set, must match exactly.
func (s *Service) JoinRoom(name, password, username string) (*Session, *errs.CustomError) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(username) == "" {
		return nil, errs.NewError(errs.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[name]
	if !ok {
		return nil, errs.NewError(errs.ErrRoomNotFound)
	}

	if room.Password != "" && room.Password != password {
		return nil, errs.NewError(errs.ErrWrongPassword)
	}

	if room.HasUser(username) {
		return nil, errs.NewError(errs.ErrUsernameTaken)
	}

	updated := room.Clone()
	updated.Users = append(updated.Users, username)
	updated.appendMessage(newSystemMessage(fmt.Sprintf("%s joined.", username)))

	if saveErr := s.commit(name, updated); saveErr != nil {
		return nil, saveErr
	}

	s.logger.Info().
		Str("room_name", name).
		Str("username", username).
		Int("total_users", len(updated.Users)).
		Msg("User joined room.")

	return &Session{Username: username, roomName: name, room: updated.Clone()}, nil
}

// SendText appends a text message authored by the session's user to the bound
// room. The text is trimmed; blank text is rejected.
func (s *Service) SendText(sess *Session, text string) (Message, *errs.CustomError) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Message{}, errs.NewError(errs.ErrInvalidInput)
	}

	return s.appendUserMessage(sess, TypeText, trimmed, "")
}

// SendImage appends an image message to the bound room. The encoded payload is
// accepted verbatim; the core performs no validation of image content.
func (s *Service) SendImage(sess *Session, content string) (Message, *errs.CustomError) {
	return s.appendUserMessage(sess, TypeImage, "", content)
}

// appendUserMessage performs the shared send path: clone the bound room,
// append the message, persist, refresh the session's working copy.
func (s *Service) appendUserMessage(sess *Session, msgType MessageType, text, content string) (Message, *errs.CustomError) {
	if !sess.InRoom() {
		return Message{}, errs.NewError(errs.ErrNotInRoom)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[sess.roomName]
	if !ok {
		return Message{}, errs.NewError(errs.ErrRoomNotFound)
	}

	updated := room.Clone()
	stored := updated.appendMessage(newUserMessage(sess.Username, msgType, text, content))

	if saveErr := s.commit(sess.roomName, updated); saveErr != nil {
		return Message{}, saveErr
	}

	sess.room = updated.Clone()

	return stored, nil
}

// ExitRoom removes the session's user from the bound room, appends a system
// "left" notice, and clears the session. Exiting an unbound session is a
// no-op, as is exiting when the user is already gone from the room; neither
// produces a duplicate notice. The room itself is retained even when empty.
func (s *Service) ExitRoom(sess *Session) *errs.CustomError {
	if !sess.InRoom() {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[sess.roomName]
	if !ok {
		sess.clear()
		return nil
	}

	updated := room.Clone()
	if updated.removeUser(sess.Username) {
		updated.appendMessage(newSystemMessage(fmt.Sprintf("%s left.", sess.Username)))

		if saveErr := s.commit(sess.roomName, updated); saveErr != nil {
			return saveErr
		}

		s.logger.Info().
			Str("room_name", sess.roomName).
			Str("username", sess.Username).
			Int("total_users", len(updated.Users)).
			Msg("User left room.")
	}

	sess.clear()
	return nil
}

// Resume rebinds a session from a presented token. It fails when the room no
// longer exists; it does not require the user to still be in the user list,
// so a stale token can still perform its idempotent exit.
func (s *Service) Resume(username, roomName string) (*Session, *errs.CustomError) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(roomName) == "" {
		return nil, errs.NewError(errs.ErrInvalidInput)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	room, ok := s.rooms[roomName]
	if !ok {
		return nil, errs.NewError(errs.ErrRoomNotFound)
	}

	return &Session{Username: username, roomName: roomName, room: room.Clone()}, nil
}

// Snapshot returns a deep copy of the session's bound room for the surface to
// re-render, refreshing the session's working copy along the way.
func (s *Service) Snapshot(sess *Session) (*Room, *errs.CustomError) {
	if !sess.InRoom() {
		return nil, errs.NewError(errs.ErrNotInRoom)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	room, ok := s.rooms[sess.roomName]
	if !ok {
		return nil, errs.NewError(errs.ErrRoomNotFound)
	}

	sess.room = room.Clone()
	return room.Clone(), nil
}

// RoomNames returns the names of all rooms currently in the store image.
func (s *Service) RoomNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.rooms))
	for name := range s.rooms {
		names = append(names, name)
	}
	return names
}

// commit builds the next room map with updated replacing the entry for name,
// rewrites the whole map through the store, and installs it in memory only
// when the rewrite succeeds. Last writer wins; there is no conflict detection.
func (s *Service) commit(name string, updated *Room) *errs.CustomError {
	next := make(map[string]*Room, len(s.rooms)+1)
	for k, v := range s.rooms {
		next[k] = v
	}
	next[name] = updated

	if err := s.store.SaveAll(next); err != nil {
		s.logger.Error().Err(err).Str("room_name", name).Msg("Room store rewrite failed. Mutation discarded.")
		return errs.NewError(errs.ErrStoreSaveFailed)
	}

	s.rooms = next
	return nil
}
