/*
Package handler provides HTTP handler functions for room creation, joining,
and leaving.
*/
package handler

import (
	"net/http"

	"zazachat/internal/app/i18n"
	"zazachat/internal/pkg/auth/jwt"
	"zazachat/internal/pkg/errs"
	"zazachat/internal/pkg/req"
	"zazachat/internal/pkg/resp"
)

type RoomInput struct {
	// RoomName identifies the room. Room names are unique across the server.
	RoomName string `json:"roomName"`
	// Password is the room password. Empty means the room is open.
	Password string `json:"password,omitempty"`
	// Username is the participant's chosen name, unique within the room.
	Username string `json:"username"`
	// Lang is the display-language code used to localize error messages.
	Lang string `json:"lang,omitempty"`
}

// localizeError replaces the error message with its translation when the
// language tables carry one for this error code.
func localizeError(customErr *errs.CustomError, langCode string) *errs.CustomError {
	if msg, ok := i18n.LocalizeError(customErr.Code, i18n.Lookup(langCode)); ok {
		customErr.Message = msg
	}
	return customErr
}

// HandleCreateRoom creates an HTTP HandlerFunc to process room creation requests.
// A successful creation binds the caller to the new room and returns a session
// token together with the initial room snapshot.
func HandleCreateRoom(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input RoomInput

		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		sess, createErr := deps.Chat.CreateRoom(input.RoomName, input.Password, input.Username)
		if createErr != nil {
			resp.RespondError(w, r, localizeError(createErr, input.Lang))
			return
		}

		payload := &jwt.Payload{
			Username: sess.Username,
			Room:     sess.RoomName(),
			Lang:     input.Lang,
		}

		tokenString, err := jwt.GenerateToken(payload, deps.Config.JWTSecret, jwt.SessionExpiration)
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"token": tokenString,
			"room":  sess.Room(),
		})
	}
}

// HandleJoinRoom processes the request to join an existing room. The room
// password, when set, must match exactly; the username must be free.
func HandleJoinRoom(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input RoomInput

		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		sess, joinErr := deps.Chat.JoinRoom(input.RoomName, input.Password, input.Username)
		if joinErr != nil {
			resp.RespondError(w, r, localizeError(joinErr, input.Lang))
			return
		}

		payload := &jwt.Payload{
			Username: sess.Username,
			Room:     sess.RoomName(),
			Lang:     input.Lang,
		}

		tokenString, err := jwt.GenerateToken(payload, deps.Config.JWTSecret, jwt.SessionExpiration)
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"token": tokenString,
			"room":  sess.Room(),
		})
	}
}

// HandleExitRoom removes the caller from their bound room. Exiting is
// idempotent: a second exit with the same token succeeds without appending a
// duplicate notice, and a token for a vanished room succeeds as a no-op.
func HandleExitRoom(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := jwt.GetPayloadFromContext(r)
		if payload == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		sess, resumeErr := deps.Chat.Resume(payload.Username, payload.Room)
		if resumeErr != nil {
			if resumeErr.Code == errs.ErrRoomNotFound {
				resp.RespondSuccess(w, r, nil)
				return
			}
			resp.RespondError(w, r, resumeErr)
			return
		}

		if exitErr := deps.Chat.ExitRoom(sess); exitErr != nil {
			resp.RespondError(w, r, exitErr)
			return
		}

		resp.RespondSuccess(w, r, nil)
	}
}
