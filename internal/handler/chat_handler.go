/*
Package handler provides HTTP handler functions for in-room operations:
fetching the room snapshot, sending messages, and translating them.
*/
package handler

import (
	"net/http"

	"zazachat/internal/app/chat"
	"zazachat/internal/app/i18n"
	"zazachat/internal/pkg/auth/jwt"
	"zazachat/internal/pkg/errs"
	"zazachat/internal/pkg/req"
	"zazachat/internal/pkg/resp"
)

// resumeSession rebinds the caller's session from the token payload in the
// request context. A missing or invalid token yields ErrUnauthorized.
func resumeSession(deps *AppDeps, r *http.Request) (*chat.Session, *errs.CustomError) {
	payload := jwt.GetPayloadFromContext(r)
	if payload == nil {
		return nil, errs.NewError(errs.ErrUnauthorized)
	}

	return deps.Chat.Resume(payload.Username, payload.Room)
}

// HandleGetRoom returns a full snapshot of the caller's bound room. The
// surface polls this endpoint to re-render the message list and user list.
func HandleGetRoom(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, resumeErr := resumeSession(deps, r)
		if resumeErr != nil {
			resp.RespondError(w, r, resumeErr)
			return
		}

		room, snapErr := deps.Chat.Snapshot(sess)
		if snapErr != nil {
			resp.RespondError(w, r, snapErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"room": room,
		})
	}
}

type SendMessageInput struct {
	// Type selects the message kind, "text" or "image".
	Type string `json:"type"`
	// Text carries the body of a text message.
	Text string `json:"text,omitempty"`
	// Content carries the encoded payload of an image message.
	Content string `json:"content,omitempty"`
}

// HandleSendMessage appends a message authored by the caller to their bound
// room and returns the stored message, id and timestamp assigned.
func HandleSendMessage(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, resumeErr := resumeSession(deps, r)
		if resumeErr != nil {
			resp.RespondError(w, r, resumeErr)
			return
		}

		var input SendMessageInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		var stored chat.Message
		var sendErr *errs.CustomError

		switch input.Type {
		case string(chat.TypeText):
			stored, sendErr = deps.Chat.SendText(sess, input.Text)
		case string(chat.TypeImage):
			if input.Content == "" {
				resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
				return
			}
			stored, sendErr = deps.Chat.SendImage(sess, input.Content)
		default:
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		if sendErr != nil {
			resp.RespondError(w, r, sendErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"message": stored,
		})
	}
}

type TranslateMessageInput struct {
	// MessageID identifies the message to translate within the bound room.
	MessageID string `json:"messageId"`
	// TargetLang overrides the session language as translation target.
	TargetLang string `json:"targetLang,omitempty"`
}

// HandleTranslateMessage translates one message of the bound room into the
// caller's display language. Results are cached per message id, so repeated
// requests for the same message are served without another upstream call. A
// request already in flight for the same message is rejected until it settles.
func HandleTranslateMessage(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := jwt.GetPayloadFromContext(r)

		sess, resumeErr := resumeSession(deps, r)
		if resumeErr != nil {
			resp.RespondError(w, r, resumeErr)
			return
		}

		var input TranslateMessageInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		room, snapErr := deps.Chat.Snapshot(sess)
		if snapErr != nil {
			resp.RespondError(w, r, snapErr)
			return
		}

		var text string
		for _, msg := range room.Messages {
			if msg.ID == input.MessageID {
				text = msg.Text
				break
			}
		}
		if text == "" {
			// Unknown id, or an image message with no text to translate.
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		langCode := input.TargetLang
		if langCode == "" {
			langCode = payload.Lang
		}
		target := i18n.Lookup(langCode)

		translated, translateErr := deps.Translator.Translate(r.Context(), input.MessageID, text, target.Name)
		if translateErr != nil {
			resp.RespondError(w, r, translateErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"messageId":  input.MessageID,
			"lang":       target.Code,
			"translated": translated,
		})
	}
}
