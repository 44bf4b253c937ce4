/*
Package errs provides custom error types and application-level error code constants.

This file defines the map from error codes to the CustomError struct, used to
standardize HTTP responses and internal error handling.
*/
package errs

import "net/http"

// errorMap stores the CustomError template corresponding to every application
// error code. The key is the error code, the value carries the default user
// message and HTTP status. Messages here are the default-language fallback;
// the handler layer localizes the codes that have entries in the string tables.
var errorMap = map[int]CustomError{
	// 1xxx: General Request Handling Errors
	ErrInvalidParams:        {Code: ErrInvalidParams, Message: "Invalid request parameters."},
	ErrUnsupportedMediaType: {Code: ErrUnsupportedMediaType, Message: "Unsupported request format."},
	ErrInvalidJSONFormat:    {Code: ErrInvalidJSONFormat, Message: "Unsupported request format."},
	ErrExtraContentInBody:   {Code: ErrExtraContentInBody, Message: "Request contains unexpected data."},
	ErrRateLimitExceeded:    {Code: ErrRateLimitExceeded, Message: "Too many requests. Please try again later.", Status: http.StatusTooManyRequests},

	// 2xxx: Room and Message Business Logic Errors
	ErrRoomNameTaken: {Code: ErrRoomNameTaken, Message: "A room with this name already exists."},
	ErrRoomNotFound:  {Code: ErrRoomNotFound, Message: "Room not found."},
	ErrWrongPassword: {Code: ErrWrongPassword, Message: "Wrong password."},
	ErrUsernameTaken: {Code: ErrUsernameTaken, Message: "This username is already present in the room."},
	ErrInvalidInput:  {Code: ErrInvalidInput, Message: "A required field is empty."},
	ErrNotInRoom:     {Code: ErrNotInRoom, Message: "You are not in a room."},

	// 3xxx: Session and Translation Errors
	ErrUnauthorized:       {Code: ErrUnauthorized, Message: "Please join a room to continue.", Status: http.StatusUnauthorized},
	ErrTranslationFailed:  {Code: ErrTranslationFailed, Message: "Translation failed. Please try again."},
	ErrTranslationPending: {Code: ErrTranslationPending, Message: "Translation is already in progress."},

	// 5xxx: Internal System Errors
	ErrUnknown:         {Code: ErrUnknown, Message: "Something went wrong. Please try again.", Status: http.StatusInternalServerError},
	ErrStoreSaveFailed: {Code: ErrStoreSaveFailed, Message: "Saving the room failed. Please try again.", Status: http.StatusInternalServerError},
}
