/*
Package errs provides custom error types and application-level error code constants.

These error codes identify specific business or system errors both inside the
server and in responses sent to clients.
*/
package errs

// 1xxx: General Request Handling Errors
const (
	// ErrInvalidParams indicates that request parameter validation failed.
	ErrInvalidParams = 1001

	// ErrUnsupportedMediaType indicates that the request Content-Type is not supported.
	ErrUnsupportedMediaType = 1002

	// ErrInvalidJSONFormat indicates that the request body JSON could not be decoded.
	ErrInvalidJSONFormat = 1003

	// ErrExtraContentInBody indicates that the request body contained extra content after valid JSON data.
	ErrExtraContentInBody = 1004

	// ErrRateLimitExceeded indicates that the request rate has exceeded the set limit.
	ErrRateLimitExceeded = 1005
)

// 2xxx: Room and Message Business Logic Errors
const (
	// ErrRoomNameTaken indicates that a room with the requested name already exists.
	ErrRoomNameTaken = 2101

	// ErrRoomNotFound indicates that no room with the requested name exists.
	ErrRoomNotFound = 2102

	// ErrWrongPassword indicates that the supplied room password does not match.
	ErrWrongPassword = 2103

	// ErrUsernameTaken indicates that the username is already present in the room.
	ErrUsernameTaken = 2104

	// ErrInvalidInput indicates that a required field (room name, username, message text) was empty or blank.
	ErrInvalidInput = 2105

	// ErrNotInRoom indicates that the operation requires a session currently bound to a room.
	ErrNotInRoom = 2106
)

// 3xxx: Session and Translation Errors
const (
	// ErrUnauthorized indicates a missing or invalid session token.
	ErrUnauthorized = 3001

	// ErrTranslationFailed indicates the translation service call failed; the message stays untranslated and may be retried.
	ErrTranslationFailed = 3101

	// ErrTranslationPending indicates a translation request for the same message is already in flight.
	ErrTranslationPending = 3102
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified, general server internal error.
	ErrUnknown = 5000

	// ErrStoreSaveFailed indicates that rewriting the persistent room store failed.
	// The in-memory state is left untouched when this is returned.
	ErrStoreSaveFailed = 5001
)
