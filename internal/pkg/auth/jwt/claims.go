package jwt

import "github.com/golang-jwt/jwt"

// Payload defines the JWT claims for a ZazaChat room session.
// A token binds one username to one room; it is the server-side rendering of
// the browser session that holds "the current user and their current room".
type Payload struct {
	// StandardClaims embeds the standard JWT fields (Exp, Iat, Iss) used for
	// token validity checks.
	jwt.StandardClaims `json:"standard_claims"`

	// Username is the participant's chosen name, unique within the room.
	Username string `json:"username"`

	// Room is the name of the room the token holder is bound to. The room
	// name, not the opaque room ID, keys the store.
	Room string `json:"room"`

	// Lang is the display-language code selected when the session was created.
	// Error messages are localized with it.
	Lang string `json:"lang,omitempty"`
}
