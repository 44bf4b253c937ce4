/*
Package i18n is the localization provider for the ZazaChat surface.

It holds the fixed display-string tables for every supported language and
resolves a requested language code to the best supported table, falling back
to the default language for unknown codes.
*/
package i18n

import (
	"golang.org/x/text/language"

	"zazachat/internal/pkg/errs"
)

// Strings is the fixed set of display strings the surface needs. Every field
// is required in every language table.
type Strings struct {
	Welcome      string `json:"welcome"`
	CreateRoom   string `json:"createRoom"`
	JoinRoom     string `json:"joinRoom"`
	RoomName     string `json:"roomName"`
	RoomPass     string `json:"roomPass"`
	Username     string `json:"username"`
	CreateBtn    string `json:"createBtn"`
	JoinBtn      string `json:"joinBtn"`
	RoomNotFound string `json:"roomNotFound"`
	WrongPass    string `json:"wrongPass"`
	TypeMessage  string `json:"typeMessage"`
	MovieLink    string `json:"movieLink"`
	WatchBtn     string `json:"watchBtn"`
	SendPhoto    string `json:"sendPhoto"`
	Back         string `json:"back"`
}

// Language couples a language code with its display metadata and string table.
// Name doubles as the human-readable target passed to the translation service.
type Language struct {
	Code    string  `json:"code"`
	Name    string  `json:"name"`
	Flag    string  `json:"flag"`
	Strings Strings `json:"strings"`
}

// matcher resolves requested tags against the supported set. The first entry
// of Languages is the default and wins for unknown codes.
var matcher language.Matcher

func init() {
	tags := make([]language.Tag, 0, len(Languages))
	for _, l := range Languages {
		tags = append(tags, language.MustParse(l.Code))
	}
	matcher = language.NewMatcher(tags)
}

// Default returns the default language (the first table).
func Default() Language {
	return Languages[0]
}

// Lookup resolves code to the best supported language. Unparseable or
// unsupported codes fall back to the default language.
func Lookup(code string) Language {
	desired, err := language.Parse(code)
	if err != nil {
		return Default()
	}

	_, index, conf := matcher.Match(desired)
	if conf == language.No {
		return Default()
	}

	return Languages[index]
}

// LocalizeError returns the localized message for error codes that have an
// entry in the string tables. The second return reports whether one exists.
func LocalizeError(code int, lang Language) (string, bool) {
	switch code {
	case errs.ErrRoomNotFound:
		return lang.Strings.RoomNotFound, true
	case errs.ErrWrongPassword:
		return lang.Strings.WrongPass, true
	}
	return "", false
}
