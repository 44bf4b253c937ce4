/*
Package handler provides HTTP handler functions serving the language tables
used by the surface's language picker.
*/
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"zazachat/internal/app/i18n"
	"zazachat/internal/pkg/resp"
)

// HandleListLanguages returns every supported language table in display order.
func HandleListLanguages(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp.RespondSuccess(w, r, map[string]any{
			"languages": i18n.Languages,
		})
	}
}

// HandleGetLanguage resolves one language code to its table. Unknown codes
// fall back to the default language rather than failing.
func HandleGetLanguage(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := chi.URLParam(r, "code")

		resp.RespondSuccess(w, r, map[string]any{
			"language": i18n.Lookup(code),
		})
	}
}
