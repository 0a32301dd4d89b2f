package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/jukebox-go/jukebox/internal/app"
)

const confirmHeader = "X-Confirm"

// withConfirmation transpose ?confirm=true (ou l'en-tête X-Confirm) en réponse
// lue par app.ContextConfirmer.
func withConfirmation(r *http.Request) context.Context {
	v := r.URL.Query().Get("confirm")
	if v == "" {
		v = r.Header.Get(confirmHeader)
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes":
		return app.WithConfirmation(r.Context(), true)
	default:
		return app.WithConfirmation(r.Context(), false)
	}
}
