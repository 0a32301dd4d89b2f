package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jukebox-go/jukebox/internal/app"
	"github.com/jukebox-go/jukebox/internal/domain"
	"github.com/jukebox-go/jukebox/internal/httpjson"
)

type ThemeHandler struct {
	theme *app.ThemeService
}

func NewThemeHandler(theme *app.ThemeService) *ThemeHandler {
	return &ThemeHandler{theme: theme}
}

func (h *ThemeHandler) Routes(r chi.Router) {
	r.Get("/theme", h.get)
	r.Put("/theme", h.put)
	r.Post("/theme/toggle", h.toggle)
}

type themeBody struct {
	Theme domain.Theme `json:"theme"`
}

func (h *ThemeHandler) get(w http.ResponseWriter, r *http.Request) {
	t, err := h.theme.Get(r.Context())
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	httpjson.Write(w, http.StatusOK, themeBody{Theme: t})
}

func (h *ThemeHandler) put(w http.ResponseWriter, r *http.Request) {
	var body themeBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpjson.WriteError(w, http.StatusBadRequest, "invalid json")
		return
	}
	t, err := h.theme.Set(r.Context(), body.Theme)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	httpjson.Write(w, http.StatusOK, themeBody{Theme: t})
}

func (h *ThemeHandler) toggle(w http.ResponseWriter, r *http.Request) {
	t, err := h.theme.Toggle(r.Context())
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	httpjson.Write(w, http.StatusOK, themeBody{Theme: t})
}
