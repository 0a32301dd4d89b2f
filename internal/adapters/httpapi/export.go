package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jukebox-go/jukebox/internal/app"
	"github.com/jukebox-go/jukebox/internal/export"
	"github.com/jukebox-go/jukebox/internal/httpjson"
)

type ExportHandler struct {
	playlist *app.PlaylistService
}

func NewExportHandler(playlist *app.PlaylistService) *ExportHandler {
	return &ExportHandler{playlist: playlist}
}

func (h *ExportHandler) Routes(r chi.Router) {
	r.Get("/export", h.export)
}

func (h *ExportHandler) export(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		httpjson.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	f, err := h.playlist.Export(format)
	if err != nil {
		if errors.Is(err, export.ErrEmpty) {
			// Liste vide : pas de fichier.
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeAppError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", f.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+f.Name+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(f.Body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(f.Body)
}
