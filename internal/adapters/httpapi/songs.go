package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jukebox-go/jukebox/internal/app"
	"github.com/jukebox-go/jukebox/internal/domain"
	"github.com/jukebox-go/jukebox/internal/httpjson"
)

type SongsHandler struct {
	playlist *app.PlaylistService
}

func NewSongsHandler(playlist *app.PlaylistService) *SongsHandler {
	return &SongsHandler{playlist: playlist}
}

func (h *SongsHandler) Routes(r chi.Router) {
	r.Route("/songs", func(r chi.Router) {
		r.Get("/", h.view)
		r.Post("/", h.add)
		r.Delete("/", h.clear)
		r.Get("/all", h.list)
		r.Post("/{index}/play", h.play)
		r.Delete("/{index}", h.delete)
	})
}

// maxPageSize borne ?pageSize ; au-delà, une page contient déjà tout.
const maxPageSize = 1000

type addSongRequest struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type songsResponse struct {
	Songs []domain.Entry `json:"songs"`
}

// view : ?q=&sort=plays&page=&pageSize=
func (h *SongsHandler) view(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := 1
	if v := q.Get("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, "invalid page")
			return
		}
		page = p
	}
	pageSize := 0
	if v := q.Get("pageSize"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxPageSize {
			httpjson.WriteError(w, http.StatusBadRequest, "invalid pageSize")
			return
		}
		pageSize = n
	}

	httpjson.Write(w, http.StatusOK, h.playlist.View(domain.ViewQuery{
		Search:      q.Get("q"),
		SortByPlays: q.Get("sort") == "plays",
		Page:        page,
		PageSize:    pageSize,
	}))
}

func (h *SongsHandler) list(w http.ResponseWriter, r *http.Request) {
	httpjson.Write(w, http.StatusOK, songsResponse{Songs: h.playlist.List()})
}

func (h *SongsHandler) add(w http.ResponseWriter, r *http.Request) {
	var req addSongRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.WriteError(w, http.StatusBadRequest, "invalid json")
		return
	}
	songs, err := h.playlist.Add(r.Context(), req.Name, req.URL)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	httpjson.Write(w, http.StatusCreated, songsResponse{Songs: songs})
}

func (h *SongsHandler) play(w http.ResponseWriter, r *http.Request) {
	index, ok := indexParam(w, r)
	if !ok {
		return
	}
	res, err := h.playlist.RecordPlay(r.Context(), index)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	httpjson.Write(w, http.StatusOK, res)
}

func (h *SongsHandler) delete(w http.ResponseWriter, r *http.Request) {
	index, ok := indexParam(w, r)
	if !ok {
		return
	}
	songs, err := h.playlist.Delete(withConfirmation(r), index)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	httpjson.Write(w, http.StatusOK, songsResponse{Songs: songs})
}

func (h *SongsHandler) clear(w http.ResponseWriter, r *http.Request) {
	songs, err := h.playlist.ClearAll(withConfirmation(r))
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	httpjson.Write(w, http.StatusOK, songsResponse{Songs: songs})
}

// indexParam lit {index} : position dans la collection complète, telle que
// renvoyée par la vue (ViewItem.Index).
func indexParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		httpjson.WriteError(w, http.StatusBadRequest, "invalid index")
		return 0, false
	}
	return index, true
}
