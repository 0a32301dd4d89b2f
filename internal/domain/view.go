package domain

import (
	"sort"
	"strings"
)

// DefaultPageSize est la taille de page fixe de la vue.
const DefaultPageSize = 5

// ViewQuery est l'état transitoire de la vue (jamais persisté).
type ViewQuery struct {
	Search      string
	SortByPlays bool
	Page        int
	PageSize    int
}

// ViewItem garde la position de l'entrée dans la collection non filtrée :
// c'est cet Index qu'il faut passer aux mutations (play, delete).
type ViewItem struct {
	Entry Entry `json:"entry"`
	Index int   `json:"index"`
}

type View struct {
	Items      []ViewItem `json:"items"`
	Total      int        `json:"total"`
	TotalPages int        `json:"totalPages"`
	Page       int        `json:"page"`
	PageSize   int        `json:"pageSize"`
}

// BuildView applique filtre -> tri -> pagination. Pure et déterministe.
func BuildView(entries []Entry, q ViewQuery) View {
	size := q.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}

	term := strings.ToLower(q.Search)
	filtered := make([]ViewItem, 0, len(entries))
	for i, e := range entries {
		if term == "" || strings.Contains(strings.ToLower(e.Name), term) {
			filtered = append(filtered, ViewItem{Entry: e, Index: i})
		}
	}

	if q.SortByPlays {
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Entry.Plays > filtered[j].Entry.Plays
		})
	}

	total := len(filtered)
	pages := total / size
	if total%size != 0 {
		pages++
	}
	view := View{
		Items:      []ViewItem{},
		Total:      total,
		TotalPages: pages,
		Page:       q.Page,
		PageSize:   size,
	}

	// Page hors bornes -> vue vide ; le recadrage est l'affaire de l'appelant.
	// Comparer avant de multiplier : page et size viennent de la requête.
	if q.Page < 1 || q.Page > pages {
		return view
	}
	start := (q.Page - 1) * size
	end := total
	if total-start > size {
		end = start + size
	}
	view.Items = append(view.Items, filtered[start:end]...)
	return view
}
