package domain

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	embedURLFormat     = "https://www.youtube.com/embed/%s?autoplay=1"
	thumbnailURLFormat = "https://img.youtube.com/vi/%s/default.jpg"
)

var (
	// youtube.com/...?v=<id> ou youtu.be/<id> ; l'id s'arrête au premier & ou #.
	videoIDPattern = regexp.MustCompile(`(?:youtube\.com.*[?&]v=|youtu\.be/)([^&#]+)`)

	// Forme acceptée à l'ajout (http(s), www optionnel).
	videoURLPattern = regexp.MustCompile(`^https?://(www\.)?(youtube\.com|youtu\.be)/.+$`)
)

// ExtractVideoID renvoie l'identifiant canonique d'une URL YouTube.
// Deux URLs désignent la même chanson si et seulement si leurs identifiants
// sont égaux (comparaison sensible à la casse).
func ExtractVideoID(url string) (string, bool) {
	m := videoIDPattern.FindStringSubmatch(strings.TrimSpace(url))
	if m == nil || m[1] == "" {
		return "", false
	}
	return m[1], true
}

// IsVideoURL vérifie la forme de l'URL (schéma + hôte) avant extraction.
func IsVideoURL(url string) bool {
	return videoURLPattern.MatchString(strings.TrimSpace(url))
}

// EmbedURL résout l'adresse du lecteur intégré. Une URL invalide ne donne
// aucun lecteur.
func EmbedURL(url string) (string, bool) {
	id, ok := ExtractVideoID(url)
	if !ok {
		return "", false
	}
	return fmt.Sprintf(embedURLFormat, id), true
}

func ThumbnailURL(url string) (string, bool) {
	id, ok := ExtractVideoID(url)
	if !ok {
		return "", false
	}
	return fmt.Sprintf(thumbnailURLFormat, id), true
}
