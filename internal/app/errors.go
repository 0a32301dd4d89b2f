package app

import (
	"errors"

	"github.com/jukebox-go/jukebox/internal/ports"
)

var ErrNotFound = ports.ErrNotFound

// Codes d'erreur stables, renvoyés tels quels par l'API HTTP.
const (
	CodeMissingFields           = "missing_fields"
	CodeInvalidURL              = "invalid_url"
	CodeDuplicateEntry          = "duplicate_entry"
	CodeIndexOutOfRange         = "index_out_of_range"
	CodeNotConfirmed            = "not_confirmed"
	CodeInvalidTheme            = "invalid_theme"
	CodePersistenceParseFailure = "persistence_parse_failure"
)

var (
	ErrMissingFields   = errors.New("all fields are required")
	ErrInvalidURL      = errors.New("invalid video url")
	ErrDuplicateEntry  = errors.New("song already registered")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrNotConfirmed    = errors.New("operation not confirmed")
	ErrInvalidTheme    = errors.New("invalid theme")
)

// CodedError porte un code stable à côté du message affiché à l'utilisateur
// (formulaire d'ajout, réponse JSON). errors.Is fonctionne sur Err.
type CodedError struct {
	Code    string
	Message string
	Err     error
}

func (e *CodedError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return e.Message
	}
	if e.Message == "" {
		return e.Err.Error()
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *CodedError) Unwrap() error { return e.Err }

func coded(code string, err error) *CodedError {
	return &CodedError{Code: code, Err: err}
}

// CodeOf renvoie le code d'une CodedError, "" sinon.
func CodeOf(err error) string {
	var ce *CodedError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}
