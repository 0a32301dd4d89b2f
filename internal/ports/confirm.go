package ports

import "context"

// Confirmer est la porte oui/non exigée avant une opération destructive
// (suppression d'une entrée, vidage de la liste).
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}
