package app

import (
	"context"

	"github.com/jukebox-go/jukebox/internal/ports"
)

// ConfirmFunc adapte une fonction en ports.Confirmer.
type ConfirmFunc func(ctx context.Context, prompt string) bool

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) bool {
	return f(ctx, prompt)
}

var (
	AlwaysConfirm ports.Confirmer = ConfirmFunc(func(context.Context, string) bool { return true })
	NeverConfirm  ports.Confirmer = ConfirmFunc(func(context.Context, string) bool { return false })
)

type confirmationKey struct{}

// WithConfirmation attache la réponse de l'utilisateur au contexte
// (ex: ?confirm=true côté HTTP).
func WithConfirmation(ctx context.Context, confirmed bool) context.Context {
	return context.WithValue(ctx, confirmationKey{}, confirmed)
}

// ContextConfirmer lit la réponse posée par WithConfirmation ; absente = non.
type ContextConfirmer struct{}

func (ContextConfirmer) Confirm(ctx context.Context, _ string) bool {
	ok, _ := ctx.Value(confirmationKey{}).(bool)
	return ok
}
