package ports

import "context"

// KVStore est le backend clé/valeur (chaînes) qui remplace le stockage local
// du navigateur. Get renvoie ErrNotFound si la clé est absente.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
