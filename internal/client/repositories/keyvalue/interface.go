package keyvalue

import "context"

// Repository is the key/value view of the client_state table.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	DeleteMany(ctx context.Context, keys ...string) error
	// List returns every stored key with its value.
	List(ctx context.Context) (map[string][]byte, error)
}
