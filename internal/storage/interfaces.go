package storage

import "context"

// Saver persists a Document wholesale.
type Saver interface {
	Save(ctx context.Context, doc *Document) error
}

// Store is the load/save surface consumed by the HTTP controllers.
type Store interface {
	Saver
	Load(ctx context.Context) (*Document, error)
}

// Repository is the full gateway surface including change watching.
// Gateway implements this interface.
type Repository interface {
	Store
	Watch(ctx context.Context) (<-chan struct{}, error)
}
