package note

import "context"

// UseCase is the bounded note store for one dashboard session.
// Delete of an unknown id is a silent no-op; Update of an unknown id
// returns ErrNoteNotFound so callers can surface it.
type UseCase interface {
	Add(ctx context.Context, content string) (Note, error)
	Delete(ctx context.Context, id string)
	Update(ctx context.Context, id, content string) (Note, error)
	Clear(ctx context.Context)
	Reset(ctx context.Context)

	// Validate is the pure pre-flight check Add applies to content.
	Validate(content string) error

	List() []Note
	Search(query string) []Note
	GetByID(id string) (Note, bool)
	Count() int
	AtLimit() bool
	RemainingCapacity() int
}
