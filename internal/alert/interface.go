package alert

import "context"

// UseCase is the bounded alert store for one dashboard session.
// New alerts are prepended; when the collection exceeds its maximum the
// oldest entries (the tail) are evicted. Remove/Dismiss of unknown ids
// are silent no-ops.
type UseCase interface {
	Add(ctx context.Context, in CreateInput) (Alert, error)
	Remove(ctx context.Context, id int64)
	Dismiss(ctx context.Context, id int64)
	Clear(ctx context.Context)
	Reset(ctx context.Context)

	List() []Alert
	ByType(t Type) []Alert
	Active() []Alert
	Count() int
	ActiveCount() int
	HasWarnings() bool
	HasErrors() bool
}
