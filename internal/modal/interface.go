package modal

import "context"

// UseCase is the modal registry for one dashboard session.
// Close and Toggle tolerate unknown ids silently; the only error any
// mutator returns is a validation rejection of the id itself.
type UseCase interface {
	Open(ctx context.Context, in OpenInput) error
	Close(ctx context.Context, id string)
	Toggle(ctx context.Context, in OpenInput) error
	CloseAll(ctx context.Context)

	IsOpen(id string) bool
	AnyOpen() bool
	OpenCount() int
	OpenModals() []string
	State() State
}

// ScrollGuard owns the page-scroll resource shared by every modal of a
// session. The registry drives it strictly on transitions of "any modal
// open": Lock on false -> true, Unlock on true -> false.
type ScrollGuard interface {
	Lock(offset int)
	Unlock() (offset int)
	Locked() bool
	Offset() int
}
