package usecase

import (
	"context"

	"dashboard-srv/internal/event"
	"dashboard-srv/internal/modal"
)

// Open adds the modal to the open set. In exclusive mode every other
// modal is closed first, in the same transition: there is no observable
// state where both the old and the new modal are open.
func (r *registry) Open(ctx context.Context, in modal.OpenInput) error {
	if in.ID == "" {
		return modal.ErrInvalidModalID
	}

	r.mu.Lock()
	wasAnyOpen := len(r.open) > 0
	if r.contains(in.ID) {
		r.mu.Unlock()
		return nil
	}
	if r.cfg.Exclusive {
		r.open = r.open[:0]
	}
	r.open = append(r.open, in.ID)
	r.onTransitionLocked(ctx, wasAnyOpen, in.ScrollOffset)
	state := r.stateLocked()
	r.mu.Unlock()

	r.pub.Publish(ctx, r.userID, event.New(event.DomainModal, event.ActionOpened, state))
	return nil
}

// Close removes the modal if present; unknown ids are a silent no-op.
func (r *registry) Close(ctx context.Context, id string) {
	r.mu.Lock()
	wasAnyOpen := len(r.open) > 0
	if !r.contains(id) {
		r.mu.Unlock()
		return
	}
	for i, open := range r.open {
		if open == id {
			r.open = append(r.open[:i], r.open[i+1:]...)
			break
		}
	}
	r.onTransitionLocked(ctx, wasAnyOpen, 0)
	state := r.stateLocked()
	r.mu.Unlock()

	r.pub.Publish(ctx, r.userID, event.New(event.DomainModal, event.ActionClosed, state))
}

// Toggle closes the modal if open, opens it otherwise.
func (r *registry) Toggle(ctx context.Context, in modal.OpenInput) error {
	if in.ID == "" {
		return modal.ErrInvalidModalID
	}
	if r.IsOpen(in.ID) {
		r.Close(ctx, in.ID)
		return nil
	}
	return r.Open(ctx, in)
}

// CloseAll empties the open set unconditionally.
func (r *registry) CloseAll(ctx context.Context) {
	r.mu.Lock()
	wasAnyOpen := len(r.open) > 0
	r.open = r.open[:0]
	r.onTransitionLocked(ctx, wasAnyOpen, 0)
	state := r.stateLocked()
	r.mu.Unlock()

	r.pub.Publish(ctx, r.userID, event.New(event.DomainModal, event.ActionAllClosed, state))
}

func (r *registry) IsOpen(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.contains(id)
}

func (r *registry) AnyOpen() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.open) > 0
}

func (r *registry) OpenCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.open)
}

// OpenModals returns the open ids in opening order.
func (r *registry) OpenModals() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.open))
	copy(out, r.open)
	return out
}

func (r *registry) State() modal.State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stateLocked()
}

func (r *registry) contains(id string) bool {
	for _, open := range r.open {
		if open == id {
			return true
		}
	}
	return false
}

// onTransitionLocked drives the scroll guard on edges of "any modal open".
// It must run while the registry mutex is held, after the open set has
// been mutated. The guard is touched at most once per transition.
func (r *registry) onTransitionLocked(ctx context.Context, wasAnyOpen bool, scrollOffset int) {
	if !r.cfg.ScrollLock {
		return
	}
	isAnyOpen := len(r.open) > 0
	switch {
	case !wasAnyOpen && isAnyOpen:
		r.guard.Lock(scrollOffset)
		r.pub.Publish(ctx, r.userID, event.New(event.DomainModal, event.ActionScrollLocked, scrollOffset))
	case wasAnyOpen && !isAnyOpen:
		offset := r.guard.Unlock()
		r.pub.Publish(ctx, r.userID, event.New(event.DomainModal, event.ActionScrollUnlocked, offset))
	}
}

func (r *registry) stateLocked() modal.State {
	state := modal.State{
		OpenModals: append([]string(nil), r.open...),
		OpenCount:  len(r.open),
		AnyOpen:    len(r.open) > 0,
	}
	if r.guard != nil {
		state.ScrollLocked = r.guard.Locked()
		state.ScrollOffset = r.guard.Offset()
	}
	return state
}
