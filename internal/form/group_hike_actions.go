package form

import (
	"context"
	"log"
	"strings"
	"sync/atomic"

	"github.com/bwise1/trailhead_admin/internal/http/admin"
	"github.com/bwise1/trailhead_admin/internal/model"
)

type GroupHikeActionStore interface {
	Publish(ctx context.Context, id int64) (model.GroupHike, error)
	Unpublish(ctx context.Context, id int64) (model.GroupHike, error)
	Cancel(ctx context.Context, id int64, reason string) (model.GroupHike, error)
	Delete(ctx context.Context, id int64) error
}

// GroupHikeActions runs the list and detail page actions on a hike and
// reports each outcome as a toast. onSuccess may be nil.
type GroupHikeActions struct {
	store  GroupHikeActionStore
	toasts Notifier
	busy   atomic.Int32
}

func NewGroupHikeActions(store GroupHikeActionStore, toasts Notifier) *GroupHikeActions {
	return &GroupHikeActions{store: store, toasts: toasts}
}

// Busy reports whether an action is in progress.
func (a *GroupHikeActions) Busy() bool {
	return a.busy.Load() > 0
}

func (a *GroupHikeActions) Publish(ctx context.Context, id int64, onSuccess func()) bool {
	return a.run(func() error {
		_, err := a.store.Publish(ctx, id)
		return err
	}, "Group hike published successfully", "Failed to publish group hike", onSuccess)
}

func (a *GroupHikeActions) Unpublish(ctx context.Context, id int64, onSuccess func()) bool {
	return a.run(func() error {
		_, err := a.store.Unpublish(ctx, id)
		return err
	}, "Group hike unpublished", "Failed to unpublish group hike", onSuccess)
}

// Cancel needs a reason; a blank one never reaches the server.
func (a *GroupHikeActions) Cancel(ctx context.Context, id int64, reason string, onSuccess func()) bool {
	if strings.TrimSpace(reason) == "" {
		a.toasts.Error("Cancellation reason is required")
		return false
	}
	return a.run(func() error {
		_, err := a.store.Cancel(ctx, id, reason)
		return err
	}, "Group hike cancelled", "Failed to cancel group hike", onSuccess)
}

func (a *GroupHikeActions) Delete(ctx context.Context, id int64, onSuccess func()) bool {
	return a.run(func() error {
		return a.store.Delete(ctx, id)
	}, "Group hike deleted", "Failed to delete group hike", onSuccess)
}

func (a *GroupHikeActions) run(action func() error, success, fallback string, onSuccess func()) bool {
	a.busy.Add(1)
	defer a.busy.Add(-1)

	if err := action(); err != nil {
		log.Printf("[GroupHikeActions]: %s: %v", fallback, err)
		a.toasts.Error(admin.Message(err, fallback))
		return false
	}
	a.toasts.Success(success)
	if onSuccess != nil {
		onSuccess()
	}
	return true
}
