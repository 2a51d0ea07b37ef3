// Package crud builds create/update/remove operations that work the same
// way for every entity collection.
package crud

import (
	"context"
	"fmt"
	"sync"

	"sitedesk/internal/domain"
	"sitedesk/internal/ports/output"
)

// Source is the collection an Ops value reads and writes. Items returns the
// current snapshot; Replace commits a new one. A Source that also implements
// sync.Locker is locked for the whole read-evaluate-write of each operation.
type Source[T Record] interface {
	Items() []T
	Replace(ctx context.Context, items []T) error
}

// Ops holds the three write operations bound to one collection.
type Ops[T Record] struct {
	src      Source[T]
	entity   string
	notifier output.Notifier
	tr       output.T
	newID    IDGenerator
}

type Option func(*options)

type options struct {
	newID IDGenerator
}

// WithIDGenerator replaces the default ULID generator.
func WithIDGenerator(g IDGenerator) Option {
	return func(o *options) { o.newID = g }
}

// New binds operations to src. entity is the singular entity name used to
// look up "entity.<name>" for notifications.
func New[T Record](src Source[T], entity string, notifier output.Notifier, tr output.T, opts ...Option) *Ops[T] {
	o := options{newID: defaultIDs}
	for _, opt := range opts {
		opt(&o)
	}
	if notifier == nil {
		notifier = output.NotifierFunc(func(context.Context, output.Notification) {})
	}
	return &Ops[T]{
		src:      src,
		entity:   entity,
		notifier: notifier,
		tr:       tr,
		newID:    o.newID,
	}
}

// Create appends rec, assigning a fresh id when rec has none. Duplicate ids
// are not detected.
func (o *Ops[T]) Create(ctx context.Context, locale string, rec T) (T, error) {
	defer o.lock()()

	if rec.RecordID() == "" {
		var err error
		rec, err = withID(rec, o.newID())
		if err != nil {
			return rec, fmt.Errorf("create %s: %w", o.entity, err)
		}
	}

	cur := o.src.Items()
	next := make([]T, 0, len(cur)+1)
	next = append(next, cur...)
	next = append(next, rec)

	if err := o.commit(ctx, locale, next, "created", DisplayName(rec)); err != nil {
		return rec, err
	}
	return rec, nil
}

// Update shallow-merges patch into the record with the given id. It returns
// domain.ErrNotFound, leaving the collection untouched, when no record matches.
func (o *Ops[T]) Update(ctx context.Context, locale, id string, patch map[string]any) (T, error) {
	defer o.lock()()

	var updated T
	cur := o.src.Items()
	next := make([]T, len(cur))
	found := false
	for i, rec := range cur {
		if rec.RecordID() != id {
			next[i] = rec
			continue
		}
		merged, err := merge(rec, patch)
		if err != nil {
			return updated, fmt.Errorf("update %s %s: %w", o.entity, id, err)
		}
		next[i] = merged
		updated = merged
		found = true
	}
	if !found {
		o.notify(ctx, locale, output.LevelWarning, "not_found", id)
		return updated, fmt.Errorf("update %s %s: %w", o.entity, id, domain.ErrNotFound)
	}

	if err := o.commit(ctx, locale, next, "updated", DisplayName(updated)); err != nil {
		return updated, err
	}
	return updated, nil
}

// Remove drops the record with the given id. It returns domain.ErrNotFound
// when no record matches.
func (o *Ops[T]) Remove(ctx context.Context, locale, id string) error {
	defer o.lock()()

	cur := o.src.Items()
	next := make([]T, 0, len(cur))
	name := ""
	for _, rec := range cur {
		if rec.RecordID() == id {
			name = DisplayName(rec)
			continue
		}
		next = append(next, rec)
	}
	if len(next) == len(cur) {
		o.notify(ctx, locale, output.LevelWarning, "not_found", id)
		return fmt.Errorf("remove %s %s: %w", o.entity, id, domain.ErrNotFound)
	}

	return o.commit(ctx, locale, next, "deleted", name)
}

// commit hands next to the source, then notifies exactly once.
func (o *Ops[T]) commit(ctx context.Context, locale string, next []T, action, name string) error {
	if err := o.src.Replace(ctx, next); err != nil {
		o.notify(ctx, locale, output.LevelError, "failed", name)
		return fmt.Errorf("save %s: %w", o.entity, err)
	}
	o.notify(ctx, locale, output.LevelSuccess, action, name)
	return nil
}

func (o *Ops[T]) notify(ctx context.Context, locale string, level output.Level, action, name string) {
	data := map[string]any{
		"entity": o.tr.T(locale, "entity."+o.entity, nil),
		"name":   name,
	}
	o.notifier.Notify(ctx, output.Notification{
		Title:       o.tr.T(locale, "crud."+action+".title", data),
		Description: o.tr.T(locale, "crud."+action+".body", data),
		Level:       level,
	})
}

func (o *Ops[T]) lock() (unlock func()) {
	l, ok := o.src.(sync.Locker)
	if !ok {
		return func() {}
	}
	l.Lock()
	return l.Unlock
}
