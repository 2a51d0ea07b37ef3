package application

import (
	"context"
	"fmt"
	"time"

	"sitedesk/internal/application/crud"
	"sitedesk/internal/domain"
	"sitedesk/internal/domain/entities"
	"sitedesk/internal/ports/output"
)

// ProjectTrash soft-deletes projects. It writes the project collection
// directly and does not go through the generic operations.
type ProjectTrash struct {
	projects *Collection[entities.Project]
	tr       output.T
	now      func() time.Time
}

func NewProjectTrash(projects *Collection[entities.Project], tr output.T) *ProjectTrash {
	return &ProjectTrash{projects: projects, tr: tr, now: time.Now}
}

// Archive stamps archived_at on the project.
func (t *ProjectTrash) Archive(ctx context.Context, locale string, n output.Notifier, id string) error {
	return t.toggle(ctx, locale, n, id, true)
}

// Restore clears archived_at.
func (t *ProjectTrash) Restore(ctx context.Context, locale string, n output.Notifier, id string) error {
	return t.toggle(ctx, locale, n, id, false)
}

// Active returns projects that are not archived, in collection order.
func (t *ProjectTrash) Active() []entities.Project {
	return t.filter(false)
}

// Archived returns archived projects, in collection order.
func (t *ProjectTrash) Archived() []entities.Project {
	return t.filter(true)
}

func (t *ProjectTrash) filter(archived bool) []entities.Project {
	out := []entities.Project{}
	for _, p := range t.projects.Items() {
		if p.IsArchived() == archived {
			out = append(out, p)
		}
	}
	return out
}

func (t *ProjectTrash) toggle(ctx context.Context, locale string, n output.Notifier, id string, archive bool) error {
	t.projects.Lock()
	defer t.projects.Unlock()

	items := t.projects.Items()
	idx := -1
	for i := range items {
		if items[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		t.notify(ctx, locale, n, output.LevelWarning, "crud.not_found", id)
		return fmt.Errorf("trash %s: %w", id, domain.ErrNotFound)
	}

	p := items[idx]
	name := crud.DisplayName(p)
	switch {
	case archive && p.IsArchived():
		t.notify(ctx, locale, n, output.LevelWarning, "trash.already_archived", name)
		return domain.ErrAlreadyArchived
	case !archive && !p.IsArchived():
		t.notify(ctx, locale, n, output.LevelWarning, "trash.not_archived", name)
		return domain.ErrNotArchived
	}

	action := "trash.restored"
	p.ArchivedAt = nil
	if archive {
		ts := t.now().UTC()
		p.ArchivedAt = &ts
		action = "trash.archived"
	}
	items[idx] = p

	if err := t.projects.Replace(ctx, items); err != nil {
		t.notify(ctx, locale, n, output.LevelError, "crud.failed", name)
		return err
	}
	t.notify(ctx, locale, n, output.LevelSuccess, action, name)
	return nil
}

func (t *ProjectTrash) notify(ctx context.Context, locale string, n output.Notifier, level output.Level, key, name string) {
	if n == nil {
		return
	}
	data := map[string]any{
		"entity": t.tr.T(locale, "entity."+string(entities.KindProject), nil),
		"name":   name,
	}
	n.Notify(ctx, output.Notification{
		Title:       t.tr.T(locale, key+".title", data),
		Description: t.tr.T(locale, key+".body", data),
		Level:       level,
	})
}
