package input

import (
	"context"
	"time"

	"sitedesk/internal/domain"
	"sitedesk/internal/domain/entities"
	"sitedesk/internal/ports/output"
)

// Request carries who is acting, in which locale, on which collection, and
// where feedback goes.
type Request struct {
	Actor    domain.Role
	Locale   string
	Kind     entities.Kind
	Notifier output.Notifier
}

// Summary is the list view of one record.
type Summary struct {
	ID         string
	Name       string
	ArchivedAt *time.Time
}

type EntityUseCase interface {
	Add(ctx context.Context, req Request, fields map[string]any) (string, error)
	Update(ctx context.Context, req Request, id string, fields map[string]any) error
	Delete(ctx context.Context, req Request, id string) error
	List(ctx context.Context, req Request, archived bool) ([]Summary, error)
	Archive(ctx context.Context, req Request, id string) error
	Restore(ctx context.Context, req Request, id string) error
}
