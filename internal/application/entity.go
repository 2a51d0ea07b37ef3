package application

import (
	"context"
	"fmt"

	"sitedesk/internal/application/crud"
	"sitedesk/internal/domain"
	"sitedesk/internal/domain/entities"
	"sitedesk/internal/ports/input"
	"sitedesk/internal/ports/output"
)

var _ input.EntityUseCase = (*EntityService)(nil)

// binding is the untyped face of one typed collection.
type binding interface {
	add(ctx context.Context, req input.Request, fields map[string]any) (string, error)
	update(ctx context.Context, req input.Request, id string, fields map[string]any) error
	remove(ctx context.Context, req input.Request, id string) error
	list() []input.Summary
}

type typedBinding[T crud.Record] struct {
	coll   *Collection[T]
	entity string
	tr     output.T
	opts   []crud.Option
}

func bind[T crud.Record](coll *Collection[T], kind entities.Kind, tr output.T, opts []crud.Option) binding {
	return &typedBinding[T]{coll: coll, entity: string(kind), tr: tr, opts: opts}
}

func (b *typedBinding[T]) ops(n output.Notifier) *crud.Ops[T] {
	return crud.New[T](b.coll, b.entity, n, b.tr, b.opts...)
}

func (b *typedBinding[T]) add(ctx context.Context, req input.Request, fields map[string]any) (string, error) {
	rec, _, err := decodeFields[T](fields)
	if err != nil {
		return "", err
	}
	out, err := b.ops(req.Notifier).Create(ctx, req.Locale, rec)
	if err != nil {
		return "", err
	}
	return out.RecordID(), nil
}

func (b *typedBinding[T]) update(ctx context.Context, req input.Request, id string, fields map[string]any) error {
	_, patch, err := decodeFields[T](fields)
	if err != nil {
		return err
	}
	_, err = b.ops(req.Notifier).Update(ctx, req.Locale, id, patch)
	return err
}

func (b *typedBinding[T]) remove(ctx context.Context, req input.Request, id string) error {
	return b.ops(req.Notifier).Remove(ctx, req.Locale, id)
}

func (b *typedBinding[T]) list() []input.Summary {
	items := b.coll.Items()
	out := make([]input.Summary, 0, len(items))
	for _, rec := range items {
		out = append(out, input.Summary{ID: rec.RecordID(), Name: crud.DisplayName(rec)})
	}
	return out
}

// EntityService dispatches requests to the operations of each collection.
type EntityService struct {
	bindings map[entities.Kind]binding
	trash    *ProjectTrash
}

func NewEntityService(state *State, tr output.T, opts ...crud.Option) *EntityService {
	return &EntityService{
		bindings: map[entities.Kind]binding{
			entities.KindProject:     bind(state.Projects, entities.KindProject, tr, opts),
			entities.KindPersonnel:   bind(state.Personnel, entities.KindPersonnel, tr, opts),
			entities.KindMaterial:    bind(state.Materials, entities.KindMaterial, tr, opts),
			entities.KindTransaction: bind(state.Transactions, entities.KindTransaction, tr, opts),
			entities.KindLabTest:     bind(state.LabTests, entities.KindLabTest, tr, opts),
			entities.KindListing:     bind(state.Listings, entities.KindListing, tr, opts),
		},
		trash: NewProjectTrash(state.Projects, tr),
	}
}

func (s *EntityService) Add(ctx context.Context, req input.Request, fields map[string]any) (string, error) {
	b, err := s.writable(req)
	if err != nil {
		return "", err
	}
	return b.add(ctx, req, fields)
}

func (s *EntityService) Update(ctx context.Context, req input.Request, id string, fields map[string]any) error {
	b, err := s.writable(req)
	if err != nil {
		return err
	}
	return b.update(ctx, req, id, fields)
}

func (s *EntityService) Delete(ctx context.Context, req input.Request, id string) error {
	b, err := s.writable(req)
	if err != nil {
		return err
	}
	return b.remove(ctx, req, id)
}

// List is open to every role. Projects are split into active and archived.
func (s *EntityService) List(_ context.Context, req input.Request, archived bool) ([]input.Summary, error) {
	b, ok := s.bindings[req.Kind]
	if !ok {
		return nil, fmt.Errorf("%q: %w", req.Kind, domain.ErrUnknownEntity)
	}
	if req.Kind != entities.KindProject {
		return b.list(), nil
	}
	projects := s.trash.Active()
	if archived {
		projects = s.trash.Archived()
	}
	out := make([]input.Summary, 0, len(projects))
	for _, p := range projects {
		out = append(out, input.Summary{ID: p.ID, Name: crud.DisplayName(p), ArchivedAt: p.ArchivedAt})
	}
	return out, nil
}

func (s *EntityService) Archive(ctx context.Context, req input.Request, id string) error {
	req.Kind = entities.KindProject
	if _, err := s.writable(req); err != nil {
		return err
	}
	return s.trash.Archive(ctx, req.Locale, req.Notifier, id)
}

func (s *EntityService) Restore(ctx context.Context, req input.Request, id string) error {
	req.Kind = entities.KindProject
	if _, err := s.writable(req); err != nil {
		return err
	}
	return s.trash.Restore(ctx, req.Locale, req.Notifier, id)
}

func (s *EntityService) writable(req input.Request) (binding, error) {
	b, ok := s.bindings[req.Kind]
	if !ok {
		return nil, fmt.Errorf("%q: %w", req.Kind, domain.ErrUnknownEntity)
	}
	if !req.Actor.CanManage(req.Kind) {
		return nil, fmt.Errorf("%s on %s: %w", req.Actor, req.Kind, domain.ErrForbidden)
	}
	return b, nil
}
