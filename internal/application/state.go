package application

import (
	"context"
	"strings"

	"sitedesk/internal/application/crud"
	"sitedesk/internal/domain/entities"
	"sitedesk/internal/ports/output"
)

var _ crud.Source[entities.Project] = (*Collection[entities.Project])(nil)

// State owns every entity collection. It is created once by main and passed
// to whoever needs the datasets.
type State struct {
	Projects     *Collection[entities.Project]
	Personnel    *Collection[entities.Personnel]
	Materials    *Collection[entities.Material]
	Transactions *Collection[entities.Transaction]
	LabTests     *Collection[entities.LabTest]
	Listings     *Collection[entities.Listing]
}

// NewState binds one collection per kind to "<prefix>.<storage key>".
func NewState(store output.KVStore, prefix string) *State {
	key := func(k entities.Kind) string {
		if p := strings.TrimSpace(prefix); p != "" {
			return p + "." + k.StorageKey()
		}
		return k.StorageKey()
	}
	return &State{
		Projects:     NewCollection[entities.Project](store, key(entities.KindProject)),
		Personnel:    NewCollection[entities.Personnel](store, key(entities.KindPersonnel)),
		Materials:    NewCollection[entities.Material](store, key(entities.KindMaterial)),
		Transactions: NewCollection[entities.Transaction](store, key(entities.KindTransaction)),
		LabTests:     NewCollection[entities.LabTest](store, key(entities.KindLabTest)),
		Listings:     NewCollection[entities.Listing](store, key(entities.KindListing)),
	}
}

// Load reads every collection from the store.
func (s *State) Load(ctx context.Context) error {
	loaders := []interface{ Load(context.Context) error }{
		s.Projects, s.Personnel, s.Materials, s.Transactions, s.LabTests, s.Listings,
	}
	for _, l := range loaders {
		if err := l.Load(ctx); err != nil {
			return err
		}
	}
	return nil
}
