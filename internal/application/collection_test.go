package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitedesk/internal/domain/entities"
	"sitedesk/internal/infrastructure/database"
)

func TestCollectionLoadsPersistedItems(t *testing.T) {
	ctx := context.Background()
	store := database.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "sitedesk.materials", []byte(`[{"id":"1","name":"Cement","quantity":5}]`)))

	c := NewCollection[entities.Material](store, "sitedesk.materials")
	require.NoError(t, c.Load(ctx))
	assert.Equal(t, []entities.Material{{ID: "1", Name: "Cement", Quantity: 5}}, c.Items())
}

func TestCollectionCorruptDataLoadsEmpty(t *testing.T) {
	ctx := context.Background()
	store := database.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "sitedesk.materials", []byte(`{not json`)))

	c := NewCollection[entities.Material](store, "sitedesk.materials")
	require.NoError(t, c.Load(ctx))
	assert.Empty(t, c.Items())
}

func TestCollectionMissingKeyLoadsEmpty(t *testing.T) {
	c := NewCollection[entities.Listing](database.NewMemoryStore(), "sitedesk.listings")
	require.NoError(t, c.Load(context.Background()))
	assert.Empty(t, c.Items())
}

func TestCollectionItemsIsACopy(t *testing.T) {
	ctx := context.Background()
	c := NewCollection[entities.Material](database.NewMemoryStore(), "k")
	require.NoError(t, c.Replace(ctx, []entities.Material{{ID: "1", Name: "Cement"}}))

	items := c.Items()
	items[0].Name = "Lime"
	assert.Equal(t, "Cement", c.Items()[0].Name)
}

func TestCollectionReplaceWritesEmptyArray(t *testing.T) {
	ctx := context.Background()
	store := database.NewMemoryStore()
	c := NewCollection[entities.Material](store, "k")
	require.NoError(t, c.Replace(ctx, nil))

	raw, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "[]", string(raw))
}

func TestStateKeys(t *testing.T) {
	s := NewState(database.NewMemoryStore(), "acme")
	assert.Equal(t, "acme.projects", s.Projects.Key())
	assert.Equal(t, "acme.labtests", s.LabTests.Key())

	s = NewState(database.NewMemoryStore(), "")
	assert.Equal(t, "transactions", s.Transactions.Key())
}

func TestStateRoundTripsThroughStore(t *testing.T) {
	ctx := context.Background()
	store := database.NewMemoryStore()

	first := NewState(store, "sitedesk")
	require.NoError(t, first.Load(ctx))
	require.NoError(t, first.Personnel.Replace(ctx, []entities.Personnel{{ID: "w1", Name: "Ana", Active: true}}))

	second := NewState(store, "sitedesk")
	require.NoError(t, second.Load(ctx))
	assert.Equal(t, first.Personnel.Items(), second.Personnel.Items())
}
