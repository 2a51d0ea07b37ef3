package crud

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitedesk/internal/domain"
	"sitedesk/internal/ports/output"
)

type material struct {
	ID       string  `json:"id"`
	Name     string  `json:"name,omitempty"`
	Quantity float64 `json:"quantity,omitempty"`
	Unit     string  `json:"unit,omitempty"`
}

func (m material) RecordID() string { return m.ID }

type labTest struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func (l labTest) RecordID() string { return l.ID }

type sliceSource[T Record] struct {
	items    []T
	replaces int
	err      error
}

func (s *sliceSource[T]) Items() []T { return s.items }

func (s *sliceSource[T]) Replace(_ context.Context, items []T) error {
	s.replaces++
	if s.err != nil {
		return s.err
	}
	s.items = items
	return nil
}

type recorder struct {
	got []output.Notification
}

func (r *recorder) Notify(_ context.Context, n output.Notification) { r.got = append(r.got, n) }

// keyTranslator renders "key|name" so tests can assert which message was used.
type keyTranslator struct{}

func (keyTranslator) T(_, key string, data map[string]any) string {
	if name, ok := data["name"]; ok {
		return fmt.Sprintf("%s|%v", key, name)
	}
	return key
}

func sequentialIDs() IDGenerator {
	n := 0
	return func() string {
		n++
		return "id-" + strconv.Itoa(n)
	}
}

func newOps[T Record](src Source[T], rec *recorder) *Ops[T] {
	return New[T](src, "material", rec, keyTranslator{}, WithIDGenerator(sequentialIDs()))
}

func TestCreateAssignsID(t *testing.T) {
	src := &sliceSource[material]{}
	rec := &recorder{}
	ops := newOps[material](src, rec)

	got, err := ops.Create(context.Background(), "en", material{Name: "Steel"})
	require.NoError(t, err)

	require.Len(t, src.items, 1)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "Steel", src.items[0].Name)
	assert.Equal(t, got.ID, src.items[0].ID)

	require.Len(t, rec.got, 1)
	assert.Equal(t, output.LevelSuccess, rec.got[0].Level)
	assert.Equal(t, "crud.created.body|Steel", rec.got[0].Description)
}

func TestCreateWithDefaultGenerator(t *testing.T) {
	src := &sliceSource[material]{}
	ops := New[material](src, "material", nil, keyTranslator{})

	a, err := ops.Create(context.Background(), "en", material{Name: "Sand"})
	require.NoError(t, err)
	b, err := ops.Create(context.Background(), "en", material{Name: "Gravel"})
	require.NoError(t, err)

	assert.Len(t, a.ID, 26)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestCreateKeepsExistingID(t *testing.T) {
	src := &sliceSource[material]{}
	ops := newOps[material](src, &recorder{})

	got, err := ops.Create(context.Background(), "en", material{ID: "m-7", Name: "Rebar"})
	require.NoError(t, err)
	assert.Equal(t, "m-7", got.ID)
}

func TestCreateDoesNotMutateInput(t *testing.T) {
	original := []material{{ID: "1", Name: "Cement"}}
	src := &sliceSource[material]{items: original[:1:1]}
	ops := newOps[material](src, &recorder{})

	_, err := ops.Create(context.Background(), "en", material{Name: "Steel"})
	require.NoError(t, err)

	assert.Len(t, original, 1)
	assert.Len(t, src.items, 2)
}

func TestDisplayNameFallsBackToTitleThenID(t *testing.T) {
	assert.Equal(t, "Slump test", DisplayName(labTest{ID: "l1", Title: "Slump test"}))
	assert.Equal(t, "m1", DisplayName(material{ID: "m1"}))
}

func TestUpdateMergesShallowly(t *testing.T) {
	src := &sliceSource[material]{items: []material{
		{ID: "1", Name: "Cement", Unit: "bag"},
		{ID: "2", Name: "Sand"},
	}}
	rec := &recorder{}
	ops := newOps[material](src, rec)

	_, err := ops.Update(context.Background(), "en", "1", map[string]any{"quantity": 50})
	require.NoError(t, err)

	assert.Equal(t, []material{
		{ID: "1", Name: "Cement", Unit: "bag", Quantity: 50},
		{ID: "2", Name: "Sand"},
	}, src.items)
	require.Len(t, rec.got, 1)
	assert.Equal(t, "crud.updated.body|Cement", rec.got[0].Description)
}

func TestUpdateNeverRewritesID(t *testing.T) {
	src := &sliceSource[material]{items: []material{{ID: "1", Name: "Cement"}}}
	ops := newOps[material](src, &recorder{})

	got, err := ops.Update(context.Background(), "en", "1", map[string]any{"id": "2", "name": "Lime"})
	require.NoError(t, err)
	assert.Equal(t, material{ID: "1", Name: "Lime"}, got)
}

func TestUpdateRejectsMistypedField(t *testing.T) {
	src := &sliceSource[material]{items: []material{{ID: "1", Name: "Cement"}}}
	rec := &recorder{}
	ops := newOps[material](src, rec)

	_, err := ops.Update(context.Background(), "en", "1", map[string]any{"quantity": "a lot"})
	require.Error(t, err)
	assert.Equal(t, 0, src.replaces)
	assert.Empty(t, rec.got)
}

func TestUpdateUnknownID(t *testing.T) {
	src := &sliceSource[material]{items: []material{{ID: "1", Name: "Cement"}}}
	rec := &recorder{}
	ops := newOps[material](src, rec)

	_, err := ops.Update(context.Background(), "en", "nope", map[string]any{"name": "X"})
	require.ErrorIs(t, err, domain.ErrNotFound)

	assert.Equal(t, 0, src.replaces)
	assert.Equal(t, []material{{ID: "1", Name: "Cement"}}, src.items)
	require.Len(t, rec.got, 1)
	assert.Equal(t, output.LevelWarning, rec.got[0].Level)
	assert.Equal(t, "crud.not_found.body|nope", rec.got[0].Description)
}

func TestAddThenDeleteRoundTrip(t *testing.T) {
	before := []material{{ID: "1", Name: "Cement"}, {ID: "2", Name: "Sand"}}
	src := &sliceSource[material]{items: append([]material(nil), before...)}
	rec := &recorder{}
	ops := newOps[material](src, rec)

	added, err := ops.Create(context.Background(), "en", material{Name: "Steel"})
	require.NoError(t, err)
	require.NoError(t, ops.Remove(context.Background(), "en", added.ID))

	assert.Equal(t, before, src.items)
	require.Len(t, rec.got, 2)
	assert.Equal(t, "crud.deleted.body|Steel", rec.got[1].Description)
}

func TestAddThenUpdateKeepsLength(t *testing.T) {
	src := &sliceSource[material]{items: []material{{ID: "1", Name: "Cement"}}}
	ops := newOps[material](src, &recorder{})

	added, err := ops.Create(context.Background(), "en", material{Name: "Steel", Unit: "t"})
	require.NoError(t, err)
	n := len(src.items)

	_, err = ops.Update(context.Background(), "en", added.ID, map[string]any{"quantity": 3.5})
	require.NoError(t, err)

	assert.Len(t, src.items, n)
	assert.Equal(t, material{ID: added.ID, Name: "Steel", Unit: "t", Quantity: 3.5}, src.items[1])
}

func TestRemoveUnknownID(t *testing.T) {
	src := &sliceSource[material]{items: []material{{ID: "1", Name: "Cement"}}}
	rec := &recorder{}
	ops := newOps[material](src, rec)

	err := ops.Remove(context.Background(), "en", "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, []material{{ID: "1", Name: "Cement"}}, src.items)
	require.Len(t, rec.got, 1)
	assert.Equal(t, "crud.not_found.body|missing", rec.got[0].Description)
}

func TestSaveFailureNotifiesError(t *testing.T) {
	boom := errors.New("disk full")
	src := &sliceSource[material]{err: boom}
	rec := &recorder{}
	ops := newOps[material](src, rec)

	_, err := ops.Create(context.Background(), "en", material{Name: "Steel"})
	require.ErrorIs(t, err, boom)
	require.Len(t, rec.got, 1)
	assert.Equal(t, output.LevelError, rec.got[0].Level)
	assert.Equal(t, "crud.failed.body|Steel", rec.got[0].Description)
}

func TestEachOperationReplacesOnceThenNotifiesOnce(t *testing.T) {
	src := &sliceSource[material]{}
	rec := &recorder{}
	ops := New[material](src, "material", output.NotifierFunc(func(ctx context.Context, n output.Notification) {
		// The new snapshot is committed before feedback is shown.
		assert.Equal(t, len(rec.got)+1, src.replaces)
		rec.Notify(ctx, n)
	}), keyTranslator{}, WithIDGenerator(sequentialIDs()))

	ctx := context.Background()
	m, err := ops.Create(ctx, "en", material{Name: "Steel"})
	require.NoError(t, err)
	_, err = ops.Update(ctx, "en", m.ID, map[string]any{"unit": "t"})
	require.NoError(t, err)
	require.NoError(t, ops.Remove(ctx, "en", m.ID))

	assert.Equal(t, 3, src.replaces)
	assert.Len(t, rec.got, 3)
}
