package view

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emreozcan/pymetheus/internal/sqlite"
	"github.com/emreozcan/pymetheus/pkg/schema"
	"github.com/emreozcan/pymetheus/pkg/types"
)

// fakePrompter answers every prompt from canned values. The zero value
// cancels everything.
type fakePrompter struct {
	textValue string
	textOK    bool
	pickIndex int
	pickOK    bool
	confirm   bool
	nameValue types.NameData
	nameOK    bool
	multi     []bool
	multiOK   bool
}

func (f *fakePrompter) Text(string, string) (string, bool) { return f.textValue, f.textOK }
func (f *fakePrompter) Pick(string, []string) (int, bool)  { return f.pickIndex, f.pickOK }
func (f *fakePrompter) Confirm(string) bool                { return f.confirm }
func (f *fakePrompter) Name(string, types.NameData) (types.NameData, bool) {
	return f.nameValue, f.nameOK
}
func (f *fakePrompter) MultiSelect(string, []string, []bool) ([]bool, bool) {
	return f.multi, f.multiOK
}

func setupCoordinator(t *testing.T) (*Coordinator, *sqlite.Library, *fakePrompter) {
	t.Helper()
	lib, err := sqlite.Create(filepath.Join(t.TempDir(), "pymetheus.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { lib.Close() })

	prompter := &fakePrompter{}
	coord := New(lib, prompter)
	require.NoError(t, coord.Refresh())
	return coord, lib, prompter
}

func mustType(t *testing.T, code string) *schema.ItemType {
	t.Helper()
	typ, err := schema.TypeByName(code)
	require.NoError(t, err)
	return typ
}

func TestInitialState(t *testing.T) {
	coord, _, _ := setupCoordinator(t)

	assert.Nil(t, coord.SelectedCollection())
	assert.Nil(t, coord.SelectedItem())
	assert.Empty(t, coord.Items())
	assert.Equal(t, -1, coord.SelectedRow())
}

func TestSelectCollectionFiltersItems(t *testing.T) {
	coord, lib, _ := setupCoordinator(t)

	col, err := lib.CreateCollection()
	require.NoError(t, err)
	inside, err := lib.CreateItem(mustType(t, "book"))
	require.NoError(t, err)
	_, err = lib.CreateItem(mustType(t, "webpage"))
	require.NoError(t, err)
	require.NoError(t, lib.SetItemCollections(inside.ID, []int64{col.ID}))
	require.NoError(t, coord.Refresh())

	require.Len(t, coord.Items(), 2)

	require.NoError(t, coord.SelectCollection(&col.ID))
	require.Len(t, coord.Items(), 1)
	assert.Equal(t, inside.ID, coord.Items()[0].ID)

	// Switching collection clears the item selection.
	require.NoError(t, coord.SelectItem(inside.ID))
	require.NoError(t, coord.SelectCollection(nil))
	assert.Nil(t, coord.SelectedItem())
	assert.Len(t, coord.Items(), 2)
}

func TestSelectCollectionUnknown(t *testing.T) {
	coord, _, _ := setupCoordinator(t)
	id := int64(99)
	assert.ErrorIs(t, coord.SelectCollection(&id), types.ErrNotFound)
}

func TestSetSearchFiltersClientSide(t *testing.T) {
	coord, lib, _ := setupCoordinator(t)

	shor, err := lib.CreateItem(mustType(t, "journalArticle"))
	require.NoError(t, err)
	shor.SetField("title", "Polynomial-Time Algorithms")
	shor.AddCreator("author", types.NameData{Family: "Shor"})
	require.NoError(t, lib.SaveItem(shor))
	other, err := lib.CreateItem(mustType(t, "book"))
	require.NoError(t, err)
	other.SetField("title", "Cooking for Two")
	require.NoError(t, lib.SaveItem(other))
	require.NoError(t, coord.Refresh())

	coord.SetSearch("SHOR")
	require.Len(t, coord.Items(), 1)
	assert.Equal(t, shor.ID, coord.Items()[0].ID)

	// The filter runs over the fetched set: rows added behind the
	// coordinator's back stay invisible until the next refresh.
	late, err := lib.CreateItem(mustType(t, "book"))
	require.NoError(t, err)
	late.SetField("title", "Shorelines")
	require.NoError(t, lib.SaveItem(late))

	coord.SetSearch("shor")
	require.Len(t, coord.Items(), 1)

	coord.SetSearch("")
	assert.Len(t, coord.Items(), 2)

	require.NoError(t, coord.Refresh())
	coord.SetSearch("shor")
	assert.Len(t, coord.Items(), 2)
}

func TestDetailRows(t *testing.T) {
	coord, lib, _ := setupCoordinator(t)

	item, err := lib.CreateItem(mustType(t, "book"))
	require.NoError(t, err)
	item.SetField("title", "Gödel, Escher, Bach")
	item.AddCreator("author", types.NameData{Given: "Douglas", Family: "Hofstadter"})
	require.NoError(t, lib.SaveItem(item))
	require.NoError(t, coord.Refresh())
	require.NoError(t, coord.SelectItem(item.ID))

	rows := coord.Rows()
	require.NotEmpty(t, rows)

	// The synthetic type row leads.
	assert.Equal(t, RowField, rows[0].Kind)
	assert.Equal(t, schema.FieldItemType, rows[0].Field)
	assert.Equal(t, "Book", rows[0].Value)

	var titleRow, creatorRow *Row
	for i := range rows {
		switch {
		case rows[i].Kind == RowField && rows[i].Field == "title":
			titleRow = &rows[i]
		case rows[i].Kind == RowCreator:
			creatorRow = &rows[i]
		}
	}
	require.NotNil(t, titleRow)
	assert.Equal(t, "Gödel, Escher, Bach", titleRow.Value)
	require.NotNil(t, creatorRow)
	assert.Equal(t, "author", creatorRow.CreatorType)
	assert.Equal(t, "Douglas Hofstadter", creatorRow.Value)

	coord.SelectRow(0)
	assert.Equal(t, 0, coord.SelectedRow())
	coord.SelectRow(len(rows) + 5)
	assert.Equal(t, -1, coord.SelectedRow())
}

func TestObserverSubscribeUnsubscribe(t *testing.T) {
	coord, _, _ := setupCoordinator(t)

	var events []Event
	token := coord.Subscribe(func(ev Event) { events = append(events, ev) })

	_, err := coord.CreateCollection()
	require.NoError(t, err)
	require.NotEmpty(t, events)
	assert.Equal(t, EventCollectionsChanged, events[len(events)-1].Kind)

	seen := len(events)
	coord.Unsubscribe(token)
	_, err = coord.CreateCollection()
	require.NoError(t, err)
	assert.Len(t, events, seen)
}

func TestRenameCollectionFlow(t *testing.T) {
	coord, lib, prompter := setupCoordinator(t)

	col, err := coord.CreateCollection()
	require.NoError(t, err)

	t.Run("cancel leaves the name alone", func(t *testing.T) {
		prompter.textOK = false
		require.NoError(t, coord.RenameCollection(col.ID))
		cols, err := lib.ListCollections()
		require.NoError(t, err)
		assert.Equal(t, col.Name, cols[0].Name)
	})

	t.Run("accept persists the new name", func(t *testing.T) {
		prompter.textValue = "Reading List"
		prompter.textOK = true
		require.NoError(t, coord.RenameCollection(col.ID))
		cols, err := lib.ListCollections()
		require.NoError(t, err)
		assert.Equal(t, "Reading List", cols[0].Name)
		assert.Equal(t, "Reading List", coord.Collections()[0].Name)
	})
}

func TestDeleteCollectionResetsScope(t *testing.T) {
	coord, lib, prompter := setupCoordinator(t)

	col, err := coord.CreateCollection()
	require.NoError(t, err)
	require.NoError(t, coord.SelectCollection(&col.ID))

	prompter.confirm = false
	require.NoError(t, coord.DeleteCollection(col.ID))
	assert.NotNil(t, coord.SelectedCollection())

	prompter.confirm = true
	require.NoError(t, coord.DeleteCollection(col.ID))
	assert.Nil(t, coord.SelectedCollection())

	cols, err := lib.ListCollections()
	require.NoError(t, err)
	assert.Empty(t, cols)
}

func TestCreateItemJoinsActiveCollection(t *testing.T) {
	coord, lib, prompter := setupCoordinator(t)

	col, err := coord.CreateCollection()
	require.NoError(t, err)
	require.NoError(t, coord.SelectCollection(&col.ID))

	t.Run("cancelled picker creates nothing", func(t *testing.T) {
		prompter.pickOK = false
		item, err := coord.CreateItem()
		require.NoError(t, err)
		assert.Nil(t, item)
		all, err := lib.ListItems(nil)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("picked type creates a member of the active collection", func(t *testing.T) {
		prompter.pickIndex = 0
		prompter.pickOK = true
		item, err := coord.CreateItem()
		require.NoError(t, err)
		require.NotNil(t, item)
		assert.Same(t, schema.Types()[0], item.Type)

		memberships, err := lib.ItemCollections(item.ID)
		require.NoError(t, err)
		assert.Equal(t, []int64{col.ID}, memberships)
		require.Len(t, coord.Items(), 1)
		assert.Equal(t, item, coord.SelectedItem())
	})
}

func TestDuplicateAndDeleteItemFlows(t *testing.T) {
	coord, lib, prompter := setupCoordinator(t)

	item, err := lib.CreateItem(mustType(t, "thesis"))
	require.NoError(t, err)
	item.SetField("title", "Original")
	require.NoError(t, lib.SaveItem(item))
	require.NoError(t, coord.Refresh())

	dup, err := coord.DuplicateItem(item.ID)
	require.NoError(t, err)
	assert.NotEqual(t, item.ID, dup.ID)
	assert.Equal(t, "Original", dup.FieldData["title"])
	assert.Len(t, coord.Items(), 2)

	require.NoError(t, coord.SelectItem(dup.ID))
	prompter.confirm = true
	require.NoError(t, coord.DeleteItem(dup.ID))
	assert.Nil(t, coord.SelectedItem())
	assert.Len(t, coord.Items(), 1)
}

func TestEditFieldFlow(t *testing.T) {
	coord, lib, prompter := setupCoordinator(t)

	item, err := lib.CreateItem(mustType(t, "book"))
	require.NoError(t, err)
	require.NoError(t, coord.Refresh())
	require.NoError(t, coord.SelectItem(item.ID))

	t.Run("accepted edit persists", func(t *testing.T) {
		prompter.textValue = "Structure and Interpretation"
		prompter.textOK = true
		require.NoError(t, coord.EditField("title"))

		stored, err := lib.GetItem(item.ID)
		require.NoError(t, err)
		assert.Equal(t, "Structure and Interpretation", stored.FieldData["title"])
		assert.Equal(t, "Structure and Interpretation", coord.SelectedItem().Title())
	})

	t.Run("cancelled edit mutates nothing", func(t *testing.T) {
		prompter.textValue = "Ignored"
		prompter.textOK = false
		require.NoError(t, coord.EditField("title"))

		stored, err := lib.GetItem(item.ID)
		require.NoError(t, err)
		assert.Equal(t, "Structure and Interpretation", stored.FieldData["title"])
	})

	t.Run("invalid date discards the edit", func(t *testing.T) {
		prompter.textValue = "2023-02-29"
		prompter.textOK = true
		assert.ErrorIs(t, coord.EditField("date"), types.ErrInvalidDate)

		stored, err := lib.GetItem(item.ID)
		require.NoError(t, err)
		_, present := stored.FieldData["date"]
		assert.False(t, present)
	})

	t.Run("valid date persists", func(t *testing.T) {
		prompter.textValue = "1984-02-29"
		prompter.textOK = true
		require.NoError(t, coord.EditField("date"))

		stored, err := lib.GetItem(item.ID)
		require.NoError(t, err)
		assert.Equal(t, "1984-02-29", stored.FieldData["date"])
	})
}

func TestClearFieldProtectsItemType(t *testing.T) {
	coord, lib, _ := setupCoordinator(t)

	item, err := lib.CreateItem(mustType(t, "book"))
	require.NoError(t, err)
	item.SetField("title", "Ephemeral")
	require.NoError(t, lib.SaveItem(item))
	require.NoError(t, coord.Refresh())
	require.NoError(t, coord.SelectItem(item.ID))

	assert.ErrorIs(t, coord.ClearField(schema.FieldItemType), types.ErrProtectedField)

	require.NoError(t, coord.ClearField("title"))
	stored, err := lib.GetItem(item.ID)
	require.NoError(t, err)
	_, present := stored.FieldData["title"]
	assert.False(t, present)
}

func TestCreatorFlows(t *testing.T) {
	coord, lib, prompter := setupCoordinator(t)

	item, err := lib.CreateItem(mustType(t, "book"))
	require.NoError(t, err)
	require.NoError(t, coord.Refresh())
	require.NoError(t, coord.SelectItem(item.ID))

	// Add an author through the picker.
	prompter.pickIndex = 0 // book's primary creator type is author
	prompter.pickOK = true
	prompter.nameValue = types.NameData{Given: "Ada", Family: "Lovelace"}
	prompter.nameOK = true
	require.NoError(t, coord.AddCreator())

	stored, err := lib.GetItem(item.ID)
	require.NoError(t, err)
	require.Len(t, stored.Creators["author"], 1)
	assert.Equal(t, "Ada Lovelace", stored.Creators["author"][0].Render())

	// Editing to a new name replaces in place.
	prompter.nameValue = types.NameData{Literal: "The Analytical Society"}
	require.NoError(t, coord.EditCreator("author", 0))
	stored, err = lib.GetItem(item.ID)
	require.NoError(t, err)
	assert.Equal(t, "The Analytical Society", stored.Creators["author"][0].Render())

	// Emptying every part removes the creator and its type key.
	prompter.nameValue = types.NameData{}
	require.NoError(t, coord.EditCreator("author", 0))
	stored, err = lib.GetItem(item.ID)
	require.NoError(t, err)
	_, present := stored.Creators["author"]
	assert.False(t, present)

	// Removing a stale position is ErrNotFound.
	assert.ErrorIs(t, coord.RemoveCreator("author", 0), types.ErrNotFound)
}

func TestAssignCollectionsReplacesMembership(t *testing.T) {
	coord, lib, prompter := setupCoordinator(t)

	first, err := coord.CreateCollection()
	require.NoError(t, err)
	second, err := coord.CreateCollection()
	require.NoError(t, err)
	item, err := lib.CreateItem(mustType(t, "book"))
	require.NoError(t, err)
	require.NoError(t, lib.SetItemCollections(item.ID, []int64{first.ID}))
	require.NoError(t, coord.Refresh())

	t.Run("cancel keeps the current membership", func(t *testing.T) {
		prompter.multiOK = false
		require.NoError(t, coord.AssignCollections(item.ID))
		got, err := lib.ItemCollections(item.ID)
		require.NoError(t, err)
		assert.Equal(t, []int64{first.ID}, got)
	})

	t.Run("selection replaces the full set", func(t *testing.T) {
		prompter.multi = []bool{false, true}
		prompter.multiOK = true
		require.NoError(t, coord.AssignCollections(item.ID))
		got, err := lib.ItemCollections(item.ID)
		require.NoError(t, err)
		assert.Equal(t, []int64{second.ID}, got)
	})
}
