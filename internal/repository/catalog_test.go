package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/aliskhannn/knowledge-vault-bot/internal/domain/entities"
)

func TestItemIDForTitleIsDeterministic(t *testing.T) {
	id := ItemIDForTitle("Serendipity")

	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, ItemIDForTitle("  serendipity "))
	assert.NotEqual(t, id, ItemIDForTitle("Ephemeral"))
}

func TestNewCatalogFromItems(t *testing.T) {
	explicit := uuid.NewString()

	catalog, err := NewCatalogFromItems([]entities.CatalogItem{
		{Title: "Stoicism", Category: entities.CategoryPhilosophy},
		{ID: explicit, Title: "Baroque", Category: entities.CategoryArts},
		{Title: "Existentialism", Category: entities.CategoryPhilosophy},
	})
	require.NoError(t, err)

	all := catalog.All()
	require.Len(t, all, 3)
	assert.Equal(t, ItemIDForTitle("Stoicism"), all[0].ID)
	assert.Equal(t, explicit, all[1].ID)

	item, err := catalog.GetByID(explicit)
	require.NoError(t, err)
	assert.Equal(t, "Baroque", item.Title)

	_, err = catalog.GetByID("missing")
	assert.ErrorIs(t, err, ErrItemNotFound)

	philosophy := catalog.ByCategory(entities.CategoryPhilosophy)
	require.Len(t, philosophy, 2)
	assert.Equal(t, "Stoicism", philosophy[0].Title)
	assert.Empty(t, catalog.ByCategory(entities.CategoryScience))
}

func TestNewCatalogFromItemsRejectsInvalidEntries(t *testing.T) {
	cases := map[string][]entities.CatalogItem{
		"empty":     nil,
		"no title":  {{Title: " ", Category: entities.CategoryArts}},
		"category":  {{Title: "Baroque", Category: "Music"}},
		"bad id":    {{ID: "not-a-uuid", Title: "Baroque", Category: entities.CategoryArts}},
		"duplicate": {{Title: "Baroque", Category: entities.CategoryArts}, {Title: "baroque", Category: entities.CategoryArts}},
	}

	for name, items := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewCatalogFromItems(items)
			assert.Error(t, err)
		})
	}

	_, err := NewCatalogFromItems(nil)
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestNewCatalogRepositoryJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"entries": [
		{"title": "Metaphor", "definition": "A figure of speech", "category": "Literature",
		 "related_terms": ["simile"], "examples": ["Life is a journey"]}
	]}`), 0o600))

	catalog, err := NewCatalogRepository(path)
	require.NoError(t, err)

	all := catalog.All()
	require.Len(t, all, 1)
	assert.Equal(t, "Metaphor", all[0].Title)
	assert.Equal(t, entities.CategoryLiterature, all[0].Category)
	assert.Equal(t, []string{"simile"}, all[0].RelatedTerms)
	assert.Equal(t, ItemIDForTitle("Metaphor"), all[0].ID)
}

func TestNewCatalogRepositoryXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Title", "Definition", "Category", "Related", "Etymology", "Examples", "ID"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"Blockchain", "A distributed ledger", "technology", "cryptography, ledger", "", "Bitcoin | Supply chains"}))
	require.NoError(t, f.SetSheetRow(sheet, "A4", &[]any{"Renaissance", "A period of rebirth", "History"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	catalog, err := NewCatalogRepository(path)
	require.NoError(t, err)

	all := catalog.All()
	require.Len(t, all, 2)
	assert.Equal(t, entities.CategoryTechnology, all[0].Category)
	assert.Equal(t, []string{"cryptography", "ledger"}, all[0].RelatedTerms)
	assert.Equal(t, []string{"Bitcoin", "Supply chains"}, all[0].Examples)
	assert.Equal(t, ItemIDForTitle("Blockchain"), all[0].ID)
	assert.Equal(t, "Renaissance", all[1].Title)
}

func TestBundledCatalogCoversEveryCategory(t *testing.T) {
	catalog, err := NewCatalogRepository(filepath.Join("..", "..", "assets", "catalog.json"))
	require.NoError(t, err)

	for _, c := range entities.Categories {
		assert.NotEmpty(t, catalog.ByCategory(c), c)
	}
}
