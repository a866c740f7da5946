package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/aliskhannn/knowledge-vault-bot/internal/domain/entities"
)

var (
	ErrItemNotFound = errors.New("catalog item not found")
	ErrEmptyCatalog = errors.New("catalog is empty")
)

// catalogNamespace seeds the ids derived for entries that do not carry one.
var catalogNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("knowledge-vault/catalog"))

// XLSX layout: one entry per row, header in row 1.
const (
	xlsxColTitle = iota
	xlsxColDefinition
	xlsxColCategory
	xlsxColRelated
	xlsxColEtymology
	xlsxColExamples
	xlsxColID
)

// CatalogRepository serves the read-only catalog loaded at startup.
type CatalogRepository struct {
	items []entities.CatalogItem
	byID  map[string]int
}

// NewCatalogRepository loads the catalog from a .json or .xlsx file.
func NewCatalogRepository(path string) (*CatalogRepository, error) {
	var (
		items []entities.CatalogItem
		err   error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		items, err = loadXLSX(path)
	default:
		items, err = loadJSON(path)
	}
	if err != nil {
		return nil, err
	}

	return NewCatalogFromItems(items)
}

// NewCatalogFromItems validates items and builds the catalog.
// Items without an id get one derived from their title.
func NewCatalogFromItems(items []entities.CatalogItem) (*CatalogRepository, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCatalog
	}

	r := &CatalogRepository{
		items: make([]entities.CatalogItem, 0, len(items)),
		byID:  make(map[string]int, len(items)),
	}

	for i, item := range items {
		item.Title = strings.TrimSpace(item.Title)
		if item.Title == "" {
			return nil, fmt.Errorf("entry %d: empty title", i+1)
		}
		if !item.Category.Valid() {
			return nil, fmt.Errorf("entry %q: unknown category %q", item.Title, item.Category)
		}

		if item.ID == "" {
			item.ID = ItemIDForTitle(item.Title)
		} else if _, err := uuid.Parse(item.ID); err != nil {
			return nil, fmt.Errorf("entry %q: invalid id: %w", item.Title, err)
		}

		if _, dup := r.byID[item.ID]; dup {
			return nil, fmt.Errorf("entry %q: duplicate id %s", item.Title, item.ID)
		}

		r.byID[item.ID] = len(r.items)
		r.items = append(r.items, item)
	}

	return r, nil
}

// ItemIDForTitle derives the stable id of an entry from its title.
func ItemIDForTitle(title string) string {
	return uuid.NewSHA1(catalogNamespace, []byte(strings.ToLower(strings.TrimSpace(title)))).String()
}

// All returns every entry in catalog order.
func (r *CatalogRepository) All() []entities.CatalogItem {
	return r.items
}

// GetByID returns the entry with the given id.
func (r *CatalogRepository) GetByID(id string) (entities.CatalogItem, error) {
	idx, ok := r.byID[id]
	if !ok {
		return entities.CatalogItem{}, ErrItemNotFound
	}
	return r.items[idx], nil
}

// ByCategory returns entries of one category in catalog order.
func (r *CatalogRepository) ByCategory(category entities.Category) []entities.CatalogItem {
	var out []entities.CatalogItem
	for _, item := range r.items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

func loadJSON(path string) ([]entities.CatalogItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var wrapper struct {
		Entries []entities.CatalogItem `json:"entries"`
	}
	if err = json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog JSON: %w", err)
	}

	return wrapper.Entries, nil
}

func loadXLSX(path string) ([]entities.CatalogItem, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read rows of %q: %w", sheet, err)
	}

	var items []entities.CatalogItem
	for i, row := range rows {
		if i == 0 || isBlankRow(row) {
			continue
		}

		category, ok := entities.ParseCategory(cell(row, xlsxColCategory))
		if !ok {
			return nil, fmt.Errorf("row %d: unknown category %q", i+1, cell(row, xlsxColCategory))
		}

		items = append(items, entities.CatalogItem{
			ID:           cell(row, xlsxColID),
			Title:        cell(row, xlsxColTitle),
			Definition:   cell(row, xlsxColDefinition),
			Category:     category,
			RelatedTerms: splitList(cell(row, xlsxColRelated), ","),
			Etymology:    cell(row, xlsxColEtymology),
			Examples:     splitList(cell(row, xlsxColExamples), "|"),
		})
	}

	return items, nil
}

func cell(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

func isBlankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func splitList(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
