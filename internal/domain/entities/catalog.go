// Package entities contains domain entities used across the application.
package entities

import "strings"

// Category classifies a catalog entry.
type Category string

const (
	CategoryDictionary   Category = "Dictionary"
	CategoryEncyclopedia Category = "Encyclopedia"
	CategoryScience      Category = "Science"
	CategoryHistory      Category = "History"
	CategoryLiterature   Category = "Literature"
	CategoryTechnology   Category = "Technology"
	CategoryPhilosophy   Category = "Philosophy"
	CategoryArts         Category = "Arts"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryDictionary,
	CategoryEncyclopedia,
	CategoryScience,
	CategoryHistory,
	CategoryLiterature,
	CategoryTechnology,
	CategoryPhilosophy,
	CategoryArts,
}

// CategoryStyle is the presentation data attached to a category.
type CategoryStyle struct {
	Icon  string
	Emoji string
	Color string
}

var categoryStyles = map[Category]CategoryStyle{
	CategoryDictionary:   {Icon: "book.closed", Emoji: "📕", Color: "#fcc418"},
	CategoryEncyclopedia: {Icon: "books.vertical", Emoji: "📚", Color: "#fcc418"},
	CategoryScience:      {Icon: "atom", Emoji: "⚛️", Color: "#3cc45b"},
	CategoryHistory:      {Icon: "clock", Emoji: "🕰", Color: "#fcc418"},
	CategoryLiterature:   {Icon: "text.book.closed", Emoji: "📖", Color: "#fcc418"},
	CategoryTechnology:   {Icon: "laptopcomputer", Emoji: "💻", Color: "#3cc45b"},
	CategoryPhilosophy:   {Icon: "brain.head.profile", Emoji: "🧠", Color: "#3cc45b"},
	CategoryArts:         {Icon: "paintbrush", Emoji: "🎨", Color: "#3cc45b"},
}

// Style returns the icon and color for the category.
// Unknown categories get the dictionary style.
func (c Category) Style() CategoryStyle {
	if s, ok := categoryStyles[c]; ok {
		return s
	}
	return categoryStyles[CategoryDictionary]
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := categoryStyles[c]
	return ok
}

// ParseCategory resolves a category name case-insensitively.
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	for _, c := range Categories {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}

// CatalogItem is a read-only reference entry.
type CatalogItem struct {
	ID           string   `json:"id"`            // stable UUID of the entry
	Title        string   `json:"title"`         // headword or article title
	Definition   string   `json:"definition"`    // short definition shown on the card back
	Category     Category `json:"category"`      // category tag
	RelatedTerms []string `json:"related_terms"` // related words and concepts
	Etymology    string   `json:"etymology,omitempty"`
	Examples     []string `json:"examples"`
}
