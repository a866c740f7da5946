package entities

import "time"

// Theme is the visual theme chosen by the user.
type Theme string

const (
	ThemeDefault      Theme = "Default"
	ThemeHighContrast Theme = "High Contrast"
	ThemeDarkMode     Theme = "Dark Mode"
)

// Themes lists the selectable themes.
var Themes = []Theme{ThemeDefault, ThemeHighContrast, ThemeDarkMode}

// ThemePalette holds the colors of a theme.
type ThemePalette struct {
	Background string
	Primary    string
	Secondary  string
}

var themePalettes = map[Theme]ThemePalette{
	ThemeDefault:      {Background: "#3e4464", Primary: "#fcc418", Secondary: "#3cc45b"},
	ThemeHighContrast: {Background: "#000000", Primary: "#ffffff", Secondary: "#ffff00"},
	ThemeDarkMode:     {Background: "#1c1c1e", Primary: "#fcc418", Secondary: "#3cc45b"},
}

// Palette returns the colors of the theme, falling back to the default theme.
func (t Theme) Palette() ThemePalette {
	if p, ok := themePalettes[t]; ok {
		return p
	}
	return themePalettes[ThemeDefault]
}

// MaxSearchHistory bounds the stored search history.
const MaxSearchHistory = 20

// Preferences stores user choices and reading state.
type Preferences struct {
	Theme                  Theme                 `json:"theme"`
	Bookmarks              map[string]struct{}   `json:"bookmarks"`
	Notes                  map[string]string     `json:"notes"`
	SearchHistory          []string              `json:"search_history"` // newest first
	HasCompletedOnboarding bool                  `json:"has_completed_onboarding"`
	Timezone               string                `json:"timezone,omitempty"`
	RemindersEnabled       bool                  `json:"reminders_enabled"`
	ViewedItems            map[string]struct{}   `json:"viewed_items"`
	ViewedCategories       map[Category]struct{} `json:"viewed_categories"`
	LastOpenedItemID       string                `json:"last_opened_item_id,omitempty"`
	UpdatedAt              time.Time             `json:"updated_at"`
}

// NewPreferences creates preferences with default values.
func NewPreferences() *Preferences {
	p := &Preferences{Theme: ThemeDefault, RemindersEnabled: true}
	p.ensureMaps()
	return p
}

// Normalize fills nil collections after decoding.
func (p *Preferences) Normalize() {
	if p.Theme == "" {
		p.Theme = ThemeDefault
	}
	p.ensureMaps()
}

func (p *Preferences) ensureMaps() {
	if p.Bookmarks == nil {
		p.Bookmarks = make(map[string]struct{})
	}
	if p.Notes == nil {
		p.Notes = make(map[string]string)
	}
	if p.ViewedItems == nil {
		p.ViewedItems = make(map[string]struct{})
	}
	if p.ViewedCategories == nil {
		p.ViewedCategories = make(map[Category]struct{})
	}
}

// ToggleBookmark flips the bookmark of itemID and reports the new state.
func (p *Preferences) ToggleBookmark(itemID string) bool {
	if _, ok := p.Bookmarks[itemID]; ok {
		delete(p.Bookmarks, itemID)
		return false
	}
	p.Bookmarks[itemID] = struct{}{}
	return true
}

// IsBookmarked reports whether itemID is bookmarked.
func (p *Preferences) IsBookmarked(itemID string) bool {
	_, ok := p.Bookmarks[itemID]
	return ok
}

// SetNote stores a note for itemID. An empty note removes it.
func (p *Preferences) SetNote(itemID, note string) {
	if note == "" {
		delete(p.Notes, itemID)
		return
	}
	p.Notes[itemID] = note
}

// AddSearch moves query to the front of the history, dropping duplicates
// and entries beyond MaxSearchHistory. Empty queries are ignored.
func (p *Preferences) AddSearch(query string) bool {
	if query == "" {
		return false
	}

	history := make([]string, 0, len(p.SearchHistory)+1)
	history = append(history, query)
	for _, q := range p.SearchHistory {
		if q != query {
			history = append(history, q)
		}
	}
	if len(history) > MaxSearchHistory {
		history = history[:MaxSearchHistory]
	}
	p.SearchHistory = history

	return true
}

// MarkItemViewed records that an item of the given category was opened.
func (p *Preferences) MarkItemViewed(itemID string, category Category) {
	p.ViewedItems[itemID] = struct{}{}
	if category != "" {
		p.ViewedCategories[category] = struct{}{}
	}
	p.LastOpenedItemID = itemID
}
