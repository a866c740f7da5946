package entities

// AchievementCategory groups achievements by the counter that drives them.
type AchievementCategory string

const (
	AchievementReading     AchievementCategory = "Reading"
	AchievementStreak      AchievementCategory = "Streak"
	AchievementBookmarks   AchievementCategory = "Bookmarks"
	AchievementNotes       AchievementCategory = "Notes"
	AchievementExploration AchievementCategory = "Exploration"
)

// AchievementCategories lists categories in display order.
var AchievementCategories = []AchievementCategory{
	AchievementReading,
	AchievementStreak,
	AchievementBookmarks,
	AchievementNotes,
	AchievementExploration,
}

// MaxRecentlyUnlocked bounds the recently unlocked list.
const MaxRecentlyUnlocked = 5

// Achievement is a threshold-gated milestone.
type Achievement struct {
	ID              string              `json:"id"`
	Title           string              `json:"title"`
	Description     string              `json:"description"`
	Icon            string              `json:"icon"`
	Requirement     int                 `json:"requirement"`
	CurrentProgress int                 `json:"current_progress"` // clamped to Requirement
	IsUnlocked      bool                `json:"is_unlocked"`
	Category        AchievementCategory `json:"category"`
}

// ProgressPercentage returns progress in the range [0, 1].
func (a Achievement) ProgressPercentage() float64 {
	if a.Requirement <= 0 {
		return 1
	}
	return float64(a.CurrentProgress) / float64(a.Requirement)
}

// Points returns the reward granted when the achievement unlocks.
func (a Achievement) Points() int {
	switch a.Category {
	case AchievementReading:
		return a.Requirement * 10
	case AchievementStreak:
		return a.Requirement * 20
	case AchievementBookmarks:
		return a.Requirement * 5
	case AchievementNotes:
		return a.Requirement * 15
	case AchievementExploration:
		return 100
	default:
		return 0
	}
}

// DefaultAchievements returns a fresh copy of the built-in achievement catalog.
func DefaultAchievements() []Achievement {
	return []Achievement{
		{ID: "read_1", Title: "First Steps", Description: "Read your first entry", Icon: "📖", Requirement: 1, Category: AchievementReading},
		{ID: "read_10", Title: "Knowledge Seeker", Description: "Read 10 different entries", Icon: "📚", Requirement: 10, Category: AchievementReading},
		{ID: "read_25", Title: "Avid Reader", Description: "Read 25 different entries", Icon: "📕", Requirement: 25, Category: AchievementReading},
		{ID: "read_50", Title: "Scholar", Description: "Read 50 different entries", Icon: "🎓", Requirement: 50, Category: AchievementReading},

		{ID: "streak_3", Title: "Getting Started", Description: "3 day learning streak", Icon: "🔥", Requirement: 3, Category: AchievementStreak},
		{ID: "streak_7", Title: "Week Warrior", Description: "7 day learning streak", Icon: "🔥", Requirement: 7, Category: AchievementStreak},
		{ID: "streak_30", Title: "Dedicated Learner", Description: "30 day learning streak", Icon: "⭐", Requirement: 30, Category: AchievementStreak},

		{ID: "bookmark_5", Title: "Collector", Description: "Bookmark 5 entries", Icon: "🔖", Requirement: 5, Category: AchievementBookmarks},
		{ID: "bookmark_20", Title: "Curator", Description: "Bookmark 20 entries", Icon: "🗂", Requirement: 20, Category: AchievementBookmarks},

		{ID: "notes_1", Title: "Note Taker", Description: "Add your first note", Icon: "📝", Requirement: 1, Category: AchievementNotes},
		{ID: "notes_10", Title: "Thoughtful Writer", Description: "Add notes to 10 entries", Icon: "✍️", Requirement: 10, Category: AchievementNotes},

		{ID: "explore_all", Title: "Explorer", Description: "View all categories", Icon: "🌍", Requirement: 8, Category: AchievementExploration},
		{ID: "search_master", Title: "Search Master", Description: "Perform 50 searches", Icon: "🔍", Requirement: 50, Category: AchievementExploration},
	}
}

// AchievementBook is the persisted achievement state of one user.
type AchievementBook struct {
	Achievements     []Achievement `json:"achievements"`
	TotalPoints      int           `json:"total_points"`
	RecentlyUnlocked []Achievement `json:"recently_unlocked"` // newest first
}

// NewAchievementBook creates a book with the default catalog and no progress.
func NewAchievementBook() *AchievementBook {
	return &AchievementBook{Achievements: DefaultAchievements()}
}

// UpdateProgress sets the progress of achievement id to value, clamped to its requirement.
// When the achievement unlocks for the first time the unlocked copy is returned with true.
// Unknown ids are ignored. An unlocked achievement never locks again.
func (b *AchievementBook) UpdateProgress(id string, value int) (Achievement, bool) {
	idx := b.index(id)
	if idx < 0 {
		return Achievement{}, false
	}

	a := &b.Achievements[idx]
	a.CurrentProgress = min(value, a.Requirement)

	if a.IsUnlocked || a.CurrentProgress < a.Requirement {
		return Achievement{}, false
	}

	a.IsUnlocked = true
	b.TotalPoints += a.Points()

	recent := make([]Achievement, 0, MaxRecentlyUnlocked)
	recent = append(recent, *a)
	recent = append(recent, b.RecentlyUnlocked...)
	if len(recent) > MaxRecentlyUnlocked {
		recent = recent[:MaxRecentlyUnlocked]
	}
	b.RecentlyUnlocked = recent

	return *a, true
}

// UnlockedCount returns how many achievements are unlocked.
func (b *AchievementBook) UnlockedCount() int {
	n := 0
	for _, a := range b.Achievements {
		if a.IsUnlocked {
			n++
		}
	}
	return n
}

// Get returns the achievement with the given id.
func (b *AchievementBook) Get(id string) (Achievement, bool) {
	idx := b.index(id)
	if idx < 0 {
		return Achievement{}, false
	}
	return b.Achievements[idx], true
}

// ByCategory returns the achievements of one category in catalog order.
func (b *AchievementBook) ByCategory(category AchievementCategory) []Achievement {
	var out []Achievement
	for _, a := range b.Achievements {
		if a.Category == category {
			out = append(out, a)
		}
	}
	return out
}

func (b *AchievementBook) index(id string) int {
	for i := range b.Achievements {
		if b.Achievements[i].ID == id {
			return i
		}
	}
	return -1
}
