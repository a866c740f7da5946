package entities

import "time"

// User is a known bot user.
type User struct {
	ID        int64     `json:"id"` // Telegram user ID
	ChatID    int64     `json:"chat_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUser creates a user record.
func NewUser(id, chatID int64, now time.Time) *User {
	return &User{
		ID:        id,
		ChatID:    chatID,
		CreatedAt: now,
	}
}

// ActivityType is the kind of a logged user action.
type ActivityType string

const (
	ActivitySearch     ActivityType = "Search"
	ActivityBookmark   ActivityType = "Bookmark"
	ActivityUnbookmark ActivityType = "Unbookmark"
	ActivityAddNote    ActivityType = "Add Note"
	ActivityViewEntry  ActivityType = "View Entry"
)

// MaxActivities bounds the activity log.
const MaxActivities = 100

// Activity is one entry of the user activity log.
type Activity struct {
	Timestamp  time.Time    `json:"timestamp"`
	Action     ActivityType `json:"action"`
	ItemID     string       `json:"item_id,omitempty"`
	SearchTerm string       `json:"search_term,omitempty"`
}

// PrependActivity inserts a at the front of log, keeping at most MaxActivities entries.
func PrependActivity(log []Activity, a Activity) []Activity {
	out := make([]Activity, 0, min(len(log)+1, MaxActivities))
	out = append(out, a)
	out = append(out, log...)
	if len(out) > MaxActivities {
		out = out[:MaxActivities]
	}
	return out
}

// CountActivities returns how many entries of the given type the log holds.
func CountActivities(log []Activity, action ActivityType) int {
	n := 0
	for _, a := range log {
		if a.Action == action {
			n++
		}
	}
	return n
}
