package telegram

import (
	"fmt"
	"strings"
	"time"

	"github.com/aliskhannn/knowledge-vault-bot/internal/domain/entities"
	"github.com/aliskhannn/knowledge-vault-bot/internal/service"
)

// renderEntry renders the full view of a catalog entry.
func renderEntry(item entities.CatalogItem, note string) string {
	var sb strings.Builder

	style := item.Category.Style()
	sb.WriteString(bold(style.Emoji + " " + item.Title))
	sb.WriteString("\n")
	sb.WriteString(italic(string(item.Category)))
	sb.WriteString("\n\n")
	sb.WriteString(md(item.Definition))

	if item.Etymology != "" {
		sb.WriteString("\n\n")
		sb.WriteString(bold("Etymology: "))
		sb.WriteString(md(item.Etymology))
	}

	if len(item.Examples) > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(bold("Examples:"))
		for _, ex := range item.Examples {
			sb.WriteString("\n")
			sb.WriteString(md("• " + ex))
		}
	}

	if len(item.RelatedTerms) > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(bold("Related terms: "))
		sb.WriteString(md(strings.Join(item.RelatedTerms, ", ")))
	}

	if note != "" {
		sb.WriteString("\n\n")
		sb.WriteString(bold("📝 Your note: "))
		sb.WriteString(md(note))
	}

	return sb.String()
}

// renderDailyWord renders the word of the day with the streak.
func renderDailyWord(item entities.CatalogItem, streak entities.StreakState, note string) string {
	var sb strings.Builder

	sb.WriteString(bold("🌅 Word of the day"))
	sb.WriteString("\n\n")
	sb.WriteString(renderEntry(item, note))
	sb.WriteString("\n\n")
	sb.WriteString(renderStreak(streak))

	return sb.String()
}

func renderStreak(streak entities.StreakState) string {
	return md(fmt.Sprintf("🔥 Streak: %d day(s) · 🏅 Best: %d", streak.CurrentStreak, streak.LongestStreak))
}

// renderCard renders the current flashcard of a session.
func renderCard(card entities.CatalogItem, position, total int, revealed bool) string {
	var sb strings.Builder

	sb.WriteString(md(fmt.Sprintf("🎴 Card %d/%d", position+1, total)))
	sb.WriteString("\n")
	sb.WriteString(md(buildProgressBar(position, total, progressBarWidth)))
	sb.WriteString("\n\n")
	sb.WriteString(bold(card.Title))
	sb.WriteString("\n")
	sb.WriteString(italic(string(card.Category)))
	sb.WriteString("\n\n")

	if !revealed {
		sb.WriteString(md("Do you remember what it means?"))
		return sb.String()
	}

	sb.WriteString(md(card.Definition))
	if len(card.Examples) > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(italic(card.Examples[0]))
	}

	return sb.String()
}

// renderSessionSummary renders a finished study session.
func renderSessionSummary(s entities.StudySession) string {
	return fmt.Sprintf(
		"%s\n\n%s\n%s\n%s\n%s",
		bold("✅ Session complete"),
		md(fmt.Sprintf("📚 Cards studied: %d", s.CardsStudied)),
		md(fmt.Sprintf("🎯 Correct: %d", s.CorrectAnswers)),
		md("📈 Accuracy: "+formatPercent(s.Accuracy())),
		md("⏱ Duration: "+s.Duration.Round(time.Second).String()),
	)
}

// renderStats renders flashcard, streak and activity statistics.
func renderStats(
	stats service.FlashcardStats,
	streak entities.StreakState,
	counters service.Counters,
	book *entities.AchievementBook,
) string {
	return fmt.Sprintf(
		"%s\n\n%s\n%s\n%s\n%s\n%s\n%s\n\n%s\n\n%s\n%s\n%s\n%s\n\n%s",
		bold("📊 Your statistics"),
		md(buildProgressBar(stats.MasteredCards, stats.TotalCards, progressBarWidth)),
		md(fmt.Sprintf("🧠 Mastered: %d / %d", stats.MasteredCards, stats.TotalCards)),
		md(fmt.Sprintf("📖 Reviewed: %d", stats.ReviewedCards)),
		md(fmt.Sprintf("⏳ Due today: %d", stats.DueCards)),
		md(fmt.Sprintf("🗂 Sessions: %d · Cards studied: %d", stats.Sessions, stats.TotalCardsStudied)),
		md("🎯 Average accuracy: "+formatPercent(stats.AverageAccuracy)),
		renderStreak(streak),
		md(fmt.Sprintf("👀 Entries read: %d", counters.Read)),
		md(fmt.Sprintf("🔖 Bookmarks: %d · 📝 Notes: %d", counters.Bookmarks, counters.Notes)),
		md(fmt.Sprintf("🔍 Searches: %d", counters.Searches)),
		md(fmt.Sprintf("🌍 Categories explored: %d / %d", counters.Categories, len(entities.Categories))),
		md(fmt.Sprintf("🏆 Achievements: %d / %d · %d points",
			book.UnlockedCount(), len(book.Achievements), book.TotalPoints)),
	)
}

// renderAchievements renders the achievement overview.
func renderAchievements(book *entities.AchievementBook) string {
	var sb strings.Builder

	sb.WriteString(bold("🏆 Achievements"))
	sb.WriteString("\n\n")
	sb.WriteString(md(fmt.Sprintf("Unlocked %d of %d · %d points",
		book.UnlockedCount(), len(book.Achievements), book.TotalPoints)))

	for _, category := range entities.AchievementCategories {
		list := book.ByCategory(category)
		unlocked := 0
		for _, a := range list {
			if a.IsUnlocked {
				unlocked++
			}
		}
		sb.WriteString("\n")
		sb.WriteString(md(fmt.Sprintf("%s: %d/%d", category, unlocked, len(list))))
	}

	if len(book.RecentlyUnlocked) > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(bold("Recently unlocked"))
		for _, a := range book.RecentlyUnlocked {
			sb.WriteString("\n")
			sb.WriteString(md(a.Icon + " " + a.Title))
		}
	}

	return sb.String()
}

// renderAchievementCategory renders the achievements of one category with progress.
func renderAchievementCategory(category entities.AchievementCategory, list []entities.Achievement) string {
	var sb strings.Builder

	sb.WriteString(bold("🏆 " + string(category)))
	for _, a := range list {
		status := "🔒"
		if a.IsUnlocked {
			status = "✅"
		}
		sb.WriteString("\n\n")
		sb.WriteString(md(fmt.Sprintf("%s %s %s", status, a.Icon, a.Title)))
		sb.WriteString("\n")
		sb.WriteString(italic(a.Description))
		sb.WriteString("\n")
		sb.WriteString(md(fmt.Sprintf("%s %d/%d",
			buildProgressBar(a.CurrentProgress, a.Requirement, progressBarWidth),
			a.CurrentProgress, a.Requirement)))
	}

	return sb.String()
}

func renderUnlock(a entities.Achievement) string {
	return fmt.Sprintf(
		"%s\n\n%s\n%s\n\n%s",
		bold("🏆 Achievement unlocked!"),
		bold(a.Icon+" "+a.Title),
		italic(a.Description),
		md(fmt.Sprintf("+%d points", a.Points())),
	)
}

// renderSearchResults renders the header of a search result list.
func renderSearchResults(query string, results []service.SearchResult) string {
	var sb strings.Builder

	sb.WriteString(bold(fmt.Sprintf("🔍 %d result(s) for “%s”", len(results), query)))
	for i, r := range results {
		if i == maxListedItems {
			sb.WriteString("\n")
			sb.WriteString(md(fmt.Sprintf("…and %d more", len(results)-maxListedItems)))
			break
		}
		sb.WriteString("\n")
		sb.WriteString(md(fmt.Sprintf("%s %s (%s)", r.Item.Category.Style().Emoji, r.Item.Title, r.Match)))
	}

	return sb.String()
}

// renderItemList renders a titled list of entries.
func renderItemList(title string, items []entities.CatalogItem) string {
	var sb strings.Builder

	sb.WriteString(bold(title))
	for i, item := range items {
		if i == maxListedItems {
			sb.WriteString("\n")
			sb.WriteString(md(fmt.Sprintf("…and %d more", len(items)-maxListedItems)))
			break
		}
		sb.WriteString("\n")
		sb.WriteString(md(item.Category.Style().Emoji + " " + item.Title))
	}

	return sb.String()
}

func renderHistory(history []string) string {
	var sb strings.Builder

	sb.WriteString(bold("🕘 Recent searches"))
	for i, q := range history {
		sb.WriteString("\n")
		sb.WriteString(md(fmt.Sprintf("%d. %s", i+1, q)))
	}

	return sb.String()
}

func renderTheme(theme entities.Theme) string {
	p := theme.Palette()
	return fmt.Sprintf(
		"%s\n\n%s\n%s",
		bold("🎨 Theme: "+string(theme)),
		md(fmt.Sprintf("Background %s · Primary %s · Secondary %s", p.Background, p.Primary, p.Secondary)),
		md("Pick a theme below."),
	)
}

// renderReminder renders the daily reminder notification.
func renderReminder(p entities.ReminderPayload) string {
	var sb strings.Builder

	sb.WriteString(bold("⏰ Your daily word is waiting"))
	sb.WriteString("\n\n")
	sb.WriteString(bold(p.Word.Category.Style().Emoji + " " + p.Word.Title))
	sb.WriteString("\n\n")

	if p.Streak.CurrentStreak > 0 {
		sb.WriteString(md(fmt.Sprintf("🔥 Keep your %d day streak going!", p.Streak.CurrentStreak)))
	} else {
		sb.WriteString(md("🔥 Start a new streak today!"))
	}

	if p.DueCards > 0 {
		sb.WriteString("\n")
		sb.WriteString(md(fmt.Sprintf("🎴 %d flashcard(s) due for review.", p.DueCards)))
	}

	return sb.String()
}

func renderWelcome() string {
	return fmt.Sprintf(
		"%s\n\n%s\n\n%s",
		bold("📚 Welcome to Knowledge Vault"),
		md("Browse and search short reference entries, keep bookmarks and notes, "+
			"build a daily streak and review what you learned with spaced repetition flashcards."),
		md(helpText),
	)
}
