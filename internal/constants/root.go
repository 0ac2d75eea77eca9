package constants

// SessionState represents the current state of the TUI application
type SessionState int

// Mood classifies the feeling attached to a journal entry
type Mood string

// View identifies one of the three feature views
type View string

const (
	AppName           = "lifeup"
	DefaultConfigPath = "~/.config/lifeup/lifeup.db"
	Version           = "v0.3.0"

	// DateFormat is the standard calendar-day format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time-of-day format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// DefaultUserName is the placeholder display name until the user picks one
	DefaultUserName = "Adventurer"

	// XPPerLevel is the experience span of a single level
	XPPerLevel = 100

	// Reward values per action
	HabitCheckXP    = 20
	HabitCheckCoins = 10
	SideQuestXP     = 30
	SideQuestCoins  = 15
	RecitationXP    = 50
	RecitationCoins = 20

	// Mystery box economy: costs MysteryBoxCost coins, grants random XP in
	// [MysteryBoxMinXP, MysteryBoxMinXP+MysteryBoxXPSpread)
	MysteryBoxCost     = 50
	MysteryBoxMinXP    = 20
	MysteryBoxXPSpread = 100

	// Image staging pipeline
	ImageMaxDimension = 800
	ImageJPEGQuality  = 70

	// Reminder export
	ReminderWindowMin  = 15
	ReminderAlarmMin   = 5
	DefaultReminderHH  = 9
	DefaultReminderMM  = 0

	// Mood constants
	MoodHappy   Mood = "happy"
	MoodNeutral Mood = "neutral"
	MoodSad     Mood = "sad"
	MoodExcited Mood = "excited"
	MoodTired   Mood = "tired"

	// View identifiers, persisted under the "view" collection
	ViewHabits  View = "habits"
	ViewJournal View = "journal"
	ViewEnglish View = "english"

	// Session States
	StateHabits SessionState = iota
	StateJournal
	StateEnglish
	StateReading
	StateAddHabit
	StateAddEntry
	StateAddArticle
	StateEditName
	StateConfirmDeleteHabit
	StateConfirmDeleteEntry
	StateConfirmDeleteArticle
)

// Moods lists every valid mood in display order.
var Moods = []Mood{MoodHappy, MoodNeutral, MoodSad, MoodExcited, MoodTired}

// ValidMood reports whether m is one of the closed mood set.
func ValidMood(m Mood) bool {
	for _, v := range Moods {
		if v == m {
			return true
		}
	}
	return false
}

// Views lists the three feature views in navigation order.
var Views = []View{ViewHabits, ViewJournal, ViewEnglish}

// ValidView reports whether v names one of the three feature views.
func ValidView(v View) bool {
	for _, w := range Views {
		if w == v {
			return true
		}
	}
	return false
}
