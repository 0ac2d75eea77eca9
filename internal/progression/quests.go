package progression

// sideQuests is the fixed pool the daily quest is drawn from. The selection
// is derived from the calendar-day string, so no persisted state is needed
// for the rotation.
var sideQuests = []string{
	"Drink a glass of warm water, slowly",
	"Tidy your photo album and delete 3 bad shots",
	"Breathe deeply for one minute",
	"Send an old friend a funny sticker",
	"Look at the scenery far outside your window",
	"Tidy up your desk",
	"Listen to your favorite song",
	"Do 10 jumping jacks",
	"Pay yourself a compliment",
}

// QuestForDay returns the side quest for a calendar day. The quest is a pure
// function of the day string: the byte values are summed and reduced modulo
// the pool size, so every invocation within one day sees the same quest and
// the quest rotates pseudo-randomly across days.
func QuestForDay(day string) string {
	sum := 0
	for _, c := range []byte(day) {
		sum += int(c)
	}
	return sideQuests[sum%len(sideQuests)]
}
