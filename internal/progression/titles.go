package progression

// DefaultTitle is held by every reader from level 1.
const DefaultTitle = "Novice Reader"

var levelTitles = map[int]string{
	1:  DefaultTitle,
	3:  "Apprentice Bookworm",
	5:  "Book Explorer",
	10: "Tome Devourer",
	15: "Scholar's Scribe",
	20: "Thesis Conqueror",
	25: "Weekend Scholar",
	30: "Storyteller",
}

// TitleForLevel returns the title unlocked at exactly level, if any.
func TitleForLevel(level int) (string, bool) {
	t, ok := levelTitles[level]
	return t, ok
}

// NextTitle returns the next title above level and the level it unlocks at.
func NextTitle(level int) (string, int, bool) {
	best := 0
	for lv := range levelTitles {
		if lv > level && (best == 0 || lv < best) {
			best = lv
		}
	}
	if best == 0 {
		return "", 0, false
	}
	return levelTitles[best], best, true
}
