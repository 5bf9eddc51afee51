package service

// xpLevel is one rung of the progression ladder.
type xpLevel struct {
	Level     int
	Title     string
	Threshold int64
}

// xpLevels is ordered by strictly increasing threshold; level 1 starts at 0
// so every non-negative XP total matches at least one entry.
var xpLevels = []xpLevel{
	{1, "Ensign", 0},
	{2, "Engineering Student", 10_000},
	{3, "Physics Afficiando", 100_000},
	{4, "Engineering Assistant", 1_000_000},
	{5, "Quantum Enthusiast", 10_000_000},
	{6, "Black Arts Sailer", 100_000_000},
	{7, "Embedded Diver", 1_000_000_000},
	{8, "Renaissance Student", 10_000_000_000},
	{9, "Master of the layers", 100_000_000_000},
	{10, "Captain of the Electrons", 1_000_000_000_000},
}

// LevelForXP returns the highest level whose threshold the XP total has reached,
// together with its display title.
func LevelForXP(xp int64) (int, string) {
	level, title := xpLevels[0].Level, xpLevels[0].Title
	for _, entry := range xpLevels {
		if xp < entry.Threshold {
			break
		}
		level, title = entry.Level, entry.Title
	}
	return level, title
}
