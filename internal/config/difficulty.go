package config

// Difficulty levels are a small fixed set; the level only selects how often
// the scheduler ticks the game.
const (
	MinLevel = 1
	MaxLevel = 3
)

// LevelName returns the display name for a difficulty level.
func LevelName(level int) string {
	switch level {
	case 1:
		return "Easy"
	case 2:
		return "Medium"
	case 3:
		return "Hard"
	default:
		return "Custom"
	}
}

// ClampLevel restricts a level to the valid range.
func ClampLevel(level int) int {
	if level < MinLevel {
		return MinLevel
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}

// TicksPerSecond returns the simulation speed for a level, falling back to
// the default level's speed for levels missing from the table.
func (d DifficultyConfig) TicksPerSecond(level int) int {
	if tps, ok := d.Speeds[level]; ok && tps > 0 {
		return tps
	}
	if tps, ok := d.Speeds[d.DefaultLevel]; ok && tps > 0 {
		return tps
	}
	return 12
}
