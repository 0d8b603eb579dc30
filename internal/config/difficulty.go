package config

// Progression types for difficulty.progression.type.
const (
	ProgressScore = "score"
	ProgressTime  = "time" // Simulation ticks
	ProgressNone  = "none"
)

// DifficultyManager turns run progress into a ball launch speed.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a manager. The initial level is clamped to [0, 1].
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	cfg.InitialLevel = min(max(cfg.InitialLevel, 0), 1)
	return &DifficultyManager{cfg: cfg}
}

// Level returns the difficulty in [0, 1]. With progression enabled it moves
// from the initial level to 1 as score or ticks approach max_at.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	start := d.cfg.InitialLevel
	if !d.cfg.Enabled || d.cfg.Progression.MaxAt <= 0 {
		return start
	}

	var done int
	switch d.cfg.Progression.Type {
	case ProgressScore:
		done = score
	case ProgressTime:
		done = ticks
	default:
		return start
	}

	progress := min(max(float64(done)/float64(d.cfg.Progression.MaxAt), 0), 1)
	return start + progress*(1-start)
}

// Speed returns base at level 0 and base*(1+speed_multiplier) at level 1.
func (d *DifficultyManager) Speed(base float64, score, ticks int) float64 {
	return base * (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}
