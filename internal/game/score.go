package game

// ScoreKeeper tracks the round score, cumulative passes, the derived level,
// and best-ever records. Records survive restarts; round fields do not.
type ScoreKeeper struct {
	Score       int // Obstacles passed this round
	PipesPassed int // Same as Score; kept separate as the leveling input
	Level       int // floor(PipesPassed / pipesPerLevel) + 1, never decreases in a round

	HighScore int // Best score across rounds (persisted externally)
	BestLevel int // Highest level reached across rounds (persisted externally)
}

// StartRound resets the per-round fields, leaving records untouched.
func (s *ScoreKeeper) StartRound() {
	s.Score = 0
	s.PipesPassed = 0
	s.Level = 1
}

// ObstaclesPassed credits n passed obstacles and recomputes the level.
// The pass count only grows, so the derived level never decreases within
// a round.
func (s *ScoreKeeper) ObstaclesPassed(n int, curve Curve) {
	s.Score += n
	s.PipesPassed += n
	s.Level = curve.LevelFor(s.PipesPassed)
}

// RoundEnded folds the finished round into the best-ever records.
func (s *ScoreKeeper) RoundEnded() {
	if s.Score > s.HighScore {
		s.HighScore = s.Score
	}
	if s.Level > s.BestLevel {
		s.BestLevel = s.Level
	}
}

// SetRecords seeds the best-ever records, typically from persistence at
// startup.
func (s *ScoreKeeper) SetRecords(highScore, bestLevel int) {
	s.HighScore = highScore
	s.BestLevel = bestLevel
}
