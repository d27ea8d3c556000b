package game

import (
	"sync"
	"time"
)

// GameRecord holds the outcome of a single finished run.
type GameRecord struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Score     int       `json:"score"`
	Steps     int       `json:"steps"`
}

// Duration returns the run length in seconds.
func (r GameRecord) Duration() float64 {
	return r.EndTime.Sub(r.StartTime).Seconds()
}

// GameStats accumulates finished runs for a session, in memory only.
type GameStats struct {
	mutex     sync.RWMutex
	games     []GameRecord
	highScore int
}

func NewGameStats() *GameStats {
	return &GameStats{
		games: make([]GameRecord, 0),
	}
}

// AddGame records a finished run.
func (s *GameStats) AddGame(score, steps int, startTime, endTime time.Time) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.games = append(s.games, GameRecord{
		StartTime: startTime,
		EndTime:   endTime,
		Score:     score,
		Steps:     steps,
	})
	if score > s.highScore {
		s.highScore = score
	}
}

func (s *GameStats) HighScore() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.highScore
}

func (s *GameStats) GamesPlayed() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.games)
}

// AverageScore returns the mean score over all recorded runs, 0 when none.
func (s *GameStats) AverageScore() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.games) == 0 {
		return 0
	}
	sum := 0
	for _, g := range s.games {
		sum += g.Score
	}
	return float64(sum) / float64(len(s.games))
}

// LastScore returns the score of the most recent run, 0 when none.
func (s *GameStats) LastScore() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.games) == 0 {
		return 0
	}
	return s.games[len(s.games)-1].Score
}

// Records returns a copy of all recorded runs, oldest first.
func (s *GameStats) Records() []GameRecord {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	records := make([]GameRecord, len(s.games))
	copy(records, s.games)
	return records
}
