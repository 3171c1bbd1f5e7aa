package models

import (
	"time"

	"github.com/abeage1/earwise/internal/catalog"
)

// SessionHistoryCap bounds the recent-session log.
const SessionHistoryCap = 30

// SessionRecord is one completed session in the recent log.
type SessionRecord struct {
	Date       time.Time       `json:"date"`
	Domain     catalog.Domain  `json:"domain"`
	Correct    int             `json:"correct"`
	Total      int             `json:"total"`
	NewUnlocks int             `json:"new_unlocks"`
}

// Stats holds lifetime aggregate statistics across all domains.
type Stats struct {
	TotalSessions   int             `json:"total_sessions"`
	TotalQuestions  int             `json:"total_questions"`
	TotalCorrect    int             `json:"total_correct"`
	CurrentStreak   int             `json:"current_streak"`
	LongestStreak   int             `json:"longest_streak"`
	LastSessionDate string          `json:"last_session_date,omitempty"` // YYYY-MM-DD
	SessionHistory  []SessionRecord `json:"session_history,omitempty"`
}

// DefaultStats returns zeroed lifetime statistics.
func DefaultStats() Stats {
	return Stats{}
}

// RecordAnswer folds one answered question into the lifetime counters.
func (s *Stats) RecordAnswer(correct bool) {
	s.TotalQuestions++
	if correct {
		s.TotalCorrect++
	}
}

// RecordSession folds one completed session into the aggregates: session
// count, calendar-day streak and the bounded recent-session log.
func (s *Stats) RecordSession(rec SessionRecord, now time.Time) {
	s.TotalSessions++

	today := now.Format("2006-01-02")
	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")
	if s.LastSessionDate != today {
		if s.LastSessionDate == yesterday {
			s.CurrentStreak++
		} else {
			s.CurrentStreak = 1
		}
		s.LastSessionDate = today
	}
	if s.CurrentStreak > s.LongestStreak {
		s.LongestStreak = s.CurrentStreak
	}

	s.SessionHistory = append(s.SessionHistory, rec)
	if len(s.SessionHistory) > SessionHistoryCap {
		s.SessionHistory = s.SessionHistory[len(s.SessionHistory)-SessionHistoryCap:]
	}
}
