package services

import (
	"github.com/abeage1/earwise/internal/catalog"
	"github.com/abeage1/earwise/internal/models"
	"github.com/abeage1/earwise/internal/session"
)

// ChoiceView is one answer option offered for a question.
type ChoiceView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Short string `json:"short"`
	Color string `json:"color,omitempty"`
}

// QuestionView is the presented question: which card is up, session
// position and the answer choices. The played item is identified only by
// its card key; the learner hears it, they don't see it.
type QuestionView struct {
	Domain   catalog.Domain  `json:"domain"`
	Index    int             `json:"index"`
	Total    int             `json:"total"`
	Key      string          `json:"key"`
	Variant  catalog.Variant `json:"variant"`
	IsNew    bool            `json:"is_new"`
	AutoPlay bool            `json:"auto_play"`
	Choices  []ChoiceView    `json:"choices"`
}

// AnswerView is the per-answer feedback. Accepted is false when the answer
// arrived out of protocol (no active question or playback not finished);
// such answers are ignored, not errors.
type AnswerView struct {
	Accepted      bool           `json:"accepted"`
	Correct       bool           `json:"correct"`
	CorrectItemID string         `json:"correct_item_id,omitempty"`
	CorrectName   string         `json:"correct_name,omitempty"`
	LatencyMs     int64          `json:"latency_ms,omitempty"`
	Mastery       float64        `json:"mastery,omitempty"`
	Songs         []catalog.Song `json:"songs,omitempty"`
	AutoAdvance   bool           `json:"auto_advance,omitempty"`
}

// UnlockView names one pending or committed unlock.
type UnlockView struct {
	ItemID  string          `json:"item_id"`
	Variant catalog.Variant `json:"variant"`
	Name    string          `json:"name"`
}

// SummaryView is the end-of-session report.
type SummaryView struct {
	Domain         catalog.Domain         `json:"domain"`
	Correct        int                    `json:"correct"`
	Total          int                    `json:"total"`
	Accuracy       float64                `json:"accuracy"`
	PendingUnlocks []UnlockView           `json:"pending_unlocks"`
	MasteryDeltas  []session.MasteryDelta `json:"mastery_deltas"`
	Stats          models.Stats           `json:"stats"`
}

// CardView is one card in the progress overview.
type CardView struct {
	ItemID         string          `json:"item_id"`
	Name           string          `json:"name"`
	Short          string          `json:"short"`
	Variant        catalog.Variant `json:"variant"`
	Mastery        float64         `json:"mastery"`
	Locked         bool            `json:"locked"`
	Due            bool            `json:"due"`
	TotalAnswers   int             `json:"total_answers"`
	RecentAccuracy float64         `json:"recent_accuracy"`
}

// TierView is one unlock tier in the progress overview.
type TierView struct {
	Index          int        `json:"index"`
	Unlocked       bool       `json:"unlocked"`
	AverageMastery float64    `json:"average_mastery"`
	Cards          []CardView `json:"cards"`
}

// ProgressView is the full per-domain progress overview.
type ProgressView struct {
	Domain         catalog.Domain `json:"domain"`
	UnlockedTier   int            `json:"unlocked_tier"`
	Tiers          []TierView     `json:"tiers"`
	PendingUnlocks []UnlockView   `json:"pending_unlocks"`
}
