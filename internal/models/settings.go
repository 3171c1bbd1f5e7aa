package models

// Song display policies for the question feedback view.
const (
	ShowSongsAlways = "always"
	ShowSongsWrong  = "wrong"
	ShowSongsNever  = "never"
)

// Settings holds the learner-facing configuration.
type Settings struct {
	SessionSize int    `json:"session_size"`
	AutoPlay    bool   `json:"auto_play"`
	AutoAdvance bool   `json:"auto_advance"`
	ShowSongsOn string `json:"show_songs_on"`
}

// DefaultSettings returns the out-of-the-box configuration.
func DefaultSettings() Settings {
	return Settings{
		SessionSize: 20,
		AutoPlay:    true,
		AutoAdvance: false,
		ShowSongsOn: ShowSongsWrong,
	}
}

// Validate reports the first invalid settings field, if any.
func (s Settings) Validate() (field, reason string, ok bool) {
	if s.SessionSize < 1 || s.SessionSize > 100 {
		return "session_size", "must be between 1 and 100", false
	}
	switch s.ShowSongsOn {
	case ShowSongsAlways, ShowSongsWrong, ShowSongsNever:
	default:
		return "show_songs_on", "must be one of always, wrong, never", false
	}
	return "", "", true
}
