package model

// Supported publishing platforms.
const (
	PlatformX       = "x"
	PlatformThreads = "threads"
)

// User is an account in the autopilot system.
type User struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	AutopilotEnabled bool   `json:"autopilot_enabled"`
}

// Genre is a user-defined topical filter scoping trend collection.
// A nil *Genre stands for the synthetic no-genre pass.
type Genre struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// SNSAccount holds a user's credentials for one platform. The secret is only
// used by token-pair platforms.
type SNSAccount struct {
	UserID            string `json:"user_id"`
	Platform          string `json:"platform"`
	AccessToken       string `json:"access_token"`
	AccessTokenSecret string `json:"access_token_secret,omitempty"`
}

// Schedule frequency classes.
const (
	FrequencyDaily    = "daily"
	FrequencyWeekdays = "weekdays"
	FrequencyWeekends = "weekends"
)

// Schedule maps a time of day and frequency class to automatic run triggering.
// Time is an "HH:MM" string compared by exact equality against the current
// minute.
type Schedule struct {
	UserID    string `json:"user_id"`
	Time      string `json:"time"`
	Frequency string `json:"frequency"`
}
