package speedrun

import "time"

// PersonalBest is a user's best run in a category, with its leaderboard place
type PersonalBest struct {
	Place int `json:"place"`
	Run   Run `json:"run"`
}

// Run represents a submitted run
type Run struct {
	ID        string            `json:"id"`
	Weblink   string            `json:"weblink"`
	Game      string            `json:"game"`
	Level     *string           `json:"level"`
	Category  string            `json:"category"`
	Videos    *Videos           `json:"videos"`
	Comment   *string           `json:"comment"`
	Status    RunStatus         `json:"status"`
	Players   []Player          `json:"players"`
	Date      string            `json:"date"`
	Submitted *time.Time        `json:"submitted"`
	Times     Times             `json:"times"`
	System    System            `json:"system"`
	Values    map[string]string `json:"values"`
}

// Videos holds the video links of a run
type Videos struct {
	Text  string   `json:"text,omitempty"`
	Links []Social `json:"links"`
}

// RunStatus is the verification state of a run
type RunStatus struct {
	Status     string     `json:"status"`
	Examiner   *string    `json:"examiner"`
	VerifyDate *time.Time `json:"verify-date"`
	Reason     string     `json:"reason,omitempty"`
}

// IsVerified checks if the run was verified
func (s RunStatus) IsVerified() bool {
	return s.Status == "verified"
}

// Player is a runner, either a registered user or a guest
type Player struct {
	Rel  string `json:"rel"`
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	URI  string `json:"uri"`
}

// Times holds the timings of a run in seconds
type Times struct {
	Primary                string  `json:"primary"`
	PrimarySeconds         float64 `json:"primary_t"`
	Realtime               *string `json:"realtime"`
	RealtimeSeconds        float64 `json:"realtime_t"`
	RealtimeNoLoads        *string `json:"realtime_noloads"`
	RealtimeNoLoadsSeconds float64 `json:"realtime_noloads_t"`
	Ingame                 *string `json:"ingame"`
	IngameSeconds          float64 `json:"ingame_t"`
}

// PrimaryDuration returns the primary time as a duration
func (t Times) PrimaryDuration() time.Duration {
	return time.Duration(t.PrimarySeconds * float64(time.Second))
}

// System is the platform a run was done on
type System struct {
	Platform string  `json:"platform"`
	Emulated bool    `json:"emulated"`
	Region   *string `json:"region"`
}
