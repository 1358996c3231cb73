package speedrun

import "time"

// Role is the site role of a user
type Role string

const (
	RoleBanned     Role = "banned"
	RoleUser       Role = "user"
	RoleTrusted    Role = "trusted"
	RoleModerator  Role = "moderator"
	RoleAdmin      Role = "admin"
	RoleProgrammer Role = "programmer"
)

// IsStaff checks if the role belongs to site staff
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleProgrammer
}

// User represents a speedrun.com user
type User struct {
	ID                 string     `json:"id"`
	Names              Names      `json:"names"`
	SupporterAnimation bool       `json:"supporterAnimation"`
	Pronouns           string     `json:"pronouns"`
	Weblink            string     `json:"weblink"`
	NameStyle          NameStyle  `json:"name-style"`
	Role               Role       `json:"role"`
	Signup             *time.Time `json:"signup"`
	Location           *Location  `json:"location"`
	Twitch             *Social    `json:"twitch"`
	Hitbox             *Social    `json:"hitbox"`
	YouTube            *Social    `json:"youtube"`
	Twitter            *Social    `json:"twitter"`
	SpeedRunsLive      *Social    `json:"speedrunslive"`
	Assets             UserAssets `json:"assets"`
	Links              []Link     `json:"links"`
}

// DisplayName returns the international name, falling back to the id
func (u *User) DisplayName() string {
	if u.Names.International != "" {
		return u.Names.International
	}
	return u.ID
}

// Names holds the localized names of a user or place
type Names struct {
	International string `json:"international"`
	Japanese      string `json:"japanese,omitempty"`
}

// NameStyle describes how the user's name is colored on the site
type NameStyle struct {
	Style     string `json:"style"`
	Color     *Color `json:"color,omitempty"`
	ColorFrom *Color `json:"color-from,omitempty"`
	ColorTo   *Color `json:"color-to,omitempty"`
}

// Color is a pair of theme colors
type Color struct {
	Light string `json:"light"`
	Dark  string `json:"dark"`
}

// Location is the country and optional region of a user
type Location struct {
	Country Place  `json:"country"`
	Region  *Place `json:"region"`
}

// Place is a country or region
type Place struct {
	Code  string `json:"code"`
	Names Names  `json:"names"`
}

// Social is a link to an external profile
type Social struct {
	URI string `json:"uri"`
}

// UserAssets holds the images of a user
type UserAssets struct {
	Icon          Asset  `json:"icon"`
	SupporterIcon *Asset `json:"supporterIcon"`
	Image         Asset  `json:"image"`
}

// Asset is an image reference. URI is empty when the asset is unset.
type Asset struct {
	URI    string `json:"uri"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// Link is a related API resource
type Link struct {
	Rel string `json:"rel"`
	URI string `json:"uri"`
}
