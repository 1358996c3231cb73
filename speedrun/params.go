package speedrun

import (
	"fmt"
	"strconv"
)

// ParamKind identifies a query parameter understood by the API
type ParamKind int

const (
	paramInvalid ParamKind = iota
	ParamLookup
	ParamName
	ParamTwitch
	ParamHitbox
	ParamTwitter
	ParamSpeedRunsLive
	ParamOrderBy
	ParamDirection
	ParamTop
	ParamSeries
	ParamGame
	ParamAbbreviation
	ParamReleased
	ParamGametype
	ParamPlatform
	ParamRegion
	ParamGenre
	ParamEngine
	ParamDeveloper
	ParamPublisher
	ParamModerator

	paramKindCount
)

// paramNames is the wire name of every ParamKind. Keep in sync with the constants above.
var paramNames = [paramKindCount]string{
	ParamLookup:        "lookup",
	ParamName:          "name",
	ParamTwitch:        "twitch",
	ParamHitbox:        "hitbox",
	ParamTwitter:       "twitter",
	ParamSpeedRunsLive: "speedrunslive",
	ParamOrderBy:       "orderby",
	ParamDirection:     "direction",
	ParamTop:           "top",
	ParamSeries:        "series",
	ParamGame:          "game",
	ParamAbbreviation:  "abbreviation",
	ParamReleased:      "released",
	ParamGametype:      "gametype",
	ParamPlatform:      "platform",
	ParamRegion:        "region",
	ParamGenre:         "genre",
	ParamEngine:        "engine",
	ParamDeveloper:     "developer",
	ParamPublisher:     "publisher",
	ParamModerator:     "moderator",
}

var paramKinds = func() map[string]ParamKind {
	m := make(map[string]ParamKind, len(paramNames))
	for kind, name := range paramNames {
		if name != "" {
			m[name] = ParamKind(kind)
		}
	}
	return m
}()

// String returns the wire name of the parameter
func (k ParamKind) String() string {
	if !k.valid() {
		return fmt.Sprintf("ParamKind(%d)", int(k))
	}
	return paramNames[k]
}

func (k ParamKind) valid() bool {
	return k > paramInvalid && k < paramKindCount
}

// ParseParamKind looks up a wire name in the parameter vocabulary
func ParseParamKind(name string) (ParamKind, error) {
	kind, ok := paramKinds[name]
	if !ok {
		return paramInvalid, &InvalidParameterError{Name: name, Err: ErrInvalidParameterName}
	}
	return kind, nil
}

// OrderBy selects the sort field for user listings
type OrderBy int

const (
	// OrderByDefault leaves the ordering to the API
	OrderByDefault OrderBy = iota
	// OrderByNameInt sorts by international name
	OrderByNameInt
	// OrderByNameJap sorts by japanese name
	OrderByNameJap
	// OrderBySignup sorts by signup date
	OrderBySignup
	// OrderByRole sorts by role
	OrderByRole
)

var orderByTokens = [...]string{
	OrderByNameInt: "name.int",
	OrderByNameJap: "name.jap",
	OrderBySignup:  "signup",
	OrderByRole:    "role",
}

// String returns the query token of the ordering
func (o OrderBy) String() string {
	if o <= OrderByDefault || int(o) >= len(orderByTokens) {
		return ""
	}
	return orderByTokens[o]
}

// ParseOrderBy converts a query token into an OrderBy
func ParseOrderBy(token string) (OrderBy, error) {
	for i, t := range orderByTokens {
		if t != "" && t == token {
			return OrderBy(i), nil
		}
	}
	return OrderByDefault, fmt.Errorf("unknown orderby %q", token)
}

// OrderDirection selects the sort direction
type OrderDirection int

const (
	// DirectionDefault leaves the direction to the API
	DirectionDefault OrderDirection = iota
	// DirectionAsc sorts ascending
	DirectionAsc
	// DirectionDesc sorts descending
	DirectionDesc
)

var directionTokens = [...]string{
	DirectionAsc:  "asc",
	DirectionDesc: "desc",
}

// String returns the query token of the direction
func (d OrderDirection) String() string {
	if d <= DirectionDefault || int(d) >= len(directionTokens) {
		return ""
	}
	return directionTokens[d]
}

// ParseOrderDirection converts a query token into an OrderDirection
func ParseOrderDirection(token string) (OrderDirection, error) {
	switch token {
	case "asc":
		return DirectionAsc, nil
	case "desc":
		return DirectionDesc, nil
	}
	return DirectionDefault, fmt.Errorf("unknown direction %q", token)
}

// Parameter is a single named and typed query parameter.
// Construct it with the functions below; the zero Parameter is rejected by Request.Add.
type Parameter struct {
	kind      ParamKind
	text      string
	number    int
	orderBy   OrderBy
	direction OrderDirection
}

func textParam(kind ParamKind, s string) Parameter { return Parameter{kind: kind, text: s} }

// Text-valued parameters.
func LookupParam(s string) Parameter        { return textParam(ParamLookup, s) }
func NameParam(s string) Parameter          { return textParam(ParamName, s) }
func TwitchParam(s string) Parameter        { return textParam(ParamTwitch, s) }
func HitboxParam(s string) Parameter        { return textParam(ParamHitbox, s) }
func TwitterParam(s string) Parameter       { return textParam(ParamTwitter, s) }
func SpeedRunsLiveParam(s string) Parameter { return textParam(ParamSpeedRunsLive, s) }
func SeriesParam(s string) Parameter        { return textParam(ParamSeries, s) }
func GameParam(s string) Parameter          { return textParam(ParamGame, s) }
func AbbreviationParam(s string) Parameter  { return textParam(ParamAbbreviation, s) }
func GametypeParam(s string) Parameter      { return textParam(ParamGametype, s) }
func PlatformParam(s string) Parameter      { return textParam(ParamPlatform, s) }
func RegionParam(s string) Parameter        { return textParam(ParamRegion, s) }
func GenreParam(s string) Parameter         { return textParam(ParamGenre, s) }
func EngineParam(s string) Parameter        { return textParam(ParamEngine, s) }
func DeveloperParam(s string) Parameter     { return textParam(ParamDeveloper, s) }
func PublisherParam(s string) Parameter     { return textParam(ParamPublisher, s) }
func ModeratorParam(s string) Parameter     { return textParam(ParamModerator, s) }

// TopParam limits personal bests to the given place or better
func TopParam(n int) Parameter { return Parameter{kind: ParamTop, number: n} }

// ReleasedParam filters games by release year
func ReleasedParam(year int) Parameter { return Parameter{kind: ParamReleased, number: year} }

// OrderByParam orders user listings
func OrderByParam(o OrderBy) Parameter { return Parameter{kind: ParamOrderBy, orderBy: o} }

// DirectionParam sets the sort direction
func DirectionParam(d OrderDirection) Parameter { return Parameter{kind: ParamDirection, direction: d} }

// Kind returns the parameter kind
func (p Parameter) Kind() ParamKind {
	return p.kind
}

// Name returns the wire name of the parameter
func (p Parameter) Name() string {
	return p.kind.String()
}

// Value renders the parameter value the way it appears in a query string
func (p Parameter) Value() string {
	switch p.kind {
	case ParamTop, ParamReleased:
		return strconv.Itoa(p.number)
	case ParamOrderBy:
		return p.orderBy.String()
	case ParamDirection:
		return p.direction.String()
	default:
		return p.text
	}
}

func (p Parameter) validate() error {
	if !p.kind.valid() {
		return &InvalidParameterError{Name: p.kind.String(), Err: ErrInvalidParameterName}
	}
	switch p.kind {
	case ParamOrderBy:
		if p.orderBy.String() == "" {
			return &InvalidParameterError{Name: p.Name(), Value: strconv.Itoa(int(p.orderBy)), Err: ErrInvalidParameterValue}
		}
	case ParamDirection:
		if p.direction.String() == "" {
			return &InvalidParameterError{Name: p.Name(), Value: strconv.Itoa(int(p.direction)), Err: ErrInvalidParameterValue}
		}
	}
	return nil
}

// ParseParameter builds a Parameter from a wire name and a raw value
func ParseParameter(name, value string) (Parameter, error) {
	kind, err := ParseParamKind(name)
	if err != nil {
		return Parameter{}, err
	}

	invalid := func(cause error) error {
		return &InvalidParameterError{
			Name:  name,
			Value: value,
			Err:   fmt.Errorf("%w: %w", ErrInvalidParameterValue, cause),
		}
	}

	switch kind {
	case ParamTop, ParamReleased:
		n, err := strconv.Atoi(value)
		if err != nil {
			return Parameter{}, invalid(err)
		}
		return Parameter{kind: kind, number: n}, nil
	case ParamOrderBy:
		o, err := ParseOrderBy(value)
		if err != nil {
			return Parameter{}, invalid(err)
		}
		return OrderByParam(o), nil
	case ParamDirection:
		d, err := ParseOrderDirection(value)
		if err != nil {
			return Parameter{}, invalid(err)
		}
		return DirectionParam(d), nil
	default:
		return textParam(kind, value), nil
	}
}
