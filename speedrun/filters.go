package speedrun

// UsersFilter selects users. Empty fields are not sent.
type UsersFilter struct {
	Lookup        string
	Name          string
	Twitch        string
	Hitbox        string
	Twitter       string
	SpeedRunsLive string
	OrderBy       OrderBy
	Direction     OrderDirection
}

func (f UsersFilter) params() []Parameter {
	var params []Parameter
	params = appendText(params, LookupParam, f.Lookup)
	params = appendText(params, NameParam, f.Name)
	params = appendText(params, TwitchParam, f.Twitch)
	params = appendText(params, HitboxParam, f.Hitbox)
	params = appendText(params, TwitterParam, f.Twitter)
	params = appendText(params, SpeedRunsLiveParam, f.SpeedRunsLive)
	if f.OrderBy != OrderByDefault {
		params = append(params, OrderByParam(f.OrderBy))
	}
	if f.Direction != DirectionDefault {
		params = append(params, DirectionParam(f.Direction))
	}
	return params
}

// PersonalBestsFilter narrows a user's personal bests. Zero fields are not sent.
type PersonalBestsFilter struct {
	// Top keeps only runs placed at or above this rank
	Top    int
	Series string
	Game   string
}

func (f PersonalBestsFilter) params() []Parameter {
	var params []Parameter
	if f.Top != 0 {
		params = append(params, TopParam(f.Top))
	}
	params = appendText(params, SeriesParam, f.Series)
	params = appendText(params, GameParam, f.Game)
	return params
}

// GamesFilter selects games. Zero fields are not sent.
type GamesFilter struct {
	Name         string
	Abbreviation string
	// Released is a release year
	Released  int
	Gametype  string
	Platform  string
	Region    string
	Genre     string
	Engine    string
	Developer string
	Publisher string
	Moderator string
}

func (f GamesFilter) params() []Parameter {
	var params []Parameter
	params = appendText(params, NameParam, f.Name)
	params = appendText(params, AbbreviationParam, f.Abbreviation)
	if f.Released != 0 {
		params = append(params, ReleasedParam(f.Released))
	}
	params = appendText(params, GametypeParam, f.Gametype)
	params = appendText(params, PlatformParam, f.Platform)
	params = appendText(params, RegionParam, f.Region)
	params = appendText(params, GenreParam, f.Genre)
	params = appendText(params, EngineParam, f.Engine)
	params = appendText(params, DeveloperParam, f.Developer)
	params = appendText(params, PublisherParam, f.Publisher)
	params = appendText(params, ModeratorParam, f.Moderator)
	return params
}

func appendText(params []Parameter, build func(string) Parameter, value string) []Parameter {
	if value == "" {
		return params
	}
	return append(params, build(value))
}
