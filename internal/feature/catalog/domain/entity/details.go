package entity

// Video is a clip attached to a movie or show.
type Video struct {
	ID       string `json:"id"`
	Key      string `json:"key"`
	Name     string `json:"name"`
	Site     string `json:"site"`
	Type     string `json:"type"`
	Official bool   `json:"official"`
}

// IsYouTubeTrailer reports whether v is a trailer hosted on YouTube.
func (v Video) IsYouTubeTrailer() bool {
	return v.Site == "YouTube" && v.Type == "Trailer"
}

// FirstTrailer returns the first YouTube trailer, or nil if there is none.
func FirstTrailer(videos []Video) *Video {
	for i := range videos {
		if videos[i].IsYouTubeTrailer() {
			v := videos[i]
			return &v
		}
	}
	return nil
}

// SeasonSummary is a season as listed on a show's details.
type SeasonSummary struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	SeasonNumber int    `json:"season_number"`
	EpisodeCount int    `json:"episode_count"`
	AirDate      string `json:"air_date,omitempty"`
	PosterPath   string `json:"poster_path,omitempty"`
	Overview     string `json:"overview"`
}

// MediaDetails is the full record of a movie or show.
type MediaDetails struct {
	ID               int             `json:"id"`
	Title            string          `json:"title,omitempty"`
	Name             string          `json:"name,omitempty"`
	Tagline          string          `json:"tagline,omitempty"`
	Overview         string          `json:"overview"`
	Status           string          `json:"status,omitempty"`
	PosterPath       string          `json:"poster_path,omitempty"`
	BackdropPath     string          `json:"backdrop_path,omitempty"`
	ReleaseDate      string          `json:"release_date,omitempty"`
	FirstAirDate     string          `json:"first_air_date,omitempty"`
	Runtime          *int            `json:"runtime,omitempty"`
	EpisodeRunTime   []int           `json:"episode_run_time,omitempty"`
	NumberOfSeasons  *int            `json:"number_of_seasons,omitempty"`
	NumberOfEpisodes *int            `json:"number_of_episodes,omitempty"`
	VoteAverage      float64         `json:"vote_average"`
	VoteCount        int             `json:"vote_count"`
	Genres           []Genre         `json:"genres"`
	Seasons          []SeasonSummary `json:"seasons,omitempty"`
	Homepage         string          `json:"homepage,omitempty"`
	OriginalLanguage string          `json:"original_language,omitempty"`
}

// MediaDetailsResult is returned by the details endpoint.
// Trailer is null when the provider lists no YouTube trailer.
type MediaDetailsResult struct {
	Details       MediaDetails  `json:"details"`
	Trailer       *Video        `json:"trailer"`
	SimilarMovies []CatalogItem `json:"similarMovies"`
}

// Episode is one episode of a season.
type Episode struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Overview      string  `json:"overview"`
	EpisodeNumber int     `json:"episode_number"`
	SeasonNumber  int     `json:"season_number"`
	AirDate       string  `json:"air_date,omitempty"`
	StillPath     string  `json:"still_path,omitempty"`
	Runtime       *int    `json:"runtime,omitempty"`
	VoteAverage   float64 `json:"vote_average"`
}

// Season is a season with its episodes.
type Season struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Overview     string    `json:"overview"`
	SeasonNumber int       `json:"season_number"`
	AirDate      string    `json:"air_date,omitempty"`
	PosterPath   string    `json:"poster_path,omitempty"`
	Episodes     []Episode `json:"episodes"`
}
