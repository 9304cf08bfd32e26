package usecase

import (
	"context"
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"flexxit_backend/internal/feature/catalog/domain"
	"flexxit_backend/internal/feature/catalog/domain/entity"
)

const (
	// DefaultSortBy is used by MoviesByGenre when no sort order is given.
	DefaultSortBy = "popularity.desc"

	topTenSize = 10
	newWindow  = 6 // months
)

var (
	numericID = regexp.MustCompile(`^[0-9]+$`)
	yearParam = regexp.MustCompile(`^[0-9]{4}$`)
	sortParam = regexp.MustCompile(`^[a-z_]+\.(asc|desc)$`)
)

// rowSpec describes one browse row. mediaType is used for items the provider returns untagged.
type rowSpec struct {
	title     string
	mediaType entity.MediaType
	topTen    bool
	fetch     func(ctx context.Context, p Provider) ([]entity.CatalogItem, error)
}

// browseRows are fetched in parallel and returned in this order. The first row feeds the hero.
var browseRows = []rowSpec{
	{
		title: "Trending Now",
		fetch: func(ctx context.Context, p Provider) ([]entity.CatalogItem, error) { return p.Trending(ctx) },
	},
	{
		title:     "Top Rated Movies",
		mediaType: entity.MediaTypeMovie,
		topTen:    true,
		fetch:     func(ctx context.Context, p Provider) ([]entity.CatalogItem, error) { return p.TopRatedMovies(ctx) },
	},
	{
		title:     "Popular TV Shows",
		mediaType: entity.MediaTypeTV,
		fetch:     func(ctx context.Context, p Provider) ([]entity.CatalogItem, error) { return p.PopularTV(ctx) },
	},
	{
		title:     "Action Movies",
		mediaType: entity.MediaTypeMovie,
		fetch: func(ctx context.Context, p Provider) ([]entity.CatalogItem, error) {
			return p.Discover(ctx, entity.MediaTypeMovie, entity.DiscoverQuery{GenreID: "28"})
		},
	},
	{
		title:     "Comedy TV Shows",
		mediaType: entity.MediaTypeTV,
		fetch: func(ctx context.Context, p Provider) ([]entity.CatalogItem, error) {
			return p.Discover(ctx, entity.MediaTypeTV, entity.DiscoverQuery{GenreID: "35"})
		},
	},
}

type catalogUsecase struct {
	provider Provider
	now      func() time.Time
	pick     func(n int) int
}

// NewCatalogUsecase creates a catalogUsecase.
func NewCatalogUsecase(provider Provider) *catalogUsecase {
	return &catalogUsecase{
		provider: provider,
		now:      time.Now,
		pick:     rand.IntN,
	}
}

// Browse returns the browse rows and a random trending hero with its trailer key.
// If any upstream call fails, the whole result fails.
func (u *catalogUsecase) Browse(ctx context.Context) (*entity.BrowseResult, error) {
	rows := make([]entity.Row, len(browseRows))
	cutoff := u.now().AddDate(0, -newWindow, 0)

	g, gctx := errgroup.WithContext(ctx)
	for i, spec := range browseRows {
		g.Go(func() error {
			items, err := spec.fetch(gctx, u.provider)
			if err != nil {
				return err
			}
			rows[i] = entity.Row{Title: spec.title, Movies: annotate(items, spec, cutoff)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &entity.BrowseResult{Rows: rows}
	trending := rows[0].Movies
	if len(trending) == 0 {
		return result, nil
	}

	hero := trending[u.pick(len(trending))]
	videos, err := u.provider.Videos(ctx, hero.MediaType, strconv.Itoa(hero.ID))
	if err != nil {
		return nil, err
	}
	result.HeroMovie = &hero
	if trailer := entity.FirstTrailer(videos); trailer != nil {
		result.HeroTrailerKey = &trailer.Key
	}
	return result, nil
}

// MediaDetails fetches details, videos and similar items in parallel.
func (u *catalogUsecase) MediaDetails(ctx context.Context, mediaType, id string) (*entity.MediaDetailsResult, error) {
	mt, err := parseMediaType(mediaType)
	if err != nil {
		return nil, err
	}
	if !numericID.MatchString(id) {
		return nil, domain.BadRequest("Invalid media id")
	}

	var (
		details *entity.MediaDetails
		videos  []entity.Video
		similar []entity.CatalogItem
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		details, err = u.provider.Details(gctx, mt, id)
		return err
	})
	g.Go(func() (err error) {
		videos, err = u.provider.Videos(gctx, mt, id)
		return err
	})
	g.Go(func() (err error) {
		similar, err = u.provider.Similar(gctx, mt, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &entity.MediaDetailsResult{
		Details:       *details,
		Trailer:       entity.FirstTrailer(videos),
		SimilarMovies: tag(similar, mt),
	}, nil
}

// SeasonDetails returns one season of a show.
func (u *catalogUsecase) SeasonDetails(ctx context.Context, tvID, seasonNumber string) (*entity.Season, error) {
	if !numericID.MatchString(tvID) {
		return nil, domain.BadRequest("Invalid tv id")
	}
	n, err := strconv.Atoi(seasonNumber)
	if err != nil || n < 0 {
		return nil, domain.BadRequest("Invalid season number")
	}

	season, err := u.provider.Season(ctx, tvID, n)
	if err != nil {
		return nil, err
	}
	if season.Episodes == nil {
		season.Episodes = []entity.Episode{}
	}
	return season, nil
}

// Search runs a multi-search and keeps only movies and shows.
// An empty term is rejected without calling the provider.
func (u *catalogUsecase) Search(ctx context.Context, term string) ([]entity.CatalogItem, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, domain.BadRequest("Search term is required")
	}

	results, err := u.provider.SearchMulti(ctx, term)
	if err != nil {
		return nil, err
	}

	out := make([]entity.CatalogItem, 0, len(results))
	for _, item := range results {
		if item.MediaType.Valid() {
			out = append(out, item)
		}
	}
	return out, nil
}

// Genres lists the movie genres.
func (u *catalogUsecase) Genres(ctx context.Context) ([]entity.Genre, error) {
	genres, err := u.provider.MovieGenres(ctx)
	if err != nil {
		return nil, err
	}
	if genres == nil {
		genres = []entity.Genre{}
	}
	return genres, nil
}

// MoviesByGenre discovers movies of a genre, sorted by sortBy (popularity.desc by default)
// and optionally restricted to a release year.
func (u *catalogUsecase) MoviesByGenre(ctx context.Context, genreID, sortBy, year string) ([]entity.CatalogItem, error) {
	if !numericID.MatchString(genreID) {
		return nil, domain.BadRequest("Invalid genre id")
	}
	if sortBy == "" {
		sortBy = DefaultSortBy
	} else if !sortParam.MatchString(sortBy) {
		return nil, domain.BadRequest("Invalid sort order")
	}
	if year != "" && !yearParam.MatchString(year) {
		return nil, domain.BadRequest("Invalid year")
	}

	items, err := u.provider.Discover(ctx, entity.MediaTypeMovie, entity.DiscoverQuery{
		GenreID: genreID,
		SortBy:  sortBy,
		Year:    year,
	})
	if err != nil {
		return nil, err
	}
	return tag(items, entity.MediaTypeMovie), nil
}

func parseMediaType(s string) (entity.MediaType, error) {
	mt := entity.MediaType(s)
	if !mt.Valid() {
		return "", domain.BadRequest("Invalid media type")
	}
	return mt, nil
}

// annotate resolves media types and badges for a browse row.
// Items the provider tagged as something other than movie or tv are dropped.
func annotate(items []entity.CatalogItem, spec rowSpec, cutoff time.Time) []entity.CatalogItem {
	out := tag(items, spec.mediaType)
	for i := range out {
		out[i].Badge = ""
		if spec.topTen && i < topTenSize {
			out[i].Badge = entity.BadgeTopTen
		} else if d, ok := out[i].Date(); ok && d.After(cutoff) {
			out[i].Badge = entity.BadgeNew
		}
	}
	return out
}

// tag sets mediaType on items the provider left untagged and drops people.
func tag(items []entity.CatalogItem, mediaType entity.MediaType) []entity.CatalogItem {
	out := make([]entity.CatalogItem, 0, len(items))
	for _, item := range items {
		if item.MediaType != "" && !item.MediaType.Valid() {
			continue
		}
		item.MediaType = resolveMediaType(item, mediaType)
		out = append(out, item)
	}
	return out
}

// resolveMediaType prefers the item's own type, then the row's, then guesses from the title field.
// Callers filter out items with an unknown type first.
func resolveMediaType(item entity.CatalogItem, fallback entity.MediaType) entity.MediaType {
	switch {
	case item.MediaType.Valid():
		return item.MediaType
	case fallback.Valid():
		return fallback
	case item.Title != "":
		return entity.MediaTypeMovie
	default:
		return entity.MediaTypeTV
	}
}
