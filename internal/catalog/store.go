package catalog

import (
	"slices"
	"strings"

	"reviewhub-backend/internal/apperrors"
)

const (
	// DefaultLocation is reported when a search names no location. The
	// fixtures are all in one city, so location does not filter.
	DefaultLocation = "New York"
	// DefaultTerm matches every restaurant.
	DefaultTerm  = "restaurants"
	DefaultLimit = 20

	nowPlayingCount = 3
)

// RestaurantQuery holds restaurant search parameters. Zero values fall back
// to the defaults above.
type RestaurantQuery struct {
	Term  string
	Limit int
}

func (q RestaurantQuery) withDefaults() RestaurantQuery {
	if q.Term == "" {
		q.Term = DefaultTerm
	}
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
	return q
}

// Store answers catalog lookups from the built-in fixtures. It is read-only
// and safe for concurrent use.
type Store struct {
	movies      []Movie
	restaurants []Restaurant
}

func NewStore() *Store {
	return &Store{
		movies:      fixtureMovies,
		restaurants: fixtureRestaurants,
	}
}

// SearchMovies matches query case-insensitively against movie titles.
func (s *Store) SearchMovies(query string) MoviePage {
	needle := strings.ToLower(query)
	matches := []Movie{}
	for _, m := range s.movies {
		if strings.Contains(strings.ToLower(m.Title), needle) {
			matches = append(matches, m)
		}
	}
	return singlePage(matches)
}

func (s *Store) PopularMovies() MoviePage {
	return singlePage(slices.Clone(s.movies))
}

func (s *Store) NowPlayingMovies() MoviePage {
	n := min(nowPlayingCount, len(s.movies))
	return singlePage(slices.Clone(s.movies[:n]))
}

func (s *Store) Movie(id string) (*MovieDetail, error) {
	for _, m := range s.movies {
		if m.ID == id {
			return &MovieDetail{
				Movie:               m,
				Runtime:             fixtureMovieExtras.Runtime,
				Genres:              slices.Clone(fixtureMovieExtras.Genres),
				ProductionCompanies: slices.Clone(fixtureMovieExtras.Companies),
				Credits:             Credits{Cast: slices.Clone(fixtureMovieExtras.Cast)},
			}, nil
		}
	}
	return nil, apperrors.NotFound("movie", id)
}

// SearchRestaurants filters by name or category title. Total counts every
// match; Businesses is truncated to the limit.
func (s *Store) SearchRestaurants(q RestaurantQuery) RestaurantPage {
	q = q.withDefaults()

	matches := []Restaurant{}
	for _, r := range s.restaurants {
		if q.Term == DefaultTerm || restaurantMatches(r, strings.ToLower(q.Term)) {
			matches = append(matches, r)
		}
	}

	total := len(matches)
	if len(matches) > q.Limit {
		matches = matches[:q.Limit]
	}
	return RestaurantPage{
		Businesses: matches,
		Total:      total,
		Region:     defaultRegion,
	}
}

func (s *Store) Restaurant(id string) (*Restaurant, error) {
	for i := range s.restaurants {
		if s.restaurants[i].ID == id {
			r := s.restaurants[i]
			return &r, nil
		}
	}
	return nil, apperrors.NotFound("restaurant", id)
}

// RestaurantReviews returns the third-party reviews shown on a restaurant
// page. The fixtures have one shared list, returned for any id.
func (s *Store) RestaurantReviews(_ string) []RestaurantReview {
	return slices.Clone(fixtureRestaurantReviews)
}

func restaurantMatches(r Restaurant, needle string) bool {
	if strings.Contains(strings.ToLower(r.Name), needle) {
		return true
	}
	for _, c := range r.Categories {
		if strings.Contains(strings.ToLower(c.Title), needle) {
			return true
		}
	}
	return false
}

func singlePage(movies []Movie) MoviePage {
	return MoviePage{
		Movies:       movies,
		Page:         1,
		TotalPages:   1,
		TotalResults: len(movies),
	}
}
