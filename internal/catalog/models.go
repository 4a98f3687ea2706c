package catalog

type Movie struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`
}

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Company struct {
	Name string `json:"name"`
}

type CastMember struct {
	Name      string `json:"name"`
	Character string `json:"character"`
}

type Credits struct {
	Cast []CastMember `json:"cast"`
}

// MovieDetail is a Movie enriched with the fields of a detail lookup.
type MovieDetail struct {
	Movie
	Runtime             int       `json:"runtime"`
	Genres              []Genre   `json:"genres"`
	ProductionCompanies []Company `json:"production_companies"`
	Credits             Credits   `json:"credits"`
}

// MoviePage mirrors a TMDB list response. The fixture store always returns
// a single page.
type MoviePage struct {
	Movies       []Movie `json:"movies"`
	Page         int     `json:"page"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Location struct {
	Address1 string `json:"address1"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zip_code"`
	Country  string `json:"country"`
}

type Category struct {
	Alias string `json:"alias"`
	Title string `json:"title"`
}

type Restaurant struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	ImageURL     string      `json:"image_url"`
	ReviewCount  int         `json:"review_count"`
	Rating       float64     `json:"rating"`
	Price        string      `json:"price"`
	Phone        string      `json:"phone"`
	DisplayPhone string      `json:"display_phone"`
	Distance     float64     `json:"distance"`
	IsClosed     bool        `json:"is_closed"`
	Coordinates  Coordinates `json:"coordinates"`
	Location     Location    `json:"location"`
	Categories   []Category  `json:"categories"`
}

type Region struct {
	Center Coordinates `json:"center"`
}

// RestaurantPage mirrors a Yelp business search response.
type RestaurantPage struct {
	Businesses []Restaurant `json:"businesses"`
	Total      int          `json:"total"`
	Region     Region       `json:"region"`
}

type RestaurantReviewUser struct {
	Name string `json:"name"`
}

// RestaurantReview is a third-party review shown next to a restaurant. It is
// unrelated to the reviews users submit.
type RestaurantReview struct {
	ID          string               `json:"id"`
	Rating      int                  `json:"rating"`
	Text        string               `json:"text"`
	TimeCreated string               `json:"time_created"`
	User        RestaurantReviewUser `json:"user"`
}
