package catalog

var fixtureMovies = []Movie{
	{
		ID:          "278",
		Title:       "The Shawshank Redemption",
		Overview:    "Two imprisoned men bond over a number of years, finding solace and eventual redemption through acts of common decency.",
		PosterPath:  "https://image.tmdb.org/t/p/w500/q6y0Go1tsGEsmtFryDOJo3dEmqu.jpg",
		ReleaseDate: "1994-09-23",
		VoteAverage: 9.3,
		VoteCount:   25000,
	},
	{
		ID:          "238",
		Title:       "The Godfather",
		Overview:    "The aging patriarch of an organized crime dynasty transfers control of his clandestine empire to his reluctant son.",
		PosterPath:  "https://image.tmdb.org/t/p/w500/3bhkrj58Vtu7enYsRolD1fZdja1.jpg",
		ReleaseDate: "1972-03-14",
		VoteAverage: 9.2,
		VoteCount:   18000,
	},
	{
		ID:          "157336",
		Title:       "Interstellar",
		Overview:    "A team of explorers travel through a wormhole in space in an attempt to ensure humanity's survival.",
		PosterPath:  "https://image.tmdb.org/t/p/w500/gEU2QniE6E77NI6lCU6MxlNBvIx.jpg",
		ReleaseDate: "2014-11-07",
		VoteAverage: 8.6,
		VoteCount:   32000,
	},
	{
		ID:          "680",
		Title:       "Pulp Fiction",
		Overview:    "The lives of two mob hitmen, a boxer, a gangster and his wife, and a pair of diner bandits intertwine in four tales of violence and redemption.",
		PosterPath:  "https://image.tmdb.org/t/p/w500/d5iIlFn5s0ImszYzBPb8JPIfbXD.jpg",
		ReleaseDate: "1994-10-14",
		VoteAverage: 8.9,
		VoteCount:   26000,
	},
	{
		ID:          "13",
		Title:       "Forrest Gump",
		Overview:    "The presidencies of Kennedy and Johnson, the Vietnam War, the Watergate scandal and other historical events unfold from the perspective of an Alabama man with an IQ of 75.",
		PosterPath:  "https://image.tmdb.org/t/p/w500/arw2vcBveWOVZr6pxd9XTd1TdQa.jpg",
		ReleaseDate: "1994-06-23",
		VoteAverage: 8.8,
		VoteCount:   25000,
	},
}

var fixtureRestaurants = []Restaurant{
	{
		ID:           "g9e0D-x0VJj0s3x7p5TQnw",
		Name:         "Joe's Pizza",
		ImageURL:     "https://s3-media2.fl.yelpcdn.com/bphoto/7YJg_BAY-k6g6wR-aR6y7g/o.jpg",
		ReviewCount:  4582,
		Rating:       4.5,
		Price:        "$",
		Phone:        "+12123330000",
		DisplayPhone: "(212) 333-0000",
		Distance:     1200.5,
		Coordinates:  Coordinates{Latitude: 40.73061, Longitude: -73.935242},
		Location: Location{
			Address1: "7 Carmine St",
			City:     "New York",
			State:    "NY",
			ZipCode:  "10014",
			Country:  "US",
		},
		Categories: []Category{
			{Alias: "pizza", Title: "Pizza"},
		},
	},
	{
		ID:           "WavvLdfdP6g8aZTtbBQHTw",
		Name:         "Momofuku Noodle Bar",
		ImageURL:     "https://s3-media1.fl.yelpcdn.com/bphoto/I4j_Xq-7N4VROvE6OgTq5A/o.jpg",
		ReviewCount:  3215,
		Rating:       4.0,
		Price:        "$$",
		Phone:        "+12125332100",
		DisplayPhone: "(212) 533-2100",
		Distance:     850.2,
		Coordinates:  Coordinates{Latitude: 40.7315, Longitude: -73.9958},
		Location: Location{
			Address1: "171 1st Ave",
			City:     "New York",
			State:    "NY",
			ZipCode:  "10003",
			Country:  "US",
		},
		Categories: []Category{
			{Alias: "noodles", Title: "Noodles"},
			{Alias: "ramen", Title: "Ramen"},
		},
	},
	{
		ID:           "DkYS3gLOeAghmHl-7p0MKw",
		Name:         "Shake Shack",
		ImageURL:     "https://s3-media3.fl.yelpcdn.com/bphoto/B7bB7-2Q0bB7bB7-2Q0bB7/bphoto.jpg",
		ReviewCount:  8921,
		Rating:       4.2,
		Price:        "$$",
		Phone:        "+12125550000",
		DisplayPhone: "(212) 555-0000",
		Distance:     650.8,
		Coordinates:  Coordinates{Latitude: 40.7415, Longitude: -73.9856},
		Location: Location{
			Address1: "Madison Square Park",
			City:     "New York",
			State:    "NY",
			ZipCode:  "10010",
			Country:  "US",
		},
		Categories: []Category{
			{Alias: "burgers", Title: "Burgers"},
			{Alias: "hotdogs", Title: "Fast Food"},
		},
	},
}

// Every detail lookup gets the same enrichment; the fixtures carry no
// per-title metadata beyond the list fields.
var fixtureMovieExtras = struct {
	Runtime   int
	Genres    []Genre
	Companies []Company
	Cast      []CastMember
}{
	Runtime:   142,
	Genres:    []Genre{{ID: 18, Name: "Drama"}},
	Companies: []Company{{Name: "Warner Bros."}},
	Cast: []CastMember{
		{Name: "Tim Robbins", Character: "Andy Dufresne"},
		{Name: "Morgan Freeman", Character: `Ellis Boyd "Red" Redding`},
	},
}

var fixtureRestaurantReviews = []RestaurantReview{
	{
		ID:          "xAG4O7l-t1ubbwVAlPnDKg",
		Rating:      5,
		Text:        "Amazing food and great service! Will definitely be back.",
		TimeCreated: "2024-01-15 13:22:11",
		User:        RestaurantReviewUser{Name: "Sarah M."},
	},
	{
		ID:          "yBG4O7l-t1ubbwVAlPnDKh",
		Rating:      4,
		Text:        "Good food but a bit pricey. Great atmosphere though.",
		TimeCreated: "2024-01-10 10:15:33",
		User:        RestaurantReviewUser{Name: "Mike T."},
	},
}

var defaultRegion = Region{Center: Coordinates{Latitude: 40.73061, Longitude: -73.935242}}
