package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/marqueehq/marquee/internal/validate"
)

// FirstFilmYear is the lower bound for Movie.Year. Nothing on film predates
// 1888, so a smaller year is always a data-entry mistake.
const FirstFilmYear = 1888

// Genres is the closed set of categories a Movie may carry. The validator
// checks membership against this slice and the /genres endpoint serves it to
// the form, so there is a single source of truth for both sides. Order here
// is the order users see it in, both in the select box and in the rejection
// message.
var Genres = []string{
	"Action",
	"Animation",
	"Comedy",
	"Documentary",
	"Drama",
	"Fantasy",
	"Horror",
	"Romance",
	"Science Fiction",
	"Thriller",
}

// Movie is the catalog record. ID and CreatedAt are assigned on create;
// everything else comes from the submission. JSON keys follow the form's
// camelCase contract.
type Movie struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Year           int       `json:"year"`
	Length         int       `json:"length"`
	Director       string    `json:"director"`
	Description    string    `json:"description"`
	PosterURL      string    `json:"posterUrl"`
	Category       string    `json:"category"`
	Discount       bool      `json:"discount"`
	FemaleDirector bool      `json:"femaleDirector"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ValidateMovie runs every submission constraint against m. Checks do not
// short-circuit: a candidate failing several rules reports all of them, in
// field order title, year, posterUrl, category. Length, director,
// description, discount and femaleDirector are accepted as-is.
func ValidateMovie(v *validate.Validator, m *Movie) {
	maxYear := time.Now().Year()

	v.Check(strings.TrimSpace(m.Title) != "", "title", "must not be empty")
	v.Check(m.Year >= FirstFilmYear && m.Year <= maxYear, "year",
		fmt.Sprintf("must be between %d and %d", FirstFilmYear, maxYear))
	v.Check(strings.TrimSpace(m.PosterURL) != "", "posterUrl", "must not be empty")
	v.Check(validate.Permitted(m.Category, Genres...), "category",
		"must be one of: "+strings.Join(Genres, ", "))
}
