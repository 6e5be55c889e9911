// Package schema declares the frontmatter contract for an article and its
// validation rules. Keys outside the contracted set are ignored so that
// documents written for newer versions keep loading (forward compatible).
package schema

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DateLayout is the calendar-date format required for the date field.
// Timestamps and timezone offsets are deliberately not accepted; ordering
// within a day is handled by the source-name tie break.
const DateLayout = "2006-01-02"

// Metadata is the validated frontmatter record of one article.
//
// Title and Date are mandatory. Date stays a string until validated so that
// a malformed value produces a field-level error instead of a YAML decode
// failure deep inside the parser; use PublishedAt after Validate.
type Metadata struct {
	Title       string   `yaml:"title" json:"title"`
	Date        string   `yaml:"date" json:"date"`
	Description string   `yaml:"description" json:"description"`
	Tags        []string `yaml:"tags" json:"tags"`
	Image       string   `yaml:"image" json:"image"`
}

// Validate checks the record against the schema. It returns a
// validation.Errors keyed by field name on failure, so callers can report
// the offending field(s). No coercion is performed: a date that does not
// parse as DateLayout is a failure, not a best-effort guess.
func (m Metadata) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Title,
			validation.Required.Error("is required and must not be empty")),
		validation.Field(&m.Date,
			validation.Required.Error("is required"),
			validation.Date(DateLayout).Error("must be a calendar date in YYYY-MM-DD form")),
		validation.Field(&m.Tags,
			validation.Each(validation.Required.Error("must not be an empty string"))),
	)
}

// PublishedAt parses the date field. Only meaningful after Validate has
// passed; an unvalidated malformed date yields the zero time.
func (m Metadata) PublishedAt() time.Time {
	t, _ := time.Parse(DateLayout, strings.TrimSpace(m.Date))
	return t
}
