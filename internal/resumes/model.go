package resumes

import "time"

// Resume represents one uploaded document and the structured data derived
// from it. UserID is fixed at creation; only the parsed data is mutable.
type Resume struct {
	ID         string
	UserID     string
	FileName   string
	StorageKey string
	UploadedAt time.Time
	Parsed     ParsedData
}

// ParsedData holds the fields the external parsing service extracted.
// Every field is optional; an empty object is a valid result.
type ParsedData struct {
	Name       string   `json:"name,omitempty"`
	Email      string   `json:"email,omitempty"`
	Phone      string   `json:"phone,omitempty"`
	Skills     []string `json:"skills,omitempty"`
	Education  []Entry  `json:"education,omitempty"`
	Experience []Entry  `json:"experience,omitempty"`
}

// Entry is one education or experience item. The extraction service is not
// consistent about field names across entry kinds, so everything is
// optional and renderers should go through Heading.
type Entry struct {
	Title       string `json:"title,omitempty"`
	Degree      string `json:"degree,omitempty"`
	JobTitle    string `json:"job_title,omitempty"`
	Company     string `json:"company,omitempty"`
	Institution string `json:"institution,omitempty"`
	Date        string `json:"date,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Raw         string `json:"raw,omitempty"`
}

// Heading picks the display label for an entry. Precedence: title, degree,
// job_title, then the raw string.
func (e Entry) Heading() string {
	switch {
	case e.Title != "":
		return e.Title
	case e.Degree != "":
		return e.Degree
	case e.JobTitle != "":
		return e.JobTitle
	default:
		return e.Raw
	}
}
