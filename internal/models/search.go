package models

// SearchCollections holds the server-filtered result sets from the composite
// search endpoint. Matching policy lives upstream; this layer only relabels.
type SearchCollections struct {
	Students    []Student    `json:"students"`
	Instructors []Instructor `json:"instructors"`
	Courses     []Course     `json:"courses"`
}

// SearchResultType tags a flattened search row with its origin collection.
type SearchResultType string

const (
	SearchResultStudent    SearchResultType = "student"
	SearchResultInstructor SearchResultType = "instructor"
	SearchResultCourse     SearchResultType = "course"
)

// SearchResult is one row of the flattened, type-tagged search output.
type SearchResult struct {
	Type  SearchResultType `json:"type"`
	ID    string           `json:"id"`
	Label string           `json:"label"`
	Link  string           `json:"link"`
}
