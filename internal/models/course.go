package models

import (
	"encoding/json"
	"time"
)

// Course mirrors the upstream course resource. Start and end dates arrive as
// bare calendar dates and are display-only in this layer, so they stay
// strings rather than time values.
type Course struct {
	ID              string           `json:"id"`
	CourseCode      string           `json:"course_code"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	DescriptionFull string           `json:"description_full"`
	InstructorID    string           `json:"instructor_id"`
	StartDate       string           `json:"start_date"`
	EndDate         string           `json:"end_date"`
	CourseFee       float64          `json:"course_fee"`
	SyllabusURL     string           `json:"syllabus_url,omitempty"`
	Prerequisites   PrerequisiteList `json:"prerequisites,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`

	// Display-only derivations; computed by the aggregation layer, never
	// trusted from upstream when registrations are in hand.
	InstructorName  string `json:"instructor_name,omitempty"`
	EnrollmentCount int    `json:"enrollment_count"`
}

// Prerequisite is the canonical prerequisite representation: a course id
// reference with optional display fields.
type Prerequisite struct {
	ID         string `json:"id"`
	Title      string `json:"title,omitempty"`
	CourseCode string `json:"course_code,omitempty"`
}

// PrerequisiteList tolerates the legacy wire formats still present in old
// rows: rich objects, bare course ids, and bare course codes. Bare strings
// are parked in CourseCode until normalization resolves them against the
// course collection.
type PrerequisiteList []Prerequisite

func (p *PrerequisiteList) UnmarshalJSON(data []byte) error {
	var objects []Prerequisite
	if err := json.Unmarshal(data, &objects); err == nil {
		*p = objects
		return nil
	}

	var legacy []string
	if err := json.Unmarshal(data, &legacy); err != nil {
		return err
	}
	out := make(PrerequisiteList, 0, len(legacy))
	for _, entry := range legacy {
		out = append(out, Prerequisite{CourseCode: entry})
	}
	*p = out
	return nil
}
