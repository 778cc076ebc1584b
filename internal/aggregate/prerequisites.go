package aggregate

import "github.com/noah-isme/campus-console-api/internal/models"

// NormalizePrerequisites canonicalizes a course's prerequisites to id
// references. Old rows carry bare strings that may be either course codes
// or ids; both are resolved against the fetched course collection and
// entries that resolve nowhere are dropped as referential staleness.
func NormalizePrerequisites(course models.Course, courses []models.Course) models.PrerequisiteList {
	byID := CoursesByID(courses)
	byCode := make(map[string]models.Course, len(courses))
	for _, c := range courses {
		if c.CourseCode != "" {
			byCode[c.CourseCode] = c
		}
	}

	out := make(models.PrerequisiteList, 0, len(course.Prerequisites))
	for _, p := range course.Prerequisites {
		switch {
		case p.ID != "":
			if c, ok := byID[p.ID]; ok {
				out = append(out, models.Prerequisite{ID: c.ID, Title: c.Title, CourseCode: c.CourseCode})
			}
		case p.CourseCode != "":
			if c, ok := byCode[p.CourseCode]; ok {
				out = append(out, models.Prerequisite{ID: c.ID, Title: c.Title, CourseCode: c.CourseCode})
			} else if c, ok := byID[p.CourseCode]; ok {
				// Legacy rows sometimes stored raw ids in the code slot.
				out = append(out, models.Prerequisite{ID: c.ID, Title: c.Title, CourseCode: c.CourseCode})
			}
		}
	}
	return out
}
