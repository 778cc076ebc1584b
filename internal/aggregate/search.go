package aggregate

import (
	"fmt"

	"github.com/noah-isme/campus-console-api/internal/models"
)

// FlattenSearch merges the server-filtered search collections into one
// type-tagged result list, ordered students then instructors then courses,
// each in server-returned order. No client-side matching happens here.
func FlattenSearch(collections models.SearchCollections) []models.SearchResult {
	out := make([]models.SearchResult, 0,
		len(collections.Students)+len(collections.Instructors)+len(collections.Courses))

	for _, s := range collections.Students {
		out = append(out, models.SearchResult{
			Type:  models.SearchResultStudent,
			ID:    s.ID,
			Label: s.FullName(),
			Link:  "/students/" + s.ID,
		})
	}
	for _, i := range collections.Instructors {
		out = append(out, models.SearchResult{
			Type:  models.SearchResultInstructor,
			ID:    i.ID,
			Label: i.FullName(),
			Link:  "/instructors/" + i.ID,
		})
	}
	for _, c := range collections.Courses {
		label := c.Title
		if c.CourseCode != "" {
			label = fmt.Sprintf("%s (%s)", c.Title, c.CourseCode)
		}
		out = append(out, models.SearchResult{
			Type:  models.SearchResultCourse,
			ID:    c.ID,
			Label: label,
			Link:  "/courses/" + c.ID,
		})
	}
	return out
}
