package aggregate

import "github.com/noah-isme/campus-console-api/internal/models"

// AnnotateCourses attaches instructor display names and recomputed
// enrollment counts to course rows. Inputs are not mutated; annotated
// copies are returned.
func AnnotateCourses(courses []models.Course, instructors []models.Instructor, registrations []models.Registration) []models.Course {
	byID := InstructorsByID(instructors)
	counts := EnrollmentCounts(registrations)

	out := make([]models.Course, len(courses))
	for i, c := range courses {
		if instructor, ok := byID[c.InstructorID]; ok {
			c.InstructorName = instructor.FullName()
		} else {
			c.InstructorName = ""
		}
		c.EnrollmentCount = counts[c.ID]
		out[i] = c
	}
	return out
}

// AnnotateRegistrations attaches student and course display names to
// registration rows. A row with a stale reference keeps its ids and simply
// loses the label; registrations are never dropped here because screens
// still render cancelled and waitlisted rows with their status.
func AnnotateRegistrations(registrations []models.Registration, students []models.Student, courses []models.Course) []models.Registration {
	studentsByID := StudentsByID(students)
	coursesByID := CoursesByID(courses)

	out := make([]models.Registration, len(registrations))
	for i, r := range registrations {
		if s, ok := studentsByID[r.StudentID]; ok {
			r.StudentName = s.FullName()
		}
		if c, ok := coursesByID[r.CourseID]; ok {
			r.CourseName = c.Title
		}
		out[i] = r
	}
	return out
}
