// Package aggregate computes derived views over already-fetched collections.
// Every function is pure: no I/O, no clock, and identical inputs produce
// identical outputs. Joins go through id-keyed lookup maps built once per
// call; rows whose foreign key has no match are referential staleness and
// are dropped silently rather than raised.
package aggregate

import "github.com/noah-isme/campus-console-api/internal/models"

// StudentsByID builds an id-keyed lookup map over the student collection.
func StudentsByID(students []models.Student) map[string]models.Student {
	out := make(map[string]models.Student, len(students))
	for _, s := range students {
		out[s.ID] = s
	}
	return out
}

// InstructorsByID builds an id-keyed lookup map over the instructor collection.
func InstructorsByID(instructors []models.Instructor) map[string]models.Instructor {
	out := make(map[string]models.Instructor, len(instructors))
	for _, i := range instructors {
		out[i.ID] = i
	}
	return out
}

// CoursesByID builds an id-keyed lookup map over the course collection.
func CoursesByID(courses []models.Course) map[string]models.Course {
	out := make(map[string]models.Course, len(courses))
	for _, c := range courses {
		out[c.ID] = c
	}
	return out
}

// RegisteredStudentsForCourse returns the students actively registered for
// the course, in registration order. Waitlisted and cancelled registrations
// do not count; registrations pointing at unknown students are dropped.
func RegisteredStudentsForCourse(courseID string, registrations []models.Registration, students []models.Student) []models.Student {
	byID := StudentsByID(students)
	out := make([]models.Student, 0)
	for _, r := range registrations {
		if r.CourseID != courseID || !r.Active() {
			continue
		}
		if s, ok := byID[r.StudentID]; ok {
			out = append(out, s)
		}
	}
	return out
}

// UnregisteredStudentsForCourse returns the complement of the active roster
// relative to the full student collection, preserving the collection's
// order. Together with RegisteredStudentsForCourse it partitions the
// student collection.
func UnregisteredStudentsForCourse(courseID string, registrations []models.Registration, students []models.Student) []models.Student {
	registered := make(map[string]struct{})
	for _, r := range registrations {
		if r.CourseID == courseID && r.Active() {
			registered[r.StudentID] = struct{}{}
		}
	}
	out := make([]models.Student, 0, len(students))
	for _, s := range students {
		if _, ok := registered[s.ID]; !ok {
			out = append(out, s)
		}
	}
	return out
}

// CoursesForInstructor filters courses to one instructor, source order
// preserved.
func CoursesForInstructor(instructorID string, courses []models.Course) []models.Course {
	out := make([]models.Course, 0)
	for _, c := range courses {
		if c.InstructorID == instructorID {
			out = append(out, c)
		}
	}
	return out
}

// RegistrationsForCourse filters registrations of every status to one
// course; inactive rows stay visible so screens can render their status.
func RegistrationsForCourse(courseID string, registrations []models.Registration) []models.Registration {
	out := make([]models.Registration, 0)
	for _, r := range registrations {
		if r.CourseID == courseID {
			out = append(out, r)
		}
	}
	return out
}

// RegistrationsForStudent filters registrations of every status to one
// student.
func RegistrationsForStudent(studentID string, registrations []models.Registration) []models.Registration {
	out := make([]models.Registration, 0)
	for _, r := range registrations {
		if r.StudentID == studentID {
			out = append(out, r)
		}
	}
	return out
}

// EnrollmentCounts computes active-registration cardinality per course.
// Derived counts always come from the registrations at hand, never from a
// denormalized upstream counter.
func EnrollmentCounts(registrations []models.Registration) map[string]int {
	out := make(map[string]int)
	for _, r := range registrations {
		if r.Active() {
			out[r.CourseID]++
		}
	}
	return out
}

// ActiveRegistrationCount returns the active enrollment count for one course.
func ActiveRegistrationCount(courseID string, registrations []models.Registration) int {
	count := 0
	for _, r := range registrations {
		if r.CourseID == courseID && r.Active() {
			count++
		}
	}
	return count
}

// Teaching describes the students currently taught by an instructor along
// with per-course active enrollment.
type Teaching struct {
	Students           []models.Student
	EnrollmentByCourse map[string]int
}

// StudentsForInstructor performs the two-level join: instructor -> courses
// -> registrations -> students. Student order follows the student
// collection; each student appears once even when enrolled in several of
// the instructor's courses.
func StudentsForInstructor(instructorID string, courses []models.Course, registrations []models.Registration, students []models.Student) Teaching {
	taught := make(map[string]struct{})
	for _, c := range CoursesForInstructor(instructorID, courses) {
		taught[c.ID] = struct{}{}
	}

	enrollment := make(map[string]int, len(taught))
	enrolled := make(map[string]struct{})
	for _, r := range registrations {
		if !r.Active() {
			continue
		}
		if _, ok := taught[r.CourseID]; !ok {
			continue
		}
		enrollment[r.CourseID]++
		enrolled[r.StudentID] = struct{}{}
	}

	out := make([]models.Student, 0, len(enrolled))
	for _, s := range students {
		if _, ok := enrolled[s.ID]; ok {
			out = append(out, s)
		}
	}
	return Teaching{Students: out, EnrollmentByCourse: enrollment}
}

// EnrolledCourses projects a student's registrations onto the course
// collection, registration order preserved, stale course references dropped.
func EnrolledCourses(registrations []models.Registration, courses []models.Course) []models.Course {
	byID := CoursesByID(courses)
	out := make([]models.Course, 0, len(registrations))
	for _, r := range registrations {
		if !r.Active() {
			continue
		}
		if c, ok := byID[r.CourseID]; ok {
			out = append(out, c)
		}
	}
	return out
}
