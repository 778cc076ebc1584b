// Package dto defines the per-screen bundles the gateway hands to the
// console, plus the mutation payloads it accepts. Each bundle carries
// exactly what its screen renders; a failed assembly never produces a
// partial bundle.
package dto

import "github.com/noah-isme/campus-console-api/internal/models"

// DashboardBundle backs the landing screen.
type DashboardBundle struct {
	StudentCount      int               `json:"student_count"`
	InstructorCount   int               `json:"instructor_count"`
	CourseCount       int               `json:"course_count"`
	RegistrationCount int               `json:"registration_count"`
	ActiveCourses     []models.Course   `json:"active_courses"`
	Capability        models.Capability `json:"capability"`
}

// CourseListBundle backs the courses index screen.
type CourseListBundle struct {
	Courses     []models.Course     `json:"courses"`
	Instructors []models.Instructor `json:"instructors"`
	Capability  models.Capability   `json:"capability"`
}

// CourseDetailBundle backs the course detail screen: the course itself, its
// instructor, every registration with status, the active roster, and the
// complement set available for registration. Instructors and courses ride
// along for the edit form's pickers.
type CourseDetailBundle struct {
	Course               models.Course         `json:"course"`
	Instructor           *models.Instructor    `json:"instructor,omitempty"`
	Registrations        []models.Registration `json:"registrations"`
	RegisteredStudents   []models.Student      `json:"registered_students"`
	UnregisteredStudents []models.Student      `json:"unregistered_students"`
	Instructors          []models.Instructor   `json:"instructors"`
	Courses              []models.Course       `json:"courses"`
	Capability           models.Capability     `json:"capability"`
}

// StudentListBundle backs the students index screen.
type StudentListBundle struct {
	Students   []models.Student  `json:"students"`
	Capability models.Capability `json:"capability"`
}

// StudentDetailBundle backs the student detail screen.
type StudentDetailBundle struct {
	Student         models.Student        `json:"student"`
	Registrations   []models.Registration `json:"registrations"`
	EnrolledCourses []models.Course       `json:"enrolled_courses"`
	Courses         []models.Course       `json:"courses"`
	Capability      models.Capability     `json:"capability"`
}

// InstructorListBundle backs the instructors index screen.
type InstructorListBundle struct {
	Instructors []models.Instructor `json:"instructors"`
	Capability  models.Capability   `json:"capability"`
}

// InstructorDetailBundle backs the instructor detail screen, including the
// active-students view with per-course enrollment counts.
type InstructorDetailBundle struct {
	Instructor         models.Instructor `json:"instructor"`
	Courses            []models.Course   `json:"courses"`
	Students           []models.Student  `json:"students"`
	EnrollmentByCourse map[string]int    `json:"enrollment_by_course"`
	Capability         models.Capability `json:"capability"`
}

// SearchBundle backs the site-wide search screen.
type SearchBundle struct {
	Query   string                `json:"query"`
	Results []models.SearchResult `json:"results"`
}
