package dto

// CoursePayload creates or replaces a course. The upstream owns identity
// and timestamps; whole snapshots are written, never field patches.
type CoursePayload struct {
	CourseCode      string   `json:"course_code" binding:"required"`
	Title           string   `json:"title" binding:"required"`
	Description     string   `json:"description" binding:"required"`
	DescriptionFull string   `json:"description_full"`
	InstructorID    string   `json:"instructor_id" binding:"required,uuid"`
	StartDate       string   `json:"start_date" binding:"required,dateonly"`
	EndDate         string   `json:"end_date" binding:"required,dateonly"`
	CourseFee       float64  `json:"course_fee" binding:"gte=0"`
	SyllabusURL     string   `json:"syllabus_url" binding:"omitempty,url"`
	PrerequisiteIDs []string `json:"prerequisite_ids" binding:"omitempty,dive,uuid"`
}

// StudentPayload creates or replaces a student.
type StudentPayload struct {
	NameFirst string `json:"name_first" binding:"required"`
	NameLast  string `json:"name_last" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
	Notes     string `json:"notes"`
}

// InstructorPayload creates or replaces an instructor.
type InstructorPayload struct {
	NameFirst string `json:"name_first" binding:"required"`
	NameLast  string `json:"name_last" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Bio       string `json:"bio"`
}

// RegistrationActionPayload drives the register/unregister domain actions.
type RegistrationActionPayload struct {
	StudentID string `json:"student_id" binding:"required,uuid"`
	CourseID  string `json:"course_id" binding:"required,uuid"`
}
