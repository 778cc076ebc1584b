package models

import "time"

// RegistrationStatus enumerates the lifecycle of a registration. Only
// StatusRegistered counts as active enrollment.
type RegistrationStatus string

const (
	StatusRegistered RegistrationStatus = "registered"
	StatusWaitlisted RegistrationStatus = "waitlisted"
	StatusCancelled  RegistrationStatus = "cancelled"
)

// PaymentStatus enumerates payment states on a registration.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// Registration is the many-to-many join of students and courses. It is the
// only relationship entity in the system.
type Registration struct {
	ID                 string             `json:"id"`
	StudentID          string             `json:"student_id"`
	CourseID           string             `json:"course_id"`
	RegistrationStatus RegistrationStatus `json:"registration_status"`
	PaymentStatus      PaymentStatus      `json:"payment_status"`
	RegisteredAt       time.Time          `json:"registered_at"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`

	// Display-only derivations computed via id lookup, never collection order.
	StudentName string `json:"student_name,omitempty"`
	CourseName  string `json:"course_name,omitempty"`
}

// Active reports whether the registration represents current enrollment.
func (r Registration) Active() bool {
	return r.RegistrationStatus == StatusRegistered
}
