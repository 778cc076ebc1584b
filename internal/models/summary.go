package models

// DashboardSummary carries the aggregate counts returned by the upstream
// dashboard-summary endpoint. The upstream serializes these camelCase,
// unlike the entity resources.
type DashboardSummary struct {
	StudentCount      int `json:"studentCount"`
	InstructorCount   int `json:"instructorCount"`
	CourseCount       int `json:"courseCount"`
	RegistrationCount int `json:"registrationCount"`
}
