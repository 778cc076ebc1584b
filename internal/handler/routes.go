package handler

import "github.com/gin-gonic/gin"

// Handlers bundles everything RegisterRoutes needs. Any nil handler skips
// its routes, which keeps optional features (export) out of the table when
// they are disabled at build time.
type Handlers struct {
	Dashboard    *DashboardHandler
	Course       *CourseHandler
	Student      *StudentHandler
	Instructor   *InstructorHandler
	Registration *RegistrationHandler
	Search       *SearchHandler
	Export       *ExportHandler
}

// RegisterRoutes mounts the screen bundle and mutation endpoints under the
// given group. One GET per screen, one route per mutation.
func RegisterRoutes(g *gin.RouterGroup, h Handlers) {
	if h.Dashboard != nil {
		g.GET("/dashboard", h.Dashboard.Get)
	}

	if h.Course != nil {
		courses := g.Group("/courses")
		courses.GET("", h.Course.List)
		courses.POST("", h.Course.Create)
		courses.GET("/:id", h.Course.Detail)
		courses.PUT("/:id", h.Course.Update)
		courses.DELETE("/:id", h.Course.Delete)
		if h.Export != nil {
			courses.GET("/:id/roster", h.Export.Roster)
		}
	}

	if h.Student != nil {
		students := g.Group("/students")
		students.GET("", h.Student.List)
		students.POST("", h.Student.Create)
		students.GET("/:id", h.Student.Detail)
		students.PUT("/:id", h.Student.Update)
		students.DELETE("/:id", h.Student.Delete)
	}

	if h.Instructor != nil {
		instructors := g.Group("/instructors")
		instructors.GET("", h.Instructor.List)
		instructors.POST("", h.Instructor.Create)
		instructors.GET("/:id", h.Instructor.Detail)
		instructors.PUT("/:id", h.Instructor.Update)
		instructors.DELETE("/:id", h.Instructor.Delete)
	}

	if h.Registration != nil {
		registrations := g.Group("/registrations")
		registrations.POST("/register", h.Registration.Register)
		registrations.POST("/unregister", h.Registration.Unregister)
	}

	if h.Search != nil {
		g.GET("/search", h.Search.Search)
	}
}
