package upstream

import (
	"context"
	"net/http"

	"github.com/noah-isme/campus-console-api/internal/models"
)

// Directory is the typed surface over the generic client. Services consume
// narrow slices of it through their own interfaces, keeping fakes small.
type Directory struct {
	client *Client
}

// NewDirectory wraps a Client.
func NewDirectory(client *Client) *Directory {
	return &Directory{client: client}
}

func (d *Directory) Courses(ctx context.Context, params Params) ([]models.Course, error) {
	return FetchCollection[models.Course](ctx, d.client, Courses, "/", params)
}

func (d *Directory) Course(ctx context.Context, id string) (models.Course, error) {
	return FetchSingle[models.Course](ctx, d.client, Courses, "/"+id+"/", nil)
}

func (d *Directory) Instructors(ctx context.Context, params Params) ([]models.Instructor, error) {
	return FetchCollection[models.Instructor](ctx, d.client, Instructors, "/", params)
}

func (d *Directory) Instructor(ctx context.Context, id string) (models.Instructor, error) {
	return FetchSingle[models.Instructor](ctx, d.client, Instructors, "/"+id+"/", nil)
}

func (d *Directory) Students(ctx context.Context, params Params) ([]models.Student, error) {
	return FetchCollection[models.Student](ctx, d.client, Students, "/", params)
}

func (d *Directory) Student(ctx context.Context, id string) (models.Student, error) {
	return FetchSingle[models.Student](ctx, d.client, Students, "/"+id+"/", nil)
}

func (d *Directory) Registrations(ctx context.Context, params Params) ([]models.Registration, error) {
	return FetchCollection[models.Registration](ctx, d.client, Registrations, "/", params)
}

func (d *Directory) DashboardSummary(ctx context.Context) (models.DashboardSummary, error) {
	return FetchSingle[models.DashboardSummary](ctx, d.client, Org, "/dashboard-summary/", nil)
}

func (d *Directory) Search(ctx context.Context, query string) (models.SearchCollections, error) {
	return FetchSingle[models.SearchCollections](ctx, d.client, Org, "/search", Params{"q": query})
}

func (d *Directory) CreateCourse(ctx context.Context, payload any) (models.Course, error) {
	return Mutate[models.Course](ctx, d.client, Courses, "/", http.MethodPost, payload)
}

func (d *Directory) UpdateCourse(ctx context.Context, id string, payload any) (models.Course, error) {
	return Mutate[models.Course](ctx, d.client, Courses, "/"+id+"/", http.MethodPut, payload)
}

func (d *Directory) DeleteCourse(ctx context.Context, id string) error {
	_, err := Mutate[struct{}](ctx, d.client, Courses, "/"+id+"/", http.MethodDelete, nil)
	return err
}

func (d *Directory) CreateStudent(ctx context.Context, payload any) (models.Student, error) {
	return Mutate[models.Student](ctx, d.client, Students, "/", http.MethodPost, payload)
}

func (d *Directory) UpdateStudent(ctx context.Context, id string, payload any) (models.Student, error) {
	return Mutate[models.Student](ctx, d.client, Students, "/"+id+"/", http.MethodPut, payload)
}

func (d *Directory) DeleteStudent(ctx context.Context, id string) error {
	_, err := Mutate[struct{}](ctx, d.client, Students, "/"+id+"/", http.MethodDelete, nil)
	return err
}

func (d *Directory) CreateInstructor(ctx context.Context, payload any) (models.Instructor, error) {
	return Mutate[models.Instructor](ctx, d.client, Instructors, "/", http.MethodPost, payload)
}

func (d *Directory) UpdateInstructor(ctx context.Context, id string, payload any) (models.Instructor, error) {
	return Mutate[models.Instructor](ctx, d.client, Instructors, "/"+id+"/", http.MethodPut, payload)
}

func (d *Directory) DeleteInstructor(ctx context.Context, id string) error {
	_, err := Mutate[struct{}](ctx, d.client, Instructors, "/"+id+"/", http.MethodDelete, nil)
	return err
}

// RegistrationAction is the request body for the register/unregister
// domain-action endpoints.
type RegistrationAction struct {
	StudentID string `json:"student_id"`
	CourseID  string `json:"course_id"`
}

func (d *Directory) Register(ctx context.Context, action RegistrationAction) (models.Registration, error) {
	return Mutate[models.Registration](ctx, d.client, Registrations, "/register/", http.MethodPost, action)
}

func (d *Directory) Unregister(ctx context.Context, action RegistrationAction) error {
	_, err := Mutate[struct{}](ctx, d.client, Registrations, "/unregister/", http.MethodPost, action)
	return err
}

func (d *Directory) DeleteRegistration(ctx context.Context, id string) error {
	_, err := Mutate[struct{}](ctx, d.client, Registrations, "/"+id+"/", http.MethodDelete, nil)
	return err
}
