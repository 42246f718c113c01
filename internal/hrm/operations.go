package hrm

import (
	"context"
	"net/http"

	"github.com/konnektr-io/hrm-api-helpers/api/v1alpha1"
	"github.com/konnektr-io/hrm-api-helpers/internal/shaper"
)

func scalar(name string, kind v1alpha1.ValueKind) v1alpha1.FieldSpec {
	return v1alpha1.FieldSpec{Name: name, Path: name, Kind: kind}
}

func list(name string, kind v1alpha1.ValueKind) v1alpha1.FieldSpec {
	return v1alpha1.FieldSpec{Name: name, Path: name, List: true, Kind: kind}
}

func compact(name string, kind v1alpha1.ValueKind) v1alpha1.FieldSpec {
	return v1alpha1.FieldSpec{Name: name, Path: name, List: true, OmitEmpty: true, Kind: kind}
}

// Field sets of the operations below.
var (
	HolidaySpec = v1alpha1.ShapeSpec{Fields: []v1alpha1.FieldSpec{
		list("id", v1alpha1.KindInt),
		list("name", v1alpha1.KindString),
		list("date", v1alpha1.KindString),
		list("recurring", v1alpha1.KindBool),
		list("length", v1alpha1.KindInt),
		list("lengthName", v1alpha1.KindString),
	}}

	EmployeeCountSpec = v1alpha1.ShapeSpec{Fields: []v1alpha1.FieldSpec{
		scalar("count", v1alpha1.KindInt),
	}}

	LeaveTypeSpec = v1alpha1.ShapeSpec{Fields: []v1alpha1.FieldSpec{
		list("id", v1alpha1.KindInt),
		list("name", v1alpha1.KindString),
		list("situational", v1alpha1.KindBool),
		list("deleted", v1alpha1.KindBool),
	}}

	UsageReportSpec = v1alpha1.ShapeSpec{Root: "data.headers", Fields: []v1alpha1.FieldSpec{
		list("name", v1alpha1.KindString),
		list("prop", v1alpha1.KindString),
		list("size", v1alpha1.KindAny),
		list("pin", v1alpha1.KindAny),
		list("cellProperties", v1alpha1.KindObject),
	}}

	TerminationReasonSpec = v1alpha1.ShapeSpec{Fields: []v1alpha1.FieldSpec{
		scalar("id", v1alpha1.KindInt),
		scalar("name", v1alpha1.KindString),
	}}

	// DeletedIDSpec reads the first deleted id.
	DeletedIDSpec = v1alpha1.ShapeSpec{Fields: []v1alpha1.FieldSpec{
		{Name: "data"},
	}}

	PimEmployeeSpec = v1alpha1.ShapeSpec{Fields: []v1alpha1.FieldSpec{
		scalar("employeeId", v1alpha1.KindString),
		scalar("firstName", v1alpha1.KindString),
	}}

	PimEmployeeUpdateSpec = v1alpha1.ShapeSpec{Fields: []v1alpha1.FieldSpec{
		scalar("empNumber", v1alpha1.KindInt),
		scalar("firstName", v1alpha1.KindString),
		scalar("lastName", v1alpha1.KindString),
	}}

	DeletedEmployeeSpec = v1alpha1.ShapeSpec{Fields: []v1alpha1.FieldSpec{
		{Name: "employeeId"},
	}}

	VacancySpec = v1alpha1.ShapeSpec{Fields: []v1alpha1.FieldSpec{
		list("id", v1alpha1.KindInt),
		list("name", v1alpha1.KindString),
		list("description", v1alpha1.KindString),
		list("numOfPositions", v1alpha1.KindAny),
		list("status", v1alpha1.KindBool),
		list("isPublished", v1alpha1.KindBool),
		list("jobTitle", v1alpha1.KindObject),
	}}

	JobTitleSpec = v1alpha1.ShapeSpec{Fields: []v1alpha1.FieldSpec{
		list("id", v1alpha1.KindInt),
		list("title", v1alpha1.KindString),
	}}

	PersonalDetailsSpec = v1alpha1.ShapeSpec{Fields: []v1alpha1.FieldSpec{
		scalar("empNumber", v1alpha1.KindInt),
		scalar("firstName", v1alpha1.KindString),
		scalar("lastName", v1alpha1.KindString),
		{Name: "nationality", Path: "nationality.name", Kind: v1alpha1.KindString},
	}}

	EmployeeListSpec = v1alpha1.ShapeSpec{Fields: []v1alpha1.FieldSpec{
		list("empNumber", v1alpha1.KindInt),
		list("firstName", v1alpha1.KindString),
		list("lastName", v1alpha1.KindString),
		list("employeeId", v1alpha1.KindString),
	}}

	WorkWeekSpec = v1alpha1.ShapeSpec{Fields: []v1alpha1.FieldSpec{
		{Name: "workweek", Kind: v1alpha1.KindObject},
	}}

	// StatusOnlySpec extracts nothing; the record carries status and body.
	StatusOnlySpec = v1alpha1.ShapeSpec{}

	CreatedSpec = v1alpha1.ShapeSpec{Fields: []v1alpha1.FieldSpec{
		compact("id", v1alpha1.KindInt),
		compact("name", v1alpha1.KindString),
	}}

	EmployeeDetailsSpec = v1alpha1.ShapeSpec{Fields: []v1alpha1.FieldSpec{
		compact("empNumber", v1alpha1.KindInt),
		compact("firstName", v1alpha1.KindString),
		compact("lastName", v1alpha1.KindString),
		compact("employeeId", v1alpha1.KindString),
	}}

	DeletedCandidatesSpec = v1alpha1.ShapeSpec{Fields: []v1alpha1.FieldSpec{
		{Name: "ids", List: true, Kind: v1alpha1.KindInt},
	}}
)

// filter turns an optional filter map into a request body.
func filter(body map[string]string) interface{} {
	if len(body) == 0 {
		return nil
	}
	return body
}

// GetHolidays lists holidays; body optionally filters them.
func (c *Client) GetHolidays(ctx context.Context, endpoint, token string, body map[string]string) (*shaper.Record, error) {
	return c.call(ctx, request{endpoint: endpoint, token: token, body: filter(body)}, HolidaySpec)
}

// GetLeaves lists leave requests with the holiday field set.
func (c *Client) GetLeaves(ctx context.Context, endpoint, token string, body map[string]string) (*shaper.Record, error) {
	return c.call(ctx, request{endpoint: endpoint, token: token, body: filter(body)}, HolidaySpec)
}

func (c *Client) GetEmployeeCount(ctx context.Context, endpoint, token string, body map[string]string) (*shaper.Record, error) {
	return c.call(ctx, request{endpoint: endpoint, token: token, body: filter(body)}, EmployeeCountSpec)
}

func (c *Client) GetLeaveTypes(ctx context.Context, endpoint, token string, body map[string]string) (*shaper.Record, error) {
	return c.call(ctx, request{endpoint: endpoint, token: token, body: filter(body)}, LeaveTypeSpec)
}

// GetUsageReport reads the column headers of a leave usage report.
// cellProperties values that are neither objects nor null come back as nil.
func (c *Client) GetUsageReport(ctx context.Context, endpoint, token string, body map[string]string) (*shaper.Record, error) {
	return c.call(ctx, request{endpoint: endpoint, token: token, body: filter(body)}, UsageReportSpec)
}

func (c *Client) PutTerminationReason(ctx context.Context, endpoint, token, body string) (*shaper.Record, error) {
	return c.call(ctx, request{method: http.MethodPut, endpoint: endpoint, token: token, body: body}, TerminationReasonSpec)
}

// DeletePim deletes PIM records; the "data" field holds the first deleted id.
func (c *Client) DeletePim(ctx context.Context, endpoint, token, body string) (*shaper.Record, error) {
	return c.call(ctx, request{method: http.MethodDelete, endpoint: endpoint, token: token, body: body}, DeletedIDSpec)
}

func (c *Client) PostPimEmployee(ctx context.Context, endpoint, token, body string) (*shaper.Record, error) {
	return c.call(ctx, request{method: http.MethodPost, endpoint: endpoint, token: token, body: body}, PimEmployeeSpec)
}

func (c *Client) PutPimEmployee(ctx context.Context, endpoint, token, body string) (*shaper.Record, error) {
	return c.call(ctx, request{method: http.MethodPut, endpoint: endpoint, token: token, body: body}, PimEmployeeUpdateSpec)
}

// DeletePimEmployee deletes employees; "employeeId" holds the first deleted id.
func (c *Client) DeletePimEmployee(ctx context.Context, endpoint, token, body string) (*shaper.Record, error) {
	return c.call(ctx, request{method: http.MethodDelete, endpoint: endpoint, token: token, body: body}, DeletedEmployeeSpec)
}

func (c *Client) GetVacancies(ctx context.Context, endpoint, token string, query map[string]interface{}) (*shaper.Record, error) {
	return c.call(ctx, request{endpoint: endpoint, token: token, query: query}, VacancySpec)
}

func (c *Client) GetJobTitles(ctx context.Context, endpoint, token string, query map[string]interface{}) (*shaper.Record, error) {
	return c.call(ctx, request{endpoint: endpoint, token: token, query: query}, JobTitleSpec)
}

// GetEmployeePersonalDetails reads one employee; "nationality" is the
// nationality name.
func (c *Client) GetEmployeePersonalDetails(ctx context.Context, endpoint, token string, query map[string]interface{}) (*shaper.Record, error) {
	return c.call(ctx, request{endpoint: endpoint, token: token, query: query}, PersonalDetailsSpec)
}

// GetEmployees lists employees. The raw body stays available on the record.
func (c *Client) GetEmployees(ctx context.Context, endpoint, token string) (*shaper.Record, error) {
	return c.call(ctx, request{endpoint: endpoint, token: token}, EmployeeListSpec)
}

// GetLeaveWorkWeek reads the work week; "workweek" holds the day-to-hours object.
func (c *Client) GetLeaveWorkWeek(ctx context.Context, endpoint, token string) (*shaper.Record, error) {
	return c.call(ctx, request{endpoint: endpoint, token: token}, WorkWeekSpec)
}

// PostEmployee creates an employee and only reports the status.
func (c *Client) PostEmployee(ctx context.Context, endpoint, token, body string) (*shaper.Record, error) {
	return c.call(ctx, request{method: http.MethodPost, endpoint: endpoint, token: token, body: body, insecure: true}, StatusOnlySpec)
}

func (c *Client) CreateReport(ctx context.Context, endpoint, token, body string) (*shaper.Record, error) {
	return c.call(ctx, request{method: http.MethodPost, endpoint: endpoint, token: token, body: body}, CreatedSpec)
}

func (c *Client) PostCandidate(ctx context.Context, endpoint, token, body string) (*shaper.Record, error) {
	return c.call(ctx, request{method: http.MethodPost, endpoint: endpoint, token: token, body: body, insecure: true}, CreatedSpec)
}

func (c *Client) PostJobCategory(ctx context.Context, endpoint, token, body string) (*shaper.Record, error) {
	return c.call(ctx, request{method: http.MethodPost, endpoint: endpoint, token: token, body: body}, CreatedSpec)
}

// PutEmployeeDetails updates personal details. Null and empty values are
// left out of the lists.
func (c *Client) PutEmployeeDetails(ctx context.Context, endpoint, token, body string) (*shaper.Record, error) {
	return c.call(ctx, request{method: http.MethodPut, endpoint: endpoint, token: token, body: body}, EmployeeDetailsSpec)
}

// DeleteCandidates deletes candidates; "ids" lists the deleted ids.
func (c *Client) DeleteCandidates(ctx context.Context, endpoint, token, body string) (*shaper.Record, error) {
	return c.call(ctx, request{method: http.MethodDelete, endpoint: endpoint, token: token, body: body, insecure: true}, DeletedCandidatesSpec)
}
