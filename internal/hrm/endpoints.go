package hrm

import "fmt"

// Endpoints of the HR REST API, relative to the configured base URL.
const (
	HolidaysEndpoint           = "/api/v2/leave/holidays"
	LeaveListEndpoint          = "/api/v2/leave/employees/leave-requests"
	LeaveTypesEndpoint         = "/api/v2/leave/leave-types"
	LeaveReportEndpoint        = "/api/v2/leave/reports"
	WorkWeekEndpoint           = "/api/v2/leave/workweek"
	EmployeeCountEndpoint      = "/api/v2/pim/employees/count"
	EmployeesEndpoint          = "/api/v2/pim/employees"
	ReportsEndpoint            = "/api/v2/pim/reports/defined"
	TerminationReasonsEndpoint = "/api/v2/pim/termination-reasons"
	VacanciesEndpoint          = "/api/v2/recruitment/vacancies"
	CandidatesEndpoint         = "/api/v2/recruitment/candidates"
	JobTitlesEndpoint          = "/api/v2/admin/job-titles"
	JobCategoriesEndpoint      = "/api/v2/admin/job-categories"
)

// EmployeeEndpoint addresses one employee.
func EmployeeEndpoint(empNumber int) string {
	return fmt.Sprintf("%s/%d", EmployeesEndpoint, empNumber)
}

// PersonalDetailsEndpoint addresses the personal details of one employee.
func PersonalDetailsEndpoint(empNumber int) string {
	return EmployeeEndpoint(empNumber) + "/personal-details"
}

// TerminationReasonEndpoint addresses one termination reason.
func TerminationReasonEndpoint(id int) string {
	return fmt.Sprintf("%s/%d", TerminationReasonsEndpoint, id)
}
