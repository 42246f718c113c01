package hrm_test

import (
	"context"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/konnektr-io/hrm-api-helpers/api/v1alpha1"
	"github.com/konnektr-io/hrm-api-helpers/internal/config"
	"github.com/konnektr-io/hrm-api-helpers/internal/fixture"
	"github.com/konnektr-io/hrm-api-helpers/internal/hrm"
	"github.com/konnektr-io/hrm-api-helpers/internal/hrmtest"
	"github.com/konnektr-io/hrm-api-helpers/internal/shaper"
)

func ints(r *shaper.Record, name string) []int {
	GinkgoHelper()
	v, ok := r.Ints(name)
	Expect(ok).To(BeTrue(), "field %q should be a list of integers", name)
	return v
}

func strs(r *shaper.Record, name string) []string {
	GinkgoHelper()
	v, ok := r.Strings(name)
	Expect(ok).To(BeTrue(), "field %q should be a list of strings", name)
	return v
}

func lastRequest() hrmtest.Request {
	GinkgoHelper()
	req, ok := server.LastRequest()
	Expect(ok).To(BeTrue())
	return req
}

var _ = Describe("HR operations", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Describe("Leave module", func() {
		It("should list holidays with one entry per element", func() {
			record, err := client.GetHolidays(ctx, hrm.HolidaysEndpoint, token, nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(record.StatusCode).To(Equal(http.StatusOK))
			Expect(record.StatusLine).To(Equal("HTTP/1.1 200 OK"))
			Expect(record.Shape).To(Equal(shaper.ShapeMany))
			Expect(record.Fields()).To(ConsistOf("id", "name", "date", "recurring", "length", "lengthName"))
			Expect(ints(record, "id")).To(Equal([]int{1, 2}))
			Expect(strs(record, "name")).To(Equal([]string{"New Year", "Poya Day"}))
			Expect(record.List("recurring")).To(Equal([]interface{}{true, false}))
			Expect(strs(record, "lengthName")).To(Equal([]string{"Full Day", "Half Day"}))

			req := lastRequest()
			Expect(req.Method).To(Equal(http.MethodGet))
			Expect(req.Cookie).To(Equal(token))
			Expect(req.ContentType).To(ContainSubstring("application/json"))
			Expect(req.Body).To(BeEmpty())
		})

		It("should send the filter body on GET", func() {
			filter := map[string]string{"fromDate": "2025-01-01", "toDate": "2025-12-31"}
			_, err := client.GetHolidays(ctx, hrm.HolidaysEndpoint, token, filter)
			Expect(err).NotTo(HaveOccurred())

			Expect(lastRequest().Body).To(MatchJSON(`{"fromDate": "2025-01-01", "toDate": "2025-12-31"}`))
		})

		It("should list leave requests", func() {
			record, err := client.GetLeaves(ctx, hrm.LeaveListEndpoint, token, nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(ints(record, "id")).To(Equal([]int{11}))
			Expect(strs(record, "name")).To(Equal([]string{"Annual"}))
		})

		It("should list leave types", func() {
			record, err := client.GetLeaveTypes(ctx, hrm.LeaveTypesEndpoint, token, nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(strs(record, "name")).To(Equal([]string{"Sick", "Casual"}))
			Expect(record.List("situational")).To(Equal([]interface{}{false, true}))
			Expect(record.List("deleted")).To(Equal([]interface{}{false, false}))
		})

		It("should read report headers below data.headers", func() {
			record, err := client.GetUsageReport(ctx, hrm.LeaveReportEndpoint, token, map[string]string{"name": "leave_type_leave_entitlements_and_usage"})
			Expect(err).NotTo(HaveOccurred())

			Expect(record.Shape).To(Equal(shaper.ShapeMany))
			Expect(strs(record, "prop")).To(Equal([]string{"leaveType", "entitlementDays", "takenDays"}))
			Expect(ints(record, "size")).To(Equal([]int{3, 3, 3}))
			Expect(record.List("pin")).To(Equal([]interface{}{"colPinStart", nil, nil}))

			By("keeping object or null cell properties and nulling the rest")
			Expect(record.List("cellProperties")).To(Equal([]interface{}{
				nil,
				map[string]interface{}{"class": map[string]interface{}{"cell-action": true}},
				nil,
			}))
		})

		It("should read the work week as one object", func() {
			record, err := client.GetLeaveWorkWeek(ctx, hrm.WorkWeekEndpoint, token)
			Expect(err).NotTo(HaveOccurred())

			Expect(record.Shape).To(Equal(shaper.ShapeSingle))
			week, ok := record.Map("workweek")
			Expect(ok).To(BeTrue())
			Expect(week).To(HaveKeyWithValue("monday", 0))
			Expect(week).To(HaveKeyWithValue("saturday", 8))
			Expect(week).To(HaveLen(8))
		})
	})

	Describe("PIM module", func() {
		It("should read the employee count as a scalar", func() {
			record, err := client.GetEmployeeCount(ctx, hrm.EmployeeCountEndpoint, token, nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(record.Shape).To(Equal(shaper.ShapeSingle))
			count, ok := record.Int("count")
			Expect(ok).To(BeTrue())
			Expect(count).To(Equal(42))
		})

		It("should list employees and keep the raw body", func() {
			record, err := client.GetEmployees(ctx, hrm.EmployeesEndpoint, token)
			Expect(err).NotTo(HaveOccurred())

			Expect(ints(record, "empNumber")).To(Equal([]int{7, 8}))
			Expect(strs(record, "firstName")).To(Equal([]string{"Odis", "Peter"}))
			Expect(strs(record, "employeeId")).To(Equal([]string{"0007", "0008"}))
			Expect(string(record.Body)).To(ContainSubstring(`"lastName": "Anderson"`))
		})

		It("should read personal details including the nested nationality", func() {
			record, err := client.GetEmployeePersonalDetails(ctx, hrm.PersonalDetailsEndpoint(7), token, map[string]interface{}{"empNumber": 7})
			Expect(err).NotTo(HaveOccurred())

			empNumber, _ := record.Int("empNumber")
			Expect(empNumber).To(Equal(7))
			nationality, ok := record.String("nationality")
			Expect(ok).To(BeTrue())
			Expect(nationality).To(Equal("Sri Lankan"))
			Expect(lastRequest().Query.Get("empNumber")).To(Equal("7"))
		})

		It("should create an employee and read back the first name", func() {
			firstName := cases.Title(language.English).String("ada lovelace")
			body := `{"firstName": "` + firstName + `", "lastName": "King", "employeeId": "0042"}`

			record, err := client.PostPimEmployee(ctx, hrm.EmployeesEndpoint, token, body)
			Expect(err).NotTo(HaveOccurred())

			Expect(record.Value("firstName")).To(Equal("Ada Lovelace"))
			Expect(record.Value("employeeId")).To(Equal("0042"))
			Expect(lastRequest().Body).To(MatchJSON(body))
		})

		It("should update an employee", func() {
			record, err := client.PutPimEmployee(ctx, hrm.EmployeeEndpoint(7), token, `{"firstName": "Odis", "lastName": "Adalwin"}`)
			Expect(err).NotTo(HaveOccurred())

			Expect(lastRequest().Method).To(Equal(http.MethodPut))
			empNumber, _ := record.Int("empNumber")
			Expect(empNumber).To(Equal(7))
			Expect(record.Value("lastName")).To(Equal("Adalwin"))
		})

		It("should update personal details leaving out empty values", func() {
			record, err := client.PutEmployeeDetails(ctx, hrm.PersonalDetailsEndpoint(8), token,
				`{"firstName": "Peter", "lastName": "Anderson", "employeeId": ""}`)
			Expect(err).NotTo(HaveOccurred())

			Expect(ints(record, "empNumber")).To(Equal([]int{8}))
			Expect(strs(record, "firstName")).To(Equal([]string{"Peter"}))
			Expect(record.List("employeeId")).To(BeEmpty())
			Expect(record.List("employeeId")).NotTo(BeNil())
		})

		It("should rename a termination reason", func() {
			record, err := client.PutTerminationReason(ctx, hrm.TerminationReasonEndpoint(9), token, `{"name": "Resigned"}`)
			Expect(err).NotTo(HaveOccurred())

			id, _ := record.Int("id")
			Expect(id).To(Equal(9))
			Expect(record.Value("name")).To(Equal("Resigned"))
		})

		It("should report the first deleted id", func() {
			record, err := client.DeletePim(ctx, hrm.EmployeesEndpoint, token, `{"ids": [7, 8]}`)
			Expect(err).NotTo(HaveOccurred())
			Expect(record.Value("data")).To(Equal("7"))

			record, err = client.DeletePimEmployee(ctx, hrm.EmployeesEndpoint, token, `{"ids": [8]}`)
			Expect(err).NotTo(HaveOccurred())
			Expect(record.Value("employeeId")).To(Equal("8"))
			Expect(lastRequest().Method).To(Equal(http.MethodDelete))
		})

		It("should only report the status when posting an employee", func() {
			record, err := client.PostEmployee(ctx, hrm.EmployeesEndpoint, token, `{"firstName": "Grace", "lastName": "Hopper"}`)
			Expect(err).NotTo(HaveOccurred())

			Expect(record.StatusCode).To(Equal(http.StatusOK))
			Expect(record.Fields()).To(BeEmpty())
		})

		It("should create a report from a single object", func() {
			record, err := client.CreateReport(ctx, hrm.ReportsEndpoint, token, `{"name": "Headcount"}`)
			Expect(err).NotTo(HaveOccurred())

			Expect(record.Shape).To(Equal(shaper.ShapeSingle))
			Expect(ints(record, "id")).To(HaveLen(1))
			Expect(strs(record, "name")).To(Equal([]string{"Headcount"}))
		})
	})

	Describe("Recruitment and admin modules", func() {
		It("should list vacancies with query parameters", func() {
			record, err := client.GetVacancies(ctx, hrm.VacanciesEndpoint, token, map[string]interface{}{
				"limit":     50,
				"sortField": "vacancy.name",
			})
			Expect(err).NotTo(HaveOccurred())

			req := lastRequest()
			Expect(req.Query.Get("limit")).To(Equal("50"))
			Expect(req.Query.Get("sortField")).To(Equal("vacancy.name"))

			Expect(strs(record, "name")).To(Equal([]string{"Senior QA Lead", "Payroll Clerk"}))
			Expect(record.List("numOfPositions")).To(Equal([]interface{}{2, nil}))
			Expect(record.List("isPublished")).To(Equal([]interface{}{true, false}))
			Expect(record.List("jobTitle")).To(HaveLen(2))
			Expect(record.List("jobTitle")[0]).To(HaveKeyWithValue("title", "QA Lead"))
		})

		It("should list job titles", func() {
			record, err := client.GetJobTitles(ctx, hrm.JobTitlesEndpoint, token, map[string]interface{}{"limit": 0})
			Expect(err).NotTo(HaveOccurred())

			Expect(ints(record, "id")).To(Equal([]int{5, 12}))
			Expect(strs(record, "title")).To(Equal([]string{"Payroll Administrator", "QA Lead"}))
		})

		It("should add a candidate with a generated name", func() {
			gen := fixture.NewGenerator(nil)
			name := gen.UniqueName("Candidate")

			record, err := client.PostCandidate(ctx, hrm.CandidatesEndpoint, token, `{"firstName": "`+name+`"}`)
			Expect(err).NotTo(HaveOccurred())

			Expect(ints(record, "id")).To(HaveLen(1))
			Expect(record.List("name")).To(BeEmpty())
			Expect(lastRequest().Body).To(ContainSubstring(name))
		})

		It("should add a job category", func() {
			record, err := client.PostJobCategory(ctx, hrm.JobCategoriesEndpoint, token, `{"name": "Engineering"}`)
			Expect(err).NotTo(HaveOccurred())

			Expect(strs(record, "name")).To(Equal([]string{"Engineering"}))
		})

		It("should delete candidates and list their ids", func() {
			record, err := client.DeleteCandidates(ctx, hrm.CandidatesEndpoint, token, `{"ids": [3, 4]}`)
			Expect(err).NotTo(HaveOccurred())

			Expect(ints(record, "ids")).To(Equal([]int{3, 4}))
		})
	})

	Describe("Degraded answers", func() {
		It("should keep the status and leave fields empty without a session", func() {
			record, err := client.GetHolidays(ctx, hrm.HolidaysEndpoint, "", nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(record.StatusCode).To(Equal(http.StatusUnauthorized))
			Expect(record.StatusLine).To(Equal("HTTP/1.1 401 Unauthorized"))
			Expect(record.Shape).To(Equal(shaper.ShapeAbsent))
			Expect(record.Fields()).To(HaveLen(6))
			Expect(record.List("id")).To(BeEmpty())
			Expect(record.List("id")).NotTo(BeNil())
		})

		It("should leave scalars nil when the answer is not JSON", func() {
			server.Handle(http.MethodGet, "/api/v2/pim/employees/broken", http.StatusBadGateway, "<html>bad gateway</html>")

			record, err := client.Shape(ctx, http.MethodGet, "/api/v2/pim/employees/broken", token, nil, hrm.EmployeeCountSpec)
			Expect(err).NotTo(HaveOccurred())

			Expect(record.StatusCode).To(Equal(http.StatusBadGateway))
			Expect(record.Has("count")).To(BeTrue())
			Expect(record.Value("count")).To(BeNil())
		})

		It("should return transport failures as errors", func() {
			closed := hrmtest.NewServer()
			closed.Close()

			cfg, err := config.FromValues(map[string]string{config.KeyBaseURL: closed.URL})
			Expect(err).NotTo(HaveOccurred())

			_, err = hrm.NewClient(cfg, hrm.WithLogger(log)).GetEmployees(ctx, hrm.EmployeesEndpoint, token)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Ad-hoc shapes", func() {
		It("should extract only the declared fields", func() {
			spec := v1alpha1.ShapeSpec{Fields: []v1alpha1.FieldSpec{
				{Name: "first", Path: "firstName"},
			}}
			record, err := client.Shape(ctx, http.MethodGet, hrm.EmployeesEndpoint, token, nil, spec)
			Expect(err).NotTo(HaveOccurred())

			Expect(record.Fields()).To(Equal([]string{"first"}))
			Expect(record.Value("first")).To(Equal("Odis"))
			Expect(record.Has("lastName")).To(BeFalse())
		})

		It("should send a request spec with its query", func() {
			spec := &v1alpha1.RequestSpec{
				Endpoint: hrm.JobTitlesEndpoint,
				Query:    map[string]string{"sortOrder": "ASC"},
				Insecure: true,
				Shape: v1alpha1.ShapeSpec{Fields: []v1alpha1.FieldSpec{
					{Name: "titles", Path: "title", List: true},
				}},
			}
			record, err := client.ShapeRequest(ctx, spec, token, nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(strs(record, "titles")).To(Equal([]string{"Payroll Administrator", "QA Lead"}))
			req := lastRequest()
			Expect(req.Method).To(Equal(http.MethodGet))
			Expect(req.Query.Get("sortOrder")).To(Equal("ASC"))
		})

		It("should expose the configured credentials", func() {
			username, password := client.Credentials()
			Expect(username).To(Equal("Admin"))
			Expect(password).To(Equal("admin123"))
			Expect(client.BaseURL()).To(Equal(server.URL))
		})
	})
})
