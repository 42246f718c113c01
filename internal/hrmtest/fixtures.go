package hrmtest

// Canned answers, shaped like the ones the real HR API returns.
const (
	HolidaysJSON = `{
  "data": [
    {"id": 1, "name": "New Year", "date": "2025-01-01", "recurring": true, "length": 0, "lengthName": "Full Day"},
    {"id": 2, "name": "Poya Day", "date": "2025-01-13", "recurring": false, "length": 4, "lengthName": "Half Day"}
  ],
  "meta": {"total": 2},
  "rels": []
}`

	LeaveListJSON = `{
  "data": [
    {"id": 11, "name": "Annual", "date": "2025-03-03", "recurring": false, "length": 0, "lengthName": "Full Day"}
  ],
  "meta": {"total": 1},
  "rels": []
}`

	LeaveTypesJSON = `{
  "data": [
    {"id": 1, "name": "Sick", "deleted": false, "situational": false},
    {"id": 2, "name": "Casual", "deleted": false, "situational": true}
  ],
  "meta": {"total": 2},
  "rels": []
}`

	LeaveReportJSON = `{
  "data": {
    "headers": [
      {"name": "Leave Type", "prop": "leaveType", "size": 3, "pin": "colPinStart", "cellProperties": null},
      {"name": "Leave Entitlements (Days)", "prop": "entitlementDays", "size": 3, "pin": null,
       "cellProperties": {"class": {"cell-action": true}}},
      {"name": "Leave Taken (Days)", "prop": "takenDays", "size": 3, "pin": null, "cellProperties": "link"}
    ],
    "filters": {"fromDate": "2025-01-01", "toDate": "2025-12-31"}
  },
  "meta": {"headers": 3},
  "rels": []
}`

	WorkWeekJSON = `{
  "data": {"id": 1, "monday": 0, "tuesday": 0, "wednesday": 0, "thursday": 0, "friday": 0, "saturday": 8, "sunday": 8},
  "meta": [],
  "rels": []
}`

	EmployeeCountJSON = `{"data": {"count": 42}, "meta": [], "rels": []}`

	EmployeesJSON = `{
  "data": [
    {"empNumber": 7, "firstName": "Odis", "lastName": "Adalwin", "middleName": "", "employeeId": "0007", "terminationId": null},
    {"empNumber": 8, "firstName": "Peter", "lastName": "Anderson", "middleName": "Mac", "employeeId": "0008", "terminationId": null}
  ],
  "meta": {"total": 2},
  "rels": []
}`

	PersonalDetailsJSON = `{
  "data": {
    "empNumber": 7, "lastName": "Adalwin", "firstName": "Odis", "middleName": "",
    "employeeId": "0007", "otherId": "", "drivingLicenseNo": "",
    "gender": 1, "maritalStatus": "Single", "birthday": "1990-05-05",
    "nationality": {"id": 108, "name": "Sri Lankan"}
  },
  "meta": [],
  "rels": []
}`

	VacanciesJSON = `{
  "data": [
    {"id": 3, "name": "Senior QA Lead", "description": "", "numOfPositions": 2, "status": true, "isPublished": true,
     "jobTitle": {"id": 12, "title": "QA Lead", "isDeleted": false}},
    {"id": 4, "name": "Payroll Clerk", "description": "Part time", "numOfPositions": null, "status": false, "isPublished": false,
     "jobTitle": {"id": 5, "title": "Payroll Administrator", "isDeleted": false}}
  ],
  "meta": {"total": 2},
  "rels": []
}`

	JobTitlesJSON = `{
  "data": [
    {"id": 5, "title": "Payroll Administrator", "description": "", "note": "", "jobSpecification": {"id": null}},
    {"id": 12, "title": "QA Lead", "description": "Leads QA", "note": "", "jobSpecification": {"id": null}}
  ],
  "meta": {"total": 2},
  "rels": []
}`

	UnauthorizedJSON = `{"error": {"status": "401", "message": "Session expired"}}`
)
