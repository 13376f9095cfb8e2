package schema

// EnrollEnrollmentTable represents the 'enroll.enrollment' table
type EnrollEnrollmentTable struct {
	Table      string
	ID         string
	CourseID   string
	UserID     string
	Status     string
	EnrolledAt string
	CreatedAt  string
}

// EnrollEnrollment is the schema definition for enroll.enrollment
var EnrollEnrollment = EnrollEnrollmentTable{
	Table:      "enroll.enrollment",
	ID:         "id",
	CourseID:   "courseid",
	UserID:     "userid",
	Status:     "status",
	EnrolledAt: "enrolledat",
	CreatedAt:  "createdat",
}

// Columns returns all standard column names
func (t EnrollEnrollmentTable) Columns() []string {
	return []string{
		t.ID, t.CourseID, t.UserID, t.Status, t.EnrolledAt, t.CreatedAt,
	}
}
