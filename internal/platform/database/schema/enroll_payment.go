package schema

// EnrollPaymentTable represents the 'enroll.payment' table
type EnrollPaymentTable struct {
	Table        string
	ID           string
	EnrollmentID string
	Method       string
	Amount       string
	Currency     string
	Status       string
	CreatedAt    string
}

// EnrollPayment is the schema definition for enroll.payment
var EnrollPayment = EnrollPaymentTable{
	Table:        "enroll.payment",
	ID:           "id",
	EnrollmentID: "enrollmentid",
	Method:       "method",
	Amount:       "amount",
	Currency:     "currency",
	Status:       "status",
	CreatedAt:    "createdat",
}

// Columns returns all standard column names
func (t EnrollPaymentTable) Columns() []string {
	return []string{
		t.ID, t.EnrollmentID, t.Method, t.Amount, t.Currency, t.Status, t.CreatedAt,
	}
}
