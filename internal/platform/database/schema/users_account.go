package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table       string
	ID          string
	Username    string
	Email       string
	Password    string
	Role        string
	FirstName   string
	FirstNameAr string
	LastName    string
	LastNameAr  string
	IsVerified  string
	IsActive    string
	LastLoginAt string
	AvatarURL   string
	CreatedAt   string
	UpdatedAt   string
	DeletedAt   string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:       "users.account",
	ID:          "id",
	Username:    "username",
	Email:       "email",
	Password:    "passwordhash",
	Role:        "role",
	FirstName:   "firstname",
	FirstNameAr: "firstnamear",
	LastName:    "lastname",
	LastNameAr:  "lastnamear",
	IsVerified:  "isverified",
	IsActive:    "isactive",
	LastLoginAt: "lastloginat",
	AvatarURL:   "avatarurl",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
	DeletedAt:   "deletedat",
}

// Columns returns all standard column names
func (t UserAccountTable) Columns() []string {
	return []string{
		t.ID, t.Username, t.Email, t.Password, t.Role, t.FirstName,
		t.FirstNameAr, t.LastName, t.LastNameAr, t.IsVerified, t.IsActive,
		t.LastLoginAt, t.AvatarURL, t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}
