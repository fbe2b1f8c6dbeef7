package models

// User is an account that can query the catalog. Staff users may manage
// other accounts; superusers are bootstrap accounts that the API never
// modifies.
type User struct {
	BaseModel
	Username     string `gorm:"uniqueIndex" json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsActive     bool   `json:"is_active"`
	IsStaff      bool   `json:"is_staff"`
	IsSuperuser  bool   `json:"is_superuser"`
}
