package models

import "gorm.io/gorm"

const (
	RoleUser  = "user"
	RoleRider = "rider"
	RoleAdmin = "admin"
)

// AssignableRoles are the values accepted by the role-mutation endpoint.
// Promotion to "rider" only happens through rider activation.
var AssignableRoles = []string{RoleAdmin, RoleUser}

type User struct {
	gorm.Model
	Email    string `gorm:"column:email;uniqueIndex;not null" json:"email"`
	Name     string `gorm:"column:name" json:"name"`
	PhotoURL string `gorm:"column:photo_url" json:"photoURL"`
	Role     string `gorm:"column:role;default:user" json:"role"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

func IsAssignableRole(role string) bool {
	for _, r := range AssignableRoles {
		if r == role {
			return true
		}
	}
	return false
}
