package models

// User represents a person that can own catalog entities
type User struct {
	BaseModel
	Email   string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	IsAdmin bool   `json:"is_admin" gorm:"not null;default:false"`
	Deleted bool   `json:"deleted" gorm:"not null;default:false"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
