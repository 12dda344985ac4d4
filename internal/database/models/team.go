package models

// Team represents a group of users that can own catalog entities
type Team struct {
	BaseModel
	Email    string `json:"email" gorm:"size:255" validate:"omitempty,email,max=255"`
	TeamType string `json:"team_type" gorm:"size:40;not null;default:'Group'"`
	Deleted  bool   `json:"deleted" gorm:"not null;default:false"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
