package models

type ProfileModel struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;size:255;not null"`
	FullName     string `gorm:"size:100;not null"`
	EmployeeID   string `gorm:"uniqueIndex;size:50;not null"`
	PhotoURL     string `gorm:"size:500"`
	Role         string `gorm:"size:20;not null;index"`
	Status       string `gorm:"size:20;not null;index"`
	StatusReason string `gorm:"size:500"`
	TotalPenalty int64  `gorm:"not null;default:0"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (ProfileModel) TableName() string {
	return "profiles"
}
