package models

type ViolationModel struct {
	ID            uint   `gorm:"primaryKey"`
	UserID        uint   `gorm:"not null;index"`
	TaskID        uint   `gorm:"not null;uniqueIndex:idx_violations_task_type"`
	ViolationType string `gorm:"size:50;not null;uniqueIndex:idx_violations_task_type"`
	PenaltyAmount int64  `gorm:"not null"`
	PDFURL        string `gorm:"size:500"`
	CreatedAt     int64  `gorm:"autoCreateTime:milli;not null;index"`

	// Violations are append-only; there is no UpdatedAt on purpose.
	// The unique (task_id, violation_type) index makes re-issuing a
	// violation for the same task a detectable duplicate.
}

func (ViolationModel) TableName() string {
	return "violations"
}
