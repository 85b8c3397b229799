package models

import "time"

type Customer struct {
	ID          string    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	FullName    string    `gorm:"size:255;not null"`
	Email       string    `gorm:"size:320;not null;uniqueIndex"`
	DateOfBirth time.Time `gorm:"type:date;not null"`
	Timezone    string    `gorm:"size:64;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Customer) TableName() string {
	return "customers"
}
