package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type RejectedRecord struct {
	Row    int64             `json:"row"`
	Data   map[string]string `json:"data"`
	Errors []string          `json:"errors"`
}

// RejectedRecordList is stored as a single JSONB column; the list is
// append-only and written whole on every checkpoint.
type RejectedRecordList []RejectedRecord

func (l RejectedRecordList) Value() (driver.Value, error) {
	if l == nil {
		l = RejectedRecordList{}
	}
	return json.Marshal(l)
}

func (l *RejectedRecordList) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*l = RejectedRecordList{}
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return fmt.Errorf("unsupported rejected records column type %T", value)
}

type ImportJob struct {
	ID              string             `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Status          string             `gorm:"type:text;not null"`
	TotalRecords    int64              `gorm:"not null;default:0"`
	SuccessCount    int64              `gorm:"not null;default:0"`
	FailedCount     int64              `gorm:"not null;default:0"`
	RejectedRecords RejectedRecordList `gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (ImportJob) TableName() string {
	return "import_jobs"
}
