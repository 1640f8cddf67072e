package model

import (
	"time"
)

// GORM gère CreatedAt et UpdatedAt automatiquement.
// CreatedBy et UpdatedBy sont renseignés explicitement par les repositories.
type BaseEntity struct {
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
	CreatedBy *int64    `gorm:"column:created_by"`
	UpdatedBy *int64    `gorm:"column:updated_by"`
}
