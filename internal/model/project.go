package model

import (
	sharedCrypto "github.com/taalentio/talent-api/internal/shared/crypto"
)

// Project is a film production that talents are assigned to.
type Project struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	Title              string `gorm:"column:title;type:VARCHAR2(1020);not null"`
	ProductionCompany  string `gorm:"column:production_company;type:VARCHAR2(1020);not null"`
	ProductionInitials string `gorm:"column:production_initials;type:VARCHAR2(3);not null"`

	BaseEntity
}

func (*Project) TableName() string {
	return "project"
}

// ProjectTalent is a talent assigned to a project.
// UniqueCode uses the project identity layout (MAABC007001), sequenced per project.
type ProjectTalent struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	ProjectID  uint32 `gorm:"column:project_id;not null;index:idx_project_talent_project"`
	UniqueCode string `gorm:"column:unique_code;type:VARCHAR2(20);not null;uniqueIndex:idx_project_talent_unique_code"`

	FirstName       string `gorm:"column:first_name;type:VARCHAR2(400);not null"`
	LastName        string `gorm:"column:last_name;type:VARCHAR2(400);not null"`
	Gender          string `gorm:"column:gender;type:VARCHAR2(1);not null"`
	CountryOfOrigin string `gorm:"column:country_of_origin;type:VARCHAR2(400);not null"`
	Role            string `gorm:"column:role;type:VARCHAR2(400)"`

	Phone sharedCrypto.EncryptedString `gorm:"column:phone_encrypted;size:256"`

	Project *Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`

	BaseEntity
}

func (*ProjectTalent) TableName() string {
	return "project_talent"
}
