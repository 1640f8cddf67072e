package model

import (
	sharedCrypto "github.com/taalentio/talent-api/internal/shared/crypto"
)

// CinemaTalent is a cinema-industry professional registered through the public form.
// UniqueCode uses the cinema identity layout (MACAS0001F).
type CinemaTalent struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	UniqueCode string `gorm:"column:unique_code;type:VARCHAR2(16);not null;uniqueIndex:idx_cinema_talent_unique_code"`

	Email            string   `gorm:"column:email;type:VARCHAR2(1020);not null;uniqueIndex:idx_cinema_talent_email"`
	FirstName        string   `gorm:"column:first_name;type:VARCHAR2(400);not null"`
	LastName         string   `gorm:"column:last_name;type:VARCHAR2(400);not null"`
	Gender           string   `gorm:"column:gender;type:VARCHAR2(1);not null"`
	ResidenceCountry string   `gorm:"column:residence_country;type:VARCHAR2(400);not null"`
	ResidenceCity    string   `gorm:"column:residence_city;type:VARCHAR2(400);not null"`
	Professions      []string `gorm:"column:professions;type:VARCHAR2(4000);serializer:json"`

	Phone            sharedCrypto.EncryptedString `gorm:"column:phone_encrypted;size:256"`
	WhatsApp         sharedCrypto.EncryptedString `gorm:"column:whatsapp_encrypted;size:256"`
	IDDocumentNumber sharedCrypto.EncryptedString `gorm:"column:id_document_number_encrypted;size:512"`

	BaseEntity
}

func (*CinemaTalent) TableName() string {
	return "cinema_talent"
}
