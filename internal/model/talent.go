package model

import (
	sharedCrypto "github.com/taalentio/talent-api/internal/shared/crypto"
)

// Talent is a general talent registered through signup.
// UniqueCode uses the general identity layout (MAF0001CAS).
type Talent struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	UniqueCode string `gorm:"column:unique_code;type:VARCHAR2(16);not null;uniqueIndex:idx_talent_unique_code"`

	// VARCHAR2 compte en octets: 4 octets par caractère saisi au maximum
	Email     string `gorm:"column:email;type:VARCHAR2(1020);not null;uniqueIndex:idx_talent_email"`
	Password  string `gorm:"column:password;type:VARCHAR2(60);not null"` // hash bcrypt
	FirstName string `gorm:"column:first_name;type:VARCHAR2(400);not null"`
	LastName  string `gorm:"column:last_name;type:VARCHAR2(400);not null"`
	Gender    string `gorm:"column:gender;type:VARCHAR2(1);not null"`

	CountryOfOrigin  string `gorm:"column:country_of_origin;type:VARCHAR2(400);not null"`
	ResidenceCountry string `gorm:"column:residence_country;type:VARCHAR2(400)"`
	ResidenceCity    string `gorm:"column:residence_city;type:VARCHAR2(400);not null"`
	Bio              string `gorm:"column:bio;type:CLOB"`

	// Données personnelles, stockées chiffrées uniquement.
	// Tailles en octets: crypto.MaxTokenLen(longueur maximale acceptée en saisie).
	Phone            sharedCrypto.EncryptedString `gorm:"column:phone_encrypted;size:256"`
	WhatsApp         sharedCrypto.EncryptedString `gorm:"column:whatsapp_encrypted;size:256"`
	Address          sharedCrypto.EncryptedString `gorm:"column:address_encrypted;size:2800"`
	IDDocumentNumber sharedCrypto.EncryptedString `gorm:"column:id_document_number_encrypted;size:512"`
	Instagram        sharedCrypto.EncryptedString `gorm:"column:instagram_encrypted;size:1536"`
	Facebook         sharedCrypto.EncryptedString `gorm:"column:facebook_encrypted;size:1536"`
	TikTok           sharedCrypto.EncryptedString `gorm:"column:tiktok_encrypted;size:1536"`
	YouTube          sharedCrypto.EncryptedString `gorm:"column:youtube_encrypted;size:1536"`
	LinkedIn         sharedCrypto.EncryptedString `gorm:"column:linkedin_encrypted;size:1536"`

	BaseEntity
}

// TableName specifies the table name for Talent
func (*Talent) TableName() string {
	return "talent"
}

// NewTalent creates a Talent without identity code; the code is assigned by the
// service inside the insert transaction.
func NewTalent(email, password, firstName, lastName, gender, countryOfOrigin, residenceCity string) *Talent {
	// Note: password must already be hashed
	return &Talent{
		Email:           email,
		Password:        password,
		FirstName:       firstName,
		LastName:        lastName,
		Gender:          gender,
		CountryOfOrigin: countryOfOrigin,
		ResidenceCity:   residenceCity,
	}
}

// FullName returns "First Last".
func (t *Talent) FullName() string {
	return t.FirstName + " " + t.LastName
}
