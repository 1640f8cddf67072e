package talent

import (
	sharedCrypto "github.com/taalentio/talent-api/internal/shared/crypto"
)

type ProfileResponse struct {
	ID               uint32  `json:"id"`
	UniqueCode       string  `json:"uniqueCode"`
	Email            string  `json:"email"`
	FirstName        string  `json:"firstName"`
	LastName         string  `json:"lastName"`
	Gender           string  `json:"gender"`
	CountryOfOrigin  string  `json:"countryOfOrigin"`
	ResidenceCountry string  `json:"residenceCountry,omitempty"`
	ResidenceCity    string  `json:"residenceCity"`
	Bio              string  `json:"bio,omitempty"`
	Phone            *string `json:"phone,omitempty"`
	WhatsApp         *string `json:"whatsapp,omitempty"`
	Address          *string `json:"address,omitempty"`
	IDDocumentNumber *string `json:"idDocumentNumber,omitempty"`
	Instagram        *string `json:"instagram,omitempty"`
	Facebook         *string `json:"facebook,omitempty"`
	TikTok           *string `json:"tiktok,omitempty"`
	YouTube          *string `json:"youtube,omitempty"`
	LinkedIn         *string `json:"linkedin,omitempty"`
	// UnavailableFields lists personal fields that are stored but could not be decrypted.
	UnavailableFields []string `json:"unavailableFields,omitempty"`
}

// UpdateProfileRequest is a partial update: nil keeps the stored value, an empty
// string clears it.
type UpdateProfileRequest struct {
	Bio              *string `json:"bio" binding:"omitempty,max=2000"`
	ResidenceCountry *string `json:"residenceCountry" binding:"omitempty,max=100"`
	Phone            *string `json:"phone" binding:"omitempty,max=32,phone"`
	WhatsApp         *string `json:"whatsapp" binding:"omitempty,max=32,phone"`
	Address          *string `json:"address" binding:"omitempty,max=500"`
	IDDocumentNumber *string `json:"idDocumentNumber" binding:"omitempty,max=50"`
	Instagram        *string `json:"instagram" binding:"omitempty,max=255"`
	Facebook         *string `json:"facebook" binding:"omitempty,max=255"`
	TikTok           *string `json:"tiktok" binding:"omitempty,max=255"`
	YouTube          *string `json:"youtube" binding:"omitempty,max=255"`
	LinkedIn         *string `json:"linkedin" binding:"omitempty,max=255"`
}

// PublicCardResponse is the profile visible without authentication. It carries
// no personal data.
type PublicCardResponse struct {
	UniqueCode      string `json:"uniqueCode"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	DisplayName     string `json:"displayName"`
	Gender          string `json:"gender"`
	CountryOfOrigin string `json:"countryOfOrigin"`
	ResidenceCity   string `json:"residenceCity"`
	Bio             string `json:"bio,omitempty"`
}

// personalField pairs a JSON name with an encrypted column value.
type personalField struct {
	name  string
	value sharedCrypto.EncryptedString
}

// unavailable returns the names of fields whose ciphertext could not be opened.
func unavailable(fields ...personalField) []string {
	var names []string
	for _, f := range fields {
		if f.value.Get().Status == sharedCrypto.StatusUnavailable {
			names = append(names, f.name)
		}
	}
	return names
}
