package auth

type SignupRequest struct {
	FirstName        string `json:"firstName" binding:"required,min=1,max=100"`
	LastName         string `json:"lastName" binding:"required,min=1,max=100"`
	Email            string `json:"email" binding:"required,email,max=255"`
	Password         string `json:"password" binding:"required,min=8,max=72"`
	Gender           string `json:"gender" binding:"required,gender"`
	CountryOfOrigin  string `json:"countryOfOrigin" binding:"required,max=100"`
	ResidenceCountry string `json:"residenceCountry" binding:"omitempty,max=100"`
	ResidenceCity    string `json:"residenceCity" binding:"required,max=100"`
	Phone            string `json:"phone" binding:"required,max=32,phone"`
	WhatsApp         string `json:"whatsapp" binding:"omitempty,max=32,phone"`
	Address          string `json:"address" binding:"omitempty,max=500"`
	IDDocumentNumber string `json:"idDocumentNumber" binding:"omitempty,max=50"`
	Instagram        string `json:"instagram" binding:"omitempty,max=255"`
	Facebook         string `json:"facebook" binding:"omitempty,max=255"`
	TikTok           string `json:"tiktok" binding:"omitempty,max=255"`
	YouTube          string `json:"youtube" binding:"omitempty,max=255"`
	LinkedIn         string `json:"linkedin" binding:"omitempty,max=255"`
}

type SignupResponse struct {
	UniqueCode string `json:"uniqueCode"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

type LoginResponse struct {
	UniqueCode   string `json:"uniqueCode"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
