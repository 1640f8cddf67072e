package cinema

type RegisterRequest struct {
	FirstName        string   `json:"firstName" binding:"required,min=1,max=100"`
	LastName         string   `json:"lastName" binding:"required,min=1,max=100"`
	Email            string   `json:"email" binding:"required,email,max=255"`
	Gender           string   `json:"gender" binding:"required,gender"`
	ResidenceCountry string   `json:"residenceCountry" binding:"required,max=100"`
	ResidenceCity    string   `json:"residenceCity" binding:"required,max=100"`
	Phone            string   `json:"phone" binding:"required,max=32,phone"`
	WhatsApp         string   `json:"whatsapp" binding:"omitempty,max=32,phone"`
	IDDocumentNumber string   `json:"idDocumentNumber" binding:"omitempty,max=50"`
	Professions      []string `json:"professions" binding:"omitempty,max=10,dive,min=1,max=50"`
}

type RegisterResponse struct {
	UniqueCode string `json:"uniqueCode"`
}

type CinemaTalentResponse struct {
	ID                uint32   `json:"id"`
	UniqueCode        string   `json:"uniqueCode"`
	Email             string   `json:"email"`
	FirstName         string   `json:"firstName"`
	LastName          string   `json:"lastName"`
	Gender            string   `json:"gender"`
	ResidenceCountry  string   `json:"residenceCountry"`
	ResidenceCity     string   `json:"residenceCity"`
	Professions       []string `json:"professions,omitempty"`
	Phone             *string  `json:"phone,omitempty"`
	WhatsApp          *string  `json:"whatsapp,omitempty"`
	IDDocumentNumber  *string  `json:"idDocumentNumber,omitempty"`
	UnavailableFields []string `json:"unavailableFields,omitempty"`
}
