package project

type CreateProjectRequest struct {
	Title             string `json:"title" binding:"required,min=1,max=255"`
	ProductionCompany string `json:"productionCompany" binding:"required,min=1,max=255"`
}

type ProjectResponse struct {
	ID                 uint32 `json:"id"`
	Title              string `json:"title"`
	ProductionCompany  string `json:"productionCompany"`
	ProductionInitials string `json:"productionInitials"`
}

type AssignTalentRequest struct {
	FirstName       string `json:"firstName" binding:"required,min=1,max=100"`
	LastName        string `json:"lastName" binding:"required,min=1,max=100"`
	Gender          string `json:"gender" binding:"required,gender"`
	CountryOfOrigin string `json:"countryOfOrigin" binding:"required,max=100"`
	Role            string `json:"role" binding:"omitempty,max=100"`
	Phone           string `json:"phone" binding:"omitempty,max=32,phone"`
}

type ProjectTalentResponse struct {
	ID              uint32  `json:"id"`
	UniqueCode      string  `json:"uniqueCode"`
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Gender          string  `json:"gender"`
	CountryOfOrigin string  `json:"countryOfOrigin"`
	Role            string  `json:"role,omitempty"`
	Phone           *string `json:"phone,omitempty"`
}
