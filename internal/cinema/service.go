package cinema

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/taalentio/talent-api/internal/identity"
	"github.com/taalentio/talent-api/internal/model"
	sharedCrypto "github.com/taalentio/talent-api/internal/shared/crypto"
	"github.com/taalentio/talent-api/internal/shared/database"
	"github.com/taalentio/talent-api/internal/shared/logger"
	"gorm.io/gorm"
)

type CinemaService struct {
	db               *gorm.DB
	cinemaRepository *CinemaRepository
	generator        *identity.Generator
}

func NewCinemaService(db *gorm.DB, cinemaRepository *CinemaRepository, generator *identity.Generator) *CinemaService {
	return &CinemaService{
		db:               db,
		cinemaRepository: cinemaRepository,
		generator:        generator,
	}
}

// Register records a cinema talent from the public form and assigns a cinema code
// scoped by residence country.
func (s *CinemaService) Register(ctx context.Context, request *RegisterRequest) (*RegisterResponse, error) {
	log := logger.FromContext(ctx)

	var created *model.CinemaTalent
	err := database.WithUniqueRetry(ctx, s.db, database.DefaultUniqueRetries, func(tx *gorm.DB) error {
		exists, err := s.cinemaRepository.IsExist(ctx, tx, request.Email)
		if err != nil {
			return fmt.Errorf("check cinema talent existence: %w", err)
		}
		if exists {
			log.Warn("Talent cinéma déjà inscrit", "email", logger.MaskEmail(request.Email))
			return fmt.Errorf("error %w", ErrCinemaTalentAlreadyExists)
		}

		code, err := s.generator.Generate(ctx, identity.VariantCinema, identity.Attributes{
			Country:  request.ResidenceCountry,
			Locality: request.ResidenceCity,
			Gender:   request.Gender,
		}, s.cinemaRepository.Codes(tx))
		if err != nil {
			return fmt.Errorf("generate identity code: %w", err)
		}

		talent := &model.CinemaTalent{
			UniqueCode:       code,
			Email:            request.Email,
			FirstName:        request.FirstName,
			LastName:         request.LastName,
			Gender:           identity.NormalizeGender(request.Gender),
			ResidenceCountry: request.ResidenceCountry,
			ResidenceCity:    request.ResidenceCity,
			Professions:      cleanProfessions(request.Professions),
			Phone:            sharedCrypto.NewEncryptedString(request.Phone),
			WhatsApp:         sharedCrypto.NewEncryptedString(request.WhatsApp),
			IDDocumentNumber: sharedCrypto.NewEncryptedString(request.IDDocumentNumber),
		}
		if err := s.cinemaRepository.Create(ctx, tx, talent); err != nil {
			return fmt.Errorf("create cinema talent: %w", err)
		}

		created = talent
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrCinemaTalentAlreadyExists) {
			log.Error("Inscription du talent cinéma échouée", "error", err)
		}
		return nil, err
	}

	log.Info("Talent cinéma inscrit",
		"email", logger.MaskEmail(request.Email),
		"phone", logger.MaskPhone(request.Phone),
		"unique_code", created.UniqueCode,
	)
	return &RegisterResponse{UniqueCode: created.UniqueCode}, nil
}

func (s *CinemaService) GetByCode(ctx context.Context, code string) (*CinemaTalentResponse, error) {
	talent, err := s.cinemaRepository.FindByCode(ctx, s.db, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("talent cinéma introuvable code=%s %w", code, ErrCinemaTalentNotFound)
		}
		return nil, fmt.Errorf("lecture du talent cinéma échouée: %w", err)
	}

	response := &CinemaTalentResponse{
		ID:               talent.ID,
		UniqueCode:       talent.UniqueCode,
		Email:            talent.Email,
		FirstName:        talent.FirstName,
		LastName:         talent.LastName,
		Gender:           talent.Gender,
		ResidenceCountry: talent.ResidenceCountry,
		ResidenceCity:    talent.ResidenceCity,
		Professions:      talent.Professions,
		Phone:            talent.Phone.Ptr(),
		WhatsApp:         talent.WhatsApp.Ptr(),
		IDDocumentNumber: talent.IDDocumentNumber.Ptr(),
	}
	for _, field := range []struct {
		name  string
		value sharedCrypto.EncryptedString
	}{
		{"phone", talent.Phone},
		{"whatsapp", talent.WhatsApp},
		{"idDocumentNumber", talent.IDDocumentNumber},
	} {
		if field.value.Get().Status == sharedCrypto.StatusUnavailable {
			response.UnavailableFields = append(response.UnavailableFields, field.name)
		}
	}
	return response, nil
}

// cleanProfessions trims entries and drops blank ones. The list is stored as JSON,
// so entries may contain commas.
func cleanProfessions(professions []string) []string {
	cleaned := make([]string, 0, len(professions))
	for _, p := range professions {
		if p = strings.TrimSpace(p); p != "" {
			cleaned = append(cleaned, p)
		}
	}
	if len(cleaned) == 0 {
		return nil
	}
	return cleaned
}
