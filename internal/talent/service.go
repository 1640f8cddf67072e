package talent

import (
	"context"
	"errors"
	"fmt"

	"github.com/taalentio/talent-api/internal/model"
	sharedCrypto "github.com/taalentio/talent-api/internal/shared/crypto"
	"github.com/taalentio/talent-api/internal/shared/database"
	"github.com/taalentio/talent-api/internal/shared/logger"
	"gorm.io/gorm"
)

type TalentService struct {
	db               *gorm.DB
	talentRepository *TalentRepository
}

func NewTalentService(db *gorm.DB, talentRepository *TalentRepository) *TalentService {
	return &TalentService{
		db:               db,
		talentRepository: talentRepository,
	}
}

func (s *TalentService) GetProfile(ctx context.Context, talentID uint32) (*ProfileResponse, error) {
	talent, err := s.talentRepository.FindByID(ctx, s.db, talentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("talent introuvable talentID=%d %w", talentID, ErrTalentNotFound)
		}
		return nil, fmt.Errorf("lecture du talent échouée: %w", err)
	}

	return toProfileResponse(talent), nil
}

// UpdateProfile applies a partial update. The identity code is never modified.
func (s *TalentService) UpdateProfile(ctx context.Context, talentID uint32, request *UpdateProfileRequest) (*ProfileResponse, error) {
	log := logger.FromContext(ctx)
	var response *ProfileResponse

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		talent, err := s.talentRepository.FindByID(ctx, tx, talentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("talent introuvable talentID=%d %w", talentID, ErrTalentNotFound)
			}
			return fmt.Errorf("lecture du talent échouée: %w", err)
		}

		if request.Bio != nil {
			talent.Bio = *request.Bio
		}
		if request.ResidenceCountry != nil {
			talent.ResidenceCountry = *request.ResidenceCountry
		}
		setEncrypted(&talent.Phone, request.Phone)
		setEncrypted(&talent.WhatsApp, request.WhatsApp)
		setEncrypted(&talent.Address, request.Address)
		setEncrypted(&talent.IDDocumentNumber, request.IDDocumentNumber)
		setEncrypted(&talent.Instagram, request.Instagram)
		setEncrypted(&talent.Facebook, request.Facebook)
		setEncrypted(&talent.TikTok, request.TikTok)
		setEncrypted(&talent.YouTube, request.YouTube)
		setEncrypted(&talent.LinkedIn, request.LinkedIn)

		if err := s.talentRepository.Save(ctx, tx, talent); err != nil {
			return fmt.Errorf("mise à jour du talent échouée: %w", err)
		}

		response = toProfileResponse(talent)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("Profil mis à jour", "talent_id", talentID)
	return response, nil
}

func (s *TalentService) GetPublicCard(ctx context.Context, code string) (*PublicCardResponse, error) {
	talent, err := s.talentRepository.FindByCode(ctx, s.db, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("talent introuvable code=%s %w", code, ErrTalentNotFound)
		}
		return nil, fmt.Errorf("lecture du talent échouée: %w", err)
	}

	return &PublicCardResponse{
		UniqueCode:      talent.UniqueCode,
		FirstName:       talent.FirstName,
		LastName:        talent.LastName,
		DisplayName:     talent.FullName(),
		Gender:          talent.Gender,
		CountryOfOrigin: talent.CountryOfOrigin,
		ResidenceCity:   talent.ResidenceCity,
		Bio:             talent.Bio,
	}, nil
}

func setEncrypted(field *sharedCrypto.EncryptedString, value *string) {
	if value != nil {
		field.Set(*value)
	}
}

func toProfileResponse(t *model.Talent) *ProfileResponse {
	return &ProfileResponse{
		ID:               t.ID,
		UniqueCode:       t.UniqueCode,
		Email:            t.Email,
		FirstName:        t.FirstName,
		LastName:         t.LastName,
		Gender:           t.Gender,
		CountryOfOrigin:  t.CountryOfOrigin,
		ResidenceCountry: t.ResidenceCountry,
		ResidenceCity:    t.ResidenceCity,
		Bio:              t.Bio,
		Phone:            t.Phone.Ptr(),
		WhatsApp:         t.WhatsApp.Ptr(),
		Address:          t.Address.Ptr(),
		IDDocumentNumber: t.IDDocumentNumber.Ptr(),
		Instagram:        t.Instagram.Ptr(),
		Facebook:         t.Facebook.Ptr(),
		TikTok:           t.TikTok.Ptr(),
		YouTube:          t.YouTube.Ptr(),
		LinkedIn:         t.LinkedIn.Ptr(),
		UnavailableFields: unavailable(
			personalField{"phone", t.Phone},
			personalField{"whatsapp", t.WhatsApp},
			personalField{"address", t.Address},
			personalField{"idDocumentNumber", t.IDDocumentNumber},
			personalField{"instagram", t.Instagram},
			personalField{"facebook", t.Facebook},
			personalField{"tiktok", t.TikTok},
			personalField{"youtube", t.YouTube},
			personalField{"linkedin", t.LinkedIn},
		),
	}
}
