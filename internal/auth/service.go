package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/taalentio/talent-api/internal/identity"
	"github.com/taalentio/talent-api/internal/model"
	sharedCrypto "github.com/taalentio/talent-api/internal/shared/crypto"
	"github.com/taalentio/talent-api/internal/shared/database"
	"github.com/taalentio/talent-api/internal/shared/logger"
	"github.com/taalentio/talent-api/internal/shared/token"
	"github.com/taalentio/talent-api/internal/talent"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	db               *gorm.DB
	talentRepository *talent.TalentRepository
	generator        *identity.Generator
	tokenManager     token.Manager
}

func NewAuthService(db *gorm.DB, talentRepository *talent.TalentRepository, generator *identity.Generator, tokenManager token.Manager) *AuthService {
	return &AuthService{
		db:               db,
		talentRepository: talentRepository,
		generator:        generator,
		tokenManager:     tokenManager,
	}
}

func (a *AuthService) Login(ctx context.Context, request *LoginRequest) (*LoginResponse, error) {
	log := logger.FromContext(ctx)

	// 1. Find talent by email
	found, err := a.talentRepository.FindByEmail(ctx, a.db, request.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("Connexion refusée - e-mail inconnu", "email", logger.MaskEmail(request.Email))
			return nil, fmt.Errorf("error %w", ErrInCorrectEmailPassword) // Security: don't reveal if email exists
		}
		log.Error("Connexion échouée - erreur inattendue", "error", err)
		return nil, fmt.Errorf("connexion échouée: %w", err)
	}

	// 2. Validate password
	if err := bcrypt.CompareHashAndPassword([]byte(found.Password), []byte(request.Password)); err != nil {
		log.Warn("Connexion refusée - mot de passe invalide", "email", logger.MaskEmail(request.Email))
		return nil, fmt.Errorf("error %w", ErrInCorrectEmailPassword)
	}

	// 3. Generate JWT tokens
	talentID := strconv.FormatUint(uint64(found.ID), 10)
	accessToken, err := a.tokenManager.GenerateAccessToken(talentID, found.UniqueCode, found.Email)
	if err != nil {
		log.Error("Génération du jeton d'accès échouée", "error", err)
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, err := a.tokenManager.GenerateRefreshToken(talentID, found.UniqueCode, found.Email)
	if err != nil {
		log.Error("Génération du jeton de rafraîchissement échouée", "error", err)
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	log.Info("Connexion réussie", "email", logger.MaskEmail(request.Email), "unique_code", found.UniqueCode)

	return &LoginResponse{
		UniqueCode:   found.UniqueCode,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Signup registers a general talent. The identity code is generated and the row
// inserted in one transaction; a concurrent insert of the same code re-runs it.
func (a *AuthService) Signup(ctx context.Context, request *SignupRequest) (*SignupResponse, error) {
	log := logger.FromContext(ctx)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		log.Warn("Inscription refusée - mot de passe trop long", "email", logger.MaskEmail(request.Email))
		return nil, fmt.Errorf("error %w", ErrPasswordTooLong)
	}
	if err != nil {
		log.Error("Hachage du mot de passe échoué", "error", err)
		return nil, fmt.Errorf("hash password: %w", err)
	}

	var created *model.Talent
	err = database.WithUniqueRetry(ctx, a.db, database.DefaultUniqueRetries, func(tx *gorm.DB) error {
		exists, err := a.talentRepository.IsExist(ctx, tx, request.Email)
		if err != nil {
			log.Error("Vérification de l'existence du talent échouée", "error", err)
			return fmt.Errorf("check talent existence: %w", err)
		}
		if exists {
			log.Warn("Talent déjà inscrit", "email", logger.MaskEmail(request.Email))
			return fmt.Errorf("error %w", talent.ErrTalentAlreadyExists)
		}

		t := newTalent(request, string(hashedPassword))
		code, err := a.generator.Generate(ctx, identity.VariantGeneral, identity.Attributes{
			Country:  request.CountryOfOrigin,
			Locality: request.ResidenceCity,
			Gender:   request.Gender,
		}, a.talentRepository.Codes(tx))
		if err != nil {
			return fmt.Errorf("generate identity code: %w", err)
		}
		t.UniqueCode = code

		if err := a.talentRepository.Create(ctx, tx, t); err != nil {
			return fmt.Errorf("create talent: %w", err)
		}

		created = t
		return nil
	})
	if err != nil {
		if !errors.Is(err, talent.ErrTalentAlreadyExists) {
			log.Error("Inscription du talent échouée", "error", err)
		}
		return nil, err
	}

	log.Info("Talent inscrit", "email", logger.MaskEmail(request.Email), "unique_code", created.UniqueCode)
	return &SignupResponse{UniqueCode: created.UniqueCode}, nil
}

func newTalent(request *SignupRequest, hashedPassword string) *model.Talent {
	t := model.NewTalent(
		request.Email,
		hashedPassword,
		request.FirstName,
		request.LastName,
		identity.NormalizeGender(request.Gender),
		request.CountryOfOrigin,
		request.ResidenceCity,
	)
	t.ResidenceCountry = request.ResidenceCountry
	t.Phone = sharedCrypto.NewEncryptedString(request.Phone)
	t.WhatsApp = sharedCrypto.NewEncryptedString(request.WhatsApp)
	t.Address = sharedCrypto.NewEncryptedString(request.Address)
	t.IDDocumentNumber = sharedCrypto.NewEncryptedString(request.IDDocumentNumber)
	t.Instagram = sharedCrypto.NewEncryptedString(request.Instagram)
	t.Facebook = sharedCrypto.NewEncryptedString(request.Facebook)
	t.TikTok = sharedCrypto.NewEncryptedString(request.TikTok)
	t.YouTube = sharedCrypto.NewEncryptedString(request.YouTube)
	t.LinkedIn = sharedCrypto.NewEncryptedString(request.LinkedIn)
	return t
}
