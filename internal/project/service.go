package project

import (
	"context"
	"errors"
	"fmt"

	"github.com/taalentio/talent-api/internal/identity"
	"github.com/taalentio/talent-api/internal/model"
	sharedCrypto "github.com/taalentio/talent-api/internal/shared/crypto"
	"github.com/taalentio/talent-api/internal/shared/database"
	"github.com/taalentio/talent-api/internal/shared/logger"
	"gorm.io/gorm"
)

type ProjectService struct {
	db                *gorm.DB
	projectRepository *ProjectRepository
	generator         *identity.Generator
}

func NewProjectService(db *gorm.DB, projectRepository *ProjectRepository, generator *identity.Generator) *ProjectService {
	return &ProjectService{
		db:                db,
		projectRepository: projectRepository,
		generator:         generator,
	}
}

func (s *ProjectService) CreateProject(ctx context.Context, request *CreateProjectRequest) (*ProjectResponse, error) {
	project := &model.Project{
		Title:              request.Title,
		ProductionCompany:  request.ProductionCompany,
		ProductionInitials: identity.ProductionInitials(request.ProductionCompany),
	}
	if err := s.projectRepository.Create(ctx, s.db, project); err != nil {
		return nil, fmt.Errorf("création du projet échouée: %w", err)
	}

	logger.FromContext(ctx).Info("Projet créé",
		"project_id", project.ID,
		"production_initials", project.ProductionInitials,
	)
	return toProjectResponse(project), nil
}

// AssignTalent adds a talent to a project. The code sequence is scoped by project.
func (s *ProjectService) AssignTalent(ctx context.Context, projectID uint32, request *AssignTalentRequest) (*ProjectTalentResponse, error) {
	log := logger.FromContext(ctx)

	var created *model.ProjectTalent
	err := database.WithUniqueRetry(ctx, s.db, database.DefaultUniqueRetries, func(tx *gorm.DB) error {
		project, err := s.findProject(ctx, tx, projectID)
		if err != nil {
			return err
		}

		code, err := s.generator.Generate(ctx, identity.VariantProject, identity.Attributes{
			Country:   request.CountryOfOrigin,
			Locality:  project.ProductionCompany,
			Gender:    request.Gender,
			ProjectID: project.ID,
		}, s.projectRepository.Codes(tx))
		if err != nil {
			return fmt.Errorf("generate identity code: %w", err)
		}

		talent := &model.ProjectTalent{
			ProjectID:       project.ID,
			UniqueCode:      code,
			FirstName:       request.FirstName,
			LastName:        request.LastName,
			Gender:          identity.NormalizeGender(request.Gender),
			CountryOfOrigin: request.CountryOfOrigin,
			Role:            request.Role,
			Phone:           sharedCrypto.NewEncryptedString(request.Phone),
		}
		if err := s.projectRepository.CreateTalent(ctx, tx, talent); err != nil {
			return fmt.Errorf("create project talent: %w", err)
		}

		created = talent
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrProjectNotFound) {
			log.Error("Affectation du talent au projet échouée", "project_id", projectID, "error", err)
		}
		return nil, err
	}

	log.Info("Talent affecté au projet", "project_id", projectID, "unique_code", created.UniqueCode)
	return toProjectTalentResponse(created), nil
}

// ListTalents returns the talents of a project ordered by identity code.
func (s *ProjectService) ListTalents(ctx context.Context, projectID uint32) ([]ProjectTalentResponse, error) {
	if _, err := s.findProject(ctx, s.db, projectID); err != nil {
		return nil, err
	}

	talents, err := s.projectRepository.FindTalents(ctx, s.db, projectID)
	if err != nil {
		return nil, fmt.Errorf("lecture des talents du projet échouée: %w", err)
	}

	response := make([]ProjectTalentResponse, 0, len(talents))
	for i := range talents {
		response = append(response, *toProjectTalentResponse(&talents[i]))
	}
	return response, nil
}

func (s *ProjectService) findProject(ctx context.Context, db *gorm.DB, projectID uint32) (*model.Project, error) {
	project, err := s.projectRepository.FindByID(ctx, db, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("projet introuvable projectID=%d %w", projectID, ErrProjectNotFound)
		}
		return nil, fmt.Errorf("lecture du projet échouée: %w", err)
	}
	return project, nil
}

func toProjectResponse(p *model.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:                 p.ID,
		Title:              p.Title,
		ProductionCompany:  p.ProductionCompany,
		ProductionInitials: p.ProductionInitials,
	}
}

func toProjectTalentResponse(t *model.ProjectTalent) *ProjectTalentResponse {
	return &ProjectTalentResponse{
		ID:              t.ID,
		UniqueCode:      t.UniqueCode,
		FirstName:       t.FirstName,
		LastName:        t.LastName,
		Gender:          t.Gender,
		CountryOfOrigin: t.CountryOfOrigin,
		Role:            t.Role,
		Phone:           t.Phone.Ptr(),
	}
}
