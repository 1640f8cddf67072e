package project

import (
	"context"

	"github.com/taalentio/talent-api/internal/identity"
	"github.com/taalentio/talent-api/internal/model"
	"gorm.io/gorm"
)

type ProjectRepository struct{}

func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

func (r *ProjectRepository) Create(ctx context.Context, db *gorm.DB, project *model.Project) error {
	return db.WithContext(ctx).Create(project).Error
}

func (r *ProjectRepository) FindByID(ctx context.Context, db *gorm.DB, ID uint32) (*model.Project, error) {
	var project model.Project
	err := db.WithContext(ctx).Where("id = ?", ID).First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) CreateTalent(ctx context.Context, db *gorm.DB, talent *model.ProjectTalent) error {
	return db.WithContext(ctx).Omit("Project").Create(talent).Error
}

func (r *ProjectRepository) FindTalents(ctx context.Context, db *gorm.DB, projectID uint32) ([]model.ProjectTalent, error) {
	var talents []model.ProjectTalent
	err := db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("unique_code").
		Find(&talents).Error
	if err != nil {
		return nil, err
	}
	return talents, nil
}

// Codes returns the identity code lookup of the project talent table bound to db.
func (r *ProjectRepository) Codes(db *gorm.DB) identity.Lookup {
	return identity.NewTableLookup(db, &model.ProjectTalent{})
}
