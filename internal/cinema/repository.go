package cinema

import (
	"context"

	"github.com/taalentio/talent-api/internal/identity"
	"github.com/taalentio/talent-api/internal/model"
	"gorm.io/gorm"
)

type CinemaRepository struct{}

func NewCinemaRepository() *CinemaRepository {
	return &CinemaRepository{}
}

func (r *CinemaRepository) IsExist(ctx context.Context, db *gorm.DB, email string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.CinemaTalent{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CinemaRepository) Create(ctx context.Context, db *gorm.DB, talent *model.CinemaTalent) error {
	return db.WithContext(ctx).Create(talent).Error
}

func (r *CinemaRepository) FindByCode(ctx context.Context, db *gorm.DB, code string) (*model.CinemaTalent, error) {
	var talent model.CinemaTalent
	err := db.WithContext(ctx).Where("unique_code = ?", code).First(&talent).Error
	if err != nil {
		return nil, err
	}
	return &talent, nil
}

// Codes returns the identity code lookup of the cinema talent table bound to db.
func (r *CinemaRepository) Codes(db *gorm.DB) identity.Lookup {
	return identity.NewTableLookup(db, &model.CinemaTalent{})
}
