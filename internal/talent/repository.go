package talent

import (
	"context"

	"github.com/taalentio/talent-api/internal/identity"
	"github.com/taalentio/talent-api/internal/model"
	"gorm.io/gorm"
)

type TalentRepository struct{}

func NewTalentRepository() *TalentRepository {
	return &TalentRepository{}
}

func (r *TalentRepository) IsExist(ctx context.Context, db *gorm.DB, email string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.Talent{}).
		Where("email = ?", email).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *TalentRepository) Create(ctx context.Context, db *gorm.DB, talent *model.Talent) error {
	return db.WithContext(ctx).Create(talent).Error
}

// Save writes every column. Encrypted fields that could not be decrypted keep
// their stored ciphertext.
func (r *TalentRepository) Save(ctx context.Context, db *gorm.DB, talent *model.Talent) error {
	return db.WithContext(ctx).Save(talent).Error
}

func (r *TalentRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.Talent, error) {
	var talent model.Talent
	err := db.WithContext(ctx).Where("email = ?", email).First(&talent).Error
	if err != nil {
		return nil, err
	}
	return &talent, nil
}

func (r *TalentRepository) FindByID(ctx context.Context, db *gorm.DB, ID uint32) (*model.Talent, error) {
	var talent model.Talent
	err := db.WithContext(ctx).Where("id = ?", ID).First(&talent).Error
	if err != nil {
		return nil, err
	}
	return &talent, nil
}

func (r *TalentRepository) FindByCode(ctx context.Context, db *gorm.DB, code string) (*model.Talent, error) {
	var talent model.Talent
	err := db.WithContext(ctx).Where("unique_code = ?", code).First(&talent).Error
	if err != nil {
		return nil, err
	}
	return &talent, nil
}

// Codes returns the identity code lookup of the talent table bound to db.
func (r *TalentRepository) Codes(db *gorm.DB) identity.Lookup {
	return identity.NewTableLookup(db, &model.Talent{})
}
