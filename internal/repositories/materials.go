package repositories

import (
	"context"
	"errors"

	"github.com/studyhub-dev/studyhub/internal/models"
	"gorm.io/gorm"
)

type MaterialRepository interface {
	Create(ctx context.Context, material *models.Material) error
	List(ctx context.Context) ([]models.Material, error)
}

type GormMaterialRepository struct {
	db *gorm.DB
}

func NewGormMaterialRepository(db *gorm.DB) *GormMaterialRepository {
	return &GormMaterialRepository{db: db}
}

func (r *GormMaterialRepository) Create(ctx context.Context, material *models.Material) error {
	err := r.db.WithContext(ctx).Create(material).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateFileName
	}
	return err
}

func (r *GormMaterialRepository) List(ctx context.Context) ([]models.Material, error) {
	materials := make([]models.Material, 0)
	err := r.db.WithContext(ctx).Order("uploaded_at DESC").Find(&materials).Error
	return materials, err
}
