package implementation

import (
	"context"

	"github.com/LionGx2004/cannatracker/internal/entity"
	"github.com/LionGx2004/cannatracker/internal/mapper"
	"github.com/LionGx2004/cannatracker/internal/model"
	"github.com/LionGx2004/cannatracker/internal/repository/contract"

	"gorm.io/gorm"
)

type StrainRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.StrainMapper
}

func NewStrainRepository(db *gorm.DB) contract.StrainRepository {
	return &StrainRepositoryImpl{
		db:     db,
		mapper: mapper.NewStrainMapper(),
	}
}

func (r *StrainRepositoryImpl) FindAll(ctx context.Context, limit int) ([]*entity.Strain, error) {
	var models []*model.Strain
	query := r.db.WithContext(ctx).
		Preload("StrainEffects.Effect").
		Preload("StrainTerpenes.Terpene").
		Order("name ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *StrainRepositoryImpl) FindAllTerpenes(ctx context.Context) ([]*entity.Terpene, error) {
	var models []*model.Terpene
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	terpenes := make([]*entity.Terpene, len(models))
	for i, m := range models {
		terpenes[i] = r.mapper.TerpeneToEntity(m)
	}
	return terpenes, nil
}

func (r *StrainRepositoryImpl) FindAllEffects(ctx context.Context) ([]*entity.Effect, error) {
	var models []*model.Effect
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	effects := make([]*entity.Effect, len(models))
	for i, m := range models {
		effects[i] = r.mapper.EffectToEntity(m)
	}
	return effects, nil
}
