package contract

import (
	"context"

	"github.com/LionGx2004/cannatracker/internal/entity"
)

type StrainRepository interface {
	FindAll(ctx context.Context, limit int) ([]*entity.Strain, error)
	FindAllTerpenes(ctx context.Context) ([]*entity.Terpene, error)
	FindAllEffects(ctx context.Context) ([]*entity.Effect, error)
}
