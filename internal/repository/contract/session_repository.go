package contract

import (
	"context"

	"github.com/LionGx2004/cannatracker/internal/entity"

	"github.com/google/uuid"
)

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	Update(ctx context.Context, session *entity.Session) error
	Delete(ctx context.Context, userId, id uuid.UUID) error
	FindById(ctx context.Context, userId, id uuid.UUID) (*entity.Session, error)
	FindAllByUserId(ctx context.Context, userId uuid.UUID, limit, offset int) ([]*entity.Session, error)
}
