package mapper

import (
	"time"

	"github.com/LionGx2004/cannatracker/internal/entity"
	"github.com/LionGx2004/cannatracker/internal/model"
)

type SessionMapper struct{}

func NewSessionMapper() *SessionMapper {
	return &SessionMapper{}
}

func (m *SessionMapper) ToEntity(s *model.Session) *entity.Session {
	if s == nil {
		return nil
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() && !s.UpdatedAt.Equal(s.CreatedAt) {
		t := s.UpdatedAt
		updatedAt = &t
	}

	return &entity.Session{
		Id:        s.Id,
		UserId:    s.UserId,
		Strain:    s.Strain,
		Amount:    s.Amount,
		Notes:     s.Notes,
		CreatedAt: s.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *SessionMapper) ToModel(s *entity.Session) *model.Session {
	if s == nil {
		return nil
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.Session{
		Id:        s.Id,
		UserId:    s.UserId,
		Strain:    s.Strain,
		Amount:    s.Amount,
		Notes:     s.Notes,
		CreatedAt: s.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *SessionMapper) ToEntities(sessions []*model.Session) []*entity.Session {
	entities := make([]*entity.Session, len(sessions))
	for i, s := range sessions {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
