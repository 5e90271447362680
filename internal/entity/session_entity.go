package entity

import (
	"time"

	"github.com/google/uuid"
)

type Session struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Strain    string
	Amount    float64
	Notes     *string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
