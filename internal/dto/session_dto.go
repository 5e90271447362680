package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSessionRequest struct {
	Strain    string     `json:"strain" validate:"required,max=255"`
	Amount    float64    `json:"amount" validate:"required,gt=0"`
	Notes     *string    `json:"notes,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

type UpdateSessionRequest struct {
	Id     uuid.UUID `json:"-"`
	Strain string    `json:"strain" validate:"required,max=255"`
	Amount float64   `json:"amount" validate:"required,gt=0"`
	Notes  *string   `json:"notes,omitempty"`
}

type SessionResponse struct {
	Id        uuid.UUID  `json:"id"`
	Strain    string     `json:"strain"`
	Amount    float64    `json:"amount"`
	Notes     *string    `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type TopStrainResponse struct {
	Strain     string  `json:"strain"`
	Sessions   int     `json:"sessions"`
	TotalGrams float64 `json:"total_grams"`
}

type StatsResponse struct {
	TotalSessions      int                 `json:"total_sessions"`
	TotalGrams         float64             `json:"total_grams"`
	TodaySessions      int                 `json:"today_sessions"`
	AvgGramsPerSession float64             `json:"avg_grams_per_session"`
	TopStrains         []TopStrainResponse `json:"top_strains"`
}
