package model

import (
	"time"

	"github.com/google/uuid"
)

type Strain struct {
	Id             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name           string          `gorm:"type:varchar(255);not null"`
	Type           string          `gorm:"type:varchar(50);not null"`
	ThcMin         *float64        `gorm:"type:numeric"`
	ThcMax         *float64        `gorm:"type:numeric"`
	DescriptionDe  *string         `gorm:"type:text;column:description_de"`
	FlavorDe       *string         `gorm:"type:text;column:flavor_de"`
	AromaDe        *string         `gorm:"type:text;column:aroma_de"`
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
	StrainEffects  []StrainEffect  `gorm:"foreignKey:StrainId"`
	StrainTerpenes []StrainTerpene `gorm:"foreignKey:StrainId"`
}

func (Strain) TableName() string {
	return "strains"
}

type StrainEffect struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StrainId  uuid.UUID `gorm:"type:uuid;not null;index"`
	EffectId  uuid.UUID `gorm:"type:uuid;not null;index"`
	Intensity string    `gorm:"type:varchar(50)"`
	Effect    *Effect   `gorm:"foreignKey:EffectId"`
}

func (StrainEffect) TableName() string {
	return "strain_effects"
}

type StrainTerpene struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StrainId  uuid.UUID `gorm:"type:uuid;not null;index"`
	TerpeneId uuid.UUID `gorm:"type:uuid;not null;index"`
	Dominance string    `gorm:"type:varchar(50)"`
	Terpene   *Terpene  `gorm:"foreignKey:TerpeneId"`
}

func (StrainTerpene) TableName() string {
	return "strain_terpenes"
}

type Terpene struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string    `gorm:"type:varchar(255);not null"`
	ScentDe       string    `gorm:"type:text;column:scent_de"`
	EffectsDe     string    `gorm:"type:text;column:effects_de"`
	AlsoFoundInDe *string   `gorm:"type:text;column:also_found_in_de"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (Terpene) TableName() string {
	return "terpenes"
}

type Effect struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string    `gorm:"type:varchar(255);not null"`
	NameDe        string    `gorm:"type:varchar(255);column:name_de"`
	DescriptionDe *string   `gorm:"type:text;column:description_de"`
	Category      string    `gorm:"type:varchar(50);not null"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (Effect) TableName() string {
	return "effects"
}
