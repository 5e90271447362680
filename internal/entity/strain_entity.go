package entity

import "github.com/google/uuid"

type Strain struct {
	Id            uuid.UUID
	Name          string
	Type          string
	ThcMin        *float64
	ThcMax        *float64
	DescriptionDe *string
	FlavorDe      *string
	AromaDe       *string
	Effects       []StrainEffect
	Terpenes      []StrainTerpene
}

// StrainEffect is an effect tag attached to a strain with an intensity
// qualifier.
type StrainEffect struct {
	Name      string
	NameDe    string
	Category  string
	Intensity string
}

// StrainTerpene is a terpene tag attached to a strain with a dominance
// qualifier.
type StrainTerpene struct {
	Name      string
	ScentDe   string
	EffectsDe string
	Dominance string
}

type Terpene struct {
	Id            uuid.UUID
	Name          string
	ScentDe       string
	EffectsDe     string
	AlsoFoundInDe *string
}

type Effect struct {
	Id            uuid.UUID
	Name          string
	NameDe        string
	DescriptionDe *string
	Category      string
}
