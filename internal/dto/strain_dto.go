package dto

import "github.com/google/uuid"

type StrainEffectResponse struct {
	Name      string `json:"name"`
	NameDe    string `json:"name_de"`
	Category  string `json:"category"`
	Intensity string `json:"intensity"`
}

type StrainTerpeneResponse struct {
	Name      string `json:"name"`
	ScentDe   string `json:"scent_de"`
	EffectsDe string `json:"effects_de"`
	Dominance string `json:"dominance"`
}

type StrainResponse struct {
	Id            uuid.UUID               `json:"id"`
	Name          string                  `json:"name"`
	Type          string                  `json:"type"`
	ThcMin        *float64                `json:"thc_min,omitempty"`
	ThcMax        *float64                `json:"thc_max,omitempty"`
	DescriptionDe *string                 `json:"description_de,omitempty"`
	FlavorDe      *string                 `json:"flavor_de,omitempty"`
	AromaDe       *string                 `json:"aroma_de,omitempty"`
	Effects       []StrainEffectResponse  `json:"effects"`
	Terpenes      []StrainTerpeneResponse `json:"terpenes"`
}

type TerpeneResponse struct {
	Id            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	ScentDe       string    `json:"scent_de"`
	EffectsDe     string    `json:"effects_de"`
	AlsoFoundInDe *string   `json:"also_found_in_de,omitempty"`
}

type EffectResponse struct {
	Id            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	NameDe        string    `json:"name_de"`
	DescriptionDe *string   `json:"description_de,omitempty"`
	Category      string    `json:"category"`
}
