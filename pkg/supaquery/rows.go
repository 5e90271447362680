package supaquery

// Typed projections of the PostgREST selects the chat context is built from.
// Nested relationship collections are explicit optional fields; rendering
// pattern-matches on presence instead of duck-typing the joined shape.

type SessionRow struct {
	Strain    string  `json:"strain"`
	Amount    float64 `json:"amount"`
	Notes     *string `json:"notes"`
	CreatedAt string  `json:"created_at"`
}

type StrainRow struct {
	Name           string             `json:"name"`
	Type           string             `json:"type"`
	ThcMin         *float64           `json:"thc_min"`
	ThcMax         *float64           `json:"thc_max"`
	DescriptionDe  *string            `json:"description_de"`
	FlavorDe       *string            `json:"flavor_de"`
	AromaDe        *string            `json:"aroma_de"`
	StrainEffects  []StrainEffectRow  `json:"strain_effects"`
	StrainTerpenes []StrainTerpeneRow `json:"strain_terpenes"`
}

type StrainEffectRow struct {
	Intensity string     `json:"intensity"`
	Effect    *EffectRef `json:"effects"`
}

type EffectRef struct {
	Name     string `json:"name"`
	NameDe   string `json:"name_de"`
	Category string `json:"category"`
}

type StrainTerpeneRow struct {
	Dominance string      `json:"dominance"`
	Terpene   *TerpeneRef `json:"terpenes"`
}

type TerpeneRef struct {
	Name      string `json:"name"`
	ScentDe   string `json:"scent_de"`
	EffectsDe string `json:"effects_de"`
}

type TerpeneRow struct {
	Name          string  `json:"name"`
	ScentDe       string  `json:"scent_de"`
	EffectsDe     string  `json:"effects_de"`
	AlsoFoundInDe *string `json:"also_found_in_de"`
}

type EffectRow struct {
	Name          string  `json:"name"`
	NameDe        string  `json:"name_de"`
	DescriptionDe *string `json:"description_de"`
	Category      string  `json:"category"`
}
