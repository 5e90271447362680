package service

import (
	"strings"
	"testing"

	"github.com/LionGx2004/cannatracker/pkg/supaquery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(v float64) *float64 { return &v }

func sampleContext() ChatContextData {
	return ChatContextData{
		Sessions: []supaquery.SessionRow{
			{Strain: "Lemon Haze", Amount: 0.5, CreatedAt: "2026-08-30T20:00:00Z"},
			{Strain: "Lemon Haze", Amount: 0.3, CreatedAt: "2026-08-29T20:00:00Z"},
			{Strain: "Northern Lights", Amount: 0.4, CreatedAt: "2026-08-28T20:00:00Z"},
		},
		Strains: []supaquery.StrainRow{
			{
				Name:          "Lemon Haze",
				Type:          "sativa",
				ThcMin:        f64Ptr(17),
				ThcMax:        f64Ptr(22),
				DescriptionDe: strPtr("Energetisierende Sativa"),
				FlavorDe:      strPtr("Zitrone"),
				AromaDe:       strPtr("Zitrus, frisch"),
				StrainEffects: []supaquery.StrainEffectRow{
					{Intensity: "hoch", Effect: &supaquery.EffectRef{Name: "euphoric", NameDe: "Euphorisch", Category: "positive"}},
				},
				StrainTerpenes: []supaquery.StrainTerpeneRow{
					{Dominance: "dominant", Terpene: &supaquery.TerpeneRef{Name: "Limonen", ScentDe: "Zitrus", EffectsDe: "stimmungsaufhellend"}},
				},
			},
		},
		Terpenes: []supaquery.TerpeneRow{
			{Name: "Limonen", ScentDe: "Zitrus", EffectsDe: "stimmungsaufhellend", AlsoFoundInDe: strPtr("Zitronenschalen")},
		},
		Effects: []supaquery.EffectRow{
			{Name: "euphoric", NameDe: "Euphorisch", DescriptionDe: strPtr("Gehobene Stimmung"), Category: "positive"},
			{Name: "dry-mouth", NameDe: "Trockener Mund", Category: "negative"},
			{Name: "pain-relief", NameDe: "Schmerzlinderung", Category: "medical"},
		},
	}
}

func TestBuildSystemPromptDeterministic(t *testing.T) {
	data := sampleContext()

	first := BuildSystemPrompt(data)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, BuildSystemPrompt(data))
	}
}

func TestBuildSystemPromptSections(t *testing.T) {
	prompt := BuildSystemPrompt(sampleContext())

	// Fixed section order
	order := []string{
		"Du bist ein freundlicher und sachkundiger Cannabis-Berater",
		"CANNABIS-SORTEN DATENBANK",
		"TERPENE REFERENZ:",
		"EFFEKT REFERENZ:",
		"EFFEKT-KATEGORIEN:",
		"NUTZER SESSION-HISTORIE:",
	}
	last := -1
	for _, marker := range order {
		idx := strings.Index(prompt, marker)
		require.GreaterOrEqual(t, idx, 0, "missing section %q", marker)
		assert.Greater(t, idx, last, "section %q out of order", marker)
		last = idx
	}

	assert.Contains(t, prompt, "**Lemon Haze** (sativa)")
	assert.Contains(t, prompt, "- THC: 17-22%")
	assert.Contains(t, prompt, "Euphorisch (hoch)")
	assert.Contains(t, prompt, "Limonen - dominant")
	assert.Contains(t, prompt, "- **Limonen**: Zitrus. Wirkung: stimmungsaufhellend. Auch in: Zitronenschalen")
	assert.Contains(t, prompt, "- Positive Effekte: Euphorisch")
	assert.Contains(t, prompt, "- Medizinische Effekte: Schmerzlinderung")
	assert.Contains(t, prompt, "- Mögliche Nebenwirkungen: Trockener Mund")
	assert.Contains(t, prompt, "- Gesamte Sessions: 3")
	assert.Contains(t, prompt, "- Gesamtkonsum: 1.2g")
	assert.Contains(t, prompt, "Lemon Haze (2 Sessions, 0.8g)")
	assert.True(t, strings.HasSuffix(prompt, "Nutze diese Daten für personalisierte Empfehlungen!"))
}

func TestBuildSystemPromptEmptyContext(t *testing.T) {
	prompt := BuildSystemPrompt(ChatContextData{})

	assert.Contains(t, prompt, "Du bist ein freundlicher und sachkundiger Cannabis-Berater")
	assert.NotContains(t, prompt, "CANNABIS-SORTEN DATENBANK")
	assert.NotContains(t, prompt, "TERPENE REFERENZ")
	assert.NotContains(t, prompt, "EFFEKT REFERENZ")
	assert.NotContains(t, prompt, "EFFEKT-KATEGORIEN")
	assert.NotContains(t, prompt, "NUTZER SESSION-HISTORIE")
}

func TestBuildSystemPromptMissingStrainFields(t *testing.T) {
	data := ChatContextData{
		Strains: []supaquery.StrainRow{
			{Name: "Mystery Kush", Type: "hybrid"},
		},
	}
	prompt := BuildSystemPrompt(data)

	assert.Contains(t, prompt, "**Mystery Kush** (hybrid)")
	assert.Contains(t, prompt, "- THC: k.A.-k.A.%")
	assert.Contains(t, prompt, "- Effekte: keine")
	assert.Contains(t, prompt, "- Terpene: keine")
}

func TestBuildHistorySectionTopStrainRanking(t *testing.T) {
	sessions := []supaquery.SessionRow{
		{Strain: "Charlie", Amount: 0.3},
		{Strain: "Alpha", Amount: 0.3},
		{Strain: "Bravo", Amount: 0.3},
		{Strain: "Bravo", Amount: 0.3},
		{Strain: "Delta", Amount: 0.3},
		{Strain: "Echo", Amount: 0.3},
		{Strain: "Foxtrot", Amount: 0.3},
	}

	section := buildHistorySection(sessions)

	// Bravo leads with two sessions, the remaining four top slots fill
	// alphabetically among the single-session strains.
	assert.Contains(t, section, "Top-Sorten: Bravo (2 Sessions, 0.6g), Alpha (1 Sessions, 0.3g), Charlie (1 Sessions, 0.3g), Delta (1 Sessions, 0.3g), Echo (1 Sessions, 0.3g)")
	assert.NotContains(t, section, "Foxtrot")
}
