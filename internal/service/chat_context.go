package service

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/LionGx2004/cannatracker/internal/constant"
	"github.com/LionGx2004/cannatracker/pkg/supaquery"
)

// ChatContextData holds the four independent fetch results the briefing is
// assembled from. Any of them may be empty; the matching section is then
// omitted entirely.
type ChatContextData struct {
	Sessions []supaquery.SessionRow
	Strains  []supaquery.StrainRow
	Terpenes []supaquery.TerpeneRow
	Effects  []supaquery.EffectRow
}

// BuildSystemPrompt folds the fetched context into the German system
// instruction. Pure and deterministic: byte-identical output for identical
// input, no clock, no randomness.
func BuildSystemPrompt(data ChatContextData) string {
	sections := []string{constant.SystemPromptPreamble}

	if s := buildStrainSection(data.Strains); s != "" {
		sections = append(sections, s)
	}
	if s := buildTerpeneSection(data.Terpenes); s != "" {
		sections = append(sections, s)
	}
	if s := buildEffectReferenceSection(data.Effects); s != "" {
		sections = append(sections, s)
	}
	if s := buildEffectCategorySection(data.Effects); s != "" {
		sections = append(sections, s)
	}
	if s := buildHistorySection(data.Sessions); s != "" {
		sections = append(sections, s)
	}

	return strings.Join(sections, "\n\n")
}

func buildStrainSection(strains []supaquery.StrainRow) string {
	if len(strains) == 0 {
		return ""
	}

	blocks := make([]string, 0, len(strains))
	for _, s := range strains {
		effects := make([]string, 0, len(s.StrainEffects))
		for _, se := range s.StrainEffects {
			if se.Effect == nil {
				continue
			}
			effects = append(effects, fmt.Sprintf("%s (%s)", se.Effect.NameDe, se.Intensity))
		}
		effectsList := "keine"
		if len(effects) > 0 {
			effectsList = strings.Join(effects, ", ")
		}

		terpenes := make([]string, 0, len(s.StrainTerpenes))
		for _, st := range s.StrainTerpenes {
			if st.Terpene == nil {
				continue
			}
			terpenes = append(terpenes, fmt.Sprintf("%s - %s", st.Terpene.Name, st.Dominance))
		}
		terpenesList := "keine"
		if len(terpenes) > 0 {
			terpenesList = strings.Join(terpenes, ", ")
		}

		blocks = append(blocks, fmt.Sprintf(`**%s** (%s)
- THC: %s-%s%%
- Beschreibung: %s
- Geschmack: %s
- Aroma: %s
- Effekte: %s
- Terpene: %s`,
			s.Name, s.Type,
			fmtNumber(s.ThcMin), fmtNumber(s.ThcMax),
			strOrEmpty(s.DescriptionDe), strOrEmpty(s.FlavorDe), strOrEmpty(s.AromaDe),
			effectsList, terpenesList))
	}

	return "CANNABIS-SORTEN DATENBANK (nutze diese Informationen für präzise Antworten):\n\n" +
		strings.Join(blocks, "\n\n")
}

func buildTerpeneSection(terpenes []supaquery.TerpeneRow) string {
	if len(terpenes) == 0 {
		return ""
	}
	lines := make([]string, 0, len(terpenes))
	for _, t := range terpenes {
		lines = append(lines, fmt.Sprintf("- **%s**: %s. Wirkung: %s. Auch in: %s",
			t.Name, t.ScentDe, t.EffectsDe, strOrEmpty(t.AlsoFoundInDe)))
	}
	return "TERPENE REFERENZ:\n" + strings.Join(lines, "\n")
}

func buildEffectReferenceSection(effects []supaquery.EffectRow) string {
	if len(effects) == 0 {
		return ""
	}
	lines := make([]string, 0, len(effects))
	for _, e := range effects {
		lines = append(lines, fmt.Sprintf("- **%s**: %s. Kategorie: %s",
			e.NameDe, strOrEmpty(e.DescriptionDe), e.Category))
	}
	return "EFFEKT REFERENZ:\n" + strings.Join(lines, "\n")
}

func buildEffectCategorySection(effects []supaquery.EffectRow) string {
	if len(effects) == 0 {
		return ""
	}
	byCategory := func(category string) string {
		names := make([]string, 0)
		for _, e := range effects {
			if e.Category == category {
				names = append(names, e.NameDe)
			}
		}
		return strings.Join(names, ", ")
	}
	return fmt.Sprintf(`EFFEKT-KATEGORIEN:
- Positive Effekte: %s
- Medizinische Effekte: %s
- Mögliche Nebenwirkungen: %s`,
		byCategory(constant.EffectCategoryPositive),
		byCategory(constant.EffectCategoryMedical),
		byCategory(constant.EffectCategoryNegative))
}

func buildHistorySection(sessions []supaquery.SessionRow) string {
	if len(sessions) == 0 {
		return ""
	}

	type strainStats struct {
		count       int
		totalAmount float64
	}
	counts := make(map[string]*strainStats)
	var totalAmount float64
	for _, s := range sessions {
		st, ok := counts[s.Strain]
		if !ok {
			st = &strainStats{}
			counts[s.Strain] = st
		}
		st.count++
		st.totalAmount += s.Amount
		totalAmount += s.Amount
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	// Rank by session count; ties break on name so output stays stable.
	sort.Slice(names, func(i, j int) bool {
		a, b := counts[names[i]], counts[names[j]]
		if a.count != b.count {
			return a.count > b.count
		}
		return names[i] < names[j]
	})
	if len(names) > 5 {
		names = names[:5]
	}

	top := make([]string, 0, len(names))
	for _, name := range names {
		st := counts[name]
		top = append(top, fmt.Sprintf("%s (%d Sessions, %.1fg)", name, st.count, st.totalAmount))
	}

	return fmt.Sprintf(`NUTZER SESSION-HISTORIE:
- Gesamte Sessions: %d
- Gesamtkonsum: %.1fg
- Top-Sorten: %s

Nutze diese Daten für personalisierte Empfehlungen!`,
		len(sessions), totalAmount, strings.Join(top, ", "))
}

func fmtNumber(v *float64) string {
	if v == nil {
		return "k.A."
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func strOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
