package mapper

import (
	"github.com/LionGx2004/cannatracker/internal/entity"
	"github.com/LionGx2004/cannatracker/internal/model"
)

type StrainMapper struct{}

func NewStrainMapper() *StrainMapper {
	return &StrainMapper{}
}

func (m *StrainMapper) ToEntity(s *model.Strain) *entity.Strain {
	if s == nil {
		return nil
	}

	effects := make([]entity.StrainEffect, 0, len(s.StrainEffects))
	for _, se := range s.StrainEffects {
		if se.Effect == nil {
			continue
		}
		effects = append(effects, entity.StrainEffect{
			Name:      se.Effect.Name,
			NameDe:    se.Effect.NameDe,
			Category:  se.Effect.Category,
			Intensity: se.Intensity,
		})
	}

	terpenes := make([]entity.StrainTerpene, 0, len(s.StrainTerpenes))
	for _, st := range s.StrainTerpenes {
		if st.Terpene == nil {
			continue
		}
		terpenes = append(terpenes, entity.StrainTerpene{
			Name:      st.Terpene.Name,
			ScentDe:   st.Terpene.ScentDe,
			EffectsDe: st.Terpene.EffectsDe,
			Dominance: st.Dominance,
		})
	}

	return &entity.Strain{
		Id:            s.Id,
		Name:          s.Name,
		Type:          s.Type,
		ThcMin:        s.ThcMin,
		ThcMax:        s.ThcMax,
		DescriptionDe: s.DescriptionDe,
		FlavorDe:      s.FlavorDe,
		AromaDe:       s.AromaDe,
		Effects:       effects,
		Terpenes:      terpenes,
	}
}

func (m *StrainMapper) ToEntities(strains []*model.Strain) []*entity.Strain {
	entities := make([]*entity.Strain, len(strains))
	for i, s := range strains {
		entities[i] = m.ToEntity(s)
	}
	return entities
}

func (m *StrainMapper) TerpeneToEntity(t *model.Terpene) *entity.Terpene {
	if t == nil {
		return nil
	}
	return &entity.Terpene{
		Id:            t.Id,
		Name:          t.Name,
		ScentDe:       t.ScentDe,
		EffectsDe:     t.EffectsDe,
		AlsoFoundInDe: t.AlsoFoundInDe,
	}
}

func (m *StrainMapper) EffectToEntity(e *model.Effect) *entity.Effect {
	if e == nil {
		return nil
	}
	return &entity.Effect{
		Id:            e.Id,
		Name:          e.Name,
		NameDe:        e.NameDe,
		DescriptionDe: e.DescriptionDe,
		Category:      e.Category,
	}
}
