package service

import (
	"context"

	"github.com/LionGx2004/cannatracker/internal/dto"
	"github.com/LionGx2004/cannatracker/internal/entity"
	"github.com/LionGx2004/cannatracker/internal/repository/contract"
)

// IStrainService serves the public reference catalog.
type IStrainService interface {
	ListStrains(ctx context.Context, limit int) ([]*dto.StrainResponse, error)
	ListTerpenes(ctx context.Context) ([]*dto.TerpeneResponse, error)
	ListEffects(ctx context.Context) ([]*dto.EffectResponse, error)
}

type strainService struct {
	strainRepo contract.StrainRepository
}

func NewStrainService(strainRepo contract.StrainRepository) IStrainService {
	return &strainService{strainRepo: strainRepo}
}

func (s *strainService) ListStrains(ctx context.Context, limit int) ([]*dto.StrainResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	strains, err := s.strainRepo.FindAll(ctx, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.StrainResponse, len(strains))
	for i, strain := range strains {
		responses[i] = toStrainResponse(strain)
	}
	return responses, nil
}

func (s *strainService) ListTerpenes(ctx context.Context) ([]*dto.TerpeneResponse, error) {
	terpenes, err := s.strainRepo.FindAllTerpenes(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.TerpeneResponse, len(terpenes))
	for i, terpene := range terpenes {
		responses[i] = &dto.TerpeneResponse{
			Id:            terpene.Id,
			Name:          terpene.Name,
			ScentDe:       terpene.ScentDe,
			EffectsDe:     terpene.EffectsDe,
			AlsoFoundInDe: terpene.AlsoFoundInDe,
		}
	}
	return responses, nil
}

func (s *strainService) ListEffects(ctx context.Context) ([]*dto.EffectResponse, error) {
	effects, err := s.strainRepo.FindAllEffects(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.EffectResponse, len(effects))
	for i, effect := range effects {
		responses[i] = &dto.EffectResponse{
			Id:            effect.Id,
			Name:          effect.Name,
			NameDe:        effect.NameDe,
			DescriptionDe: effect.DescriptionDe,
			Category:      effect.Category,
		}
	}
	return responses, nil
}

func toStrainResponse(strain *entity.Strain) *dto.StrainResponse {
	effects := make([]dto.StrainEffectResponse, len(strain.Effects))
	for i, e := range strain.Effects {
		effects[i] = dto.StrainEffectResponse{
			Name:      e.Name,
			NameDe:    e.NameDe,
			Category:  e.Category,
			Intensity: e.Intensity,
		}
	}

	terpenes := make([]dto.StrainTerpeneResponse, len(strain.Terpenes))
	for i, t := range strain.Terpenes {
		terpenes[i] = dto.StrainTerpeneResponse{
			Name:      t.Name,
			ScentDe:   t.ScentDe,
			EffectsDe: t.EffectsDe,
			Dominance: t.Dominance,
		}
	}

	return &dto.StrainResponse{
		Id:            strain.Id,
		Name:          strain.Name,
		Type:          strain.Type,
		ThcMin:        strain.ThcMin,
		ThcMax:        strain.ThcMax,
		DescriptionDe: strain.DescriptionDe,
		FlavorDe:      strain.FlavorDe,
		AromaDe:       strain.AromaDe,
		Effects:       effects,
		Terpenes:      terpenes,
	}
}
