package service

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/LionGx2004/cannatracker/internal/dto"
	"github.com/LionGx2004/cannatracker/internal/entity"
	"github.com/LionGx2004/cannatracker/internal/pkg/logger"
	"github.com/LionGx2004/cannatracker/internal/pkg/serverutils"
	"github.com/LionGx2004/cannatracker/internal/repository/contract"

	"github.com/google/uuid"
)

// ISessionService defines the session tracking service interface
type ISessionService interface {
	Create(ctx context.Context, userId uuid.UUID, request *dto.CreateSessionRequest) (*dto.SessionResponse, error)
	List(ctx context.Context, userId uuid.UUID, limit, offset int) ([]*dto.SessionResponse, error)
	Update(ctx context.Context, userId uuid.UUID, request *dto.UpdateSessionRequest) (*dto.SessionResponse, error)
	Delete(ctx context.Context, userId, id uuid.UUID) error
	Stats(ctx context.Context, userId uuid.UUID) (*dto.StatsResponse, error)
}

const statsHistoryLimit = 1000

type sessionService struct {
	sessionRepo contract.SessionRepository
	publisher   IPublisherService
	log         logger.ILogger
}

func NewSessionService(sessionRepo contract.SessionRepository, publisher IPublisherService, log logger.ILogger) ISessionService {
	return &sessionService{
		sessionRepo: sessionRepo,
		publisher:   publisher,
		log:         log,
	}
}

func (s *sessionService) Create(ctx context.Context, userId uuid.UUID, request *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	createdAt := time.Now()
	if request.CreatedAt != nil {
		createdAt = *request.CreatedAt
	}

	session := &entity.Session{
		Id:        uuid.New(),
		UserId:    userId,
		Strain:    request.Strain,
		Amount:    request.Amount,
		Notes:     request.Notes,
		CreatedAt: createdAt,
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	// Event delivery is best effort; the write already succeeded.
	if err := s.publisher.PublishSessionLogged(ctx, session); err != nil {
		s.log.Warn("session", "failed to publish session.logged", map[string]interface{}{
			"session_id": session.Id.String(),
			"error":      err.Error(),
		})
	}

	return toSessionResponse(session), nil
}

func (s *sessionService) List(ctx context.Context, userId uuid.UUID, limit, offset int) ([]*dto.SessionResponse, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	sessions, err := s.sessionRepo.FindAllByUserId(ctx, userId, limit, offset)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.SessionResponse, len(sessions))
	for i, session := range sessions {
		responses[i] = toSessionResponse(session)
	}
	return responses, nil
}

func (s *sessionService) Update(ctx context.Context, userId uuid.UUID, request *dto.UpdateSessionRequest) (*dto.SessionResponse, error) {
	session, err := s.sessionRepo.FindById(ctx, userId, request.Id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, serverutils.ErrNotFound
	}

	session.Strain = request.Strain
	session.Amount = request.Amount
	session.Notes = request.Notes
	now := time.Now()
	session.UpdatedAt = &now

	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}
	return toSessionResponse(session), nil
}

func (s *sessionService) Delete(ctx context.Context, userId, id uuid.UUID) error {
	session, err := s.sessionRepo.FindById(ctx, userId, id)
	if err != nil {
		return err
	}
	if session == nil {
		return serverutils.ErrNotFound
	}
	return s.sessionRepo.Delete(ctx, userId, id)
}

func (s *sessionService) Stats(ctx context.Context, userId uuid.UUID) (*dto.StatsResponse, error) {
	sessions, err := s.sessionRepo.FindAllByUserId(ctx, userId, statsHistoryLimit, 0)
	if err != nil {
		return nil, err
	}

	stats := &dto.StatsResponse{
		TotalSessions: len(sessions),
		TopStrains:    []dto.TopStrainResponse{},
	}
	if len(sessions) == 0 {
		return stats, nil
	}

	type strainAgg struct {
		count       int
		totalAmount float64
	}
	byStrain := make(map[string]*strainAgg)

	now := time.Now()
	year, month, day := now.Date()
	startOfDay := time.Date(year, month, day, 0, 0, 0, 0, now.Location())

	for _, session := range sessions {
		stats.TotalGrams += session.Amount
		if !session.CreatedAt.Before(startOfDay) {
			stats.TodaySessions++
		}
		agg, ok := byStrain[session.Strain]
		if !ok {
			agg = &strainAgg{}
			byStrain[session.Strain] = agg
		}
		agg.count++
		agg.totalAmount += session.Amount
	}

	stats.TotalGrams = round1(stats.TotalGrams)
	stats.AvgGramsPerSession = round1(stats.TotalGrams / float64(len(sessions)))

	names := make([]string, 0, len(byStrain))
	for name := range byStrain {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := byStrain[names[i]], byStrain[names[j]]
		if a.count != b.count {
			return a.count > b.count
		}
		return names[i] < names[j]
	})
	if len(names) > 5 {
		names = names[:5]
	}
	for _, name := range names {
		agg := byStrain[name]
		stats.TopStrains = append(stats.TopStrains, dto.TopStrainResponse{
			Strain:     name,
			Sessions:   agg.count,
			TotalGrams: round1(agg.totalAmount),
		})
	}

	return stats, nil
}

func toSessionResponse(session *entity.Session) *dto.SessionResponse {
	return &dto.SessionResponse{
		Id:        session.Id,
		Strain:    session.Strain,
		Amount:    session.Amount,
		Notes:     session.Notes,
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
