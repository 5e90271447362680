package service

import (
	"context"
	"time"

	"github.com/LionGx2004/cannatracker/internal/config"
	"github.com/LionGx2004/cannatracker/internal/constant"
	"github.com/LionGx2004/cannatracker/internal/dto"
	"github.com/LionGx2004/cannatracker/internal/pkg/logger"
	"github.com/LionGx2004/cannatracker/pkg/llm"
	"github.com/LionGx2004/cannatracker/pkg/supaquery"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"
)

// IChatService assembles the user briefing and relays the completion stream.
type IChatService interface {
	Chat(ctx context.Context, token string, request *dto.ChatRequest) (*llm.StreamResult, error)
}

const (
	cacheKeyStrains  = "ref:strains"
	cacheKeyTerpenes = "ref:terpenes"
	cacheKeyEffects  = "ref:effects"

	referenceCacheTTL = 5 * time.Minute
)

type chatService struct {
	fetcher  supaquery.Fetcher
	provider llm.StreamingProvider
	refCache *cache.Cache
	cfg      config.ChatConfig
	log      logger.ILogger
}

func NewChatService(fetcher supaquery.Fetcher, provider llm.StreamingProvider, refCache *cache.Cache, cfg config.ChatConfig, log logger.ILogger) IChatService {
	return &chatService{
		fetcher:  fetcher,
		provider: provider,
		refCache: refCache,
		cfg:      cfg,
		log:      log,
	}
}

// Chat fetches the four context sources concurrently, builds the system
// prompt, and opens the completion stream. A failed context fetch degrades
// to an empty section instead of failing the whole request.
func (s *chatService) Chat(ctx context.Context, token string, request *dto.ChatRequest) (*llm.StreamResult, error) {
	data := s.fetchContext(ctx, token)

	history := make([]llm.Message, 0, len(request.Messages)+1)
	history = append(history, llm.Message{
		Role:    constant.ChatMessageRoleSystem,
		Content: BuildSystemPrompt(data),
	})
	for _, m := range request.Messages {
		history = append(history, llm.Message{Role: m.Role, Content: m.Content})
	}

	return s.provider.StreamChat(ctx, history)
}

func (s *chatService) fetchContext(ctx context.Context, token string) ChatContextData {
	var data ChatContextData

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.fetcher.RecentSessions(token, s.cfg.HistoryLimit)
		if err != nil {
			s.logFetchFailure("sessions", err)
			return nil
		}
		data.Sessions = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.cachedStrains(token)
		if err != nil {
			s.logFetchFailure("strains", err)
			return nil
		}
		data.Strains = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.cachedTerpenes(token)
		if err != nil {
			s.logFetchFailure("terpenes", err)
			return nil
		}
		data.Terpenes = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.cachedEffects(token)
		if err != nil {
			s.logFetchFailure("effects", err)
			return nil
		}
		data.Effects = rows
		return nil
	})

	// Errors never escape the goroutines; Wait only joins them.
	_ = g.Wait()
	return data
}

// Reference tables (strains, terpenes, effects) are public reads, identical
// for every caller, so a short shared cache cuts three store round-trips off
// the hot path. Session history stays per-user and is never cached.

func (s *chatService) cachedStrains(token string) ([]supaquery.StrainRow, error) {
	if s.refCache != nil {
		if cached, ok := s.refCache.Get(cacheKeyStrains); ok {
			return cached.([]supaquery.StrainRow), nil
		}
	}
	rows, err := s.fetcher.Strains(token, s.cfg.StrainLimit)
	if err != nil {
		return nil, err
	}
	if s.refCache != nil {
		s.refCache.Set(cacheKeyStrains, rows, referenceCacheTTL)
	}
	return rows, nil
}

func (s *chatService) cachedTerpenes(token string) ([]supaquery.TerpeneRow, error) {
	if s.refCache != nil {
		if cached, ok := s.refCache.Get(cacheKeyTerpenes); ok {
			return cached.([]supaquery.TerpeneRow), nil
		}
	}
	rows, err := s.fetcher.Terpenes(token)
	if err != nil {
		return nil, err
	}
	if s.refCache != nil {
		s.refCache.Set(cacheKeyTerpenes, rows, referenceCacheTTL)
	}
	return rows, nil
}

func (s *chatService) cachedEffects(token string) ([]supaquery.EffectRow, error) {
	if s.refCache != nil {
		if cached, ok := s.refCache.Get(cacheKeyEffects); ok {
			return cached.([]supaquery.EffectRow), nil
		}
	}
	rows, err := s.fetcher.Effects(token)
	if err != nil {
		return nil, err
	}
	if s.refCache != nil {
		s.refCache.Set(cacheKeyEffects, rows, referenceCacheTTL)
	}
	return rows, nil
}

func (s *chatService) logFetchFailure(source string, err error) {
	s.log.Warn("chat", "context fetch failed, continuing without it", map[string]interface{}{
		"source": source,
		"error":  err.Error(),
	})
}
