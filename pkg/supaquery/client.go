package supaquery

import (
	"fmt"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"
)

const (
	strainSelect = `name, type, thc_min, thc_max, description_de, flavor_de, aroma_de,
strain_effects(
  intensity,
  effects(name, name_de, category)
),
strain_terpenes(
  dominance,
  terpenes(name, scent_de, effects_de)
)`
	sessionSelect = "strain, amount, notes, created_at"
	terpeneSelect = "name, scent_de, effects_de, also_found_in_de"
	effectSelect  = "name, name_de, description_de, category"
)

// Fetcher is the read surface the chat context is assembled from. Every call
// goes through a PostgREST client scoped to the caller's own token, so
// row-level security is enforced by the store and never re-implemented here.
type Fetcher interface {
	RecentSessions(token string, limit int) ([]SessionRow, error)
	Strains(token string, limit int) ([]StrainRow, error)
	Terpenes(token string) ([]TerpeneRow, error)
	Effects(token string) ([]EffectRow, error)
}

type Client struct {
	url     string
	anonKey string
}

var _ Fetcher = &Client{}

func NewClient(url, anonKey string) *Client {
	return &Client{url: url, anonKey: anonKey}
}

// scoped builds a per-request client that forwards the caller's bearer token,
// the same way the browser client talks to the store.
func (c *Client) scoped(token string) (*supabase.Client, error) {
	client, err := supabase.NewClient(c.url, c.anonKey, &supabase.ClientOptions{
		Headers: map[string]string{"Authorization": "Bearer " + token},
	})
	if err != nil {
		return nil, fmt.Errorf("create scoped supabase client: %w", err)
	}
	return client, nil
}

func (c *Client) RecentSessions(token string, limit int) ([]SessionRow, error) {
	client, err := c.scoped(token)
	if err != nil {
		return nil, err
	}
	var rows []SessionRow
	_, err = client.From("sessions").
		Select(sessionSelect, "", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Limit(limit, "").
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("fetch sessions: %w", err)
	}
	return rows, nil
}

func (c *Client) Strains(token string, limit int) ([]StrainRow, error) {
	client, err := c.scoped(token)
	if err != nil {
		return nil, err
	}
	var rows []StrainRow
	_, err = client.From("strains").
		Select(strainSelect, "", false).
		Limit(limit, "").
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("fetch strains: %w", err)
	}
	return rows, nil
}

func (c *Client) Terpenes(token string) ([]TerpeneRow, error) {
	client, err := c.scoped(token)
	if err != nil {
		return nil, err
	}
	var rows []TerpeneRow
	_, err = client.From("terpenes").
		Select(terpeneSelect, "", false).
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("fetch terpenes: %w", err)
	}
	return rows, nil
}

func (c *Client) Effects(token string) ([]EffectRow, error) {
	client, err := c.scoped(token)
	if err != nil {
		return nil, err
	}
	var rows []EffectRow
	_, err = client.From("effects").
		Select(effectSelect, "", false).
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("fetch effects: %w", err)
	}
	return rows, nil
}
