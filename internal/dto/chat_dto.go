package dto

import "encoding/json"

type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required,max=4000"`
}

// UnmarshalJSON tolerates non-string role/content values: they decode to the
// empty string so validation reports the field-specific error instead of a
// generic payload failure.
func (m *ChatMessage) UnmarshalJSON(data []byte) error {
	var raw struct {
		Role    json.RawMessage `json:"role"`
		Content json.RawMessage `json:"content"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	m.Role = stringOrEmpty(raw.Role)
	m.Content = stringOrEmpty(raw.Content)
	return nil
}

func stringOrEmpty(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

type ChatRequest struct {
	Messages []ChatMessage `json:"messages" validate:"required,max=50,dive"`
}
