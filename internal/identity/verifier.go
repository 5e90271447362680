package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/supabase-community/supabase-go"
)

// Verifier exchanges a bearer credential for a verified user identity.
// The service holds no session state; every request re-verifies.
type Verifier interface {
	Verify(ctx context.Context, token string) (uuid.UUID, error)
}

var ErrInvalidToken = errors.New("token could not be verified")

// GotrueVerifier asks the Supabase identity provider whether the token
// belongs to a live user. This mirrors the auth.getUser round trip and is
// the default mode.
type GotrueVerifier struct {
	client *supabase.Client
}

func NewGotrueVerifier(supabaseURL, anonKey string) (*GotrueVerifier, error) {
	client, err := supabase.NewClient(supabaseURL, anonKey, nil)
	if err != nil {
		return nil, fmt.Errorf("create supabase client: %w", err)
	}
	return &GotrueVerifier{client: client}, nil
}

func (v *GotrueVerifier) Verify(ctx context.Context, token string) (uuid.UUID, error) {
	// WithToken derives a client; GetUser carries the context internally.
	user, err := v.client.Auth.WithToken(token).GetUser()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if user == nil || user.ID == uuid.Nil {
		return uuid.Nil, ErrInvalidToken
	}
	return user.ID, nil
}

// JWTVerifier validates Supabase access tokens locally with the project's
// JWT secret (HS256), skipping the gotrue round trip. Opt-in via
// SUPABASE_JWT_SECRET.
type JWTVerifier struct {
	secret []byte
}

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

func (v *JWTVerifier) Verify(_ context.Context, token string) (uuid.UUID, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !parsed.Valid {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, ErrInvalidToken
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return uuid.Nil, ErrInvalidToken
	}
	userId, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return userId, nil
}
