// Package auth verifies session tokens.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/JonnyWalker81/daybook/backend/pkg/supabase"
)

// ErrInvalidToken is returned for any token that cannot be trusted
var ErrInvalidToken = errors.New("invalid token")

// Identity is the authenticated caller
type Identity struct {
	UserID string
	Email  string
}

// TokenVerifier resolves a session token to an identity
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

// JWTVerifier checks HS256 tokens signed with a shared secret. The user id
// is the sub claim.
type JWTVerifier struct {
	secret []byte
}

// NewJWTVerifier creates a verifier for tokens signed with secret
func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

// Verify parses and validates token
func (v *JWTVerifier) Verify(ctx context.Context, token string) (*Identity, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	email, _ := claims["email"].(string)

	return &Identity{UserID: sub, Email: email}, nil
}

// Issue signs a token for userID valid for ttl
func (v *JWTVerifier) Issue(userID, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}

// SupabaseVerifier asks Supabase Auth who owns the token
type SupabaseVerifier struct {
	client *supabase.Client
}

// NewSupabaseVerifier creates a verifier backed by Supabase Auth
func NewSupabaseVerifier(client *supabase.Client) *SupabaseVerifier {
	return &SupabaseVerifier{client: client}
}

// Verify checks token with Supabase
func (v *SupabaseVerifier) Verify(ctx context.Context, token string) (*Identity, error) {
	user, err := v.client.VerifyToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return &Identity{UserID: user.ID, Email: user.Email}, nil
}
