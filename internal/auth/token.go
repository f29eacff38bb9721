package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"LearnVerse/internal/errs"
)

// Claims is the verified payload of an identity token.
type Claims struct {
	Email   string
	Payload jwt.MapClaims
}

// TokenService signs and verifies HS256 identity tokens with a fixed lifetime.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	return &TokenService{secret: secret, ttl: ttl, now: time.Now}
}

// Issue signs payload as-is plus iat/exp. The payload must carry an email.
func (s *TokenService) Issue(payload map[string]any) (string, error) {
	email, _ := payload["email"].(string)
	if email == "" {
		return "", errs.ErrEmailRequired
	}

	claims := jwt.MapClaims{}
	for k, v := range payload {
		claims[k] = v
	}
	now := s.now()
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(s.ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	ss, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errs.ErrToken, err)
	}
	return ss, nil
}

func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, errs.ErrUnauthorized
	}

	token, err := jwt.Parse(tokenString, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrUnauthorized, err)
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errs.ErrUnauthorized
	}
	email, _ := mc["email"].(string)
	if email == "" {
		return nil, fmt.Errorf("%w: token has no email", errs.ErrUnauthorized)
	}
	return &Claims{Email: email, Payload: mc}, nil
}
