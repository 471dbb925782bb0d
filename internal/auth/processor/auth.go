package processor

import (
	"context"
	"errors"
	"strconv"
	"time"

	"subgate/internal/observability"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenIssuer   = "subgate"
	tokenAudience = "subgate-owner-api"
	tokenTTL      = 24 * time.Hour
)

var ErrAuthDisabled = errors.New("owner api auth is not configured")

var ErrInvalidJWTToken = errors.New("invalid jwt token")

var ErrParseJWTToken = errors.New("failed to parse jwt token")

var ErrExpiredToken = errors.New("token expired")

var ErrFailedSignIn = errors.New("failed to issue token")

// AuthProcessor issues and validates owner API tokens. An owner obtains a
// token from the bot, so possession of the chat account is the credential.
type AuthProcessor struct {
	jwtSecret string
	logger    *observability.Logger
	now       func() time.Time
}

func New(jwtSecret string, logger *observability.Logger) AuthProcessor {
	return AuthProcessor{
		jwtSecret: jwtSecret,
		logger:    logger,
		now:       time.Now,
	}
}

// Enabled reports whether a signing secret is configured.
func (p *AuthProcessor) Enabled() bool {
	return p.jwtSecret != ""
}

type BaseClaims struct {
	ExpirationTime *jwt.NumericDate `json:"exp"`
	IssuedAt       *jwt.NumericDate `json:"iat"`
	NotBefore      *jwt.NumericDate `json:"nbf"`
	Issuer         string           `json:"iss"`
	Subject        string           `json:"sub"`
	Audience       jwt.ClaimStrings `json:"aud"`
}

// OwnerID returns the chat user id carried in the subject.
func (b *BaseClaims) OwnerID() (int64, error) {
	id, err := strconv.ParseInt(b.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidJWTToken
	}
	return id, nil
}

// IssueOwnerToken returns a token scoped to the campaigns of ownerID.
func (p *AuthProcessor) IssueOwnerToken(ctx context.Context, ownerID int64) (string, error) {
	if !p.Enabled() {
		return "", ErrAuthDisabled
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "owner_id", Value: ownerID})
	token, err := p.generateJWTToken(ctx, ownerID)
	if err != nil {
		return "", err
	}
	p.logger.Info(ctx, "issued owner api token")
	return token, nil
}
