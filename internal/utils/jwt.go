package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// OfflineTokenIssuer is the "iss" claim of tokens minted by the client
// itself during an outage. No server ever issues it, which is what makes
// offline sessions distinguishable from real ones.
const OfflineTokenIssuer = "fitiplus-offline"

// offlineSignKey only exists because HS256 needs a key; offline tokens are
// never verified by anyone.
var offlineSignKey = []byte("fitiplus-offline-demo")

// GenerateJWTToken creates a signed HMAC-SHA256 JWT with iss, sub, iat, exp
// and a random jti. The stub API uses it for access tokens.
//
//	token, err := utils.GenerateJWTToken("fitiplus-stub", "1", time.Hour, "secret")
func GenerateJWTToken(issuer, subject string, tokenDuration time.Duration, signKey string) (string, error) {
	if issuer == "" || subject == "" || tokenDuration <= 0 || signKey == "" {
		return "", errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return signed, nil
}

// ValidateAndParseJWTToken verifies signature, issuer and expiry of
// tokenString and returns its subject.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if subject == "" {
		return "", errors.New("empty subject error")
	}

	return subject, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <tok>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

// MintOfflineToken returns a locally signed JWT for userID with issuer
// [OfflineTokenIssuer] and no expiry.
func MintOfflineToken(userID string) (string, error) {
	if userID == "" {
		return "", errors.New("empty user id for offline token")
	}

	claims := &jwt.RegisteredClaims{
		ID:       uuid.NewString(),
		Issuer:   OfflineTokenIssuer,
		Subject:  userID,
		IssuedAt: jwt.NewNumericDate(time.Now()),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(offlineSignKey)
	if err != nil {
		return "", fmt.Errorf("error minting offline token: %w", err)
	}
	return signed, nil
}

// IsOfflineToken reports whether tok was produced by [MintOfflineToken].
// Opaque (non-JWT) tokens are never offline.
func IsOfflineToken(tok string) bool {
	claims, ok := parseUnverified(tok)
	if !ok {
		return false
	}
	issuer, err := claims.GetIssuer()
	return err == nil && issuer == OfflineTokenIssuer
}

// TokenExpiry decodes the "exp" claim of tok without verifying the
// signature. ok is false for opaque tokens and tokens without exp.
func TokenExpiry(tok string) (time.Time, bool) {
	claims, ok := parseUnverified(tok)
	if !ok {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

func parseUnverified(tok string) (jwt.MapClaims, bool) {
	if tok == "" {
		return nil, false
	}
	token, _, err := jwt.NewParser().ParseUnverified(tok, jwt.MapClaims{})
	if err != nil {
		return nil, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	return claims, ok
}
