package auth

import (
	"fmt"
	"time"

	"inkpress/app/apperr"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AdminIdentity is the capability proving administrator access. Components
// receive it only from a successful Authorize call.
type AdminIdentity struct {
	Email string
}

// Gate verifies bearer credentials against the configured administrator.
// Verification is pure and local: no retries, no side effects.
type Gate struct {
	secret       []byte
	adminEmail   string
	passwordHash string
	tokenTTL     time.Duration
}

// NewGate creates a Gate for the configured admin account.
func NewGate(secret, adminEmail, passwordHash string, tokenTTL time.Duration) *Gate {
	return &Gate{
		secret:       []byte(secret),
		adminEmail:   adminEmail,
		passwordHash: passwordHash,
		tokenTTL:     tokenTTL,
	}
}

// Authorize checks an opaque bearer credential and returns the admin
// identity it proves. Missing, malformed, expired, or mismatched
// credentials all come back as an authorization error, never a panic.
func (g *Gate) Authorize(credential string) (AdminIdentity, error) {
	if credential == "" {
		return AdminIdentity{}, apperr.Authorization("missing credential")
	}

	token, err := jwt.Parse(credential, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return g.secret, nil
	})
	if err != nil || !token.Valid {
		return AdminIdentity{}, apperr.Wrap(apperr.KindAuthorization, err, "invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return AdminIdentity{}, apperr.Authorization("invalid token claims")
	}

	email, _ := claims["email"].(string)
	if email == "" || email != g.adminEmail {
		return AdminIdentity{}, apperr.Authorization("credential does not identify the administrator")
	}

	return AdminIdentity{Email: email}, nil
}

// Login checks the admin email and password and issues a signed token.
func (g *Gate) Login(email, password string) (string, error) {
	if email != g.adminEmail {
		return "", apperr.Authorization("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(g.passwordHash), []byte(password)); err != nil {
		return "", apperr.Authorization("invalid credentials")
	}
	return g.IssueToken(email)
}

// IssueToken signs a token embedding the admin email with the configured TTL.
func (g *Gate) IssueToken(email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(g.tokenTTL).Unix(),
	})
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}
