package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrExpired means the token was well-formed and correctly signed but
	// its expiry has passed. Callers use this to tell "try a silent
	// refresh" apart from "force re-login".
	ErrExpired = errors.New("token expired")
	// ErrInvalid covers every other verification failure (bad signature,
	// malformed token, wrong claims type).
	ErrInvalid = errors.New("token invalid")
)

// Claims carries the subject user id next to the registered JWT claims.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// Issuer mints and verifies access and refresh tokens. The two kinds are
// signed with separate secrets. Verification is a pure signature/expiry
// check; revocation lives in the refresh-token store, not here.
type Issuer struct {
	AccessSecret  []byte
	RefreshSecret []byte
	AccessTTL     time.Duration
	RefreshTTL    time.Duration

	// Now is the clock used for issuance; nil means time.Now. Injectable
	// so tests can pin expiries.
	Now func() time.Time
}

func (i *Issuer) now() time.Time {
	if i.Now != nil {
		return i.Now()
	}
	return time.Now()
}

// IssueAccess creates a short-lived access token for userID.
func (i *Issuer) IssueAccess(userID string) (string, error) {
	return i.sign(userID, i.AccessSecret, i.AccessTTL)
}

// IssueRefresh creates a long-lived refresh token for userID.
func (i *Issuer) IssueRefresh(userID string) (string, error) {
	return i.sign(userID, i.RefreshSecret, i.RefreshTTL)
}

func (i *Issuer) sign(userID string, secret []byte, ttl time.Duration) (string, error) {
	now := i.now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(secret)
}

// VerifyAccess validates an access token and returns its claims.
func (i *Issuer) VerifyAccess(tokenStr string) (*Claims, error) {
	return i.parse(tokenStr, i.AccessSecret)
}

// VerifyRefresh validates a refresh token's signature and expiry. It does
// not consult the store; revocation and idle checks are the session
// manager's job.
func (i *Issuer) VerifyRefresh(tokenStr string) (*Claims, error) {
	return i.parse(tokenStr, i.RefreshSecret)
}

func (i *Issuer) parse(tokenStr string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(i.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			// Claims are decoded before validation; hand them back so the
			// caller can tell whose token just expired.
			return claims, ErrExpired
		}
		return nil, ErrInvalid
	}
	if !tok.Valid {
		return nil, ErrInvalid
	}
	return claims, nil
}
