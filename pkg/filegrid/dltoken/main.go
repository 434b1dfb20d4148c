package dltoken

// download links of private components carry a signed token instead
// of relying on the session cookie, so they stay usable when pasted
// into download managers or shared between the owner's devices for
// the lifetime of the token.

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type DownloadClaims struct {
	ComponentId string `json:"cid"`
	Path string `json:"path"`
	Sha string `json:"sha"`
	jwt.RegisteredClaims
}

var ErrInvalidToken = errors.New("invalid download token")

func New(secret string, componentId string, path string, sha string, lifetime time.Duration) (string, error) {
	now := time.Now()
	claims := DownloadClaims{
		ComponentId: componentId,
		Path: path,
		Sha: sha,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

func Verify(secret string, token string) (*DownloadClaims, error) {
	var claims DownloadClaims
	t, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 { return nil, ErrInvalidToken }
		return []byte(secret), nil
	})
	if err != nil { return nil, err }
	if !t.Valid { return nil, ErrInvalidToken }
	return &claims, nil
}
