package auth

import (
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/blake2b"

	"gemrush.io/backend/responses"
)

// audiences of the two token kinds
const (
	AudienceAuth    = "auth"
	AudienceRefresh = "refresh"
)

func signToken(sub string, iss string, aud string, validity uint64, secret []byte) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss": iss,
		"sub": sub,
		"exp": now.Add(time.Second * time.Duration(validity)).Unix(),
		"iat": now.Unix(),
		"aud": aud,
	})

	return token.SignedString(secret)
}

// CreateCredentials issues a bearer/refresh token pair for one user.
func CreateCredentials(
	sub string,
	iss string,
	bearerExp uint64,
	refreshExp uint64,
	secret []byte,
) (*responses.Credentials, error) {
	bearerString, err := signToken(sub, iss, AudienceAuth, bearerExp, secret)
	if err != nil {
		return nil, err
	}
	refreshString, err := signToken(sub, iss, AudienceRefresh, refreshExp, secret)
	if err != nil {
		return nil, err
	}

	return &responses.Credentials{
		AccessToken:  bearerString,
		RefreshToken: refreshString,
		TokenType:    "Bearer",
		ExpiresIn:    bearerExp,
	}, nil
}

func VerifyToken(tokenString string, secret []byte) (jwt.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("malformed token")
	}

	expTime, err := token.Claims.GetExpirationTime()
	if err != nil {
		return nil, err
	}
	if time.Now().After(expTime.Time) {
		return nil, errors.New("token expired")
	}

	return token.Claims, nil
}

func HashPassword(password string, salt string) string {
	hash := blake2b.Sum256([]byte(password + salt))

	return hex.EncodeToString(hash[:])
}
