package managers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"acronym-finder/internal/schemas"
	"acronym-finder/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const bearerScheme = "Bearer"

var (
	errMissingBearer = errors.New("missing bearer token")
	errEmptySecret   = errors.New("jwt secret must not be empty")
)

type JWTMgr interface {
	GenerateClaims(user schemas.UserDTO) *AuthClaims
	GenerateJWT(claims *AuthClaims) (string, error)
	ValidateJWT(tokenString string) (*AuthClaims, error)
	JWTMiddleware() gin.HandlerFunc
}

// AuthClaims are the claims of an auth token: the external representation
// of the user plus the registered claims, with the username as subject.
type AuthClaims struct {
	User schemas.UserDTO `json:"user"`
	jwt.RegisteredClaims
}

// JWTManager handles JWT generation, signing, and validation with a shared HMAC secret.
type JWTManager struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

// NewJWTManager creates a JWTManager signing with secret; tokens live for expiry.
func NewJWTManager(secret string, expiry time.Duration) (JWTMgr, error) {
	if secret == "" {
		return nil, errEmptySecret
	}
	if expiry <= 0 {
		return nil, fmt.Errorf("jwt expiry must be positive, got %s", expiry)
	}

	return &JWTManager{
		secret: []byte(secret),
		expiry: expiry,
		now:    time.Now,
	}, nil
}

// GenerateClaims builds the claims for user, expiring after the configured duration.
func (jm *JWTManager) GenerateClaims(user schemas.UserDTO) *AuthClaims {
	issuedAt := jm.now()
	return &AuthClaims{
		User: user,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(jm.expiry)),
		},
	}
}

// GenerateJWT signs the claims with HS256.
func (jm *JWTManager) GenerateJWT(claims *AuthClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jm.secret)
}

// ValidateJWT validates the given JWT and returns the claims if valid.
// Only HS256 is accepted and the token must carry an expiry.
func (jm *JWTManager) ValidateJWT(tokenString string) (*AuthClaims, error) {
	claims := &AuthClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jm.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(jm.now),
	)
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}

	return claims, nil
}

// JWTMiddleware aborts with 401 unless the request carries a valid bearer token.
// The validated claims are stored under utils.ClaimsKey.
func (jm *JWTManager) JWTMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// auth schemes are case-insensitive
		scheme, token, found := strings.Cut(c.GetHeader("Authorization"), " ")
		if !found || !strings.EqualFold(scheme, bearerScheme) {
			utils.WriteAndLogError(c, schemas.Unauthorized, http.StatusUnauthorized, errMissingBearer)
			return
		}

		claims, err := jm.ValidateJWT(strings.TrimSpace(token))
		if err != nil {
			utils.WriteAndLogError(c, schemas.Unauthorized, http.StatusUnauthorized, err)
			return
		}

		c.Set(utils.ClaimsKey.String(), claims)
		c.Next()
	}
}
