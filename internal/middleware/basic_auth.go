package middleware

import (
	"errors"
	"net/http"

	"acronym-finder/internal/managers"
	"acronym-finder/internal/repositories"
	"acronym-finder/internal/schemas"
	"acronym-finder/internal/utils"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

var (
	errMissingCredentials = errors.New("missing basic credentials")
	errInvalidCredentials = errors.New("invalid credentials")
)

// BasicAuth authenticates the request with HTTP basic credentials.
// Unknown users and wrong passwords get the same 401 after the same bcrypt work:
// an unknown user's password is checked against a throwaway digest of the same cost.
// On success the user's external representation is stored under utils.UserKey.
func BasicAuth(databaseMgr managers.DatabaseMgr, passwordMgr managers.PasswordMgr) gin.HandlerFunc {
	dummyDigest, err := passwordMgr.HashPassword("unknown user placeholder")
	if err != nil {
		log.Errorf("Failed to hash the placeholder password: %v", err)
	}

	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()
		if !ok {
			utils.WriteAndLogError(c, schemas.Unauthorized, http.StatusUnauthorized, errMissingCredentials)
			return
		}

		user, err := databaseMgr.Users().GetUserByUsername(c.Request.Context(), username)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				passwordMgr.VerifyPassword(password, dummyDigest)
				utils.WriteAndLogError(c, schemas.Unauthorized, http.StatusUnauthorized, errInvalidCredentials)
				return
			}
			utils.WriteAndLogError(c, schemas.InternalServerError, http.StatusInternalServerError, err)
			return
		}

		if !passwordMgr.VerifyPassword(password, user.Password) {
			utils.WriteAndLogError(c, schemas.Unauthorized, http.StatusUnauthorized, errInvalidCredentials)
			return
		}

		c.Set(utils.UserKey.String(), schemas.NewUserDTO(user))
		c.Next()
	}
}
