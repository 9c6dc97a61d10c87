package handlers

import (
	"errors"
	"net/http"

	"acronym-finder/internal/managers"
	"acronym-finder/internal/repositories"
	"acronym-finder/internal/schemas"
	"acronym-finder/internal/utils"

	"github.com/gin-gonic/gin"
)

const protectedData = "rosebud"

type UserHdl interface {
	RegisterUser(ctx *gin.Context)
	LoginUser(ctx *gin.Context)
	RefreshToken(ctx *gin.Context)
	Protected(ctx *gin.Context)
}

type UserHandler struct {
	DatabaseManager managers.DatabaseMgr
	JWTManager      managers.JWTMgr
	PasswordManager managers.PasswordMgr
}

func NewUserHandler(databaseManager managers.DatabaseMgr, jwtManager managers.JWTMgr, passwordManager managers.PasswordMgr) UserHdl {
	return &UserHandler{
		DatabaseManager: databaseManager,
		JWTManager:      jwtManager,
		PasswordManager: passwordManager,
	}
}

func (handler *UserHandler) RegisterUser(ctx *gin.Context) {
	registrationRequest := ctx.Value(utils.SanitizedPayloadKey.String()).(*schemas.RegistrationRequest)

	hashedPassword, err := handler.PasswordManager.HashPassword(registrationRequest.Password)
	if err != nil {
		utils.WriteAndLogError(ctx, schemas.InternalServerError, http.StatusInternalServerError, err)
		return
	}

	user := &schemas.User{
		Username:  registrationRequest.Username,
		Password:  hashedPassword,
		FirstName: registrationRequest.FirstName,
		LastName:  registrationRequest.LastName,
	}
	if err := handler.DatabaseManager.Users().CreateUser(ctx.Request.Context(), user); err != nil {
		if errors.Is(err, repositories.ErrUsernameTaken) {
			utils.WriteAndLogError(ctx, schemas.UsernameTaken, http.StatusUnprocessableEntity, err)
			return
		}
		utils.WriteAndLogError(ctx, schemas.InternalServerError, http.StatusInternalServerError, err)
		return
	}

	utils.WriteAndLogResponse(ctx, schemas.NewUserDTO(user), http.StatusCreated)
}

// LoginUser issues a token for the user the basic auth middleware authenticated.
func (handler *UserHandler) LoginUser(ctx *gin.Context) {
	user := ctx.Value(utils.UserKey.String()).(schemas.UserDTO)
	handler.writeToken(ctx, user)
}

// RefreshToken issues a fresh token for the user embedded in the presented one.
func (handler *UserHandler) RefreshToken(ctx *gin.Context) {
	claims := ctx.Value(utils.ClaimsKey.String()).(*managers.AuthClaims)
	handler.writeToken(ctx, claims.User)
}

func (handler *UserHandler) Protected(ctx *gin.Context) {
	utils.WriteAndLogResponse(ctx, &schemas.ProtectedDTO{Data: protectedData}, http.StatusOK)
}

func (handler *UserHandler) writeToken(ctx *gin.Context, user schemas.UserDTO) {
	token, err := handler.JWTManager.GenerateJWT(handler.JWTManager.GenerateClaims(user))
	if err != nil {
		utils.WriteAndLogError(ctx, schemas.InternalServerError, http.StatusInternalServerError, err)
		return
	}

	utils.WriteAndLogResponse(ctx, &schemas.AuthTokenDTO{AuthToken: token}, http.StatusOK)
}
