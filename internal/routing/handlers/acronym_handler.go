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

type AcronymHdl interface {
	ListAcronyms(ctx *gin.Context)
	GetAcronym(ctx *gin.Context)
	CreateAcronym(ctx *gin.Context)
	UpdateAcronym(ctx *gin.Context)
	DeleteAcronym(ctx *gin.Context)
}

type AcronymHandler struct {
	DatabaseManager managers.DatabaseMgr
}

func NewAcronymHandler(databaseManager managers.DatabaseMgr) AcronymHdl {
	return &AcronymHandler{
		DatabaseManager: databaseManager,
	}
}

func (handler *AcronymHandler) ListAcronyms(ctx *gin.Context) {
	offset, limit := utils.ParsePaginationParams(ctx)

	acronyms, err := handler.DatabaseManager.Acronyms().ListAcronyms(ctx.Request.Context(), offset, limit)
	if err != nil {
		utils.WriteAndLogError(ctx, schemas.InternalServerError, http.StatusInternalServerError, err)
		return
	}

	utils.WriteAndLogResponse(ctx, schemas.NewAcronymDTOs(acronyms), http.StatusOK)
}

func (handler *AcronymHandler) GetAcronym(ctx *gin.Context) {
	acronymId := ctx.Param(utils.AcronymIdKey)

	acronym, err := handler.DatabaseManager.Acronyms().GetAcronym(ctx.Request.Context(), acronymId)
	if err != nil {
		writeStoreError(ctx, err)
		return
	}

	utils.WriteAndLogResponse(ctx, schemas.NewAcronymDTO(acronym), http.StatusOK)
}

func (handler *AcronymHandler) CreateAcronym(ctx *gin.Context) {
	createRequest := ctx.Value(utils.SanitizedPayloadKey.String()).(*schemas.CreateAcronymRequest)

	acronym := &schemas.Acronym{
		Acronym:    createRequest.Acronym,
		Definition: createRequest.Definition,
		Category:   createRequest.Category,
		Notes:      createRequest.Notes,
	}
	if err := handler.DatabaseManager.Acronyms().CreateAcronym(ctx.Request.Context(), acronym); err != nil {
		utils.WriteAndLogError(ctx, schemas.InternalServerError, http.StatusInternalServerError, err)
		return
	}

	utils.WriteAndLogResponse(ctx, schemas.NewAcronymDTO(acronym), http.StatusCreated)
}

// UpdateAcronym replaces every field of the acronym named by the path.
// The body has to repeat the path id, so a request cannot overwrite the wrong record.
func (handler *AcronymHandler) UpdateAcronym(ctx *gin.Context) {
	updateRequest := ctx.Value(utils.SanitizedPayloadKey.String()).(*schemas.UpdateAcronymRequest)
	acronymId := ctx.Param(utils.AcronymIdKey)

	if updateRequest.ID != acronymId {
		utils.WriteAndLogError(ctx, schemas.MismatchedIds(acronymId, updateRequest.ID), http.StatusBadRequest,
			errors.New("path id and body id differ"))
		return
	}

	acronym := &schemas.Acronym{
		ID:         acronymId,
		Acronym:    updateRequest.Acronym,
		Definition: updateRequest.Definition,
		Category:   updateRequest.Category,
		Notes:      updateRequest.Notes,
	}
	if err := handler.DatabaseManager.Acronyms().UpdateAcronym(ctx.Request.Context(), acronym); err != nil {
		writeStoreError(ctx, err)
		return
	}

	utils.WriteAndLogResponse(ctx, schemas.NewAcronymDTO(acronym), http.StatusOK)
}

func (handler *AcronymHandler) DeleteAcronym(ctx *gin.Context) {
	acronymId := ctx.Param(utils.AcronymIdKey)

	if err := handler.DatabaseManager.Acronyms().DeleteAcronym(ctx.Request.Context(), acronymId); err != nil {
		writeStoreError(ctx, err)
		return
	}

	utils.LogMessageWithFields(ctx, "info", "Deleted acronym "+acronymId)
	ctx.Status(http.StatusNoContent)
}

// writeStoreError answers 404 for a missing record and 500 for everything else.
func writeStoreError(ctx *gin.Context, err error) {
	if errors.Is(err, repositories.ErrNotFound) {
		utils.WriteAndLogError(ctx, schemas.AcronymNotFound, http.StatusNotFound, err)
		return
	}
	utils.WriteAndLogError(ctx, schemas.InternalServerError, http.StatusInternalServerError, err)
}
