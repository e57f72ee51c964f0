package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lrsproject/lrs/internal/application/statement/usecases"
	"github.com/lrsproject/lrs/internal/interfaces/http/middleware"
	"github.com/lrsproject/lrs/internal/shared/logger"
	"github.com/lrsproject/lrs/internal/shared/utils"
)

// maxStatementBytes caps a single statement body.
const maxStatementBytes = 1 << 20

type StatementHandler struct {
	saveStatementUC saveStatementUseCase
	getStatementUC  getStatementUseCase
	logger          logger.Interface
}

func NewStatementHandler(
	saveStatementUC saveStatementUseCase,
	getStatementUC getStatementUseCase,
	logger logger.Interface,
) *StatementHandler {
	return &StatementHandler{
		saveStatementUC: saveStatementUC,
		getStatementUC:  getStatementUC,
		logger:          logger,
	}
}

// SaveStatement handles POST and PUT /statements. The body is passed on
// as raw bytes so that format detection sees exactly what was sent.
func (h *StatementHandler) SaveStatement(c *gin.Context) {
	authCtx, ok := middleware.GetAuthContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, middleware.MsgMissingCredentials)
		return
	}

	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxStatementBytes+1))
	if err != nil {
		h.logger.Warnw("failed to read statement body", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to read request body")
		return
	}
	if len(payload) > maxStatementBytes {
		utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, "Statement is too large")
		return
	}

	result, err := h.saveStatementUC.Execute(c.Request.Context(), usecases.SaveStatementCommand{
		Payload:      payload,
		CredentialID: authCtx.CredentialID,
		TenantID:     authCtx.TenantID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("statement processing successful", "uuid", result.UUID, "type", result.Type)
	utils.CreatedResponse(c)
}

// GetStatement handles GET /statements/:id.
func (h *StatementHandler) GetStatement(c *gin.Context) {
	authCtx, ok := middleware.GetAuthContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, middleware.MsgMissingCredentials)
		return
	}

	tenantID, err := authCtx.EffectiveTenant(c.Query("tenant_id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getStatementUC.Execute(c.Request.Context(), usecases.GetStatementQuery{
		UUID:         c.Param("id"),
		TenantID:     tenantID,
		CredentialID: authCtx.CredentialID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, result)
}
