package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lrsproject/lrs/internal/application/user/dto"
	"github.com/lrsproject/lrs/internal/application/user/usecases"
	"github.com/lrsproject/lrs/internal/interfaces/http/middleware"
	"github.com/lrsproject/lrs/internal/shared/constants"
	"github.com/lrsproject/lrs/internal/shared/logger"
	"github.com/lrsproject/lrs/internal/shared/utils"
)

// UserParam is the route parameter holding the external id, or "me".
const UserParam = "externalId"

type UserHandler struct {
	getProfileUC      getUserProfileUseCase
	listRecentUC      listRecentActivitiesUseCase
	getTotalUC        getTotalActivitiesUseCase
	getTopUC          getTopActivitiesUseCase
	getDataSourcesUC  getDataSourcesUseCase
	getDataUsesUC     getDataUsesUseCase
	updateDataShareUC updateDataShareUseCase
	logger            logger.Interface
}

func NewUserHandler(
	getProfileUC getUserProfileUseCase,
	listRecentUC listRecentActivitiesUseCase,
	getTotalUC getTotalActivitiesUseCase,
	getTopUC getTopActivitiesUseCase,
	getDataSourcesUC getDataSourcesUseCase,
	getDataUsesUC getDataUsesUseCase,
	updateDataShareUC updateDataShareUseCase,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		getProfileUC:      getProfileUC,
		listRecentUC:      listRecentUC,
		getTotalUC:        getTotalUC,
		getTopUC:          getTopUC,
		getDataSourcesUC:  getDataSourcesUC,
		getDataUsesUC:     getDataUsesUC,
		updateDataShareUC: updateDataShareUC,
		logger:            logger,
	}
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	subject, ok := h.subject(c)
	if !ok {
		return
	}
	result, err := h.getProfileUC.Execute(c.Request.Context(), subject)
	respond(c, result, err)
}

// ListRecentActivities reads limit and offset from the query string. A
// value that is not a number falls back to its default.
func (h *UserHandler) ListRecentActivities(c *gin.Context) {
	subject, ok := h.subject(c)
	if !ok {
		return
	}

	window := utils.ParseWindow(c)
	result, err := h.listRecentUC.Execute(c.Request.Context(), usecases.ListRecentActivitiesQuery{
		Subject: subject,
		Limit:   window.Limit,
		Offset:  window.Offset,
	})
	respond(c, result, err)
}

func (h *UserHandler) GetTotalActivities(c *gin.Context) {
	subject, ok := h.subject(c)
	if !ok {
		return
	}
	result, err := h.getTotalUC.Execute(c.Request.Context(), subject)
	respond(c, result, err)
}

func (h *UserHandler) GetTopActivities(c *gin.Context) {
	subject, ok := h.subject(c)
	if !ok {
		return
	}
	result, err := h.getTopUC.Execute(c.Request.Context(), subject)
	respond(c, result, err)
}

func (h *UserHandler) GetDataSources(c *gin.Context) {
	subject, ok := h.subject(c)
	if !ok {
		return
	}
	result, err := h.getDataSourcesUC.Execute(c.Request.Context(), subject)
	respond(c, result, err)
}

func (h *UserHandler) GetDataUses(c *gin.Context) {
	subject, ok := h.subject(c)
	if !ok {
		return
	}
	result, err := h.getDataUsesUC.Execute(c.Request.Context(), subject)
	respond(c, result, err)
}

func (h *UserHandler) UpdateDataShare(c *gin.Context) {
	subject, ok := h.subject(c)
	if !ok {
		return
	}

	var req dto.DataShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for datashare", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid data share request")
		return
	}

	if err := h.updateDataShareUC.Execute(c.Request.Context(), usecases.UpdateDataShareCommand{
		Subject: subject,
		Request: req,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// subject builds the read subject from the authenticated caller and the
// path. For "me" the session middleware has already put the external id
// and its tenant on the context. It writes the error response itself and
// reports false when the request cannot proceed.
func (h *UserHandler) subject(c *gin.Context) (usecases.Subject, bool) {
	authCtx, ok := middleware.GetAuthContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, middleware.MsgMissingCredentials)
		return usecases.Subject{}, false
	}

	externalID := c.Param(UserParam)
	if externalID == constants.CurrentUserSegment {
		sessionID := c.GetString(constants.ContextKeyExternalID)
		tenantID := c.GetUint(constants.ContextKeySessionTenant)
		if sessionID == "" || tenantID == 0 {
			utils.ErrorResponse(c, http.StatusUnauthorized, middleware.MsgMissingSession)
			return usecases.Subject{}, false
		}
		return usecases.Subject{
			TenantID:     tenantID,
			ExternalID:   sessionID,
			CredentialID: authCtx.CredentialID,
		}, true
	}

	tenantID, err := authCtx.EffectiveTenant(c.Query("tenant_id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return usecases.Subject{}, false
	}

	return usecases.Subject{
		TenantID:     tenantID,
		ExternalID:   externalID,
		CredentialID: authCtx.CredentialID,
	}, true
}

func respond(c *gin.Context, result any, err error) {
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, result)
}
