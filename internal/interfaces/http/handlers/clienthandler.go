package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"gymdesk/internal/application/client/dto"
	"gymdesk/internal/shared/biztime"
	"gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/id"
	"gymdesk/internal/shared/logger"
	"gymdesk/internal/shared/utils"
)

// ClientHandler serves the member roster: CRUD, renewals, payments and the
// client list export.
type ClientHandler struct {
	createClientUC  createClientUseCase
	updateClientUC  updateClientUseCase
	deleteClientUC  deleteClientUseCase
	getClientUC     getClientUseCase
	listClientsUC   listClientsUseCase
	renewClientUC   renewClientUseCase
	recordPaymentUC recordPaymentUseCase
	listPaymentsUC  listPaymentsUseCase
	exportClientsUC csvExportUseCase
	clock           biztime.Clock
	logger          logger.Interface
}

func NewClientHandler(
	createClientUC createClientUseCase,
	updateClientUC updateClientUseCase,
	deleteClientUC deleteClientUseCase,
	getClientUC getClientUseCase,
	listClientsUC listClientsUseCase,
	renewClientUC renewClientUseCase,
	recordPaymentUC recordPaymentUseCase,
	listPaymentsUC listPaymentsUseCase,
	exportClientsUC csvExportUseCase,
	clock biztime.Clock,
	logger logger.Interface,
) *ClientHandler {
	return &ClientHandler{
		createClientUC:  createClientUC,
		updateClientUC:  updateClientUC,
		deleteClientUC:  deleteClientUC,
		getClientUC:     getClientUC,
		listClientsUC:   listClientsUC,
		renewClientUC:   renewClientUC,
		recordPaymentUC: recordPaymentUC,
		listPaymentsUC:  listPaymentsUC,
		exportClientsUC: exportClientsUC,
		clock:           clock,
		logger:          logger,
	}
}

func (h *ClientHandler) parseSID(c *gin.Context) (string, bool) {
	sid, err := utils.ParseSIDParam(c, "sid", id.PrefixClient, "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return "", false
	}
	return sid, true
}

// ListClients handles GET /clients?search=&status=&plan=
func (h *ClientHandler) ListClients(c *gin.Context) {
	var query dto.ListClientsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid query parameters", err.Error()))
		return
	}

	result, err := h.listClientsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetClient handles GET /clients/:sid
func (h *ClientHandler) GetClient(c *gin.Context) {
	sid, ok := h.parseSID(c)
	if !ok {
		return
	}

	result, err := h.getClientUC.Execute(c.Request.Context(), sid)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateClient handles POST /clients
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req dto.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create client", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.createClientUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Client created successfully")
}

// UpdateClient handles PUT /clients/:sid
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	sid, ok := h.parseSID(c)
	if !ok {
		return
	}

	var req dto.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update client", "sid", sid, "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.updateClientUC.Execute(c.Request.Context(), sid, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Client updated successfully", result)
}

// DeleteClient handles DELETE /clients/:sid
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	sid, ok := h.parseSID(c)
	if !ok {
		return
	}

	if err := h.deleteClientUC.Execute(c.Request.Context(), sid); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// RenewClient handles POST /clients/:sid/renew
func (h *ClientHandler) RenewClient(c *gin.Context) {
	sid, ok := h.parseSID(c)
	if !ok {
		return
	}

	var req dto.RenewClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for renew client", "sid", sid, "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.renewClientUC.Execute(c.Request.Context(), sid, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Membership renewed successfully", result)
}

// RecordPayment handles POST /clients/:sid/payment
func (h *ClientHandler) RecordPayment(c *gin.Context) {
	sid, ok := h.parseSID(c)
	if !ok {
		return
	}

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for record payment", "sid", sid, "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.recordPaymentUC.Execute(c.Request.Context(), sid, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Payment recorded successfully")
}

// ListPayments handles GET /clients/:sid/payments
func (h *ClientHandler) ListPayments(c *gin.Context) {
	sid, ok := h.parseSID(c)
	if !ok {
		return
	}

	result, err := h.listPaymentsUC.Execute(c.Request.Context(), sid)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ExportClients handles GET /clients/export.csv
func (h *ClientHandler) ExportClients(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.exportClientsUC.Execute(c.Request.Context(), &buf); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	filename := "clients-" + biztime.FormatDate(h.clock.Now()) + ".csv"
	utils.CSVResponse(c, filename, buf.Bytes())
}
