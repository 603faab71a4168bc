package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/inventory_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/inventory_ledger_app/internal/dto"
	"github.com/SscSPs/inventory_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// creditDebitHandler handles HTTP requests for credit/debit records and their payments.
type creditDebitHandler struct {
	recordService portssvc.CreditDebitSvcFacade
}

func newCreditDebitHandler(rs portssvc.CreditDebitSvcFacade) *creditDebitHandler {
	return &creditDebitHandler{recordService: rs}
}

func registerCreditDebitRoutes(rg *gin.RouterGroup, recordService portssvc.CreditDebitSvcFacade) {
	h := newCreditDebitHandler(recordService)

	records := rg.Group("/records")
	{
		records.GET("", h.listRecords)
		records.POST("", h.createRecord)
		records.GET("/summary", h.summary)
		records.GET("/:id", h.getRecord)
		records.POST("/:id/payments", h.addPayment)
		records.POST("/:id/clear", h.clearRecord)
	}
}

// listRecords godoc
// @Summary List credit/debit records
// @Tags records
// @Produce json
// @Param status query string false "Filter by status" Enums(pending, partial, cleared)
// @Param customerId query string false "Filter by customer"
// @Success 200 {array} dto.RecordResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /records [get]
func (h *creditDebitHandler) listRecords(c *gin.Context) {
	var params dto.ListRecordsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindFailed(c, err)
		return
	}

	records, err := h.recordService.ListRecords(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list records")
		return
	}
	c.JSON(http.StatusOK, dto.ToRecordResponses(records))
}

// summary godoc
// @Summary Summarise credit/debit records
// @Tags records
// @Produce json
// @Success 200 {object} domain.CreditSummary
// @Security BearerAuth
// @Router /records/summary [get]
func (h *creditDebitHandler) summary(c *gin.Context) {
	summary, err := h.recordService.CreditSummary(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to summarise records")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// createRecord godoc
// @Summary Open a credit/debit record for an existing sale
// @Tags records
// @Accept json
// @Produce json
// @Param record body dto.CreateRecordRequest true "Sale reference"
// @Success 201 {object} dto.RecordResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Sale already has a record"
// @Security BearerAuth
// @Router /records [post]
func (h *creditDebitHandler) createRecord(c *gin.Context) {
	var req dto.CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	record, err := h.recordService.CreateRecord(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create record")
		return
	}
	c.JSON(http.StatusCreated, dto.ToRecordResponse(record))
}

// getRecord godoc
// @Summary Get a credit/debit record
// @Tags records
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} dto.RecordResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /records/{id} [get]
func (h *creditDebitHandler) getRecord(c *gin.Context) {
	record, err := h.recordService.GetRecordByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve record")
		return
	}
	c.JSON(http.StatusOK, dto.ToRecordResponse(record))
}

// addPayment godoc
// @Summary Apply a payment to a record
// @Description Updates the record, the originating sale and the customer's balance.
// @Tags records
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param payment body dto.AddPaymentRequest true "Payment details"
// @Success 200 {object} dto.RecordResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /records/{id}/payments [post]
func (h *creditDebitHandler) addPayment(c *gin.Context) {
	var req dto.AddPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	recordID := c.Param("id")
	record, err := h.recordService.AddPayment(c.Request.Context(), recordID, req)
	if err != nil {
		respondError(c, err, "Failed to add payment")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Payment recorded",
		slog.String("record_id", recordID),
		slog.String("status", string(record.Status)))
	c.JSON(http.StatusOK, dto.ToRecordResponse(record))
}

// clearRecord godoc
// @Summary Force-clear a record
// @Description Marks the record fully paid without adding a payment. Clearing a cleared record changes nothing.
// @Tags records
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} dto.RecordResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /records/{id}/clear [post]
func (h *creditDebitHandler) clearRecord(c *gin.Context) {
	record, err := h.recordService.ClearRecord(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to clear record")
		return
	}
	c.JSON(http.StatusOK, dto.ToRecordResponse(record))
}
