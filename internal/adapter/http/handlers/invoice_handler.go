package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	request "tradebill/internal/adapter/http/dto/request"
	response "tradebill/internal/adapter/http/dto/response"
	"tradebill/internal/domain/entities"
	"tradebill/internal/usecase"
	"tradebill/internal/usecase/interfaces"
	"tradebill/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidInvoicePayload = pkg.NewDomainErrorSimple("INVALID_INVOICE_PAYLOAD", "Invalid invoice payload", http.StatusBadRequest)
)

// InvoiceHandler handles HTTP requests for invoices, including the rendered
// PDF endpoints.

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var payload request.InvoiceCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	invoice, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInvoice(invoice))
}

func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	filter := interfaces.InvoiceFilter{
		UserID:   c.Query("user_id"),
		ClientID: c.Query("client_id"),
		Status:   c.Query("status"),
		Skip:     parseQueryInt(c, "skip", 0),
		Limit:    parseQueryInt(c, "limit", 0),
	}

	invoices, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoices(invoices))
}

func (h *InvoiceHandler) GetInvoiceByID(c *gin.Context) {
	invoice, err := h.usecase.GetByID(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	var payload request.InvoiceUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	invoice, err := h.usecase.Update(c.Request.Context(), c.Param("invoice_id"), payload.ToUpdateMap())
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	invoiceID := c.Param("invoice_id")
	if err := h.usecase.Delete(c.Request.Context(), invoiceID); err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: fmt.Sprintf("Invoice %s deleted successfully", invoiceID)})
}

// GetInvoiceDetails returns the invoice with partial views of the business
// profile, client and job it is linked to.
func (h *InvoiceHandler) GetInvoiceDetails(c *gin.Context) {
	details, err := h.usecase.Details(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoiceDetails(details))
}

// GetInvoicePrintable returns a render-ready projection of the invoice.
func (h *InvoiceHandler) GetInvoicePrintable(c *gin.Context) {
	details, err := h.usecase.Details(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoicePrintable(details))
}

// DownloadInvoicePDF streams the rendered document as a PDF attachment.
func (h *InvoiceHandler) DownloadInvoicePDF(c *gin.Context) {
	invoiceID := c.Param("invoice_id")
	log.Printf("[invoice][handler] pdf start invoice_id=%s", invoiceID)

	invoice, data, err := h.usecase.RenderPDF(c.Request.Context(), invoiceID)
	if err != nil {
		log.Printf("[invoice][handler] pdf failed invoice_id=%s err=%v", invoiceID, err)
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[invoice][handler] pdf success invoice_id=%s bytes=%d", invoiceID, len(data))

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", pdfFileName(invoice)))
	c.Data(http.StatusOK, "application/pdf", data)
}

// GetInvoicePDFBase64 returns the rendered document base64-encoded for
// callers that cannot take a binary body.
func (h *InvoiceHandler) GetInvoicePDFBase64(c *gin.Context) {
	invoiceID := c.Param("invoice_id")

	invoice, encoded, err := h.usecase.RenderPDFBase64(c.Request.Context(), invoiceID)
	if err != nil {
		log.Printf("[invoice][handler] pdf-base64 failed invoice_id=%s err=%v", invoiceID, err)
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.InvoicePDFBase64Response{InvoiceID: invoice.ID, PDFBase64: encoded})
}

// RenderInvoicePDF renders a document from the request body alone, with
// nothing read from the store. The body is either a details-shaped envelope
// or a bare invoice record.
func (h *InvoiceHandler) RenderInvoicePDF(c *gin.Context) {
	var payload request.InvoicePDFRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	data, err := h.usecase.RenderDocument(payload.Invoice, payload.User, payload.Client)
	if err != nil {
		log.Printf("[invoice][handler] ad-hoc render failed err=%v", err)
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", pdfFileName(payload.Invoice)))
	c.Data(http.StatusOK, "application/pdf", data)
}

func pdfFileName(invoice entities.Invoice) string {
	switch {
	case invoice.InvoiceNumber != "":
		return fmt.Sprintf("invoice-%s.pdf", invoice.InvoiceNumber)
	case invoice.ID != "":
		return fmt.Sprintf("invoice-%s.pdf", invoice.ID)
	default:
		return "invoice.pdf"
	}
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID):
		return pkg.NewDomainErrorSimple("INVALID_INVOICE_ID", "Invalid invoice ID format", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("INVALID_USER_ID", "Invalid user ID format", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidClientID):
		return pkg.NewDomainErrorSimple("INVALID_CLIENT_ID", "Invalid client ID format", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEmptyInvoiceUpdate):
		return pkg.NewDomainErrorSimple("EMPTY_INVOICE_UPDATE", "No fields to update", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRenderFailed):
		return pkg.NewDomainError("PDF_RENDER_FAILED", "Failed to render invoice PDF", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
