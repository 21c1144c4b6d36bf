package handlers

import (
	"errors"
	"fmt"
	"net/http"

	request "tradebill/internal/adapter/http/dto/request"
	response "tradebill/internal/adapter/http/dto/response"
	"tradebill/internal/usecase"
	"tradebill/internal/usecase/interfaces"
	"tradebill/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidClientPayload = pkg.NewDomainErrorSimple("INVALID_CLIENT_PAYLOAD", "Invalid client payload", http.StatusBadRequest)
)

// ClientHandler handles HTTP requests for the client book.

type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

func (h *ClientHandler) CreateClient(c *gin.Context) {
	var payload request.ClientCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidClientPayload.HTTPStatus, errInvalidClientPayload.ToHTTPError())
		return
	}

	client, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromClient(client))
}

func (h *ClientHandler) ListClients(c *gin.Context) {
	filter := interfaces.ClientFilter{
		UserID: c.Query("user_id"),
		Skip:   parseQueryInt(c, "skip", 0),
		Limit:  parseQueryInt(c, "limit", 0),
	}

	clients, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClients(clients))
}

func (h *ClientHandler) GetClientByID(c *gin.Context) {
	client, err := h.usecase.GetByID(c.Request.Context(), c.Param("client_id"))
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClient(client))
}

func (h *ClientHandler) UpdateClient(c *gin.Context) {
	var payload request.ClientUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidClientPayload.HTTPStatus, errInvalidClientPayload.ToHTTPError())
		return
	}

	client, err := h.usecase.Update(c.Request.Context(), c.Param("client_id"), payload.ToUpdateMap())
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClient(client))
}

func (h *ClientHandler) DeleteClient(c *gin.Context) {
	clientID := c.Param("client_id")
	if err := h.usecase.Delete(c.Request.Context(), clientID); err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: fmt.Sprintf("Client %s deleted successfully", clientID)})
}

// ListClientJobs returns the client's jobs annotated with their invoice links.
func (h *ClientHandler) ListClientJobs(c *gin.Context) {
	jobs, err := h.usecase.ListJobs(c.Request.Context(), c.Param("client_id"), c.Query("status"))
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClientJobs(jobs))
}

// ListClientInvoices returns the client's invoices annotated with job context.
func (h *ClientHandler) ListClientInvoices(c *gin.Context) {
	invoices, err := h.usecase.ListInvoices(c.Request.Context(), c.Param("client_id"), c.Query("status"))
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClientInvoices(invoices))
}

func mapClientError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClientID):
		return pkg.NewDomainErrorSimple("INVALID_CLIENT_ID", "Invalid client ID format", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidClientName):
		return pkg.NewDomainErrorSimple("INVALID_CLIENT_NAME", "Client name is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("INVALID_USER_ID", "Invalid user ID format", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEmptyClientUpdate):
		return pkg.NewDomainErrorSimple("EMPTY_CLIENT_UPDATE", "No fields to update", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
