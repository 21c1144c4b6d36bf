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
	errInvalidJobPayload = pkg.NewDomainErrorSimple("INVALID_JOB_PAYLOAD", "Invalid job payload", http.StatusBadRequest)
)

// JobHandler handles HTTP requests for jobs.

type JobHandler struct {
	usecase usecase.IJobUseCase
}

func NewJobHandler(uc usecase.IJobUseCase) *JobHandler {
	return &JobHandler{usecase: uc}
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	var payload request.JobCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromJob(job))
}

func (h *JobHandler) ListJobs(c *gin.Context) {
	filter := interfaces.JobFilter{
		UserID:   c.Query("user_id"),
		ClientID: c.Query("client_id"),
		Status:   c.Query("status"),
		Skip:     parseQueryInt(c, "skip", 0),
		Limit:    parseQueryInt(c, "limit", 0),
	}

	jobs, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobs(jobs))
}

func (h *JobHandler) GetJobByID(c *gin.Context) {
	job, err := h.usecase.GetByID(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) UpdateJob(c *gin.Context) {
	var payload request.JobUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.Update(c.Request.Context(), c.Param("job_id"), payload.ToUpdateMap())
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) DeleteJob(c *gin.Context) {
	jobID := c.Param("job_id")
	if err := h.usecase.Delete(c.Request.Context(), jobID); err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: fmt.Sprintf("Job %s deleted successfully", jobID)})
}

// GetJobDetails returns the job with partial views of its client, business
// profile and invoice.
func (h *JobHandler) GetJobDetails(c *gin.Context) {
	details, err := h.usecase.Details(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobDetails(details))
}

// GetJobInvoice returns the invoice linked to the job.
func (h *JobHandler) GetJobInvoice(c *gin.Context) {
	invoice, err := h.usecase.GetInvoice(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

func mapJobError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID):
		return pkg.NewDomainErrorSimple("INVALID_JOB_ID", "Invalid job ID format", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidJobTitle):
		return pkg.NewDomainErrorSimple("INVALID_JOB_TITLE", "Job title is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEmptyJobUpdate):
		return pkg.NewDomainErrorSimple("EMPTY_JOB_UPDATE", "No fields to update", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobHasNoInvoice):
		return pkg.NewDomainErrorSimple("JOB_HAS_NO_INVOICE", "No invoice found for this job", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
