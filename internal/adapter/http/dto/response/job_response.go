package response

import (
	"time"

	"tradebill/internal/domain/entities"
	"tradebill/internal/usecase"
)

type JobResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	Location    string    `json:"location,omitempty"`
	StartTime   string    `json:"startTime,omitempty"`
	EndTime     string    `json:"endTime,omitempty"`
	ClientID    string    `json:"clientId,omitempty"`
	UserID      string    `json:"userId,omitempty"`
	InvoiceID   string    `json:"invoiceId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromJob(job entities.Job) JobResponse {
	return JobResponse{
		ID:          job.ID,
		Title:       job.Title,
		Description: job.Description,
		Status:      string(job.Status),
		Location:    job.Location,
		StartTime:   job.StartTime,
		EndTime:     job.EndTime,
		ClientID:    job.ClientID,
		UserID:      job.UserID,
		InvoiceID:   job.InvoiceID,
		CreatedAt:   job.CreatedAt,
		UpdatedAt:   job.UpdatedAt,
	}
}

func FromJobs(jobs []entities.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, FromJob(job))
	}
	return out
}

// ClientJobResponse annotates a job with the number and status of the invoice
// it is linked to, for the per-client job listing.
type ClientJobResponse struct {
	JobResponse
	InvoiceNumber string `json:"invoiceNumber,omitempty"`
	InvoiceStatus string `json:"invoiceStatus,omitempty"`
}

func FromClientJob(job usecase.ClientJob) ClientJobResponse {
	return ClientJobResponse{
		JobResponse:   FromJob(job.Job),
		InvoiceNumber: job.InvoiceNumber,
		InvoiceStatus: string(job.InvoiceStatus),
	}
}

func FromClientJobs(jobs []usecase.ClientJob) []ClientJobResponse {
	out := make([]ClientJobResponse, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, FromClientJob(job))
	}
	return out
}

// JobBlock is the partial job view embedded in invoice details.
type JobBlock struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Status    string `json:"status"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
	Location  string `json:"location,omitempty"`
}

func FromJobBlock(job entities.Job) JobBlock {
	return JobBlock{
		ID:        job.ID,
		Title:     job.Title,
		Status:    string(job.Status),
		StartTime: job.StartTime,
		EndTime:   job.EndTime,
		Location:  job.Location,
	}
}

// JobDetailsResponse is the job plus partial views of its linked documents.
// Blocks are null when the link is absent or dangling.
type JobDetailsResponse struct {
	Job     JobResponse    `json:"job"`
	Client  *ClientBlock   `json:"client"`
	User    *BusinessBlock `json:"user"`
	Invoice *InvoiceBlock  `json:"invoice"`
}

func FromJobDetails(details usecase.JobDetails) JobDetailsResponse {
	out := JobDetailsResponse{Job: FromJob(details.Job)}
	if details.Client != nil {
		block := FromClientBlock(*details.Client)
		out.Client = &block
	}
	if details.User != nil {
		block := FromBusinessBlock(*details.User)
		out.User = &block
	}
	if details.Invoice != nil {
		block := FromInvoiceBlock(*details.Invoice)
		out.Invoice = &block
	}
	return out
}
