package request

import "tradebill/internal/domain/entities"

type JobCreateRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Location    string `json:"location"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	ClientID    string `json:"clientId"`
	UserID      string `json:"userId"`
}

func (r JobCreateRequest) ToEntity() entities.Job {
	return entities.Job{
		Title:       r.Title,
		Description: r.Description,
		Status:      entities.JobStatus(r.Status),
		Location:    r.Location,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		ClientID:    r.ClientID,
		UserID:      r.UserID,
	}
}

// JobUpdateRequest carries a sparse update. InvoiceID is settable here because
// invoices are linked onto jobs after the fact.
type JobUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Location    *string `json:"location"`
	StartTime   *string `json:"startTime"`
	EndTime     *string `json:"endTime"`
	ClientID    *string `json:"clientId"`
	InvoiceID   *string `json:"invoiceId"`
}

func (r JobUpdateRequest) ToUpdateMap() map[string]any {
	fields := map[string]any{}
	if r.Title != nil {
		fields["title"] = *r.Title
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.Status != nil {
		fields["status"] = *r.Status
	}
	if r.Location != nil {
		fields["location"] = *r.Location
	}
	if r.StartTime != nil {
		fields["startTime"] = *r.StartTime
	}
	if r.EndTime != nil {
		fields["endTime"] = *r.EndTime
	}
	if r.ClientID != nil {
		fields["clientId"] = *r.ClientID
	}
	if r.InvoiceID != nil {
		fields["invoiceId"] = *r.InvoiceID
	}
	return fields
}
