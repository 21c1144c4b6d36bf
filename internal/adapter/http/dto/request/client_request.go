package request

import "tradebill/internal/domain/entities"

type ClientCreateRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	UserID  string `json:"userId" binding:"required"`
}

func (r ClientCreateRequest) ToEntity() entities.Client {
	return entities.Client{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
		UserID:  r.UserID,
	}
}

// ClientUpdateRequest is a sparse update: only fields present in the payload
// reach the store, so a null and an absent field mean the same thing.
type ClientUpdateRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	UserID  *string `json:"userId"`
}

func (r ClientUpdateRequest) ToUpdateMap() map[string]any {
	fields := map[string]any{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Email != nil {
		fields["email"] = *r.Email
	}
	if r.Phone != nil {
		fields["phone"] = *r.Phone
	}
	if r.Address != nil {
		fields["address"] = *r.Address
	}
	if r.UserID != nil {
		fields["userId"] = *r.UserID
	}
	return fields
}
