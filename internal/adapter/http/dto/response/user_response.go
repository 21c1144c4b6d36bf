package response

import "tradebill/internal/domain/entities"

// BusinessBlock is the slim business-profile view embedded in job details.
type BusinessBlock struct {
	ID            string          `json:"id"`
	BusinessName  string          `json:"businessName"`
	BusinessEmail string          `json:"businessEmail,omitempty"`
	HourlyRate    entities.Number `json:"hourlyRate"`
}

func FromBusinessBlock(user entities.User) BusinessBlock {
	return BusinessBlock{
		ID:            user.ID,
		BusinessName:  user.BusinessName,
		BusinessEmail: user.BusinessEmail,
		HourlyRate:    user.HourlyRate,
	}
}

// BusinessProfileBlock is the full business-profile view embedded in invoice
// details, everything the document header is built from.
type BusinessProfileBlock struct {
	ID               string          `json:"id"`
	BusinessName     string          `json:"businessName"`
	BusinessEmail    string          `json:"businessEmail,omitempty"`
	BusinessPhone    string          `json:"businessPhone,omitempty"`
	BusinessAddress  string          `json:"businessAddress,omitempty"`
	BusinessCategory string          `json:"businessCategory,omitempty"`
	HourlyRate       entities.Number `json:"hourlyRate"`
}

func FromBusinessProfileBlock(user entities.User) BusinessProfileBlock {
	return BusinessProfileBlock{
		ID:               user.ID,
		BusinessName:     user.BusinessName,
		BusinessEmail:    user.BusinessEmail,
		BusinessPhone:    user.BusinessPhone,
		BusinessAddress:  user.BusinessAddress,
		BusinessCategory: user.BusinessCategory,
		HourlyRate:       user.HourlyRate,
	}
}
