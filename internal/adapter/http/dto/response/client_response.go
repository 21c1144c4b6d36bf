package response

import (
	"time"

	"tradebill/internal/domain/entities"
)

type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	UserID    string    `json:"userId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromClient(client entities.Client) ClientResponse {
	return ClientResponse{
		ID:        client.ID,
		Name:      client.Name,
		Email:     client.Email,
		Phone:     client.Phone,
		Address:   client.Address,
		UserID:    client.UserID,
		CreatedAt: client.CreatedAt,
		UpdatedAt: client.UpdatedAt,
	}
}

func FromClients(clients []entities.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(clients))
	for _, client := range clients {
		out = append(out, FromClient(client))
	}
	return out
}

// ClientBlock is the partial client view embedded in details payloads.
type ClientBlock struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

func FromClientBlock(client entities.Client) ClientBlock {
	return ClientBlock{
		ID:      client.ID,
		Name:    client.Name,
		Email:   client.Email,
		Address: client.Address,
	}
}
