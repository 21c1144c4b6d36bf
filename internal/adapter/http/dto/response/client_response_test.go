package response

import (
	"testing"
	"time"

	"tradebill/internal/domain/entities"
)

func TestFromClient(t *testing.T) {
	now := time.Now().UTC()
	client := entities.Client{
		ID:        "cl-1",
		Name:      "Dana Whitfield",
		Email:     "dana@example.com",
		Phone:     "555-0142",
		Address:   "42 Birch Lane",
		UserID:    "user-1",
		CreatedAt: now,
		UpdatedAt: now,
	}

	res := FromClient(client)
	if res.ID != "cl-1" || res.Name != "Dana Whitfield" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Email != "dana@example.com" || res.Phone != "555-0142" || res.UserID != "user-1" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromClients(t *testing.T) {
	res := FromClients([]entities.Client{{ID: "cl-1"}, {ID: "cl-2"}})
	if len(res) != 2 || res[0].ID != "cl-1" || res[1].ID != "cl-2" {
		t.Fatalf("unexpected list: %+v", res)
	}

	if empty := FromClients(nil); empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty list, got %+v", empty)
	}
}

func TestFromClientBlock(t *testing.T) {
	block := FromClientBlock(entities.Client{ID: "cl-1", Name: "Dana", Email: "dana@example.com", Address: "42 Birch Lane", Phone: "555-0142"})
	if block.ID != "cl-1" || block.Name != "Dana" || block.Address != "42 Birch Lane" {
		t.Fatalf("unexpected block: %+v", block)
	}
}
