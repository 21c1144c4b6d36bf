package entities

import (
	"encoding/json"
	"testing"
)

func TestNumber_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want float64
	}{
		{"plain number", `3.5`, 3.5},
		{"integer", `40`, 40},
		{"numeric string", `"75"`, 75},
		{"numeric string with spaces", `" 12.25 "`, 12.25},
		{"garbage string", `"two"`, 0},
		{"null", `null`, 0},
		{"object", `{"a":1}`, 0},
		{"array", `[1]`, 0},
		{"boolean", `true`, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var n Number
			if err := json.Unmarshal([]byte(tc.in), &n); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if n.Float() != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, n.Float())
			}
		})
	}
}

func TestNumber_UnmarshalJSONInsideDocument(t *testing.T) {
	raw := `{"description":"Labor","quantity":"3","rate":"bad"}`
	var item LineItem
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Quantity.Float() != 3 {
		t.Fatalf("expected quantity 3, got %v", item.Quantity.Float())
	}
	if item.Rate.Float() != 0 {
		t.Fatalf("expected rate 0, got %v", item.Rate.Float())
	}
}

func TestNumber_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(LineItem{Description: "Labor", Quantity: 2, Rate: 75.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"description":"Labor","quantity":2,"rate":75.5}`
	if string(b) != want {
		t.Fatalf("expected %s, got %s", want, string(b))
	}
}
