package models

import (
	"encoding/json"
	"testing"
)

func TestDecimalUnmarshalNumberAndString(t *testing.T) {
	var payload struct {
		BaseCost Decimal `json:"baseCost"`
		Margin   Decimal `json:"margin"`
	}
	if err := json.Unmarshal([]byte(`{"baseCost": 1000, "margin": "20.5"}`), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload.BaseCost.Float64() != 1000 {
		t.Fatalf("baseCost = %v", payload.BaseCost)
	}
	if payload.Margin.Float64() != 20.5 {
		t.Fatalf("margin = %v", payload.Margin)
	}
}

func TestDecimalUnmarshalRejectsText(t *testing.T) {
	var d Decimal
	if err := json.Unmarshal([]byte(`"not a number"`), &d); err == nil {
		t.Fatal("expected error for non-numeric string")
	}
}

func TestDecimalEmptyStringIsZero(t *testing.T) {
	var d Decimal
	if err := json.Unmarshal([]byte(`""`), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if d.Float64() != 0 {
		t.Fatalf("empty string = %v, want 0", d)
	}
}

func TestDecimalMarshalsAsNumber(t *testing.T) {
	raw, err := json.Marshal(Decimal(19.99))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != "19.99" {
		t.Fatalf("marshal = %s", raw)
	}
}
