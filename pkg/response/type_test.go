package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"university-assistant/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	ict := time.FixedZone("ICT", 7*60*60)
	tm := time.Date(2024, 5, 1, 22, 30, 0, 0, ict)

	b, err := json.Marshal(response.DateTime(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}
	if got, want := string(b), `"2024-05-01T15:30:00Z"`; got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestDateTimeMarshalJSON_Zero(t *testing.T) {
	b, err := json.Marshal(struct {
		At response.DateTime `json:"at"`
	}{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := string(b); got != `{"at":null}` {
		t.Errorf("expected null for zero time, got %s", got)
	}
}
