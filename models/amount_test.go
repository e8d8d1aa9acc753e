package models

import (
	"encoding/json"
	"testing"
)

func TestAmountUnmarshal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		json string
		want float64
	}{
		{name: "строка с числом", json: `{"v":"12.50"}`, want: 12.5},
		{name: "число", json: `{"v":12.5}`, want: 12.5},
		{name: "поле отсутствует", json: `{}`, want: 0},
		{name: "null", json: `{"v":null}`, want: 0},
		{name: "мусор", json: `{"v":"abc"}`, want: 0},
		{name: "пустая строка", json: `{"v":""}`, want: 0},
		{name: "целое строкой", json: `{"v":"1500"}`, want: 1500},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var payload struct {
				V Amount `json:"v"`
			}
			if err := json.Unmarshal([]byte(tc.json), &payload); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got := payload.V.Float64(); got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestAmountMarshal(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Amount(12.5))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "12.5" {
		t.Fatalf("got %s, want 12.5", data)
	}
}
