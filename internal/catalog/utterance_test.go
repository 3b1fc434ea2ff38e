package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseUtterance(t *testing.T) {
	tests := []struct {
		text string
		want Utterance
		ok   bool
	}{
		{"add milk", Utterance{Name: "Milk"}, true},
		{"Buy 2 cartons of eggs", Utterance{Name: "Cartons of eggs", Quantity: "2"}, true},
		{"I need the bananas", Utterance{Name: "Bananas"}, true},
		{"please get 6 apples", Utterance{Name: "Apples", Quantity: "6"}, true},
		{"purchase an avocado", Utterance{Name: "Avocado"}, true},
		{"Peanut Butter", Utterance{Name: "Peanut Butter"}, true},
		{"3 lemons", Utterance{Name: "Lemons", Quantity: "3"}, true},
		{"   ", Utterance{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := ParseUtterance(tt.text)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("utterance mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
