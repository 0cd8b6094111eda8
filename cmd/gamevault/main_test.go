package main

import (
	"testing"

	"github.com/vovakirdan/gamevault/internal/registry"
)

func TestEveryGameHasSetup(t *testing.T) {
	for _, g := range registry.List() {
		if _, ok := gameSetup[g.ID]; !ok {
			t.Errorf("%s has no --config/--difficulty setup", g.ID)
		}
	}
}

func TestSplitOrigins(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"*", []string{"*"}},
		{"https://a.example, https://b.example", []string{"https://a.example", "https://b.example"}},
		{" , ", nil},
	}

	for _, tc := range tests {
		got := splitOrigins(tc.in)
		if len(got) != len(tc.want) {
			t.Errorf("splitOrigins(%q) = %v, expected %v", tc.in, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("splitOrigins(%q)[%d] = %q, expected %q", tc.in, i, got[i], tc.want[i])
			}
		}
	}
}
