package domain

import "testing"

func TestLeadTimeMinutes(t *testing.T) {
	tests := []struct {
		importance int
		want       int
	}{
		{1, 5},
		{2, 5},
		{3, 5},
		{4, 10},
		{5, 10},
		{6, 10},
		{7, 15},
		{8, 15},
		{9, 20},
		{10, 20},
	}

	for _, tt := range tests {
		if got := LeadTimeMinutes(tt.importance); got != tt.want {
			t.Errorf("LeadTimeMinutes(%d) = %d, want %d", tt.importance, got, tt.want)
		}
	}
}
