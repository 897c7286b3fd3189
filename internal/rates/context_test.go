package rates

import (
	"strings"
	"testing"

	"socialagent/internal/models"
)

func TestMarketContext(t *testing.T) {
	tests := []struct {
		name     string
		snapshot models.RateSnapshot
		want     string
	}{
		{
			name:     "significant increase",
			snapshot: models.RateSnapshot{CurrentRate: 7.6, RateChange: 0.15},
			want:     "increased significantly by 0.15%",
		},
		{
			name:     "notable drop",
			snapshot: models.RateSnapshot{CurrentRate: 7.1, RateChange: -0.12},
			want:     "dropped notably by 0.12%",
		},
		{
			name:     "small decline",
			snapshot: models.RateSnapshot{CurrentRate: 6.9, RateChange: -0.06},
			want:     "declined by 0.06%",
		},
		{
			name:     "stable",
			snapshot: models.RateSnapshot{CurrentRate: 6.2, RateChange: 0.01},
			want:     "remained relatively stable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MarketContext(tt.snapshot)
			if !strings.Contains(got, tt.want) {
				t.Errorf("MarketContext() = %q, want substring %q", got, tt.want)
			}
			if !strings.HasSuffix(got, ".") {
				t.Errorf("MarketContext() should end with a period: %q", got)
			}
		})
	}
}

func TestMarketContext_LevelBands(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{7.8, "elevated levels"},
		{7.2, "above recent averages"},
		{6.7, "moderate levels"},
		{5.9, "attractive levels"},
	}

	for _, tt := range tests {
		got := MarketContext(models.RateSnapshot{CurrentRate: tt.rate})
		if !strings.Contains(got, tt.want) {
			t.Errorf("MarketContext(rate=%v) = %q, want substring %q", tt.rate, got, tt.want)
		}
	}
}

func TestYearOverYear(t *testing.T) {
	higher := YearOverYear(models.RateSnapshot{CurrentRate: 7.15})
	if higher != "Rates are 0.30% higher than a year ago" {
		t.Errorf("YearOverYear(7.15) = %q", higher)
	}

	lower := YearOverYear(models.RateSnapshot{CurrentRate: 6.5})
	if lower != "Rates are 0.35% lower than a year ago" {
		t.Errorf("YearOverYear(6.5) = %q", lower)
	}
}
