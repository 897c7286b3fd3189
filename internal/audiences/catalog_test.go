package audiences

import (
	"testing"

	"socialagent/internal/models"
)

func TestGetProfile_KnownAudiences(t *testing.T) {
	tests := []struct {
		key      string
		wantName string
	}{
		{models.AudienceGenZ, "Generation Z"},
		{models.AudienceMillennials, "Millennials"},
		{models.AudienceGenX, "Generation X"},
		{models.AudienceBabyBoomers, "Baby Boomers"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			p := GetProfile(tt.key)
			if p.Name != tt.wantName {
				t.Errorf("GetProfile(%q).Name = %q, want %q", tt.key, p.Name, tt.wantName)
			}
			if p.Key != tt.key {
				t.Errorf("GetProfile(%q).Key = %q, want %q", tt.key, p.Key, tt.key)
			}
		})
	}
}

func TestGetProfile_UnknownFallsBackToMillennials(t *testing.T) {
	tests := []string{"", "zoomers", "gen alpha", "MILLENIALS"}

	for _, key := range tests {
		t.Run("key="+key, func(t *testing.T) {
			p := GetProfile(key)
			if p.Key != models.AudienceMillennials {
				t.Errorf("GetProfile(%q).Key = %q, want millennials fallback", key, p.Key)
			}
		})
	}
}

func TestGetProfile_NormalizesSpacing(t *testing.T) {
	p := GetProfile("Baby Boomers")
	if p.Key != models.AudienceBabyBoomers {
		t.Errorf("GetProfile(\"Baby Boomers\").Key = %q, want baby_boomers", p.Key)
	}
}

func TestList_CoversAllAudiences(t *testing.T) {
	summaries := List()
	if len(summaries) != len(models.Audiences) {
		t.Fatalf("List() returned %d entries, want %d", len(summaries), len(models.Audiences))
	}
	for i, key := range models.Audiences {
		if summaries[i].Key != key {
			t.Errorf("List()[%d].Key = %q, want %q", i, summaries[i].Key, key)
		}
		if summaries[i].Description == "" {
			t.Errorf("List()[%d].Description is empty", i)
		}
	}
}

func TestTargetingInsights(t *testing.T) {
	insights := TargetingInsights(models.AudienceGenX, models.ContentMarketUpdate, models.PlatformLinkedIn)

	if insights.Tone != "Strategic and analytical, with clear implications" {
		t.Errorf("unexpected tone: %q", insights.Tone)
	}
	if len(insights.KeyMessages) != 4 {
		t.Errorf("KeyMessages length = %d, want 4", len(insights.KeyMessages))
	}
	if insights.CallToAction == "" {
		t.Error("CallToAction is empty")
	}
	if len(insights.ObjectionHandling) == 0 {
		t.Error("ObjectionHandling is empty")
	}
	if len(insights.ValuePropositions) < 3 {
		t.Errorf("ValuePropositions length = %d, want at least 3 base props", len(insights.ValuePropositions))
	}
}

func TestTargetingInsights_UnknownPlatformCTA(t *testing.T) {
	insights := TargetingInsights(models.AudienceMillennials, models.ContentEducational, "myspace")
	if insights.CallToAction != "Contact me to learn more about your options." {
		t.Errorf("unknown platform CTA = %q, want generic fallback", insights.CallToAction)
	}
}

func TestTargetingInsights_DoesNotMutateCatalog(t *testing.T) {
	before := len(GetProfile(models.AudienceGenX).MortgageFocus.Motivators)
	TargetingInsights(models.AudienceGenX, models.ContentEducational, models.PlatformFacebook)
	after := len(GetProfile(models.AudienceGenX).MortgageFocus.Motivators)
	if before != after {
		t.Errorf("catalog motivators mutated: before %d, after %d", before, after)
	}
}
