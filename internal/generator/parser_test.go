package generator

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseResponse_AllSections(t *testing.T) {
	raw := `MAIN_CONTENT:
Rates just moved to 6.88% this week.
That could change your monthly payment math.

HASHTAGS:
#MortgageRates #FirstTimeBuyer not-a-tag #RealEstate

VISUAL_CONCEPT:
Line chart of the last 12 weeks of rates.

ENGAGEMENT_STRATEGY:
Ask followers to comment their target rate.`

	got := ParseResponse(raw)

	wantMain := "Rates just moved to 6.88% this week. That could change your monthly payment math."
	if got.MainContent != wantMain {
		t.Errorf("MainContent = %q, want %q", got.MainContent, wantMain)
	}
	wantTags := []string{"#MortgageRates", "#FirstTimeBuyer", "#RealEstate"}
	if !reflect.DeepEqual(got.Hashtags, wantTags) {
		t.Errorf("Hashtags = %v, want %v", got.Hashtags, wantTags)
	}
	if got.VisualConcept != "Line chart of the last 12 weeks of rates." {
		t.Errorf("VisualConcept = %q", got.VisualConcept)
	}
	if got.EngagementStrategy != "Ask followers to comment their target rate." {
		t.Errorf("EngagementStrategy = %q", got.EngagementStrategy)
	}
}

func TestParseResponse_CaseInsensitiveHeaders(t *testing.T) {
	raw := "main_content:\nHello there.\n\nHashtags:\n#One #Two"

	got := ParseResponse(raw)
	if got.MainContent != "Hello there." {
		t.Errorf("MainContent = %q", got.MainContent)
	}
	if len(got.Hashtags) != 2 {
		t.Errorf("Hashtags = %v, want 2 tags", got.Hashtags)
	}
}

func TestParseResponse_DegradesToFullText(t *testing.T) {
	raw := "  Just a plain reply with no section headers at all.  "

	got := ParseResponse(raw)
	if got.MainContent != strings.TrimSpace(raw) {
		t.Errorf("MainContent = %q, want full trimmed reply", got.MainContent)
	}
	if got.Hashtags != nil {
		t.Errorf("Hashtags = %v, want none", got.Hashtags)
	}
}

func TestParseResponse_HashtagsAcrossLines(t *testing.T) {
	raw := "MAIN_CONTENT:\nPost body.\n\nHASHTAGS:\n#A #B\n#C"

	got := ParseResponse(raw)
	want := []string{"#A", "#B", "#C"}
	if !reflect.DeepEqual(got.Hashtags, want) {
		t.Errorf("Hashtags = %v, want %v", got.Hashtags, want)
	}
}
