package generator

import "strings"

// ParsedResponse holds the sections recovered from an LLM reply.
type ParsedResponse struct {
	MainContent        string
	Hashtags           []string
	VisualConcept      string
	EngagementStrategy string
}

const (
	sectionNone = iota
	sectionMain
	sectionHashtags
	sectionVisual
	sectionEngagement
)

// ParseResponse splits an LLM reply into its labeled sections. Header matching
// is case-insensitive and tolerates leading whitespace. Hashtag lines keep
// only #-prefixed tokens. If no MAIN_CONTENT section is found, the whole reply
// becomes the main content so a malformed reply still produces a post.
func ParseResponse(raw string) ParsedResponse {
	var out ParsedResponse
	var main, visual, engagement []string

	section := sectionNone
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)

		upper := strings.ToUpper(line)
		switch {
		case strings.HasPrefix(upper, "MAIN_CONTENT:"):
			section = sectionMain
			continue
		case strings.HasPrefix(upper, "HASHTAGS:"):
			section = sectionHashtags
			continue
		case strings.HasPrefix(upper, "VISUAL_CONCEPT:"):
			section = sectionVisual
			continue
		case strings.HasPrefix(upper, "ENGAGEMENT_STRATEGY:"):
			section = sectionEngagement
			continue
		}

		if line == "" {
			continue
		}

		switch section {
		case sectionMain:
			main = append(main, line)
		case sectionHashtags:
			for _, token := range strings.Fields(line) {
				if strings.HasPrefix(token, "#") {
					out.Hashtags = append(out.Hashtags, token)
				}
			}
		case sectionVisual:
			visual = append(visual, line)
		case sectionEngagement:
			engagement = append(engagement, line)
		}
	}

	out.MainContent = strings.Join(main, " ")
	out.VisualConcept = strings.Join(visual, " ")
	out.EngagementStrategy = strings.Join(engagement, " ")

	if out.MainContent == "" {
		out.MainContent = strings.TrimSpace(raw)
	}
	return out
}
