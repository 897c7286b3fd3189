package audiences

import "socialagent/internal/models"

// Demographics describes the economic shape of a segment.
type Demographics struct {
	IncomeRange string   `json:"income_range"`
	LifeStage   string   `json:"life_stage"`
	Priorities  []string `json:"priorities"`
	Challenges  []string `json:"challenges"`
}

// Psychographics describes how a segment communicates and decides.
type Psychographics struct {
	Values             []string `json:"values"`
	CommunicationStyle string   `json:"communication_style"`
	DecisionFactors    []string `json:"decision_factors"`
	PainPoints         []string `json:"pain_points"`
}

// DigitalBehavior describes where and how a segment engages online.
type DigitalBehavior struct {
	Platforms          []string `json:"platforms"`
	ContentPreferences []string `json:"content_preferences"`
	EngagementStyle    string   `json:"engagement_style"`
	PostingTimes       []string `json:"posting_times"`
}

// MortgageFocus describes a segment's mortgage needs and objections.
type MortgageFocus struct {
	PrimaryNeeds   []string `json:"primary_needs"`
	SecondaryNeeds []string `json:"secondary_needs"`
	Objections     []string `json:"objections"`
	Motivators     []string `json:"motivators"`
}

// Profile is a static editorial persona used to steer tone and messaging.
type Profile struct {
	Key             string          `json:"key"`
	Name            string          `json:"name"`
	AgeRange        string          `json:"age_range"`
	Demographics    Demographics    `json:"demographics"`
	Psychographics  Psychographics  `json:"psychographics"`
	DigitalBehavior DigitalBehavior `json:"digital_behavior"`
	MortgageFocus   MortgageFocus   `json:"mortgage_focus"`
}

// Summary is the short listing form of a profile.
type Summary struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	AgeRange    string `json:"age_range"`
	Description string `json:"description"`
}

// profiles is the full catalog, loaded once and never mutated.
var profiles = map[string]Profile{
	models.AudienceGenZ: {
		Key:      models.AudienceGenZ,
		Name:     "Generation Z",
		AgeRange: "18-26",
		Demographics: Demographics{
			IncomeRange: "$25K-$55K",
			LifeStage:   "Early career, first-time buyers, apartment renters",
			Priorities:  []string{"affordability", "digital-first experience", "social impact"},
			Challenges:  []string{"limited credit history", "student debt", "high rent costs", "saving challenges"},
		},
		Psychographics: Psychographics{
			Values:             []string{"authenticity", "diversity", "environmental consciousness", "financial transparency"},
			CommunicationStyle: "direct, visual, mobile-first, informal",
			DecisionFactors:    []string{"mobile research", "social proof", "influencer recommendations", "instant access"},
			PainPoints:         []string{"complex traditional processes", "lack of digital options", "financial jargon"},
		},
		DigitalBehavior: DigitalBehavior{
			Platforms:          []string{"tiktok", "instagram", "snapchat"},
			ContentPreferences: []string{"short videos", "stories", "reels", "memes"},
			EngagementStyle:    "visual, interactive, community-driven",
			PostingTimes:       []string{"12-3PM", "7-9PM", "9-11PM"},
		},
		MortgageFocus: MortgageFocus{
			PrimaryNeeds:   []string{"first-time buyer education", "credit building", "down payment assistance"},
			SecondaryNeeds: []string{"rent vs buy analysis", "pre-qualification", "mobile-friendly process"},
			Objections:     []string{"too young to buy", "can't afford", "process too complicated"},
			Motivators:     []string{"stop paying rent", "build credit", "financial independence", "future planning"},
		},
	},

	models.AudienceMillennials: {
		Key:      models.AudienceMillennials,
		Name:     "Millennials",
		AgeRange: "27-42",
		Demographics: Demographics{
			IncomeRange: "$45K-$85K",
			LifeStage:   "First-time buyers, young families",
			Priorities:  []string{"affordability", "convenience", "transparency"},
			Challenges:  []string{"student loans", "high home prices", "saving for down payment"},
		},
		Psychographics: Psychographics{
			Values:             []string{"authenticity", "social responsibility", "work-life balance"},
			CommunicationStyle: "casual, direct, visual",
			DecisionFactors:    []string{"online research", "peer reviews", "speed of process"},
			PainPoints:         []string{"complex processes", "hidden fees", "lack of transparency"},
		},
		DigitalBehavior: DigitalBehavior{
			Platforms:          []string{"instagram", "facebook", "tiktok"},
			ContentPreferences: []string{"video", "infographics", "stories"},
			EngagementStyle:    "interactive, social proof driven",
			PostingTimes:       []string{"11AM-1PM", "5-7PM", "8-10PM"},
		},
		MortgageFocus: MortgageFocus{
			PrimaryNeeds:   []string{"first-time buyer programs", "low down payment options", "pre-approval"},
			SecondaryNeeds: []string{"debt-to-income guidance", "credit improvement", "closing cost assistance"},
			Objections:     []string{"rates too high", "can't afford", "process too complex"},
			Motivators:     []string{"building equity", "stable payments", "tax benefits"},
		},
	},

	models.AudienceGenX: {
		Key:      models.AudienceGenX,
		Name:     "Generation X",
		AgeRange: "43-58",
		Demographics: Demographics{
			IncomeRange: "$65K-$120K",
			LifeStage:   "Established families, peak earning years",
			Priorities:  []string{"family security", "wealth building", "efficiency"},
			Challenges:  []string{"college funding", "aging parents", "retirement planning"},
		},
		Psychographics: Psychographics{
			Values:             []string{"pragmatism", "self-reliance", "family first"},
			CommunicationStyle: "straightforward, results-oriented, time-conscious",
			DecisionFactors:    []string{"ROI analysis", "expert advice", "proven track record"},
			PainPoints:         []string{"time constraints", "information overload", "changing rules"},
		},
		DigitalBehavior: DigitalBehavior{
			Platforms:          []string{"facebook", "linkedin", "email"},
			ContentPreferences: []string{"articles", "case studies", "webinars"},
			EngagementStyle:    "research-driven, value-seeking",
			PostingTimes:       []string{"6-9AM", "12-2PM", "7-9PM"},
		},
		MortgageFocus: MortgageFocus{
			PrimaryNeeds:   []string{"refinancing", "home equity loans", "investment properties"},
			SecondaryNeeds: []string{"debt consolidation", "cash-out refinancing", "rate optimization"},
			Objections:     []string{"closing costs vs. savings", "timing concerns", "qualification changes"},
			Motivators:     []string{"monthly savings", "wealth building", "family financial security"},
		},
	},

	models.AudienceBabyBoomers: {
		Key:      models.AudienceBabyBoomers,
		Name:     "Baby Boomers",
		AgeRange: "59-77",
		Demographics: Demographics{
			IncomeRange: "$50K-$100K (fixed/retirement)",
			LifeStage:   "Pre-retirement, early retirement",
			Priorities:  []string{"financial security", "legacy planning", "risk management"},
			Challenges:  []string{"fixed income", "healthcare costs", "market volatility"},
		},
		Psychographics: Psychographics{
			Values:             []string{"stability", "tradition", "personal relationships"},
			CommunicationStyle: "formal, detailed, relationship-based",
			DecisionFactors:    []string{"personal recommendations", "established reputation", "thorough explanation"},
			PainPoints:         []string{"technology complexity", "pressure tactics", "impersonal service"},
		},
		DigitalBehavior: DigitalBehavior{
			Platforms:          []string{"facebook", "email", "linkedin"},
			ContentPreferences: []string{"detailed articles", "newsletters", "phone consultations"},
			EngagementStyle:    "cautious, relationship-focused",
			PostingTimes:       []string{"8-11AM", "2-5PM", "6-8PM"},
		},
		MortgageFocus: MortgageFocus{
			PrimaryNeeds:   []string{"reverse mortgages", "refinancing", "downsizing"},
			SecondaryNeeds: []string{"estate planning", "tax optimization", "payment reduction"},
			Objections:     []string{"complexity", "long-term commitment", "changing circumstances"},
			Motivators:     []string{"financial security", "family legacy", "simplified finances"},
		},
	},
}

// GetProfile returns the profile for an audience key. Unknown keys fall back
// to the millennials profile rather than failing.
func GetProfile(audience string) Profile {
	if p, ok := profiles[models.NormalizeAudience(audience)]; ok {
		return p
	}
	return profiles[models.DefaultAudience]
}

// List returns a summary of every audience segment in catalog order.
func List() []Summary {
	out := make([]Summary, 0, len(models.Audiences))
	for _, key := range models.Audiences {
		p := profiles[key]
		out = append(out, Summary{
			Key:         p.Key,
			Name:        p.Name,
			AgeRange:    p.AgeRange,
			Description: p.Demographics.LifeStage,
		})
	}
	return out
}

// All returns the full catalog keyed by audience, in catalog order.
func All() map[string]Profile {
	out := make(map[string]Profile, len(profiles))
	for k, v := range profiles {
		out[k] = v
	}
	return out
}
