package scoring

// CompletenessWeights are the fixed sub-criterion points for the
// Completeness category.
type CompletenessWeights struct {
	ContactInfo float64 `json:"contact_info"` // email AND (phone OR >=1 link)
	Summary     float64 `json:"summary"`
	SkillCount  float64 `json:"skill_count"` // at least MinSkillCount skills
	Education   float64 `json:"education"`
	Experience  float64 `json:"experience"`
}

// KeywordWeights are the fixed sub-criterion points for Keyword Relevance.
// Richness and Reuse are ramp caps; RoleSignal and SenioritySignal are
// all-or-nothing.
type KeywordWeights struct {
	Richness        float64 `json:"richness"`
	Reuse           float64 `json:"reuse"`
	RoleSignal      float64 `json:"role_signal"`
	SenioritySignal float64 `json:"seniority_signal"`
}

// FormattingWeights are the fixed sub-criterion points for Formatting &
// Readability. StrongBullets, ActionVerbs and Quantified are ramp caps.
type FormattingWeights struct {
	StrongBullets   float64 `json:"strong_bullets"`
	ActionVerbs     float64 `json:"action_verbs"`
	Quantified      float64 `json:"quantified"`
	DateConsistency float64 `json:"date_consistency"`
	ContactLink     float64 `json:"contact_link"`
}

// Weights is the full category weight table. Category totals must sum to
// exactly 100; anything else is a configuration error, not a runtime
// fallback.
type Weights struct {
	Completeness CompletenessWeights `json:"completeness"`
	Keywords     KeywordWeights      `json:"keywords"`
	Formatting   FormattingWeights   `json:"formatting"`
}

// DefaultWeights returns the fixed scoring table:
// Completeness 30, Keyword Relevance 40, Formatting & Readability 30.
func DefaultWeights() Weights {
	return Weights{
		Completeness: CompletenessWeights{
			ContactInfo: 8,
			Summary:     6,
			SkillCount:  6,
			Education:   5,
			Experience:  5,
		},
		Keywords: KeywordWeights{
			Richness:        20,
			Reuse:           15,
			RoleSignal:      3,
			SenioritySignal: 2,
		},
		Formatting: FormattingWeights{
			StrongBullets:   8,
			ActionVerbs:     8,
			Quantified:      7,
			DateConsistency: 5,
			ContactLink:     2,
		},
	}
}

// CompletenessTotal returns the category's possible points.
func (w Weights) CompletenessTotal() float64 {
	c := w.Completeness
	return c.ContactInfo + c.Summary + c.SkillCount + c.Education + c.Experience
}

// KeywordsTotal returns the category's possible points.
func (w Weights) KeywordsTotal() float64 {
	k := w.Keywords
	return k.Richness + k.Reuse + k.RoleSignal + k.SenioritySignal
}

// FormattingTotal returns the category's possible points.
func (w Weights) FormattingTotal() float64 {
	f := w.Formatting
	return f.StrongBullets + f.ActionVerbs + f.Quantified + f.DateConsistency + f.ContactLink
}

// Total returns the sum of all category possible points.
func (w Weights) Total() float64 {
	return w.CompletenessTotal() + w.KeywordsTotal() + w.FormattingTotal()
}

func (w Weights) subWeights() []float64 {
	return []float64{
		w.Completeness.ContactInfo, w.Completeness.Summary, w.Completeness.SkillCount,
		w.Completeness.Education, w.Completeness.Experience,
		w.Keywords.Richness, w.Keywords.Reuse, w.Keywords.RoleSignal, w.Keywords.SenioritySignal,
		w.Formatting.StrongBullets, w.Formatting.ActionVerbs, w.Formatting.Quantified,
		w.Formatting.DateConsistency, w.Formatting.ContactLink,
	}
}

// Validate checks the weight table contract: no negative sub-criterion
// points, and a grand total of exactly 100.
func (w Weights) Validate() error {
	for _, v := range w.subWeights() {
		if v < 0 {
			return &ConfigError{Message: "sub-criterion weights must be non-negative"}
		}
	}
	if total := w.Total(); total != 100 {
		return &ConfigError{Message: "category weights must sum to 100", Total: total}
	}
	return nil
}
