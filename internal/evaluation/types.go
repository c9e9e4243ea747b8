package evaluation

// Outcome classifies how a simulated sales conversation ended.
type Outcome string

const (
	OutcomeSaleClosed   Outcome = "venda_realizada"
	OutcomeSaleLost     Outcome = "venda_nao_realizada"
	OutcomeUndetermined Outcome = "indeterminado"
)

// Item is one numbered entry of the errors/successes section.
type Item struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Point is the single optional second-section entry: the positive point of a
// lost sale or the attention point of a closed one.
type Point struct {
	Description string `json:"description"`
	Tip         string `json:"tip,omitempty"`
}

// Ratings holds the four star ratings of the general-notes table. A nil field
// means the rating line was missing or unparseable; 0.0 is a valid value.
type Ratings struct {
	Acolhimento  *float64 `json:"acolhimento"`
	Clareza      *float64 `json:"clareza"`
	Argumentacao *float64 `json:"argumentacao"`
	Fechamento   *float64 `json:"fechamento"`
}

// ClientProfile describes the simulated client persona as reported by the
// evaluation text. Empty fields were absent from the report.
type ClientProfile struct {
	Name            string `json:"name,omitempty"`
	Course          string `json:"course,omitempty"`
	LifeSituation   string `json:"life_situation,omitempty"`
	Seeks           string `json:"seeks,omitempty"`
	Fear            string `json:"fear,omitempty"`
	BehaviorProfile string `json:"behavior_profile,omitempty"`
}

// ConversationAnalysis assesses five skill dimensions of the conversation.
type ConversationAnalysis struct {
	Connection           string `json:"connection,omitempty"`
	NeedsDiscovery       string `json:"needs_discovery,omitempty"`
	SolutionPresentation string `json:"solution_presentation,omitempty"`
	ObjectionHandling    string `json:"objection_handling,omitempty"`
	ClosingConduct       string `json:"closing_conduct,omitempty"`
}

// Result is the structured decomposition of one evaluation report.
//
// Exactly one of Errors/Successes is populated, matching Outcome; the same
// holds for PositivePoint/AttentionPoint. Missing sections leave their fields
// zero-valued rather than failing the parse.
type Result struct {
	Outcome          Outcome               `json:"outcome"`
	HeaderMessage    string                `json:"header_message,omitempty"`
	BossConvinced    bool                  `json:"boss_convinced"`
	QuickSummary     string                `json:"quick_summary,omitempty"`
	Errors           []Item                `json:"main_errors,omitempty"`
	Successes        []Item                `json:"main_successes,omitempty"`
	PositivePoint    *Point                `json:"positive_point,omitempty"`
	AttentionPoint   *Point                `json:"attention_point,omitempty"`
	Ratings          Ratings               `json:"general_notes"`
	Client           ClientProfile         `json:"client_info"`
	Analysis         *ConversationAnalysis `json:"conversation_analysis,omitempty"`
	ImprovementSteps []string              `json:"improvement_steps,omitempty"`
	FinalSummary     string                `json:"final_summary,omitempty"`
	DevelopmentNote  string                `json:"development_note,omitempty"`
}
