// Package meeting defines the structured contributions the analysis stage
// produces and the merged document the composition stage consumes.
package meeting

// Kind identifies one contribution slot in the meeting document
type Kind string

const (
	KindSummary        Kind = "summary"
	KindActionItems    Kind = "action_items"
	KindClarifications Kind = "clarifications"
	KindGlossary       Kind = "glossary"
	KindLinks          Kind = "links"
)

// Kinds lists every contribution slot a merged document must carry
var Kinds = []Kind{KindSummary, KindActionItems, KindClarifications, KindGlossary, KindLinks}

// SummaryResult is the summary worker's contribution, including the
// best-effort meeting metadata it could read from the transcript
type SummaryResult struct {
	Title        string   `json:"title"`
	Date         string   `json:"date"`
	Attendees    []string `json:"attendees"`
	Overview     string   `json:"overview"`
	KeyTakeaways []string `json:"key_takeaways"`
}

// EmptySummary is the degraded contribution for the summary kind
func EmptySummary() SummaryResult {
	return SummaryResult{Attendees: []string{}, KeyTakeaways: []string{}}
}

// ActionItem is one extracted commitment. Inferred marks items the worker
// derived from context rather than an explicit statement. OwnerEmail stays
// empty when the directory lookup finds no match.
type ActionItem struct {
	Description string `json:"description"`
	Owner       string `json:"owner,omitempty"`
	OwnerEmail  string `json:"owner_email,omitempty"`
	Deadline    string `json:"deadline,omitempty"`
	Inferred    bool   `json:"inferred"`
}

// ActionsResult is the action-item worker's contribution
type ActionsResult struct {
	Items []ActionItem `json:"items"`
}

// EmptyActions is the degraded contribution for the action-item kind
func EmptyActions() ActionsResult {
	return ActionsResult{Items: []ActionItem{}}
}

// Clarification explains one ambiguous statement from the transcript
type Clarification struct {
	Statement   string   `json:"statement"`
	Explanation string   `json:"explanation"`
	SourceLinks []string `json:"source_links,omitempty"`
}

// ClarifyResult is the clarification worker's contribution
type ClarifyResult struct {
	Items []Clarification `json:"items"`
}

// EmptyClarifications is the degraded contribution for the clarification kind
func EmptyClarifications() ClarifyResult {
	return ClarifyResult{Items: []Clarification{}}
}

// Link is a researched reference worth sharing with attendees
type Link struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// GlossaryResult is the terminology worker's contribution: term definitions
// plus the references it found while researching them
type GlossaryResult struct {
	Terms map[string]string `json:"terms"`
	Links []Link            `json:"links,omitempty"`
}

// EmptyGlossary is the degraded contribution for the glossary kind
func EmptyGlossary() GlossaryResult {
	return GlossaryResult{Terms: map[string]string{}, Links: []Link{}}
}

// Document is the merged output of the analysis stage. Every kind is always
// present; a degraded worker leaves its slot empty, never absent, so the
// composition stage never branches on nil.
type Document struct {
	Title     string
	Date      string
	Attendees []string

	Summary        string
	KeyTakeaways   []string
	ActionItems    []ActionItem
	Clarifications []Clarification
	Glossary       map[string]string
	Links          []Link

	// DegradedKinds lists slots whose worker exhausted its budget
	DegradedKinds []Kind
}

// NewDocument returns a document with every container initialized empty
func NewDocument() Document {
	return Document{
		Attendees:      []string{},
		KeyTakeaways:   []string{},
		ActionItems:    []ActionItem{},
		Clarifications: []Clarification{},
		Glossary:       map[string]string{},
		Links:          []Link{},
		DegradedKinds:  []Kind{},
	}
}
