package guidex

// Field names addressable by filter expressions.
const (
	FieldID       = "id"
	FieldName     = "name"
	FieldCategory = "category"
	FieldSymptoms = "symptoms"
	FieldKeywords = "keywords"
)

// Guideline is a single clinical guideline record of the catalogue.
// Records are created once at load time and never edited by the search engine.
// Stored casing is kept for display; matching is case-insensitive.
type Guideline struct {
	// ID is the stable identifier, unique within a catalogue.
	ID string `json:"id" yaml:"id" dynamodbav:"id"`
	// Name is the display name of the guideline.
	Name string `json:"guidelineName" yaml:"guidelineName" dynamodbav:"guidelineName"`
	// Keywords are short secondary phrases, possibly empty.
	Keywords []string `json:"keywords" yaml:"keywords" dynamodbav:"keywords"`
	// Symptoms are short clinical phrases, possibly empty.
	Symptoms []string `json:"symptoms" yaml:"symptoms" dynamodbav:"symptoms"`
	// Category is the classification label.
	Category string `json:"category" yaml:"category" dynamodbav:"category"`
}

// Clone returns a deep copy of the guideline so that callers can never alias
// the phrase slices of a catalogue they do not own.
func (g Guideline) Clone() Guideline {
	g.Keywords = cloneStrings(g.Keywords)
	g.Symptoms = cloneStrings(g.Symptoms)
	return g
}

// CloneAll deep-copies a sequence of guidelines, preserving order.
func CloneAll(gs []Guideline) []Guideline {
	if gs == nil {
		return nil
	}
	out := make([]Guideline, len(gs))
	for i, g := range gs {
		out[i] = g.Clone()
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
