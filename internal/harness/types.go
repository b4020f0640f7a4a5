package harness

// CaseResult is what one scenario case produced.
type CaseResult struct {
	Query      string   `json:"query"`
	Outcome    string   `json:"outcome"`
	Entity     string   `json:"entity,omitempty"`
	Kind       string   `json:"kind,omitempty"`
	Candidates []string `json:"candidates,omitempty"`
	Confidence int      `json:"confidence"`
	RecordID   string   `json:"-"`
	Errors     []string `json:"-"`
}

// Pass reports whether the case met its expectation.
func (c CaseResult) Pass() bool {
	return len(c.Errors) == 0
}

// Result is the outcome of a scenario run.
type Result struct {
	// Pass is true when every case and every log check passed.
	Pass bool

	Cases []CaseResult

	// Errors lists every failure, prefixed with the failing query.
	Errors []string
}

// NewResult creates a passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Cases:  []CaseResult{},
		Errors: []string{},
	}
}

// AddError records a failure.
func (r *Result) AddError(msg string) {
	r.Pass = false
	r.Errors = append(r.Errors, msg)
}
