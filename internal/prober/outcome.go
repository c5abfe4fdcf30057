package prober

// Outcome classifies how a probe cycle ended.
type Outcome int

const (
	// Unreachable means the retry budget ran out without a 200 response.
	Unreachable Outcome = iota
	// Reachable means a 200 response was observed.
	Reachable
	// InvalidURL means the target was not a well-formed http(s) URL.
	InvalidURL
)

func (o Outcome) String() string {
	switch o {
	case Reachable:
		return "reachable"
	case Unreachable:
		return "unreachable"
	case InvalidURL:
		return "invalid-url"
	default:
		return "unknown"
	}
}

// Result is the outcome of Probe together with what was observed on the way.
type Result struct {
	URL      string
	Outcome  Outcome
	Attempts int
	// LastStatus is the status code of the last response, 0 if none arrived.
	LastStatus int
	// LastErr is the last transport or validation error, if any.
	LastErr error
}

// Err returns nil for a reachable result and an *UnreachableError otherwise.
func (r Result) Err() error {
	if r.Outcome == Reachable {
		return nil
	}
	return &UnreachableError{URL: r.URL, Result: r}
}
