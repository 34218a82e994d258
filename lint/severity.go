package lint

import "fmt"

// Severity grades how serious a detected issue is. The values form a total
// order: SeverityInfo < SeverityWarning < SeverityError. Exit-code
// derivation and report tie-breaking both rely on this order, so severity
// comparisons are integer comparisons, never string comparisons.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns the lowercase severity name used in serialized reports.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalJSON serializes the severity as its lowercase name.
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON parses a lowercase severity name.
func (s *Severity) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"info"`:
		*s = SeverityInfo
	case `"warning"`:
		*s = SeverityWarning
	case `"error"`:
		*s = SeverityError
	default:
		return fmt.Errorf("unknown severity %s", data)
	}
	return nil
}
