package airwaycase

import (
	"fmt"
	"strings"
)

// CaseType is the encounter category of a case. It determines the storage
// directory and which optional fields are meaningful.
type CaseType int

const (
	Tracheostomy CaseType = iota
	NewTracheostomy
	DifficultAirway
	LTR
)

// CaseTypes lists every case type in storage order.
var CaseTypes = []CaseType{Tracheostomy, NewTracheostomy, DifficultAirway, LTR}

// String returns the wire and directory token for the case type.
func (t CaseType) String() string {
	switch t {
	case NewTracheostomy:
		return "new_tracheostomy"
	case DifficultAirway:
		return "difficult_airway"
	case LTR:
		return "ltr"
	default:
		return "tracheostomy"
	}
}

// Label returns the human readable name of the case type.
func (t CaseType) Label() string {
	switch t {
	case NewTracheostomy:
		return "New Tracheostomy"
	case DifficultAirway:
		return "Difficult Airway"
	case LTR:
		return "Laryngotracheal Reconstruction"
	default:
		return "Tracheostomy"
	}
}

// ParseCaseType maps a wire token to a case type. Unrecognized tokens yield
// Tracheostomy and ok=false so callers can flag the fallback.
func ParseCaseType(value string) (CaseType, bool) {
	switch value {
	case "tracheostomy":
		return Tracheostomy, true
	case "new_tracheostomy":
		return NewTracheostomy, true
	case "difficult_airway":
		return DifficultAirway, true
	case "ltr":
		return LTR, true
	default:
		return Tracheostomy, false
	}
}

// ParseCaseTypeFlag is the strict variant used for user input; it accepts the
// wire tokens plus a few spellings and rejects anything else.
func ParseCaseTypeFlag(value string) (CaseType, error) {
	token := strings.ToLower(strings.TrimSpace(value))
	token = strings.ReplaceAll(token, "-", "_")
	switch token {
	case "trach":
		return Tracheostomy, nil
	case "new_trach", "newtracheostomy":
		return NewTracheostomy, nil
	case "difficult", "difficultairway":
		return DifficultAirway, nil
	}
	if t, ok := ParseCaseType(token); ok {
		return t, nil
	}
	return Tracheostomy, fmt.Errorf("unknown case type %q (want tracheostomy, new_tracheostomy, difficult_airway, or ltr)", value)
}

// MarshalText implements encoding.TextMarshaler.
func (t CaseType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, defaulting unknown
// tokens to Tracheostomy.
func (t *CaseType) UnmarshalText(text []byte) error {
	*t, _ = ParseCaseType(string(text))
	return nil
}
