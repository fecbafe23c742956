package logging

// Standard attribute keys. Components should use these rather than inventing
// their own spellings so console and JSON output stay greppable.
const (
	FieldComponent = "component"
	FieldEventType = "event_type"
	FieldErrorHint = "error_hint"
	FieldImpact    = "impact"

	FieldCaseID   = "case_id"
	FieldCaseType = "case_type"
	FieldPath     = "path"
)
