package airwaycase

import "fmt"

// Field names one of the case-type specific free-text fields.
type Field struct {
	Key   string
	Label string
}

var (
	fieldSurgeon          = Field{Key: "surgeon", Label: "Surgeon"}
	fieldDateOfSurgery    = Field{Key: "dateOfSurgery", Label: "Date of Surgery"}
	fieldFirstTrachChange = Field{Key: "firstTrachChange", Label: "First Trach Change"}
	fieldAirwayDiagnosis  = Field{Key: "airwayDiagnosis", Label: "Airway Diagnosis"}
	fieldProcedure        = Field{Key: "procedure", Label: "Procedure"}
	fieldExtubationDate   = Field{Key: "extubationDate", Label: "Extubation Date"}
	fieldTrachIndication  = Field{Key: "trachIndication", Label: "Trach Indication"}
)

// RelevantFields lists the optional fields a form for the case type collects.
func RelevantFields(t CaseType) []Field {
	switch t {
	case NewTracheostomy:
		return []Field{fieldTrachIndication, fieldSurgeon, fieldDateOfSurgery, fieldFirstTrachChange, fieldProcedure, fieldExtubationDate}
	case DifficultAirway:
		return []Field{fieldAirwayDiagnosis}
	case LTR:
		return []Field{fieldProcedure, fieldSurgeon, fieldDateOfSurgery, fieldExtubationDate}
	default:
		return []Field{fieldTrachIndication}
	}
}

func (d *Details) fieldRef(key string) (*string, bool) {
	switch key {
	case fieldSurgeon.Key:
		return &d.Surgeon, true
	case fieldDateOfSurgery.Key:
		return &d.DateOfSurgery, true
	case fieldFirstTrachChange.Key:
		return &d.FirstTrachChange, true
	case fieldAirwayDiagnosis.Key:
		return &d.AirwayDiagnosis, true
	case fieldProcedure.Key:
		return &d.Procedure, true
	case fieldExtubationDate.Key:
		return &d.ExtubationDate, true
	case fieldTrachIndication.Key:
		return &d.TrachIndication, true
	default:
		return nil, false
	}
}

// Field returns the value of an optional field by its wire key.
func (d Details) Field(key string) (string, bool) {
	ref, ok := d.fieldRef(key)
	if !ok {
		return "", false
	}
	return *ref, true
}

// SetField assigns an optional field by its wire key.
func (d *Details) SetField(key, value string) error {
	ref, ok := d.fieldRef(key)
	if !ok {
		return fmt.Errorf("unknown case field %q", key)
	}
	*ref = value
	return nil
}
