package airwaycase

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// legacyTimeLayout is the zone-less ISO-8601 form written by older clients.
const legacyTimeLayout = "2006-01-02T15:04:05"

// ErrMissingID is returned when a decoded record carries no identifier.
var ErrMissingID = errors.New("case record has no id")

type wireSpecRow struct {
	MakeModel     string  `json:"makeModel"`
	Size          string  `json:"size"`
	Type          string  `json:"type"`
	Cuff          string  `json:"cuff"`
	InnerDiameter float64 `json:"innerDiameter"`
	OuterDiameter float64 `json:"outerDiameter"`
	Length        float64 `json:"length"`
	ReorderNumber int     `json:"reorderNumber"`
}

type wirePatient struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	MRN         string `json:"mrn"`
	DateOfBirth string `json:"dateOfBirth"`
}

type wireSuction struct {
	Size  int    `json:"size"`
	Depth string `json:"depth"`
}

type wireDecisionBox struct {
	MaskVentilate bool `json:"maskVentilate"`
	IntubateAbove bool `json:"intubateAbove"`
	IntubateStoma bool `json:"intubateStoma"`
}

type wireCase struct {
	ID                string          `json:"id"`
	CaseType          string          `json:"caseType"`
	Patient           wirePatient     `json:"patient"`
	SpecTable         []wireSpecRow   `json:"specTable"`
	Suction           wireSuction     `json:"suction"`
	DecisionBox       wireDecisionBox `json:"decisionBox"`
	EmergencyScenario string          `json:"emergencyScenario"`
	SpecialComments   string          `json:"specialComments"`
	CreatedAt         string          `json:"createdAt"`
	UpdatedAt         string          `json:"updatedAt"`
	Surgeon           string          `json:"surgeon"`
	DateOfSurgery     string          `json:"dateOfSurgery"`
	FirstTrachChange  string          `json:"firstTrachChange"`
	AirwayDiagnosis   string          `json:"airwayDiagnosis"`
	Procedure         string          `json:"procedure"`
	ExtubationDate    string          `json:"extubationDate"`
	TrachIndication   string          `json:"trachIndication"`
}

// MarshalJSON encodes the case in the stored wire format. The file path is
// not included.
func (c *Case) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.toWire())
}

// UnmarshalJSON decodes the stored wire format into c. An unknown caseType
// decodes as Tracheostomy and is reported by UnrecognizedType; unreadable
// timestamps decode as zero and are reported by InvalidTimestamps.
func (c *Case) UnmarshalJSON(data []byte) error {
	var w wireCase
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	decoded, err := fromWire(w)
	if err != nil {
		return err
	}
	*c = *decoded
	return nil
}

// Marshal encodes c compactly.
func Marshal(c *Case) ([]byte, error) {
	return json.Marshal(c)
}

// MarshalIndent encodes c for human readers.
func MarshalIndent(c *Case) ([]byte, error) {
	return json.MarshalIndent(c, "", "    ")
}

// Unmarshal decodes a case record.
func Unmarshal(data []byte) (*Case, error) {
	var c Case
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Case) toWire() wireCase {
	d := c.details
	rows := make([]wireSpecRow, 0, len(d.SpecTable))
	for _, row := range d.SpecTable {
		rows = append(rows, wireSpecRow(row))
	}
	return wireCase{
		ID:                c.id,
		CaseType:          c.caseType.String(),
		Patient:           wirePatient(d.Patient),
		SpecTable:         rows,
		Suction:           wireSuction(d.Suction),
		DecisionBox:       wireDecisionBox(d.DecisionBox),
		EmergencyScenario: d.EmergencyScenario,
		SpecialComments:   d.SpecialComments,
		CreatedAt:         formatTime(c.createdAt),
		UpdatedAt:         formatTime(c.updatedAt),
		Surgeon:           d.Surgeon,
		DateOfSurgery:     d.DateOfSurgery,
		FirstTrachChange:  d.FirstTrachChange,
		AirwayDiagnosis:   d.AirwayDiagnosis,
		Procedure:         d.Procedure,
		ExtubationDate:    d.ExtubationDate,
		TrachIndication:   d.TrachIndication,
	}
}

func fromWire(w wireCase) (*Case, error) {
	if strings.TrimSpace(w.ID) == "" {
		return nil, ErrMissingID
	}
	c := &Case{id: w.ID}
	c.createdAt = c.decodeTime("createdAt", w.CreatedAt)
	c.updatedAt = c.decodeTime("updatedAt", w.UpdatedAt)
	var ok bool
	if c.caseType, ok = ParseCaseType(w.CaseType); !ok {
		c.unrecognizedCT = w.CaseType
		if c.unrecognizedCT == "" {
			c.unrecognizedCT = "(empty)"
		}
	}

	var rows []SpecRow
	if len(w.SpecTable) > 0 {
		rows = make([]SpecRow, 0, len(w.SpecTable))
		for _, row := range w.SpecTable {
			rows = append(rows, SpecRow(row))
		}
	}
	c.details = Details{
		Patient:           Patient(w.Patient),
		SpecTable:         rows,
		Suction:           Suction(w.Suction),
		DecisionBox:       DecisionBox(w.DecisionBox),
		EmergencyScenario: w.EmergencyScenario,
		SpecialComments:   w.SpecialComments,
		Surgeon:           w.Surgeon,
		DateOfSurgery:     w.DateOfSurgery,
		FirstTrachChange:  w.FirstTrachChange,
		AirwayDiagnosis:   w.AirwayDiagnosis,
		Procedure:         w.Procedure,
		ExtubationDate:    w.ExtubationDate,
		TrachIndication:   w.TrachIndication,
	}
	return c, nil
}

// decodeTime parses a stored timestamp. An unreadable value decodes as the
// zero time and is reported by InvalidTimestamps.
func (c *Case) decodeTime(key, value string) time.Time {
	ts, err := parseTime(value)
	if err != nil {
		c.badTimestamps = append(c.badTimestamps, key+"="+value)
		return time.Time{}
	}
	return ts
}

func formatTime(ts time.Time) string {
	if ts.IsZero() {
		return ""
	}
	return ts.Format(time.RFC3339Nano)
}

func parseTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	if ts, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return ts, nil
	}
	ts, err := time.ParseInLocation(legacyTimeLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", value, err)
	}
	return ts, nil
}
