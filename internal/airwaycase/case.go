package airwaycase

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// SpecRow is one tracheostomy tube specification. Size is kept as text and
// compared as text; zero numeric values mean "unset".
type SpecRow struct {
	MakeModel     string
	Size          string
	Type          string
	Cuff          string
	InnerDiameter float64
	OuterDiameter float64
	Length        float64
	ReorderNumber int
}

// Patient identifies the patient. All fields are free text.
type Patient struct {
	FirstName   string
	LastName    string
	MRN         string
	DateOfBirth string
}

// Suction records the suction catheter size in French and the insertion depth.
type Suction struct {
	Size  int
	Depth string
}

// DecisionBox holds the airway rescue capability flags.
type DecisionBox struct {
	MaskVentilate bool
	IntubateAbove bool
	IntubateStoma bool
}

// Details is the mutable clinical content of a case.
type Details struct {
	Patient           Patient
	SpecTable         []SpecRow
	Suction           Suction
	DecisionBox       DecisionBox
	EmergencyScenario string
	SpecialComments   string

	Surgeon          string
	DateOfSurgery    string
	FirstTrachChange string
	AirwayDiagnosis  string
	Procedure        string
	ExtubationDate   string
	TrachIndication  string
}

// Clone returns a deep copy of d.
func (d Details) Clone() Details {
	d.SpecTable = slices.Clone(d.SpecTable)
	return d
}

// Equal reports whether d and other hold the same values. A nil and an empty
// spec table are equal.
func (d Details) Equal(other Details) bool {
	return slices.Equal(d.SpecTable, other.SpecTable) &&
		d.Patient == other.Patient &&
		d.Suction == other.Suction &&
		d.DecisionBox == other.DecisionBox &&
		d.EmergencyScenario == other.EmergencyScenario &&
		d.SpecialComments == other.SpecialComments &&
		d.Surgeon == other.Surgeon &&
		d.DateOfSurgery == other.DateOfSurgery &&
		d.FirstTrachChange == other.FirstTrachChange &&
		d.AirwayDiagnosis == other.AirwayDiagnosis &&
		d.Procedure == other.Procedure &&
		d.ExtubationDate == other.ExtubationDate &&
		d.TrachIndication == other.TrachIndication
}

// Case is one patient's airway record for an encounter.
type Case struct {
	id        string
	caseType  CaseType
	createdAt time.Time
	updatedAt time.Time
	details   Details

	filePath       string
	unrecognizedCT string
	badTimestamps  []string
}

var now = func() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// New creates a case of the given type with a freshly generated identifier.
func New(caseType CaseType) *Case {
	ts := now()
	return &Case{
		id:        uuid.NewString(),
		caseType:  caseType,
		createdAt: ts,
		updatedAt: ts,
	}
}

// ID returns the immutable case identifier; it is also the file name stem.
func (c *Case) ID() string { return c.id }

// Type returns the case type fixed at creation.
func (c *Case) Type() CaseType { return c.caseType }

// CreatedAt returns the creation timestamp.
func (c *Case) CreatedAt() time.Time { return c.createdAt }

// UpdatedAt returns the timestamp of the last edit.
func (c *Case) UpdatedAt() time.Time { return c.updatedAt }

// Details returns a copy of the clinical content.
func (c *Case) Details() Details { return c.details.Clone() }

// Edit applies fn to the clinical content and bumps the updated timestamp.
func (c *Case) Edit(fn func(d *Details)) {
	if fn != nil {
		fn(&c.details)
	}
	c.updatedAt = now()
}

// FilePath returns the path the case was last loaded from or saved to.
func (c *Case) FilePath() string { return c.filePath }

// SetFilePath records where the case lives on disk. It is not part of the
// serialized record.
func (c *Case) SetFilePath(path string) { c.filePath = path }

// UnrecognizedType returns the raw case type token when decoding fell back to
// Tracheostomy because the token was unknown.
func (c *Case) UnrecognizedType() (string, bool) {
	return c.unrecognizedCT, c.unrecognizedCT != ""
}

// InvalidTimestamps lists the stored timestamps, as key=value, that could
// not be parsed when the case was decoded.
func (c *Case) InvalidTimestamps() []string {
	return slices.Clone(c.badTimestamps)
}

// Equal compares every serialized field; the file path is ignored.
func (c *Case) Equal(other *Case) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.id == other.id &&
		c.caseType == other.caseType &&
		c.createdAt.Equal(other.createdAt) &&
		c.updatedAt.Equal(other.updatedAt) &&
		c.details.Equal(other.details)
}
