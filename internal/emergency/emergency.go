// Package emergency holds the fixed emergency scenario vocabulary and the
// instruction lists shown for each scenario.
package emergency

import (
	"fmt"
	"strings"
)

// Scenario names as stored in a case's emergencyScenario field.
const (
	CantSuction   = "can't suction"
	CantVentilate = "can't ventilate"
	O2SatDrop     = "o2 sat drop"
	Decannulation = "decannulation"
	Hemoptysis    = "hemoptysis"
)

// defaultETTSize is the endotracheal tube size written into the stock
// instructions; it is replaced by the patient's size where that applies.
const defaultETTSize = 6

// Scenario is a named emergency with ordered instructions.
type Scenario struct {
	Name         string
	Instructions []string
	// SizesETT marks scenarios whose endotracheal tube advice is sized from
	// the patient's suction catheter.
	SizesETT bool
}

var scenarios = []Scenario{
	{
		Name: CantSuction,
		Instructions: []string{
			"Call for help immediately",
			"Position patient appropriately",
			"Attempt gentle suctioning with smaller catheter",
			"Consider saline instillation",
			"If unsuccessful, prepare for emergency intervention",
		},
	},
	{
		Name: CantVentilate,
		Instructions: []string{
			"Call for help immediately",
			"Check tracheostomy tube patency",
			"Attempt bag-mask ventilation above stoma",
			"Consider 6.0 endotracheal tube insertion",
			"Prepare for emergency surgical intervention",
		},
		SizesETT: true,
	},
	{
		Name: O2SatDrop,
		Instructions: []string{
			"Increase oxygen concentration",
			"Check tube position and patency",
			"Suction if needed",
			"Assess for pneumothorax",
			"Call for respiratory support",
		},
	},
	{
		Name: Decannulation,
		Instructions: []string{
			"Stay calm and call for help",
			"Cover stoma with gauze",
			"Attempt reinsertion with same size tube",
			"If unsuccessful, try smaller tube",
			"Consider 6.0 endotracheal tube if needed",
			"Prepare for emergency surgical intervention",
		},
		SizesETT: true,
	},
	{
		Name: Hemoptysis,
		Instructions: []string{
			"Position patient to protect airway",
			"Suction blood from tracheostomy",
			"Apply pressure if bleeding from stoma",
			"Call for emergency assistance",
			"Prepare for bronchoscopy",
		},
	},
}

// Names returns the scenario names in display order.
func Names() []string {
	names := make([]string, len(scenarios))
	for i, s := range scenarios {
		names[i] = s.Name
	}
	return names
}

// Lookup returns the scenario called name.
func Lookup(name string) (Scenario, bool) {
	for _, s := range scenarios {
		if s.Name == name {
			s.Instructions = append([]string(nil), s.Instructions...)
			return s, true
		}
	}
	return Scenario{}, false
}

// Valid reports whether name is a known scenario. The empty string is valid
// and means no scenario is selected.
func Valid(name string) bool {
	if name == "" {
		return true
	}
	_, ok := Lookup(name)
	return ok
}

// Instructions returns the numbered instruction list for name, one step per
// line. For scenarios that size the endotracheal tube, the stock 6.0 tube is
// replaced with "<suctionSize>.0"; a suctionSize of zero or less keeps 6.0.
// An unknown name yields "".
func Instructions(name string, suctionSize int) string {
	s, ok := Lookup(name)
	if !ok {
		return ""
	}
	var b strings.Builder
	for i, step := range s.Instructions {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d. %s", i+1, step)
	}
	text := b.String()
	if s.SizesETT && suctionSize > 0 && suctionSize != defaultETTSize {
		text = strings.ReplaceAll(text,
			fmt.Sprintf("%d.0 endotracheal tube", defaultETTSize),
			fmt.Sprintf("%d.0 endotracheal tube", suctionSize))
	}
	return text
}
