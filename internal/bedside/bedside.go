// Package bedside renders the plain-text bedside card for a case.
//
// The card follows the bedside display: only the patient's first name is
// shown, reference values missing from the tube catalog read "Not available",
// and the airway rescue steps keep their fixed numbering even when some are
// not permitted.
package bedside

import (
	"fmt"
	"strconv"
	"strings"

	"safeairway/internal/airwaycase"
	"safeairway/internal/emergency"
	"safeairway/internal/tubesize"
)

// NotAvailable is shown for any value the catalog cannot supply.
const NotAvailable = "Not available"

// Render returns the bedside card for c.
func Render(c *airwaycase.Case, catalog *tubesize.Catalog) string {
	if catalog == nil {
		catalog = tubesize.New()
	}
	d := c.Details()
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", strings.ToUpper(c.Type().Label()))
	fmt.Fprintf(&b, "Patient: %s\n", orDash(d.Patient.FirstName))

	var primary *airwaycase.SpecRow
	if len(d.SpecTable) > 0 {
		primary = &d.SpecTable[0]
		fmt.Fprintf(&b, "Trach: %s\n", strings.Join(nonEmpty(primary.Type, primary.Size, primary.Cuff), " "))
	}
	for _, f := range airwaycase.RelevantFields(c.Type()) {
		if v, _ := d.Field(f.Key); v != "" {
			fmt.Fprintf(&b, "%s: %s\n", f.Label, v)
		}
	}

	if len(d.SpecTable) > 0 {
		b.WriteString("\nTubes:\n")
		for _, row := range d.SpecTable {
			fmt.Fprintf(&b, "  %s  OD: %s\n",
				strings.Join(nonEmpty(row.MakeModel, row.Size, row.Type, row.Cuff), " "),
				OuterDiameterText(catalog, row))
		}
	}

	b.WriteByte('\n')
	b.WriteString(SuctionText(d.Suction))
	b.WriteByte('\n')

	b.WriteString("\nAirway Rescue:\n")
	ett := ""
	if primary != nil && primary.Size != "" {
		ett = " with " + primary.Size + " ETT"
	}
	writeStep(&b, d.DecisionBox.MaskVentilate, "1. Mask Ventilate")
	writeStep(&b, d.DecisionBox.IntubateAbove, "2. Intubate from Above"+ett)
	writeStep(&b, d.DecisionBox.IntubateStoma, "3. Intubate through Stoma"+ett)

	if text := emergency.Instructions(d.EmergencyScenario, d.Suction.Size); text != "" {
		fmt.Fprintf(&b, "\nEmergency: %s\n", d.EmergencyScenario)
		for _, line := range strings.Split(text, "\n") {
			fmt.Fprintf(&b, "  %s\n", line)
		}
	}

	if comments := strings.TrimSpace(d.SpecialComments); comments != "" {
		fmt.Fprintf(&b, "\nComments: %s\n", comments)
	}
	return b.String()
}

// SuctionText renders the suction catheter size and insertion depth.
func SuctionText(s airwaycase.Suction) string {
	size := NotAvailable
	if s.Size > 0 {
		size = strconv.Itoa(s.Size) + " Fr"
	}
	depth := NotAvailable
	if v := strings.TrimSpace(s.Depth); v != "" {
		depth = v + " cm"
	}
	return fmt.Sprintf("Suction Catheter: %s\nSuction Depth: %s", size, depth)
}

// OuterDiameterText returns the recorded outer diameter for row, falling back
// to the catalog value for its manufacturer and size.
func OuterDiameterText(catalog *tubesize.Catalog, row airwaycase.SpecRow) string {
	if row.OuterDiameter > 0 {
		return formatMM(row.OuterDiameter)
	}
	size, ok := tubesize.ParseSize(row.Size)
	if !ok {
		return NotAvailable
	}
	od, ok := catalog.OuterDiameter(row.MakeModel, size)
	if !ok {
		return NotAvailable
	}
	return formatMM(od)
}

func formatMM(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + " mm"
}

func writeStep(b *strings.Builder, allowed bool, text string) {
	if !allowed {
		return
	}
	b.WriteString("  ")
	b.WriteString(text)
	b.WriteByte('\n')
}

func nonEmpty(values ...string) []string {
	out := values[:0:0]
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
