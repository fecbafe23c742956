package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"safeairway/internal/airwaycase"
	"safeairway/internal/emergency"
	"safeairway/internal/tubesize"
)

// caseInput collects the editable case fields from command flags. Only flags
// the user actually set are applied, so the same struct serves `new` and
// `edit`.
type caseInput struct {
	first        string
	last         string
	mrn          string
	dob          string
	tubes        []string
	clearTubes   bool
	suctionSize  int
	suctionDepth string
	scenario     string
	comments     string
	fields       []string
	mask         bool
	above        bool
	stoma        bool
}

func (in *caseInput) register(flags *pflag.FlagSet, editing bool) {
	flags.StringVar(&in.first, "first", "", "Patient first name")
	flags.StringVar(&in.last, "last", "", "Patient last name")
	flags.StringVar(&in.mrn, "mrn", "", "Medical record number")
	flags.StringVar(&in.dob, "dob", "", "Date of birth")
	flags.StringArrayVar(&in.tubes, "tube", nil, "Tube spec make:size:type:cuff[:id:od:length:reorder] (repeatable)")
	flags.IntVar(&in.suctionSize, "suction-size", 0, "Suction catheter size in French (defaults from the first tube)")
	flags.StringVar(&in.suctionDepth, "suction-depth", "", "Suction insertion depth")
	flags.StringVar(&in.scenario, "scenario", "", "Emergency scenario ("+strings.Join(emergency.Names(), ", ")+")")
	flags.StringVar(&in.comments, "comments", "", "Special comments")
	flags.StringArrayVar(&in.fields, "field", nil, "Case-type field as key=value (repeatable)")
	flags.BoolVar(&in.mask, "mask", false, "Patient can be mask ventilated")
	flags.BoolVar(&in.above, "above", false, "Patient can be intubated from above")
	flags.BoolVar(&in.stoma, "stoma", false, "Patient can be intubated through the stoma")
	if editing {
		flags.BoolVar(&in.clearTubes, "clear-tubes", false, "Remove existing tube rows before adding --tube values")
	}
}

// apply copies the set flags onto c. The catalog fills in outer diameters
// and a suction size the user left blank.
func (in *caseInput) apply(cmd *cobra.Command, c *airwaycase.Case, catalog *tubesize.Catalog) error {
	flags := cmd.Flags()

	rows := make([]airwaycase.SpecRow, 0, len(in.tubes))
	for _, raw := range in.tubes {
		row, err := parseTubeSpec(raw)
		if err != nil {
			return err
		}
		if row.OuterDiameter == 0 {
			if size, ok := tubesize.ParseSize(row.Size); ok {
				if od, ok := catalog.OuterDiameter(row.MakeModel, size); ok {
					row.OuterDiameter = od
				}
			}
		}
		rows = append(rows, row)
	}

	if flags.Changed("scenario") && !emergency.Valid(in.scenario) {
		return fmt.Errorf("unknown emergency scenario %q (want one of %s)", in.scenario, strings.Join(emergency.Names(), ", "))
	}

	var fieldErr error
	c.Edit(func(d *airwaycase.Details) {
		if flags.Changed("first") {
			d.Patient.FirstName = in.first
		}
		if flags.Changed("last") {
			d.Patient.LastName = in.last
		}
		if flags.Changed("mrn") {
			d.Patient.MRN = in.mrn
		}
		if flags.Changed("dob") {
			d.Patient.DateOfBirth = in.dob
		}
		if in.clearTubes {
			d.SpecTable = nil
		}
		d.SpecTable = append(d.SpecTable, rows...)
		if flags.Changed("suction-size") {
			d.Suction.Size = in.suctionSize
		} else if d.Suction.Size == 0 && len(d.SpecTable) > 0 {
			if size, ok := tubesize.ParseSize(d.SpecTable[0].Size); ok {
				if fr, ok := catalog.SuctionCatheterSize(size); ok {
					d.Suction.Size = fr
				}
			}
		}
		if flags.Changed("suction-depth") {
			d.Suction.Depth = in.suctionDepth
		}
		if flags.Changed("scenario") {
			d.EmergencyScenario = in.scenario
		}
		if flags.Changed("comments") {
			d.SpecialComments = in.comments
		}
		if flags.Changed("mask") {
			d.DecisionBox.MaskVentilate = in.mask
		}
		if flags.Changed("above") {
			d.DecisionBox.IntubateAbove = in.above
		}
		if flags.Changed("stoma") {
			d.DecisionBox.IntubateStoma = in.stoma
		}
		for _, kv := range in.fields {
			key, value, ok := strings.Cut(kv, "=")
			if !ok {
				fieldErr = errors.Join(fieldErr, fmt.Errorf("invalid --field %q (want key=value)", kv))
				continue
			}
			if err := d.SetField(strings.TrimSpace(key), value); err != nil {
				fieldErr = errors.Join(fieldErr, err)
			}
		}
	})
	return fieldErr
}

// parseTubeSpec reads make:size:type:cuff with optional trailing
// id:od:length:reorder numbers. Empty numeric parts stay unset.
func parseTubeSpec(raw string) (airwaycase.SpecRow, error) {
	parts := strings.Split(raw, ":")
	if len(parts) < 2 || len(parts) > 8 {
		return airwaycase.SpecRow{}, fmt.Errorf("invalid --tube %q (want make:size:type:cuff[:id:od:length:reorder])", raw)
	}
	for len(parts) < 8 {
		parts = append(parts, "")
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	row := airwaycase.SpecRow{
		MakeModel: parts[0],
		Size:      parts[1],
		Type:      parts[2],
		Cuff:      parts[3],
	}
	if row.MakeModel == "" || row.Size == "" {
		return airwaycase.SpecRow{}, fmt.Errorf("invalid --tube %q: make and size are required", raw)
	}

	floats := []struct {
		name string
		raw  string
		dst  *float64
	}{
		{"inner diameter", parts[4], &row.InnerDiameter},
		{"outer diameter", parts[5], &row.OuterDiameter},
		{"length", parts[6], &row.Length},
	}
	for _, f := range floats {
		if f.raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(f.raw, 64)
		if err != nil || v < 0 {
			return airwaycase.SpecRow{}, fmt.Errorf("invalid --tube %q: bad %s %q", raw, f.name, f.raw)
		}
		*f.dst = v
	}
	if parts[7] != "" {
		n, err := strconv.Atoi(parts[7])
		if err != nil || n < 0 {
			return airwaycase.SpecRow{}, fmt.Errorf("invalid --tube %q: bad reorder number %q", raw, parts[7])
		}
		row.ReorderNumber = n
	}
	return row, nil
}
