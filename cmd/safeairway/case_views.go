package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"safeairway/internal/airwaycase"
	"safeairway/internal/bedside"
	"safeairway/internal/casestore"
	"safeairway/internal/emergency"
)

const listTimeLayout = "2006-01-02 15:04"

// caseSummaryView is the JSON shape of a listing row.
type caseSummaryView struct {
	ID        string `json:"id,omitempty"`
	Type      string `json:"caseType,omitempty"`
	Patient   string `json:"patient,omitempty"`
	MRN       string `json:"mrn,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
	Path      string `json:"path"`
	Error     string `json:"error,omitempty"`
}

func summaryView(s casestore.Summary) caseSummaryView {
	if s.Err != nil {
		return caseSummaryView{Path: s.Path, Error: s.Err.Error()}
	}
	return caseSummaryView{
		ID:        s.ID,
		Type:      s.Type.String(),
		Patient:   s.Patient,
		MRN:       s.MRN,
		UpdatedAt: s.UpdatedAt.Format(time.RFC3339),
		Path:      s.Path,
	}
}

func printSummaries(cmd *cobra.Command, summaries []casestore.Summary, asJSON bool, emptyMessage string) error {
	if asJSON {
		views := make([]caseSummaryView, 0, len(summaries))
		for _, s := range summaries {
			views = append(views, summaryView(s))
		}
		return writeJSON(cmd, views)
	}
	out := cmd.OutOrStdout()
	if len(summaries) == 0 {
		fmt.Fprintln(out, emptyMessage)
		return nil
	}
	fmt.Fprint(out, renderTable(
		[]string{"Patient", "MRN", "Type", "Updated", "ID"},
		buildSummaryRows(summaries),
		nil,
	))
	return nil
}

func buildSummaryRows(summaries []casestore.Summary) [][]string {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		if s.Err != nil {
			rows = append(rows, []string{"(unreadable)", "", "", "", filepath.Base(s.Path)})
			continue
		}
		rows = append(rows, []string{
			s.Patient,
			s.MRN,
			s.Type.Label(),
			s.UpdatedAt.Local().Format(listTimeLayout),
			s.ID,
		})
	}
	return rows
}

// writeCaseJSON prints the stored wire form of c.
func writeCaseJSON(cmd *cobra.Command, c *airwaycase.Case) error {
	data, err := airwaycase.MarshalIndent(c)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if _, err := out.Write(data); err != nil {
		return err
	}
	_, err = fmt.Fprintln(out)
	return err
}

// renderCaseDetail is the full clinician view, identifiers included.
func renderCaseDetail(c *airwaycase.Case, env *caseEnv) string {
	d := c.Details()
	pairs := [][2]string{
		{"Case", c.ID()},
		{"Type", c.Type().Label()},
		{"Created", c.CreatedAt().Local().Format(listTimeLayout)},
		{"Updated", c.UpdatedAt().Local().Format(listTimeLayout)},
		{"File", c.FilePath()},
		{"First name", d.Patient.FirstName},
		{"Last name", d.Patient.LastName},
		{"MRN", d.Patient.MRN},
		{"Date of birth", d.Patient.DateOfBirth},
	}
	for _, f := range airwaycase.RelevantFields(c.Type()) {
		v, _ := d.Field(f.Key)
		pairs = append(pairs, [2]string{f.Label, v})
	}
	pairs = append(pairs,
		[2]string{"Mask ventilate", yesNo(d.DecisionBox.MaskVentilate)},
		[2]string{"Intubate above", yesNo(d.DecisionBox.IntubateAbove)},
		[2]string{"Intubate stoma", yesNo(d.DecisionBox.IntubateStoma)},
		[2]string{"Emergency", d.EmergencyScenario},
		[2]string{"Comments", d.SpecialComments},
	)

	var b strings.Builder
	if raw, ok := c.UnrecognizedType(); ok {
		fmt.Fprintf(&b, "Warning: unrecognized case type %q, shown as %s\n\n", raw, c.Type().Label())
	}
	b.WriteString(renderFields(pairs))

	if len(d.SpecTable) > 0 {
		rows := make([][]string, 0, len(d.SpecTable))
		for _, row := range d.SpecTable {
			rows = append(rows, []string{
				row.MakeModel,
				row.Size,
				row.Type,
				row.Cuff,
				optionalFloat(row.InnerDiameter),
				bedside.OuterDiameterText(env.catalog, row),
				optionalFloat(row.Length),
				optionalInt(row.ReorderNumber),
			})
		}
		b.WriteByte('\n')
		b.WriteString(renderTable(
			[]string{"Make", "Size", "Type", "Cuff", "ID", "OD", "Length", "Reorder"},
			rows,
			[]columnAlignment{alignLeft, alignRight, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight},
		))
	}

	b.WriteByte('\n')
	b.WriteString(bedside.SuctionText(d.Suction))
	b.WriteByte('\n')

	if text := emergency.Instructions(d.EmergencyScenario, d.Suction.Size); text != "" {
		fmt.Fprintf(&b, "\n%s:\n%s\n", d.EmergencyScenario, text)
	}
	return b.String()
}

func optionalFloat(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func optionalInt(v int) string {
	if v == 0 {
		return ""
	}
	return strconv.Itoa(v)
}
