package tubesize

import (
	"slices"
	"strconv"
	"strings"
)

// Family identifies a tracheostomy tube product line.
type Family int

const (
	FamilyCustom Family = iota
	FamilyBivona
	FamilyShiley
	FamilyTracoe
)

func (f Family) String() string {
	switch f {
	case FamilyBivona:
		return "Bivona"
	case FamilyShiley:
		return "Shiley"
	case FamilyTracoe:
		return "Tracoe"
	default:
		return "Custom"
	}
}

// FamilyOf resolves a manufacturer or make/model string to its product line by
// substring containment. Unrecognized names map to FamilyCustom.
func FamilyOf(manufacturer string) Family {
	switch {
	case strings.Contains(manufacturer, "Bivona"), strings.Contains(manufacturer, "Portex"):
		return FamilyBivona
	case strings.Contains(manufacturer, "Shiley"), strings.Contains(manufacturer, "Medtronic"):
		return FamilyShiley
	case strings.Contains(manufacturer, "Tracoe"), strings.Contains(manufacturer, "Atos"):
		return FamilyTracoe
	default:
		return FamilyCustom
	}
}

// ParseFamily parses a family name typed by a user, ignoring case.
func ParseFamily(value string) (Family, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "bivona", "portex":
		return FamilyBivona, true
	case "shiley", "medtronic":
		return FamilyShiley, true
	case "tracoe", "atos":
		return FamilyTracoe, true
	case "custom", "generic":
		return FamilyCustom, true
	}
	return FamilyCustom, false
}

// Variant selects the distal shaft length table for a family.
type Variant int

const (
	VariantNeonatal Variant = iota
	VariantPediatric
	// VariantPediatricExtraLong exists for Shiley only.
	VariantPediatricExtraLong
	// VariantPediatricPlus exists for Bivona Flextend only.
	VariantPediatricPlus
)

func (v Variant) String() string {
	switch v {
	case VariantNeonatal:
		return "neonatal"
	case VariantPediatric:
		return "pediatric"
	case VariantPediatricExtraLong:
		return "pediatric-extra-long"
	case VariantPediatricPlus:
		return "pediatric-plus"
	default:
		return "unknown"
	}
}

// ParseVariant maps a CLI/config token to a Variant.
func ParseVariant(value string) (Variant, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "neonatal", "neo":
		return VariantNeonatal, true
	case "pediatric", "ped":
		return VariantPediatric, true
	case "pediatric-extra-long", "extra-long", "xl":
		return VariantPediatricExtraLong, true
	case "pediatric-plus", "plus":
		return VariantPediatricPlus, true
	default:
		return 0, false
	}
}

// Catalog answers reference-data queries. All Catalog values share the same
// process-wide tables.
type Catalog struct {
	t *tables
}

// New returns a catalog backed by the standard reference tables.
func New() *Catalog {
	return &Catalog{t: reference()}
}

// OuterDiameter returns the standard outer diameter in millimetres for the
// manufacturer's product line and nominal size. Shiley sizes of 6.0 and above
// are resolved against the extended (TaperGuard/extra long) table first.
func (c *Catalog) OuterDiameter(manufacturer string, size float64) (float64, bool) {
	var table map[float64]float64
	switch FamilyOf(manufacturer) {
	case FamilyBivona:
		table = c.t.bivonaOD
	case FamilyShiley:
		if size >= 6.0 {
			if od, ok := c.t.shileyExtendedOD[size]; ok {
				return od, true
			}
		}
		table = c.t.shileyOD
	case FamilyTracoe:
		table = c.t.tracoeOD
	default:
		return 0, false
	}
	od, ok := table[size]
	return od, ok
}

// SuctionCatheterSize returns the recommended suction catheter size in French.
func (c *Catalog) SuctionCatheterSize(size float64) (int, bool) {
	fr, ok := c.t.suctionCatheter[size]
	return fr, ok
}

// ETTSuctionDepth returns the suction depth in centimetres for an endotracheal
// tube size written with one decimal place, e.g. "4.0".
func (c *Catalog) ETTSuctionDepth(ettSize string) (string, bool) {
	depth, ok := c.t.ettSuctionDepth[ettSize]
	return depth, ok
}

// DistalShaftLength returns the standard distal shaft length in millimetres.
func (c *Catalog) DistalShaftLength(family Family, variant Variant, size float64) (int, bool) {
	table := c.distalTable(family, variant)
	if table == nil {
		return 0, false
	}
	length, ok := table[size]
	return length, ok
}

func (c *Catalog) distalTable(family Family, variant Variant) map[float64]int {
	switch family {
	case FamilyBivona:
		switch variant {
		case VariantNeonatal:
			return c.t.bivonaDistalNeo
		case VariantPediatric:
			return c.t.bivonaDistalPed
		case VariantPediatricPlus:
			return c.t.bivonaDistalPedPlus
		}
	case FamilyShiley:
		switch variant {
		case VariantNeonatal:
			return c.t.shileyDistalNeo
		case VariantPediatric:
			return c.t.shileyDistalPed
		case VariantPediatricExtraLong:
			return c.t.shileyDistalExtLong
		}
	case FamilyTracoe:
		switch variant {
		case VariantNeonatal:
			return c.t.tracoeDistalNeo
		case VariantPediatric:
			return c.t.tracoeDistalPed
		}
	}
	return nil
}

// ProximalShaftLength returns the proximal shaft length of a Bivona Flextend tube.
func (c *Catalog) ProximalShaftLength(size float64) (int, bool) {
	length, ok := c.t.bivonaProximalFlexed[size]
	return length, ok
}

// InsertDepthFor computes the standard suction catheter insertion depth in
// centimetres from the shaft tables. Flextend only applies to Bivona; other
// tubes have no proximal shaft. A missing table entry yields false rather than
// a depth computed from zeros.
func (c *Catalog) InsertDepthFor(family Family, variant Variant, size float64, flextend bool) (float64, bool) {
	distal, ok := c.DistalShaftLength(family, variant, size)
	if !ok {
		return 0, false
	}
	proximal := 0
	if flextend {
		if family != FamilyBivona {
			return 0, false
		}
		if proximal, ok = c.ProximalShaftLength(size); !ok {
			return 0, false
		}
	}
	return StdCathInsertDepth(proximal, distal), true
}

// CalculateStdCathInsertDepth converts the millimetre sum of the shaft
// segments, adapter, and suction tip extension into centimetres. Inputs are not
// range checked.
func CalculateStdCathInsertDepth(proximalShaftLen, distalShaftLen int, suctTipExtend float64, adapterLen int) float64 {
	return (float64(proximalShaftLen+adapterLen+distalShaftLen) + suctTipExtend) / 10.0
}

// StdCathInsertDepth applies CalculateStdCathInsertDepth with the standard
// tip extension and adapter length.
func StdCathInsertDepth(proximalShaftLen, distalShaftLen int) float64 {
	return CalculateStdCathInsertDepth(proximalShaftLen, distalShaftLen, SuctTipExtend, AdapterLen)
}

// Variants lists the shaft length tables a family offers. Custom tubes have
// none.
func (c *Catalog) Variants(family Family) []Variant {
	switch family {
	case FamilyBivona:
		return []Variant{VariantNeonatal, VariantPediatric, VariantPediatricPlus}
	case FamilyShiley:
		return []Variant{VariantNeonatal, VariantPediatric, VariantPediatricExtraLong}
	case FamilyTracoe:
		return []Variant{VariantNeonatal, VariantPediatric}
	default:
		return nil
	}
}

// Sizes returns the selectable nominal sizes for a family and variant. Custom
// tubes use the generic range whatever the variant; a variant the family does
// not make reports false.
func (c *Catalog) Sizes(family Family, variant Variant) ([]string, bool) {
	if family == FamilyCustom {
		return slices.Clone(genericSizes), true
	}
	var sizes []string
	switch family {
	case FamilyBivona:
		switch variant {
		case VariantNeonatal:
			sizes = bivonaNeoSizes
		case VariantPediatric:
			sizes = bivonaPedSizes
		case VariantPediatricPlus:
			sizes = bivonaPedPlusSizes
		}
	case FamilyShiley:
		switch variant {
		case VariantNeonatal:
			sizes = shileyNeoSizes
		case VariantPediatric:
			sizes = shileyPedSizes
		case VariantPediatricExtraLong:
			sizes = shileyXLongSizes
		}
	case FamilyTracoe:
		switch variant {
		case VariantNeonatal:
			sizes = tracoeNeoSizes
		case VariantPediatric:
			sizes = tracoePedSizes
		}
	}
	if sizes == nil {
		return nil, false
	}
	return slices.Clone(sizes), true
}

// TubeTypes lists the product descriptions offered for a family.
func (c *Catalog) TubeTypes(family Family) []string {
	switch family {
	case FamilyBivona:
		return slices.Clone(bivonaTubeTypes)
	case FamilyShiley:
		return slices.Clone(shileyTubeTypes)
	case FamilyTracoe:
		return slices.Clone(tracoeTubeTypes)
	default:
		return nil
	}
}

// FacePlateTypes lists the generic face plate options for custom tubes.
func (c *Catalog) FacePlateTypes() []string {
	return slices.Clone(genericFacePlates)
}

// CuffTypes lists the cuff options for a family.
func (c *Catalog) CuffTypes(family Family) []string {
	switch family {
	case FamilyBivona:
		return slices.Clone(bivonaCuffTypes)
	case FamilyShiley:
		return slices.Clone(shileyCuffTypes)
	case FamilyTracoe:
		return slices.Clone(tracoeCuffTypes)
	default:
		return slices.Clone(genericCuffTypes)
	}
}

// FormatSize renders a nominal size as the one-decimal text key used by the
// ETT table and the size lists.
func FormatSize(size float64) string {
	return strconv.FormatFloat(size, 'f', 1, 64)
}

// ParseSize parses a nominal size written as text ("3.5").
func ParseSize(value string) (float64, bool) {
	size, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, false
	}
	return size, true
}
