package tubesize

import "sync"

const (
	// AdapterLen is the standard anaesthetic adapter length in millimetres.
	AdapterLen = 25
	// SuctTipExtend is the recommended suction distance beyond the cannula tip in millimetres.
	SuctTipExtend = 5
)

type tables struct {
	bivonaOD         map[float64]float64
	shileyOD         map[float64]float64
	shileyExtendedOD map[float64]float64
	tracoeOD         map[float64]float64

	bivonaDistalNeo      map[float64]int
	shileyDistalNeo      map[float64]int
	tracoeDistalNeo      map[float64]int
	bivonaDistalPed      map[float64]int
	shileyDistalPed      map[float64]int
	tracoeDistalPed      map[float64]int
	shileyDistalExtLong  map[float64]int
	bivonaDistalPedPlus  map[float64]int
	bivonaProximalFlexed map[float64]int

	suctionCatheter map[float64]int
	ettSuctionDepth map[string]string
}

var (
	loadOnce sync.Once
	ref      *tables
)

func reference() *tables {
	loadOnce.Do(func() {
		ref = buildTables()
	})
	return ref
}

func buildTables() *tables {
	return &tables{
		bivonaOD: map[float64]float64{
			2.5: 4.0,
			3.0: 4.7,
			3.5: 5.3,
			4.0: 6.0,
			4.5: 6.7, // pediatric only
			5.0: 7.3, // pediatric only
			5.5: 8.0, // pediatric only
		},
		shileyOD: map[float64]float64{
			2.5: 4.2,
			3.0: 4.8,
			3.5: 5.4,
			4.0: 6.0,
			4.5: 6.7,
			5.0: 7.3, // pediatric only
			5.5: 7.9, // pediatric only
		},
		// TaperGuard and extra long tubes.
		shileyExtendedOD: map[float64]float64{
			6.0: 8.5,
			6.5: 9.0,
		},
		tracoeOD: map[float64]float64{
			2.5: 4.4,
			3.0: 4.9,
			3.5: 5.4,
			4.0: 6.0,
			4.5: 6.7,
			5.0: 7.3,
			5.5: 7.9,
		},
		bivonaDistalNeo: map[float64]int{2.5: 30, 3.0: 32, 3.5: 34, 4.0: 36},
		shileyDistalNeo: map[float64]int{2.5: 30, 3.0: 30, 3.5: 32, 4.0: 34, 4.5: 36},
		// REF 360/363
		tracoeDistalNeo: map[float64]int{2.5: 30, 3.0: 32, 3.5: 34, 4.0: 36},
		bivonaDistalPed: map[float64]int{2.5: 38, 3.0: 39, 3.5: 40, 4.0: 41, 4.5: 42, 5.0: 44, 5.5: 46},
		shileyDistalPed: map[float64]int{2.5: 39, 3.0: 39, 3.5: 40, 4.0: 41, 4.5: 42, 5.0: 44, 5.5: 46},
		// REF 370/372
		tracoeDistalPed:     map[float64]int{2.5: 38, 3.0: 39, 3.5: 40, 4.0: 41, 4.5: 42, 5.0: 44, 5.5: 46},
		shileyDistalExtLong: map[float64]int{5.0: 50, 5.5: 52, 6.0: 54, 6.5: 56},
		bivonaDistalPedPlus: map[float64]int{4.0: 44, 4.5: 48, 5.0: 50, 5.5: 52},
		// Flextend tubes only.
		bivonaProximalFlexed: map[float64]int{2.5: 20, 3.0: 20, 3.5: 20, 4.0: 20, 4.5: 30, 5.0: 30, 5.5: 30},
		suctionCatheter: map[float64]int{
			2.5: 6,
			3.0: 6,
			3.5: 8,
			4.0: 8,
			4.5: 10,
			5.0: 10,
			5.5: 10,
			6.0: 12,
			6.5: 12,
		},
		ettSuctionDepth: map[string]string{
			"2.0": "14",
			"2.5": "15",
			"3.0": "16",
			"3.5": "18",
			"4.0": "20",
			"4.5": "22",
			"5.0": "24",
			"5.5": "26",
			"6.0": "28",
			"6.5": "30",
		},
	}
}

var (
	genericSizes       = []string{"2.5", "3.0", "3.5", "4.0", "4.5", "5.0", "5.5"}
	bivonaNeoSizes     = []string{"2.5", "3.0", "3.5", "4.0"}
	bivonaPedSizes     = []string{"2.5", "3.0", "3.5", "4.0", "4.5", "5.0", "5.5"}
	bivonaPedPlusSizes = []string{"4.0", "4.5", "5.0", "5.5"}
	shileyNeoSizes     = []string{"2.5", "3.0", "3.5", "4.0", "4.5"}
	shileyPedSizes     = []string{"2.5", "3.0", "3.5", "4.0", "4.5", "5.0", "5.5"}
	shileyXLongSizes   = []string{"5.0", "5.5", "6.0", "6.5"}
	tracoeNeoSizes     = []string{"2.5", "3.0", "3.5", "4.0"}
	tracoePedSizes     = []string{"2.5", "3.0", "3.5", "4.0", "4.5", "5.0", "5.5"}
	bivonaTubeTypes    = []string{"Bivona - Neonatal", "Bivona - Pediatric", "Bivona - Neonatal - Flextend", "Bivona - Pediatric - Flextend", "Bivona - Pediatric Plus - Flextend", "Bivona - Custom"}
	shileyTubeTypes    = []string{"Shiley - Neonatal", "Shiley - Pediatric", "Shiley - Pediatric - Extra Long", "Shiley - Pediatric - Extra Long - TaperGuard", "Shiley - Pediatric - Extra Long - Cuffless", "Shiley - Custom"}
	tracoeTubeTypes    = []string{"Tracoe - Silcosoft Neonatal", "Tracoe - Silcosoft Pediatric", "Tracoe - Silcosoft Neonatal - Proximal Longer", "Tracoe - Silcosoft Pediatric - Proximal Longer", "Tracoe - Custom"}
	bivonaCuffTypes    = []string{"Cuffless", "TTS", "Air", "Foam"}
	shileyCuffTypes    = []string{"Cuffless", "Cuffed"}
	tracoeCuffTypes    = []string{"Cuffless", "H2O Cuff"}
	genericCuffTypes   = []string{"Cuffless", "Cuffed"}
	genericFacePlates  = []string{"Straight", "Angled"}
)
