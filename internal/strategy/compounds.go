package strategy

// Compound describes one tire compound's grip and wear behavior.
// PeakGrip is relative to the C3 baseline; the engine clamps the final
// multiplier to (0, 1], so compounds above 1.0 trade their surplus for a
// longer window before wear bites.
type Compound struct {
	Name           string
	Code           string
	PeakGrip       float64
	WearRate       float64 // relative wear speed, C3 = 1.0
	CliffThreshold float64 // wear level where the cliff begins, 0..1
}

// Compounds is the compound database, hardest to softest.
var Compounds = map[string]Compound{
	"C1": {Name: "Hard", Code: "C1", PeakGrip: 0.95, WearRate: 0.5, CliffThreshold: 0.85},
	"C2": {Name: "Medium-Hard", Code: "C2", PeakGrip: 0.98, WearRate: 0.7, CliffThreshold: 0.82},
	"C3": {Name: "Medium", Code: "C3", PeakGrip: 1.0, WearRate: 1.0, CliffThreshold: 0.80},
	"C4": {Name: "Soft", Code: "C4", PeakGrip: 1.03, WearRate: 1.4, CliffThreshold: 0.75},
	"C5": {Name: "Hyper-Soft", Code: "C5", PeakGrip: 1.05, WearRate: 1.8, CliffThreshold: 0.70},
}

// TrackAbrasiveness scales wear per circuit, Silverstone = 1.0 baseline.
var TrackAbrasiveness = map[string]float64{
	"Monaco":      0.6,
	"Singapore":   0.7,
	"Silverstone": 1.0,
	"Barcelona":   1.1,
	"Spa":         1.2,
	"Paul Ricard": 1.3,
	"Bahrain":     1.5,
}
