package track

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Circuit factories for real layouts with approximate corner radii. Radii
// are magnitudes; turn direction is not modeled by the point-mass engine.

func mustAdd(t *Track, s Segment) {
	if err := t.AddSegment(s); err != nil {
		panic(err)
	}
}

func straight(name string, length float64) Segment {
	return Segment{Name: name, Type: Straight, Length: length, Radius: math.Inf(1)}
}

func corner(name string, typ SegmentType, length, radius float64) Segment {
	return Segment{Name: name, Type: typ, Length: length, Radius: radius}
}

// Silverstone returns the Silverstone Circuit layout. Reference lap:
// 87.097 s, Lewis Hamilton (Mercedes), 2020.
func Silverstone() *Track {
	t := New("Silverstone Circuit")
	t.RecordTime = 87.097
	t.RecordHolder = "Lewis Hamilton (Mercedes)"
	t.RecordYear = 2020

	mustAdd(t, corner("Abbey", FastCorner, 250, 100))
	mustAdd(t, straight("Farm Straight", 500))
	mustAdd(t, corner("Village", Chicane, 80, 35))
	mustAdd(t, corner("The Loop", MediumCorner, 150, 80))
	mustAdd(t, corner("Aintree", MediumCorner, 120, 60))
	mustAdd(t, straight("Wellington Straight", 780))
	mustAdd(t, corner("Brooklands", FastCorner, 120, 90))
	mustAdd(t, corner("Luffield", SlowCorner, 140, 40))
	mustAdd(t, corner("Woodcote", MediumCorner, 180, 80))
	mustAdd(t, corner("Copse", FastCorner, 160, 120))
	mustAdd(t, corner("Maggots", FastCorner, 140, 150))
	mustAdd(t, corner("Becketts", FastCorner, 180, 100))
	mustAdd(t, corner("Chapel", FastCorner, 120, 90))
	mustAdd(t, straight("Hangar Straight", 1260))
	mustAdd(t, corner("Stowe", MediumCorner, 140, 70))
	mustAdd(t, corner("Vale", MediumCorner, 180, 50))
	mustAdd(t, corner("Club", MediumCorner, 160, 60))
	mustAdd(t, straight("Abbey Approach", 780))
	mustAdd(t, straight("Start/Finish", 451))
	return t
}

// Monaco returns the Circuit de Monaco layout. Reference lap: 70.166 s,
// Lewis Hamilton (Mercedes), 2019.
func Monaco() *Track {
	t := New("Circuit de Monaco")
	t.RecordTime = 70.166
	t.RecordHolder = "Lewis Hamilton (Mercedes)"
	t.RecordYear = 2019

	mustAdd(t, corner("Sainte Devote", SlowCorner, 100, 25))
	mustAdd(t, straight("Beau Rivage", 400))
	mustAdd(t, corner("Massenet", SlowCorner, 90, 30))
	mustAdd(t, corner("Casino", SlowCorner, 110, 35))
	mustAdd(t, corner("Mirabeau", SlowCorner, 80, 18))
	mustAdd(t, corner("Station Hairpin", SlowCorner, 120, 15))
	mustAdd(t, corner("Portier", MediumCorner, 200, 40))
	mustAdd(t, straight("Tunnel", 660))
	mustAdd(t, corner("Nouvelle Chicane", Chicane, 100, 25))
	mustAdd(t, corner("Tabac", SlowCorner, 120, 35))
	mustAdd(t, corner("Swimming Pool", Chicane, 240, 30))
	mustAdd(t, corner("La Rascasse", SlowCorner, 140, 20))
	mustAdd(t, corner("Anthony Noghes", SlowCorner, 110, 28))
	mustAdd(t, straight("Start Straight", 867))
	return t
}

// Spa returns the Spa-Francorchamps layout. Reference lap: 106.286 s,
// Valtteri Bottas (Mercedes), 2018.
func Spa() *Track {
	t := New("Spa-Francorchamps")
	t.RecordTime = 106.286
	t.RecordHolder = "Valtteri Bottas (Mercedes)"
	t.RecordYear = 2018

	mustAdd(t, corner("La Source", SlowCorner, 120, 30))
	mustAdd(t, corner("Eau Rouge", FastCorner, 280, 250))
	mustAdd(t, corner("Raidillon", FastCorner, 240, 200))
	mustAdd(t, straight("Kemmel Straight", 1200))
	mustAdd(t, corner("Les Combes", Chicane, 160, 50))
	mustAdd(t, corner("Malmedy", FastCorner, 400, 100))
	mustAdd(t, corner("Rivage", MediumCorner, 140, 45))
	mustAdd(t, corner("Speaker's Corner", MediumCorner, 360, 60))
	mustAdd(t, straight("Bruxelles", 420))
	mustAdd(t, corner("Pouhon", FastCorner, 450, 120))
	mustAdd(t, straight("Campus", 900))
	mustAdd(t, corner("Stavelot", FastCorner, 360, 80))
	mustAdd(t, corner("Blanchimont", FastCorner, 800, 200))
	mustAdd(t, corner("Chicane", Chicane, 150, 40))
	mustAdd(t, straight("Start Straight", 1024))
	return t
}

// MonzaStyle returns a Monza-inspired layout without record metadata.
func MonzaStyle() *Track {
	t := New("Monza-Style Circuit")

	mustAdd(t, straight("Start Straight", 200))
	mustAdd(t, corner("Variante del Rettifilo", Chicane, 120, 80))
	mustAdd(t, corner("Curva Biassono", MediumCorner, 80, 70))
	mustAdd(t, straight("Straight to Curva Grande", 300))
	mustAdd(t, corner("Curva Grande", FastCorner, 150, 200))
	mustAdd(t, straight("Approach to Roggia", 250))
	mustAdd(t, corner("Variante della Roggia", Chicane, 100, 45))
	mustAdd(t, corner("Roggia Exit", Chicane, 80, 45))
	mustAdd(t, straight("Straight to Lesmo", 400))
	mustAdd(t, corner("Lesmo 1", MediumCorner, 120, 60))
	mustAdd(t, corner("Lesmo 2", MediumCorner, 100, 55))
	mustAdd(t, straight("Straight to Ascari", 350))
	mustAdd(t, corner("Ascari 1", Chicane, 90, 40))
	mustAdd(t, corner("Ascari 2", Chicane, 80, 42))
	mustAdd(t, corner("Ascari 3", Chicane, 70, 38))
	mustAdd(t, straight("Rettifilo Tribune", 600))
	mustAdd(t, corner("Parabolica", MediumCorner, 100, 50))
	mustAdd(t, straight("Finish Straight", 150))
	return t
}

var circuits = map[string]func() *Track{
	"silverstone": Silverstone,
	"monaco":      Monaco,
	"spa":         Spa,
	"monza":       MonzaStyle,
}

// Names returns the sorted list of known circuit keys.
func Names() []string {
	names := make([]string, 0, len(circuits))
	for name := range circuits {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName builds a fresh track for a known circuit key.
func ByName(name string) (*Track, error) {
	factory, ok := circuits[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown circuit %q (have %s)", name, strings.Join(Names(), ", "))
	}
	return factory(), nil
}
