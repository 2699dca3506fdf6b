package benchmarks

import (
	"fmt"
	"math"
	"sort"

	"github.com/mihai-snyk/extremum-search/pkg/extremum/framework"
)

// Default sampling interval shared by every catalog function.
const (
	DefaultA = 1.0
	DefaultB = 2.0
)

// SinPlusThird is sin(x) + x/3: a sine wave on a gentle upward slope, with a
// local minimum and maximum every period.
type SinPlusThird struct{}

func (SinPlusThird) Name() string { return "sin(x) + x/3" }

func (SinPlusThird) Objective() framework.ObjectiveFunc {
	return func(x float64) float64 { return math.Sin(x) + x/3 }
}

func (SinPlusThird) Bounds() (float64, float64) { return DefaultA, DefaultB }

// CosPlusThird is cos(x) + x/3.
type CosPlusThird struct{}

func (CosPlusThird) Name() string { return "cos(x) + x/3" }

func (CosPlusThird) Objective() framework.ObjectiveFunc {
	return func(x float64) float64 { return math.Cos(x) + x/3 }
}

func (CosPlusThird) Bounds() (float64, float64) { return DefaultA, DefaultB }

// ScaledXSin is 3*x*sin(x) + x/3. Its extrema grow with |x|, so a search
// drifting outside [a, b] keeps finding better values.
type ScaledXSin struct{}

func (ScaledXSin) Name() string { return "3*x*sin(x) + x/3" }

func (ScaledXSin) Objective() framework.ObjectiveFunc {
	return func(x float64) float64 { return 3*x*math.Sin(x) + x/3 }
}

func (ScaledXSin) Bounds() (float64, float64) { return DefaultA, DefaultB }

var catalog = []framework.Problem{SinPlusThird{}, CosPlusThird{}, ScaledXSin{}}

// Default is the function used when none is named.
func Default() framework.Problem {
	return catalog[0]
}

// All returns the catalog in display order.
func All() []framework.Problem {
	out := make([]framework.Problem, len(catalog))
	copy(out, catalog)
	return out
}

// aliases lets the CLI name functions without shell quoting.
var aliases = map[string]string{
	"sin":     SinPlusThird{}.Name(),
	"cos":     CosPlusThird{}.Name(),
	"xsin":    ScaledXSin{}.Name(),
	"3xsin":   ScaledXSin{}.Name(),
	"default": SinPlusThird{}.Name(),
}

// Lookup finds a catalog function by display name or alias.
func Lookup(name string) (framework.Problem, error) {
	if canonical, ok := aliases[name]; ok {
		name = canonical
	}
	for _, p := range catalog {
		if p.Name() == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("unknown function %q, known: %v", name, Names())
}

// Names lists display names followed by aliases, sorted within each group.
func Names() []string {
	names := make([]string, 0, len(catalog)+len(aliases))
	for _, p := range catalog {
		names = append(names, p.Name())
	}
	keys := make([]string, 0, len(aliases))
	for k := range aliases {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return append(names, keys...)
}
