package extremum

import (
	"github.com/mihai-snyk/extremum-search/apis/search/v1alpha1"
	"github.com/mihai-snyk/extremum-search/pkg/extremum/benchmarks"
	"github.com/mihai-snyk/extremum-search/pkg/extremum/framework"
)

// SearchProblem is a catalog function searched over a caller-chosen interval.
type SearchProblem struct {
	fn   framework.Problem
	a, b float64
}

var _ framework.Problem = &SearchProblem{}

// ProblemFor resolves the function named in a defaulted spec.
func ProblemFor(spec v1alpha1.SearchRunSpec) (*SearchProblem, error) {
	fn, err := benchmarks.Lookup(spec.Function)
	if err != nil {
		return nil, err
	}
	a, b := fn.Bounds()
	if spec.A != nil {
		a = *spec.A
	}
	if spec.B != nil {
		b = *spec.B
	}
	return &SearchProblem{fn: fn, a: a, b: b}, nil
}

func (p *SearchProblem) Name() string {
	return p.fn.Name()
}

func (p *SearchProblem) Objective() framework.ObjectiveFunc {
	return p.fn.Objective()
}

func (p *SearchProblem) Bounds() (float64, float64) {
	return p.a, p.b
}
