package algorithms

import (
	"fmt"
	"math"

	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/mihai-snyk/extremum-search/pkg/extremum/framework"
)

// MinPopulationSize keeps the survivor half non-empty.
const MinPopulationSize = 2

// ValidateConfig lists every problem with cfg.
func ValidateConfig(cfg Config, fldPath *field.Path) field.ErrorList {
	var allErrs field.ErrorList

	if !finite(cfg.A) {
		allErrs = append(allErrs, field.Invalid(fldPath.Child("a"), cfg.A, "must be a finite number"))
	}
	if !finite(cfg.B) {
		allErrs = append(allErrs, field.Invalid(fldPath.Child("b"), cfg.B, "must be a finite number"))
	}
	if finite(cfg.A) && finite(cfg.B) && cfg.A > cfg.B {
		allErrs = append(allErrs, field.Invalid(fldPath.Child("b"), cfg.B,
			fmt.Sprintf("must be greater than or equal to a (%v)", cfg.A)))
	}
	if cfg.PopulationSize < MinPopulationSize {
		allErrs = append(allErrs, field.Invalid(fldPath.Child("populationSize"), cfg.PopulationSize,
			fmt.Sprintf("must be at least %d", MinPopulationSize)))
	}
	if cfg.Generations < 0 {
		allErrs = append(allErrs, field.Invalid(fldPath.Child("generations"), cfg.Generations, "must not be negative"))
	}
	if !finite(cfg.MutationIntensity) {
		allErrs = append(allErrs, field.Invalid(fldPath.Child("mutationIntensity"), cfg.MutationIntensity, "must be a finite number"))
	}
	// The negated form also rejects NaN.
	if !(cfg.MutationProbability >= 0 && cfg.MutationProbability <= 1) {
		allErrs = append(allErrs, field.Invalid(fldPath.Child("mutationProbability"), cfg.MutationProbability, "must be within [0, 1]"))
	}
	switch cfg.Optimum {
	case framework.Minimum, framework.Maximum:
	default:
		allErrs = append(allErrs, field.NotSupported(fldPath.Child("optimum"), cfg.Optimum,
			[]string{string(framework.Minimum), string(framework.Maximum)}))
	}
	if cfg.Objective == nil {
		allErrs = append(allErrs, field.Required(fldPath.Child("objective"), "an objective function is required"))
	}
	return allErrs
}

// Validate rejects a configuration before anything is sampled. The error
// wraps framework.ErrInvalidConfiguration.
func Validate(cfg Config) error {
	if errs := ValidateConfig(cfg, nil); len(errs) > 0 {
		return fmt.Errorf("%w: %v", framework.ErrInvalidConfiguration, errs.ToAggregate())
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
