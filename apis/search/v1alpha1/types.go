/*
Copyright 2024 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

const (
	GroupName = "search.extremum.io"
	Version   = "v1alpha1"
	Kind      = "SearchRun"
)

// SchemeGroupVersion is the group version used for SearchRun documents.
var SchemeGroupVersion = schema.GroupVersion{Group: GroupName, Version: Version}

// SearchRun describes one extremum search: the parameters it is run with and,
// once finished, a short account of what it found.
// +k8s:deepcopy-gen:interfaces=k8s.io/apimachinery/pkg/runtime.Object
type SearchRun struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   SearchRunSpec   `json:"spec,omitempty"`
	Status SearchRunStatus `json:"status,omitempty"`
}

// SearchRunSpec holds the run configuration. Unset fields are defaulted.
type SearchRunSpec struct {
	// A is the lower bound of the initial sampling interval.
	A *float64 `json:"a,omitempty"`

	// B is the upper bound of the initial sampling interval; must not be below A.
	B *float64 `json:"b,omitempty"`

	// DisplayAdjustment widens the plotted window on both sides. It has no
	// effect on the search itself.
	DisplayAdjustment *float64 `json:"displayAdjustment,omitempty"`

	// Optimum selects whether lower or higher fitness wins.
	// +kubebuilder:validation:Enum=Minimum;Maximum
	Optimum Optimum `json:"optimum,omitempty"`

	// Generations is how many generations are simulated.
	Generations *int `json:"generations,omitempty"`

	// MutationIntensity is the signed step added or subtracted by a mutation.
	MutationIntensity *float64 `json:"mutationIntensity,omitempty"`

	// MutationProbability is the chance in [0, 1] that an agent mutates in a generation.
	MutationProbability *float64 `json:"mutationProbability,omitempty"`

	// PopulationSize is the number of agents per generation.
	PopulationSize *int `json:"populationSize,omitempty"`

	// Function names an entry of the objective catalog.
	Function string `json:"function,omitempty"`

	// Seed makes the run reproducible when set.
	Seed *uint64 `json:"seed,omitempty"`
}

// Optimum is the ranking direction.
type Optimum string

const (
	OptimumMinimum Optimum = "Minimum"
	OptimumMaximum Optimum = "Maximum"
)

// SearchRunStatus is filled in after the run completes.
type SearchRunStatus struct {
	// Phase is the outcome of the run.
	Phase SearchRunPhase `json:"phase,omitempty"`

	// StartTime is when the engine was invoked.
	StartTime *metav1.Time `json:"startTime,omitempty"`

	// CompletionTime is when the engine returned.
	CompletionTime *metav1.Time `json:"completionTime,omitempty"`

	// Evaluations counts objective function calls.
	Evaluations int64 `json:"evaluations,omitempty"`

	// Best is the best survivor seen in any generation.
	Best *AgentValue `json:"best,omitempty"`

	// BestGeneration is the zero-based generation Best was recorded in.
	BestGeneration int `json:"bestGeneration,omitempty"`

	// Message explains a failed phase.
	Message string `json:"message,omitempty"`
}

// AgentValue is a serialized, evaluated agent.
type AgentValue struct {
	Position float64 `json:"position"`
	Fitness  float64 `json:"fitness"`
}

// SearchRunPhase is the lifecycle phase of a run.
type SearchRunPhase string

const (
	// SearchRunPhaseSucceeded means the full history was produced.
	SearchRunPhaseSucceeded SearchRunPhase = "Succeeded"

	// SearchRunPhaseFailed means the objective returned a value that cannot be ranked.
	SearchRunPhaseFailed SearchRunPhase = "Failed"
)

// +k8s:deepcopy-gen:interfaces=k8s.io/apimachinery/pkg/runtime.Object

// SearchRunList contains a list of SearchRun
type SearchRunList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []SearchRun `json:"items"`
}
