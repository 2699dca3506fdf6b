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
	"k8s.io/utils/ptr"
)

var (
	DefaultA                   = 1.0
	DefaultB                   = 2.0
	DefaultDisplayAdjustment   = 0.0
	DefaultOptimum             = OptimumMinimum
	DefaultGenerations         = 10
	DefaultMutationIntensity   = 0.5
	DefaultMutationProbability = 0.1
	DefaultPopulationSize      = 50
	DefaultFunction            = "sin(x) + x/3"
)

// SetDefaults_SearchRun fills TypeMeta and every unset spec field.
func SetDefaults_SearchRun(obj *SearchRun) {
	if obj.APIVersion == "" {
		obj.APIVersion = SchemeGroupVersion.String()
	}
	if obj.Kind == "" {
		obj.Kind = Kind
	}
	SetDefaults_SearchRunSpec(&obj.Spec)
}

// SetDefaults_SearchRunSpec fills unset fields with the defaults above.
func SetDefaults_SearchRunSpec(spec *SearchRunSpec) {
	if spec.A == nil {
		spec.A = ptr.To(DefaultA)
	}
	if spec.B == nil {
		spec.B = ptr.To(DefaultB)
	}
	if spec.DisplayAdjustment == nil {
		spec.DisplayAdjustment = ptr.To(DefaultDisplayAdjustment)
	}
	if spec.Optimum == "" {
		spec.Optimum = DefaultOptimum
	}
	if spec.Generations == nil {
		spec.Generations = ptr.To(DefaultGenerations)
	}
	if spec.MutationIntensity == nil {
		spec.MutationIntensity = ptr.To(DefaultMutationIntensity)
	}
	if spec.MutationProbability == nil {
		spec.MutationProbability = ptr.To(DefaultMutationProbability)
	}
	if spec.PopulationSize == nil {
		spec.PopulationSize = ptr.To(DefaultPopulationSize)
	}
	if spec.Function == "" {
		spec.Function = DefaultFunction
	}
}
