package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mihai-snyk/extremum-search/apis/search/v1alpha1"
	"github.com/mihai-snyk/extremum-search/pkg/extremum/framework"
	"github.com/mihai-snyk/extremum-search/pkg/extremum/stats"
)

const (
	CurrentSchemaVersion = 1
	CurrentCodecVersion  = 1
)

var ErrVersionMismatch = errors.New("record version mismatch")

type runPayload struct {
	SchemaVersion int `json:"schemaVersion"`
	CodecVersion  int `json:"codecVersion"`

	ID        string                    `json:"id"`
	CreatedAt time.Time                 `json:"createdAt"`
	Run       v1alpha1.SearchRun        `json:"run"`
	History   []generationPayload       `json:"history"`
	Summaries []stats.GenerationSummary `json:"summaries,omitempty"`
}

type generationPayload struct {
	Survivors []v1alpha1.AgentValue `json:"survivors"`
	Discarded []v1alpha1.AgentValue `json:"discarded"`
}

func EncodeRun(r RunRecord) ([]byte, error) {
	p := runPayload{
		SchemaVersion: CurrentSchemaVersion,
		CodecVersion:  CurrentCodecVersion,
		ID:            r.ID,
		CreatedAt:     r.CreatedAt,
		Run:           r.Run,
		History:       make([]generationPayload, len(r.History)),
		Summaries:     r.Summaries,
	}
	for i, g := range r.History {
		survivors, err := encodeAgents(g.Survivors)
		if err != nil {
			return nil, fmt.Errorf("generation %d survivors: %w", i, err)
		}
		discarded, err := encodeAgents(g.Discarded)
		if err != nil {
			return nil, fmt.Errorf("generation %d discarded: %w", i, err)
		}
		p.History[i] = generationPayload{Survivors: survivors, Discarded: discarded}
	}
	return json.Marshal(p)
}

func DecodeRun(data []byte) (RunRecord, error) {
	var p runPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return RunRecord{}, err
	}
	if p.SchemaVersion != CurrentSchemaVersion || p.CodecVersion != CurrentCodecVersion {
		return RunRecord{}, fmt.Errorf("%w: schema=%d codec=%d", ErrVersionMismatch, p.SchemaVersion, p.CodecVersion)
	}
	r := RunRecord{
		ID:        p.ID,
		CreatedAt: p.CreatedAt,
		Run:       p.Run,
		History:   make([]framework.GenerationData, len(p.History)),
		Summaries: p.Summaries,
	}
	for i, g := range p.History {
		r.History[i] = framework.GenerationData{
			Survivors: decodeAgents(g.Survivors),
			Discarded: decodeAgents(g.Discarded),
		}
	}
	return r, nil
}

func encodeAgents(agents []framework.Agent) ([]v1alpha1.AgentValue, error) {
	out := make([]v1alpha1.AgentValue, len(agents))
	for i, a := range agents {
		y, ok := a.Fitness()
		if !ok {
			return nil, fmt.Errorf("agent %d: %w", i, framework.ErrUnevaluated)
		}
		out[i] = v1alpha1.AgentValue{Position: a.Position, Fitness: y}
	}
	return out, nil
}

func decodeAgents(values []v1alpha1.AgentValue) []framework.Agent {
	out := make([]framework.Agent, len(values))
	for i, v := range values {
		out[i] = framework.NewEvaluatedAgent(v.Position, v.Fitness)
	}
	return out
}
