package storage

import (
	"context"
	"time"

	"github.com/mihai-snyk/extremum-search/apis/search/v1alpha1"
	"github.com/mihai-snyk/extremum-search/pkg/extremum/framework"
	"github.com/mihai-snyk/extremum-search/pkg/extremum/stats"
)

// RunRecord is a finished run: its configuration, outcome and full history.
type RunRecord struct {
	ID        string
	CreatedAt time.Time

	Run       v1alpha1.SearchRun
	History   []framework.GenerationData
	Summaries []stats.GenerationSummary
}

// RunInfo is the listing view of a stored run.
type RunInfo struct {
	ID          string
	Name        string
	CreatedAt   time.Time
	Function    string
	Optimum     v1alpha1.Optimum
	Generations int
	Phase       v1alpha1.SearchRunPhase
}

// Store persists completed runs. Runs are written once after they finish;
// nothing is saved while the engine is running.
type Store interface {
	Init(ctx context.Context) error
	SaveRun(ctx context.Context, record RunRecord) error
	GetRun(ctx context.Context, id string) (RunRecord, bool, error)
	ListRuns(ctx context.Context) ([]RunInfo, error)
	DeleteRun(ctx context.Context, id string) error
}

func infoOf(r RunRecord) RunInfo {
	info := RunInfo{
		ID:          r.ID,
		Name:        r.Run.Name,
		CreatedAt:   r.CreatedAt,
		Function:    r.Run.Spec.Function,
		Optimum:     r.Run.Spec.Optimum,
		Generations: len(r.History),
		Phase:       r.Run.Status.Phase,
	}
	return info
}
