package storage

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/mihai-snyk/extremum-search/pkg/extremum/framework"
	"github.com/mihai-snyk/extremum-search/pkg/extremum/stats"
)

// MemoryStore keeps runs in process memory, optionally expiring them after ttl.
type MemoryStore struct {
	ttl time.Duration

	mu    sync.RWMutex
	cache *cache.Cache
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{ttl: ttl}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ttl > 0 {
		s.cache = cache.New(s.ttl, s.ttl)
	} else {
		s.cache = cache.New(cache.NoExpiration, 0)
	}
	return nil
}

func (s *MemoryStore) SaveRun(_ context.Context, record RunRecord) error {
	c, err := s.getCache()
	if err != nil {
		return err
	}
	if record.ID == "" {
		return errors.New("run id is required")
	}
	c.Set(record.ID, cloneRecord(record), cache.DefaultExpiration)
	return nil
}

func (s *MemoryStore) GetRun(_ context.Context, id string) (RunRecord, bool, error) {
	c, err := s.getCache()
	if err != nil {
		return RunRecord{}, false, err
	}
	v, ok := c.Get(id)
	if !ok {
		return RunRecord{}, false, nil
	}
	return cloneRecord(v.(RunRecord)), true, nil
}

func (s *MemoryStore) ListRuns(_ context.Context) ([]RunInfo, error) {
	c, err := s.getCache()
	if err != nil {
		return nil, err
	}
	items := c.Items()
	out := make([]RunInfo, 0, len(items))
	for _, item := range items {
		out = append(out, infoOf(item.Object.(RunRecord)))
	}
	sortInfos(out)
	return out, nil
}

func (s *MemoryStore) DeleteRun(_ context.Context, id string) error {
	c, err := s.getCache()
	if err != nil {
		return err
	}
	c.Delete(id)
	return nil
}

func (s *MemoryStore) getCache() (*cache.Cache, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.cache == nil {
		return nil, errors.New("store is not initialized")
	}
	return s.cache, nil
}

// sortInfos orders newest first, then by id.
func sortInfos(infos []RunInfo) {
	sort.Slice(infos, func(i, j int) bool {
		if !infos[i].CreatedAt.Equal(infos[j].CreatedAt) {
			return infos[i].CreatedAt.After(infos[j].CreatedAt)
		}
		return infos[i].ID < infos[j].ID
	})
}

func cloneRecord(r RunRecord) RunRecord {
	out := RunRecord{
		ID:        r.ID,
		CreatedAt: r.CreatedAt,
		Run:       *r.Run.DeepCopy(),
	}
	if r.History != nil {
		out.History = make([]framework.GenerationData, len(r.History))
		for i, g := range r.History {
			out.History[i] = framework.GenerationData{
				Survivors: framework.CloneAgents(g.Survivors),
				Discarded: framework.CloneAgents(g.Discarded),
			}
		}
	}
	if r.Summaries != nil {
		out.Summaries = make([]stats.GenerationSummary, len(r.Summaries))
		copy(out.Summaries, r.Summaries)
	}
	return out
}
