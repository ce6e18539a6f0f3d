package repo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"

	"runbox-api/internal/cache"
	"runbox-api/internal/model"
	"runbox-api/pkg/sandbox"
)

// CachedResult is the presented outcome of a finished run, stored per
// provider and digest so identical resubmissions can be served without
// touching the sandbox.
type CachedResult struct {
	Category string `json:"category"`
	Text     string `json:"text"`
	Error    int    `json:"error"`
	Result   int    `json:"result"`
}

// RunsRepo fronts the sandbox provider with the Redis cache layer and the
// optional submissions audit model. All cache paths degrade to pass-through
// when Redis is not configured.
type RunsRepo struct {
	rds         *redis.Redis
	submissions model.SubmissionsModel
	ttls        cache.TTLSet
	inflightTTL time.Duration
}

// NewRunsRepo wires the repo. rds and submissions may be nil.
func NewRunsRepo(rds *redis.Redis, submissions model.SubmissionsModel, ttls cache.TTLSet, inflightTTL time.Duration) *RunsRepo {
	return &RunsRepo{rds: rds, submissions: submissions, ttls: ttls, inflightTTL: inflightTTL}
}

// Languages serves the provider's language directory through the medium-TTL
// cache.
func (r *RunsRepo) Languages(ctx context.Context, provider sandbox.Provider) ([]string, error) {
	key := cache.LanguagesKey(provider.Name())

	var cached []string
	if ok := r.getJSON(ctx, key, &cached); ok {
		return cached, nil
	}

	langs, err := provider.Languages(ctx)
	if err != nil {
		return nil, err
	}
	r.setJSON(ctx, key, r.ttls.Duration(cache.TTLMedium), langs)
	return langs, nil
}

// CachedResult looks up the stored outcome of a previous identical run on
// the same provider.
func (r *RunsRepo) CachedResult(ctx context.Context, provider, digest string) (*CachedResult, bool) {
	var res CachedResult
	if ok := r.getJSON(ctx, cache.ResultKey(provider, digest), &res); !ok {
		return nil, false
	}
	return &res, true
}

// StoreResult caches a finished outcome under its provider and digest with
// the long TTL.
func (r *RunsRepo) StoreResult(ctx context.Context, provider, digest string, res *CachedResult) {
	if res == nil {
		return
	}
	r.setJSON(ctx, cache.ResultKey(provider, digest), r.ttls.Duration(cache.TTLLong), res)
}

// TryAcquireInflight marks a digest as running. It returns false when an
// identical submission is already in flight. Without Redis there is no
// guard and every submission proceeds.
func (r *RunsRepo) TryAcquireInflight(ctx context.Context, provider, digest string) (bool, error) {
	if r.rds == nil || r.inflightTTL <= 0 {
		return true, nil
	}
	seconds := int(r.inflightTTL / time.Second)
	if seconds <= 0 {
		seconds = 1
	}
	ok, err := r.rds.SetnxExCtx(ctx, cache.InflightKey(provider, digest), "1", seconds)
	if err != nil {
		// A broken guard should not block runs.
		logx.WithContext(ctx).Errorf("repo: inflight setnx %s: %v", digest, err)
		return true, nil
	}
	return ok, nil
}

// ReleaseInflight clears the in-flight marker once the run settles.
func (r *RunsRepo) ReleaseInflight(ctx context.Context, provider, digest string) {
	if r.rds == nil {
		return
	}
	if _, err := r.rds.DelCtx(ctx, cache.InflightKey(provider, digest)); err != nil {
		logx.WithContext(ctx).Errorf("repo: inflight del %s: %v", digest, err)
	}
}

// RecordSubmission appends an audit row when the submissions model is wired.
func (r *RunsRepo) RecordSubmission(ctx context.Context, s *model.Submission) {
	if r.submissions == nil || s == nil {
		return
	}
	if err := r.submissions.Insert(ctx, s); err != nil {
		logx.WithContext(ctx).Errorf("repo: record submission %s: %v", s.Digest, err)
	}
}

func (r *RunsRepo) getJSON(ctx context.Context, key string, v any) bool {
	if r.rds == nil {
		return false
	}
	raw, err := r.rds.GetCtx(ctx, key)
	if err != nil {
		logx.WithContext(ctx).Errorf("repo: get cache %s: %v", key, err)
		return false
	}
	if raw == "" {
		return false
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		logx.WithContext(ctx).Errorf("repo: decode cache %s: %v", key, err)
		return false
	}
	return true
}

func (r *RunsRepo) setJSON(ctx context.Context, key string, ttl time.Duration, v any) {
	if r.rds == nil || ttl <= 0 {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		logx.WithContext(ctx).Errorf("repo: encode cache %s: %v", key, err)
		return
	}
	if err := r.rds.SetexCtx(ctx, key, string(raw), int(ttl/time.Second)); err != nil {
		logx.WithContext(ctx).Errorf("repo: set cache %s: %v", key, err)
	}
}
