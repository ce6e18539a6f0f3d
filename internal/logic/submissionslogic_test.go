package logic

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runbox-api/internal/model"
	"runbox-api/internal/types"
	"runbox-api/pkg/sandbox/sim"
)

type memorySubmissionsModel struct {
	rows []model.Submission
}

func (m *memorySubmissionsModel) Insert(ctx context.Context, s *model.Submission) error {
	m.rows = append(m.rows, *s)
	return nil
}

func (m *memorySubmissionsModel) FindLatestByDigest(ctx context.Context, digest string) (*model.Submission, error) {
	for i := len(m.rows) - 1; i >= 0; i-- {
		if m.rows[i].Digest == digest {
			row := m.rows[i]
			return &row, nil
		}
	}
	return nil, model.ErrNotFound
}

func (m *memorySubmissionsModel) RecentByLanguage(ctx context.Context, language string, limit int) ([]model.Submission, error) {
	if limit <= 0 {
		limit = 20
	}
	var out []model.Submission
	for i := len(m.rows) - 1; i >= 0 && len(out) < limit; i-- {
		if m.rows[i].Language == language {
			out = append(out, m.rows[i])
		}
	}
	return out, nil
}

func TestSubmissionsByDigest(t *testing.T) {
	svcCtx := newTestSvc(t, sim.New("python3"), nil)
	svcCtx.SubmissionsModel = &memorySubmissionsModel{rows: []model.Submission{
		{Digest: "d-1", Language: "python3", Category: "timeout", Result: 13, CreatedAt: time.Unix(100, 0)},
		{Digest: "d-1", Language: "python3", Category: "", Result: 15, CreatedAt: time.Unix(200, 0)},
	}}

	l := NewSubmissionsLogic(context.Background(), svcCtx)
	resp, err := l.Submissions(&types.SubmissionsRequest{Digest: "d-1"})
	require.NoError(t, err)

	require.Len(t, resp.Submissions, 1)
	assert.Equal(t, 15, resp.Submissions[0].Result, "latest row wins")

	resp, err = l.Submissions(&types.SubmissionsRequest{Digest: "missing"})
	require.NoError(t, err)
	assert.Empty(t, resp.Submissions)
}

func TestSubmissionsByLanguage(t *testing.T) {
	svcCtx := newTestSvc(t, sim.New("python3"), nil)
	svcCtx.SubmissionsModel = &memorySubmissionsModel{rows: []model.Submission{
		{Digest: "d-1", Language: "python3", CreatedAt: time.Unix(100, 0)},
		{Digest: "d-2", Language: "c", CreatedAt: time.Unix(150, 0)},
		{Digest: "d-3", Language: "python3", CreatedAt: time.Unix(200, 0)},
	}}

	l := NewSubmissionsLogic(context.Background(), svcCtx)
	resp, err := l.Submissions(&types.SubmissionsRequest{Language: "python3", Limit: 1})
	require.NoError(t, err)

	require.Len(t, resp.Submissions, 1)
	assert.Equal(t, "d-3", resp.Submissions[0].Digest)
}

func TestSubmissionsRequireFilter(t *testing.T) {
	svcCtx := newTestSvc(t, sim.New("python3"), nil)
	svcCtx.SubmissionsModel = &memorySubmissionsModel{}

	l := NewSubmissionsLogic(context.Background(), svcCtx)
	_, err := l.Submissions(&types.SubmissionsRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "digest or language")
}

func TestSubmissionsWithoutModel(t *testing.T) {
	svcCtx := newTestSvc(t, sim.New("python3"), nil)

	l := NewSubmissionsLogic(context.Background(), svcCtx)
	_, err := l.Submissions(&types.SubmissionsRequest{Language: "python3"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
