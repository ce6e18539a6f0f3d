package logic

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"runbox-api/internal/model"
	"runbox-api/internal/svc"
	"runbox-api/internal/types"
)

type SubmissionsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSubmissionsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SubmissionsLogic {
	return &SubmissionsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Submissions serves the run audit log: the latest row for a digest, or the
// recent rows for a language.
func (l *SubmissionsLogic) Submissions(req *types.SubmissionsRequest) (*types.SubmissionsResponse, error) {
	if l.svcCtx.SubmissionsModel == nil {
		return nil, errors.New("submission history is not configured")
	}

	if digest := strings.TrimSpace(req.Digest); digest != "" {
		s, err := l.svcCtx.SubmissionsModel.FindLatestByDigest(l.ctx, digest)
		if errors.Is(err, model.ErrNotFound) {
			return &types.SubmissionsResponse{Submissions: []types.SubmissionInfo{}}, nil
		}
		if err != nil {
			return nil, err
		}
		return &types.SubmissionsResponse{Submissions: []types.SubmissionInfo{submissionInfo(s)}}, nil
	}

	language := strings.TrimSpace(req.Language)
	if language == "" {
		return nil, errors.New("digest or language is required")
	}
	rows, err := l.svcCtx.SubmissionsModel.RecentByLanguage(l.ctx, language, req.Limit)
	if err != nil {
		return nil, err
	}
	infos := make([]types.SubmissionInfo, 0, len(rows))
	for i := range rows {
		infos = append(infos, submissionInfo(&rows[i]))
	}
	return &types.SubmissionsResponse{Submissions: infos}, nil
}

func submissionInfo(s *model.Submission) types.SubmissionInfo {
	return types.SubmissionInfo{
		Digest:    s.Digest,
		Feature:   s.Feature,
		Provider:  s.Provider,
		Language:  s.Language,
		Error:     s.ErrorCode,
		Result:    s.Result,
		Category:  s.Category,
		CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339),
	}
}
