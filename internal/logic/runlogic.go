package logic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/zeromicro/go-zero/core/logx"

	"runbox-api/internal/model"
	"runbox-api/internal/repo"
	"runbox-api/internal/svc"
	"runbox-api/internal/types"
	"runbox-api/pkg/outcome"
	"runbox-api/pkg/param"
	"runbox-api/pkg/sandbox"
)

// ErrSubmissionInFlight reports that an identical submission is already
// running. Handlers translate it to HTTP 429.
var ErrSubmissionInFlight = errors.New("submission in progress")

type RunLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewRunLogic(ctx context.Context, svcCtx *svc.ServiceContext) *RunLogic {
	return &RunLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Run resolves the block configuration, submits the code to the sandbox and
// returns the classified, presentation-ready outcome.
func (l *RunLogic) Run(req *types.RunRequest) (*types.RunResponse, error) {
	if strings.TrimSpace(req.Code) == "" {
		return nil, errors.New("code is required")
	}

	feature := req.Feature
	if feature == "" {
		feature = param.FeatureInteractive
	}
	resolved := param.Resolve(param.MapSource(req.Attributes), l.svcCtx.DefaultsFor(feature))

	language := strings.TrimSpace(req.Language)
	if language == "" {
		language = resolved.Str(param.KeyLang)
	}
	stdin := req.Stdin
	if stdin == "" {
		stdin = resolved.Str(param.KeyStdin)
	}

	runReq := &sandbox.RunRequest{
		Language:   language,
		SourceCode: resolved.Str(param.KeyCodePrefix) + req.Code + resolved.Str(param.KeyCodeSuffix),
		Input:      stdin,
		Params:     l.runParams(resolved),
	}

	provider, ok := l.svcCtx.Provider(req.Provider)
	if !ok {
		return nil, fmt.Errorf("unknown sandbox provider %q", req.Provider)
	}

	digest, err := sandbox.Digest(runReq)
	if err != nil {
		return nil, err
	}

	if cached, ok := l.svcCtx.Runs.CachedResult(l.ctx, provider.Name(), digest); ok {
		return &types.RunResponse{
			Category: cached.Category,
			Text:     cached.Text,
			Error:    cached.Error,
			Result:   cached.Result,
			Digest:   digest,
			Cached:   true,
		}, nil
	}

	acquired, err := l.svcCtx.Runs.TryAcquireInflight(l.ctx, provider.Name(), digest)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, ErrSubmissionInFlight
	}
	defer l.svcCtx.Runs.ReleaseInflight(l.ctx, provider.Name(), digest)

	resp, err := provider.Submit(l.ctx, runReq)
	if err != nil {
		return nil, fmt.Errorf("sandbox %s: %w", provider.Name(), err)
	}

	out := outcome.Classify(resp)
	text := l.svcCtx.Presenter.Present(l.ctx, feature, resp, out)

	result := &repo.CachedResult{
		Category: string(out.Category),
		Text:     text,
		Error:    resp.Error,
		Result:   resp.Result,
	}
	l.svcCtx.Runs.StoreResult(l.ctx, provider.Name(), digest, result)
	l.svcCtx.Runs.RecordSubmission(l.ctx, &model.Submission{
		Digest:    digest,
		Feature:   feature,
		Provider:  provider.Name(),
		Language:  language,
		ErrorCode: resp.Error,
		Result:    resp.Result,
		Category:  string(out.Category),
	})

	return &types.RunResponse{
		Category: result.Category,
		Text:     result.Text,
		Error:    result.Error,
		Result:   result.Result,
		Digest:   digest,
	}, nil
}

// runParams decodes the resolved params JSON into sandbox tuning knobs.
// Malformed JSON degrades to no knobs; the run itself must not be blocked by
// a bad authoring-side attribute.
func (l *RunLogic) runParams(resolved param.Config) map[string]any {
	raw := strings.TrimSpace(resolved.Str(param.KeyParams))
	if raw == "" {
		return nil
	}
	var params map[string]any
	if err := json.Unmarshal([]byte(raw), &params); err != nil {
		l.Errorf("run: invalid params %q: %v", raw, err)
		return nil
	}
	return params
}
