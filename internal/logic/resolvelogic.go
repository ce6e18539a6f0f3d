package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"runbox-api/internal/svc"
	"runbox-api/internal/types"
	"runbox-api/pkg/param"
)

type ResolveLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewResolveLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ResolveLogic {
	return &ResolveLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Resolve merges declared block attributes over the feature's default table
// and returns the complete coerced configuration.
func (l *ResolveLogic) Resolve(req *types.ResolveRequest) (*types.ResolveResponse, error) {
	feature := req.Feature
	if feature == "" {
		feature = param.FeatureHighlight
	}
	resolved := param.Resolve(param.MapSource(req.Attributes), l.svcCtx.DefaultsFor(feature))

	params := make(map[string]any, len(resolved))
	for key, value := range resolved {
		params[key] = value.Interface()
	}
	return &types.ResolveResponse{Feature: feature, Params: params}, nil
}
