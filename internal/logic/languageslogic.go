package logic

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/logx"

	"runbox-api/internal/svc"
	"runbox-api/internal/types"
)

type LanguagesLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewLanguagesLogic(ctx context.Context, svcCtx *svc.ServiceContext) *LanguagesLogic {
	return &LanguagesLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Languages serves the provider's language directory through the cache.
func (l *LanguagesLogic) Languages(req *types.LanguagesRequest) (*types.LanguagesResponse, error) {
	provider, ok := l.svcCtx.Provider(req.Provider)
	if !ok {
		return nil, fmt.Errorf("unknown sandbox provider %q", req.Provider)
	}
	langs, err := l.svcCtx.Runs.Languages(l.ctx, provider)
	if err != nil {
		return nil, fmt.Errorf("sandbox %s: %w", provider.Name(), err)
	}
	return &types.LanguagesResponse{Provider: provider.Name(), Languages: langs}, nil
}
