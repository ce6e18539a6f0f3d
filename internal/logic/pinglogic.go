package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"runbox-api/internal/svc"
	"runbox-api/internal/types"
)

type PingLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewPingLogic(ctx context.Context, svcCtx *svc.ServiceContext) *PingLogic {
	return &PingLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *PingLogic) Ping() (*types.PingResponse, error) {
	return &types.PingResponse{Status: "ok", Env: l.svcCtx.Config.Env}, nil
}
