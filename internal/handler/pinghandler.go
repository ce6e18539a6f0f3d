package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"runbox-api/internal/logic"
	"runbox-api/internal/svc"
)

// PingHandler is the health probe.
func PingHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewPingLogic(r.Context(), svcCtx)
		resp, err := l.Ping()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}
		httpx.OkJsonCtx(r.Context(), w, resp)
	}
}
