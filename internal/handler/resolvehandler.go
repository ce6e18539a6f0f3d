package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"runbox-api/internal/logic"
	"runbox-api/internal/svc"
	"runbox-api/internal/types"
)

// ResolveHandler returns the fully resolved configuration for one block.
func ResolveHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ResolveRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewResolveLogic(r.Context(), svcCtx)
		resp, err := l.Resolve(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}
		httpx.OkJsonCtx(r.Context(), w, resp)
	}
}
