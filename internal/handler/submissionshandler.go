package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"runbox-api/internal/logic"
	"runbox-api/internal/svc"
	"runbox-api/internal/types"
)

// SubmissionsHandler serves the run audit log.
func SubmissionsHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.SubmissionsRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewSubmissionsLogic(r.Context(), svcCtx)
		resp, err := l.Submissions(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}
		httpx.OkJsonCtx(r.Context(), w, resp)
	}
}
