package handler

import (
	"errors"
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"runbox-api/internal/logic"
	"runbox-api/internal/svc"
	"runbox-api/internal/types"
)

// RunHandler submits a code block for execution. Duplicate in-flight
// submissions are answered with 429 so the client can retry after the first
// run settles.
func RunHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.RunRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewRunLogic(r.Context(), svcCtx)
		resp, err := l.Run(&req)
		if err != nil {
			if errors.Is(err, logic.ErrSubmissionInFlight) {
				httpx.WriteJsonCtx(r.Context(), w, http.StatusTooManyRequests,
					map[string]string{"error": err.Error()})
				return
			}
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}
		httpx.OkJsonCtx(r.Context(), w, resp)
	}
}
