package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"runbox-api/internal/logic"
	"runbox-api/internal/svc"
	"runbox-api/internal/types"
)

// LanguagesHandler lists the languages the configured sandbox accepts.
func LanguagesHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.LanguagesRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewLanguagesLogic(r.Context(), svcCtx)
		resp, err := l.Languages(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}
		httpx.OkJsonCtx(r.Context(), w, resp)
	}
}
