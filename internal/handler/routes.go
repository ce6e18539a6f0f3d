package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest"

	"runbox-api/internal/svc"
)

// RegisterHandlers wires the REST surface onto the server.
func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/api/v1/run",
				Handler: RunHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/v1/resolve",
				Handler: ResolveHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/v1/languages",
				Handler: LanguagesHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/v1/submissions",
				Handler: SubmissionsHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/ping",
				Handler: PingHandler(serverCtx),
			},
		},
	)
}
