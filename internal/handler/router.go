package handler

import (
	"net/http"

	"tokenservice/internal/errorx"
	"tokenservice/internal/svc"

	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	httpx.SetErrorHandlerCtx(errorx.Handler)
	server.AddRoutes(routes(serverCtx))
}

func routes(serverCtx *svc.ServiceContext) []rest.Route {
	return []rest.Route{
		// --- Balance Routes ---
		{
			Method:  http.MethodGet,
			Path:    "/get_balance/",
			Handler: GetBalanceHandler(serverCtx),
		},
		{
			Method:  http.MethodPost,
			Path:    "/get_balance_batch/",
			Handler: GetBalanceBatchHandler(serverCtx),
		},
		// --- Holder Routes ---
		{
			Method:  http.MethodGet,
			Path:    "/get_top/",
			Handler: GetTopHandler(serverCtx),
		},
		{
			Method:  http.MethodGet,
			Path:    "/get_top_with_transactions/",
			Handler: GetTopWithTransactionsHandler(serverCtx),
		},
		// --- Token Routes ---
		{
			Method:  http.MethodGet,
			Path:    "/get_token_info/",
			Handler: GetTokenInfoHandler(serverCtx),
		},
	}
}
