package handler

import (
	"net/http"

	"tokenservice/internal/logic/balance"
	"tokenservice/internal/svc"
	"tokenservice/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpx"
)

// GetBalanceHandler 查询单个地址余额
func GetBalanceHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.BalanceReq
		if err := httpx.Parse(r, &req); err != nil {
			logx.WithContext(r.Context()).Errorf("failed to parse request: %v", err)
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := balance.NewBalanceLogic(r.Context(), svcCtx)
		resp, err := l.GetBalance(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}

// GetBalanceBatchHandler 批量查询余额
func GetBalanceBatchHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.BalanceBatchReq
		if err := httpx.Parse(r, &req); err != nil {
			logx.WithContext(r.Context()).Errorf("failed to parse request body: %v", err)
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}
		logx.WithContext(r.Context()).Infof("批量查询 %d 个地址", len(req.Addresses))

		l := balance.NewBalanceLogic(r.Context(), svcCtx)
		resp, err := l.GetBalanceBatch(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
