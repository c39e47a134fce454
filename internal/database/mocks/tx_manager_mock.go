package mocks

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TxManagerStub 測試用交易管理器：直接以 nil tx 執行閉包，
// repository 層已被 mock，不會真的碰到 tx。
// BeginErr 設定後模擬開交易失敗。
type TxManagerStub struct {
	BeginErr error
}

func (s *TxManagerStub) WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	if s.BeginErr != nil {
		return s.BeginErr
	}
	return fn(nil)
}
