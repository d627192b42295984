package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"Foodgram/dao"
	"Foodgram/types"
)

// 导出文件的表头，列名和顺序是对外契约，不要动
var exportHeader = []string{"№", "Наименование", "Количество", "Единицы измерения"}

var _ IShoppingListService = (*ShoppingListService)(nil)

type IShoppingListService interface {
	Rows(ctx context.Context, userID int64) ([]types.ShoppingListRow, error)
	Export(ctx context.Context, userID int64) (*types.ShoppingListFile, error)
}

type ShoppingListService struct {
	MembershipDAO *dao.MembershipDAO
	Policy        IAccessPolicy
}

// Rows 购物车里所有菜谱的配料压成按配料求和的清单，
// 序号从 1 开始，按配料名升序
func (s *ShoppingListService) Rows(ctx context.Context, userID int64) ([]types.ShoppingListRow, error) {
	if err := s.Policy.Authorize(ActionExportCart, userID, 0); err != nil {
		return nil, err
	}

	totals, err := s.MembershipDAO.CartTotals(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows := make([]types.ShoppingListRow, 0, len(totals))
	for i, t := range totals {
		rows = append(rows, types.ShoppingListRow{
			Seq:             i + 1,
			Name:            t.Name,
			Amount:          t.Total,
			MeasurementUnit: t.MeasurementUnit,
		})
	}
	return rows, nil
}

// Export 聚合行编码成 CSV，文件名带导出时刻
func (s *ShoppingListService) Export(ctx context.Context, userID int64) (*types.ShoppingListFile, error) {
	rows, err := s.Rows(ctx, userID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}
	for _, row := range rows {
		record := []string{
			strconv.Itoa(row.Seq),
			row.Name,
			strconv.FormatInt(row.Amount, 10),
			row.MeasurementUnit,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return &types.ShoppingListFile{
		Filename: fmt.Sprintf("shopping_cart_%s.csv", time.Now().Format("2006_01_02_15_04_05")),
		Content:  buf.Bytes(),
	}, nil
}
