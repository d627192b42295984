package service

import (
	"context"
	"sort"
	"strings"

	"Foodgram/dao"
	"Foodgram/models"
	"Foodgram/pkg/response"
)

var _ IIngredientService = (*IngredientService)(nil)

type IIngredientService interface {
	Search(ctx context.Context, name string) ([]*models.Ingredient, error)
	Get(ctx context.Context, id int64) (*models.Ingredient, error)
}

type IngredientService struct {
	IngredientDAO *dao.IngredientDAO
}

// Search 空查询返回全量；否则子串匹配并把「名称以查询开头」的排在前面
func (s *IngredientService) Search(ctx context.Context, name string) ([]*models.Ingredient, error) {
	if name == "" {
		return s.IngredientDAO.List(ctx)
	}
	items, err := s.IngredientDAO.SearchByName(ctx, name)
	if err != nil {
		return nil, err
	}
	rankIngredients(items, name)
	return items, nil
}

func (s *IngredientService) Get(ctx context.Context, id int64) (*models.Ingredient, error) {
	item, err := s.IngredientDAO.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, response.NewNotFoundError("配料不存在")
	}
	return item, nil
}

// rankIngredients 两级排序：先比「是否以查询开头」（是的在前），
// 同级内按名称小写升序
func rankIngredients(items []*models.Ingredient, query string) {
	q := strings.ToLower(query)
	sort.SliceStable(items, func(i, j int) bool {
		li := strings.ToLower(items[i].Name)
		lj := strings.ToLower(items[j].Name)
		si := strings.HasPrefix(li, q)
		sj := strings.HasPrefix(lj, q)
		if si != sj {
			return si
		}
		return li < lj
	})
}
