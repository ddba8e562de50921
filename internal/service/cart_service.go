package service

import (
	"fmt"
	"strings"

	"foodgram-go/internal/repository"
)

const ShoppingListFilename = "foodgram_shopping_cart.txt"

type CartService struct {
	cartRepo *repository.CartRepository
}

func NewCartService(cartRepo *repository.CartRepository) *CartService {
	return &CartService{cartRepo: cartRepo}
}

// ShoppingList 汇总购物车中全部菜谱的食材，每行 "<名称> <单位> - <总量>"，按总量降序
func (s *CartService) ShoppingList(userID int64) (string, error) {
	lines, err := s.cartRepo.AggregateIngredients(userID)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s %s - %d", line.Name, line.MeasurementUnit, line.Total)
	}
	return b.String(), nil
}
