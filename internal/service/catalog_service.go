package service

import (
	"errors"

	"foodgram-go/internal/api/dto"
	"foodgram-go/internal/model"
	"foodgram-go/internal/repository"

	"gorm.io/gorm"
)

// CatalogService 标签与食材的只读查询
type CatalogService struct {
	tagRepo        *repository.TagRepository
	ingredientRepo *repository.IngredientRepository
}

func NewCatalogService(tagRepo *repository.TagRepository, ingredientRepo *repository.IngredientRepository) *CatalogService {
	return &CatalogService{tagRepo: tagRepo, ingredientRepo: ingredientRepo}
}

func (s *CatalogService) ListTags() ([]dto.TagInfo, error) {
	tags, err := s.tagRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.TagInfo, 0, len(tags))
	for i := range tags {
		items = append(items, toTagInfo(&tags[i]))
	}
	return items, nil
}

func (s *CatalogService) GetTag(id int64) (*dto.TagInfo, error) {
	tag, err := s.tagRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, err
	}
	info := toTagInfo(tag)
	return &info, nil
}

// ListIngredients name 非空时按前缀（不区分大小写）匹配，结果不分页
func (s *CatalogService) ListIngredients(name string) ([]dto.IngredientInfo, error) {
	ingredients, err := s.ingredientRepo.List(name)
	if err != nil {
		return nil, err
	}
	items := make([]dto.IngredientInfo, 0, len(ingredients))
	for i := range ingredients {
		items = append(items, toIngredientInfo(&ingredients[i]))
	}
	return items, nil
}

func (s *CatalogService) GetIngredient(id int64) (*dto.IngredientInfo, error) {
	ingredient, err := s.ingredientRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIngredientNotFound
		}
		return nil, err
	}
	info := toIngredientInfo(ingredient)
	return &info, nil
}

func toTagInfo(t *model.Tag) dto.TagInfo {
	return dto.TagInfo{ID: t.ID, Name: t.Name, Color: t.Color, Slug: t.Slug}
}

func toIngredientInfo(i *model.Ingredient) dto.IngredientInfo {
	return dto.IngredientInfo{ID: i.ID, Name: i.Name, MeasurementUnit: i.MeasurementUnit}
}
