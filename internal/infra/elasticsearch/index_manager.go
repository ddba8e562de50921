package elasticsearch

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"foodgram-go/pkg/logger"

	"github.com/elastic/go-elasticsearch/v8"
	"go.uber.org/zap"
)

// RecipesIndexMapping 返回菜谱索引的 mapping
func RecipesIndexMapping() string {
	return `{
		"settings": {
			"number_of_shards": 1,
			"number_of_replicas": 0,
			"analysis": {
				"analyzer": {
					"recipe_text": {
						"type": "custom",
						"tokenizer": "standard",
						"filter": ["lowercase", "asciifolding"]
					}
				}
			}
		},
		"mappings": {
			"properties": {
				"id": {"type": "long"},
				"author_id": {"type": "long"},
				"author_username": {"type": "keyword"},
				"name": {
					"type": "text",
					"analyzer": "recipe_text",
					"fields": {"keyword": {"type": "keyword", "ignore_above": 256}}
				},
				"text": {"type": "text", "analyzer": "recipe_text"},
				"tags": {"type": "keyword"},
				"ingredients": {"type": "text", "analyzer": "recipe_text"},
				"cooking_time": {"type": "integer"},
				"pub_date": {"type": "date", "format": "strict_date_optional_time||epoch_millis"}
			}
		}
	}`
}

// RecipeIndex 菜谱搜索索引，同时作为索引写入端与检索端
type RecipeIndex struct {
	es   *elasticsearch.Client
	name string
}

func NewRecipeIndex(es *elasticsearch.Client, name string) *RecipeIndex {
	return &RecipeIndex{es: es, name: name}
}

// Name 索引名
func (i *RecipeIndex) Name() string {
	return i.name
}

// Ensure 确保索引存在，不存在则创建
func (i *RecipeIndex) Ensure(ctx context.Context) error {
	exists, err := i.es.Indices.Exists([]string{i.name}, i.es.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("check index exists: %w", err)
	}
	exists.Body.Close()
	if exists.StatusCode == http.StatusOK {
		logger.Info("Elasticsearch recipes index already exists", zap.String("index", i.name))
		return nil
	}

	resp, err := i.es.Indices.Create(i.name,
		i.es.Indices.Create.WithContext(ctx),
		i.es.Indices.Create.WithBody(strings.NewReader(RecipesIndexMapping())),
	)
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	defer resp.Body.Close()

	if err := checkResponse(resp, "create index"); err != nil {
		return err
	}

	logger.Info("Elasticsearch recipes index created", zap.String("index", i.name))
	return nil
}
