package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"foodgram-go/internal/model"
	"foodgram-go/pkg/logger"

	"go.uber.org/zap"
)

// RecipeDoc ES 菜谱文档结构
type RecipeDoc struct {
	ID             int64    `json:"id"`
	AuthorID       int64    `json:"author_id"`
	AuthorUsername string   `json:"author_username"`
	Name           string   `json:"name"`
	Text           string   `json:"text"`
	Tags           []string `json:"tags"`
	Ingredients    []string `json:"ingredients"`
	CookingTime    int      `json:"cooking_time"`
	PubDate        string   `json:"pub_date"`
}

// NewRecipeDoc 由已加载关联的菜谱构造文档
func NewRecipeDoc(r *model.Recipe) *RecipeDoc {
	tags := make([]string, 0, len(r.Tags))
	for _, t := range r.Tags {
		tags = append(tags, t.Slug)
	}
	ingredients := make([]string, 0, len(r.Ingredients))
	for _, ri := range r.Ingredients {
		ingredients = append(ingredients, ri.Ingredient.Name)
	}
	return &RecipeDoc{
		ID:             r.ID,
		AuthorID:       r.AuthorID,
		AuthorUsername: r.Author.Username,
		Name:           r.Name,
		Text:           r.Text,
		Tags:           tags,
		Ingredients:    ingredients,
		CookingTime:    r.CookingTime,
		PubDate:        r.PubDate.Format(time.RFC3339),
	}
}

// Sync 同步单个菜谱到 ES
func (i *RecipeIndex) Sync(ctx context.Context, r *model.Recipe) error {
	body, err := json.Marshal(NewRecipeDoc(r))
	if err != nil {
		return err
	}

	resp, err := i.es.Index(i.name, bytes.NewReader(body),
		i.es.Index.WithContext(ctx),
		i.es.Index.WithDocumentID(strconv.FormatInt(r.ID, 10)),
	)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkResponse(resp, "index document"); err != nil {
		return err
	}

	logger.Debug("Recipe synced to ES", zap.Int64("recipe_id", r.ID))
	return nil
}

// Delete 从 ES 删除菜谱，文档不存在视为成功
func (i *RecipeIndex) Delete(ctx context.Context, recipeID int64) error {
	resp, err := i.es.Delete(i.name, strconv.FormatInt(recipeID, 10), i.es.Delete.WithContext(ctx))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return checkResponse(resp, "delete document", http.StatusNotFound)
}

// BulkSync 批量同步菜谱到 ES
func (i *RecipeIndex) BulkSync(ctx context.Context, recipes []model.Recipe) (success, failed int, err error) {
	var buf strings.Builder
	for idx := range recipes {
		docBody, err := json.Marshal(NewRecipeDoc(&recipes[idx]))
		if err != nil {
			failed++
			continue
		}
		fmt.Fprintf(&buf, `{"index":{"_index":"%s","_id":"%d"}}`, i.name, recipes[idx].ID)
		buf.WriteString("\n")
		buf.Write(docBody)
		buf.WriteString("\n")
	}

	if buf.Len() == 0 {
		return 0, failed, nil
	}

	resp, err := i.es.Bulk(strings.NewReader(buf.String()), i.es.Bulk.WithContext(ctx))
	if err != nil {
		return 0, len(recipes), err
	}
	defer resp.Body.Close()

	if err := checkResponse(resp, "bulk"); err != nil {
		return 0, len(recipes), err
	}

	var bulkResp struct {
		Errors bool `json:"errors"`
		Items  []struct {
			Index struct {
				Status int `json:"status"`
			} `json:"index"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&bulkResp); err != nil {
		return len(recipes) - failed, failed, nil
	}

	for _, item := range bulkResp.Items {
		if item.Index.Status >= 200 && item.Index.Status < 300 {
			success++
		} else {
			failed++
		}
	}

	logger.Info("Bulk sync to ES completed", zap.Int("success", success), zap.Int("failed", failed))
	return success, failed, nil
}

// SearchIDs 全文检索菜谱，返回按相关度排序的菜谱 ID 与命中总数
func (i *RecipeIndex) SearchIDs(ctx context.Context, q string, from, size int) ([]int64, int64, error) {
	query := map[string]interface{}{
		"from":    from,
		"size":    size,
		"_source": false,
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":     q,
				"fields":    []string{"name^3", "ingredients^2", "text", "tags"},
				"fuzziness": "AUTO",
			},
		},
		"sort": []interface{}{
			"_score",
			map[string]interface{}{"pub_date": map[string]string{"order": "desc"}},
		},
	}

	body, err := json.Marshal(query)
	if err != nil {
		return nil, 0, err
	}

	resp, err := i.es.Search(
		i.es.Search.WithContext(ctx),
		i.es.Search.WithIndex(i.name),
		i.es.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	if err := checkResponse(resp, "search"); err != nil {
		return nil, 0, err
	}

	var result struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, 0, fmt.Errorf("decode search response: %w", err)
	}

	ids := make([]int64, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		id, err := strconv.ParseInt(hit.ID, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, result.Hits.Total.Value, nil
}
