package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/Oukrim2590-maker/oukrimmeals/internal/models"
	"github.com/elastic/go-elasticsearch/v9"
)

// Search runs a fuzzy multi-match over the meals index, name weighted
// above ingredients.
func Search(ctx context.Context, es *elasticsearch.Client, index, query string, from, size int) (int64, []models.Meal, error) {
	body := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":     query,
				"fields":    []string{"name^2", "ingredients", "category"},
				"fuzziness": "AUTO",
			},
		},
		"from": from,
		"size": size,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return 0, nil, fmt.Errorf("search: encode query: %w", err)
	}

	res, err := es.Search(
		es.Search.WithContext(ctx),
		es.Search.WithIndex(index),
		es.Search.WithBody(&buf),
	)
	if err != nil {
		return 0, nil, fmt.Errorf("search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return 0, nil, fmt.Errorf("search: %s", res.Status())
	}

	var r struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source models.Meal `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return 0, nil, err
	}

	meals := make([]models.Meal, len(r.Hits.Hits))
	for i, hit := range r.Hits.Hits {
		meals[i] = hit.Source
	}
	return r.Hits.Total.Value, meals, nil
}

// IndexMeal upserts one meal document, keyed by its catalog id.
func IndexMeal(ctx context.Context, es *elasticsearch.Client, index string, meal models.Meal) error {
	data, err := json.Marshal(meal)
	if err != nil {
		return fmt.Errorf("search: marshal meal: %w", err)
	}

	res, err := es.Index(
		index,
		bytes.NewReader(data),
		es.Index.WithContext(ctx),
		es.Index.WithDocumentID(strconv.FormatInt(meal.ID, 10)),
	)
	if err != nil {
		return fmt.Errorf("search: index meal: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("search: index meal: %s", res.Status())
	}
	return nil
}
