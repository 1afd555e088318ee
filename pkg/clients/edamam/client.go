package edamam

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mamadbah2/nutrilog/internal/config"
	"github.com/mamadbah2/nutrilog/internal/domain/models"
)

const parserPath = "/api/food-database/v2/parser"

// Client exposes the Edamam food database operations used by the application.
type Client interface {
	SearchFoods(ctx context.Context, query string) ([]models.FoodCandidate, error)
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
	appID      string
	appKey     string
}

// NewClient builds an Edamam API client using the provided configuration values.
func NewClient(cfg config.EdamamConfig) *APIClient {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Accept", "application/json").
		SetTimeout(10 * time.Second)

	return &APIClient{
		httpClient: restyClient,
		appID:      cfg.AppID,
		appKey:     cfg.AppKey,
	}
}

// parserResponse mirrors the subset of the parser payload we read.
// Nutrient values are reported per 100 g.
type parserResponse struct {
	Hints []struct {
		Food struct {
			FoodID    string             `json:"foodId"`
			Label     string             `json:"label"`
			Category  string             `json:"category"`
			Nutrients map[string]float64 `json:"nutrients"`
		} `json:"food"`
	} `json:"hints"`
}

type apiError struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// SearchFoods runs a free-text ingredient query and returns one candidate per distinct food.
func (c *APIClient) SearchFoods(ctx context.Context, query string) ([]models.FoodCandidate, error) {
	result := new(parserResponse)
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"ingr":    query,
			"app_id":  c.appID,
			"app_key": c.appKey,
		}).
		SetResult(result).
		SetError(apiErr).
		Get(parserPath)
	if err != nil {
		return nil, fmt.Errorf("edamam parser request: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, fmt.Errorf("edamam api error: code=%d, message=%s", resp.StatusCode(), apiErr.Message)
	}

	seen := make(map[string]struct{}, len(result.Hints))
	candidates := make([]models.FoodCandidate, 0, len(result.Hints))
	for _, hint := range result.Hints {
		if _, dup := seen[hint.Food.FoodID]; dup {
			continue
		}
		seen[hint.Food.FoodID] = struct{}{}

		candidates = append(candidates, models.FoodCandidate{
			ExternalID:   hint.Food.FoodID,
			Name:         strings.ToLower(hint.Food.Label),
			Category:     hint.Food.Category,
			Calorie:      hint.Food.Nutrients["ENERC_KCAL"],
			Carbohydrate: hint.Food.Nutrients["CHOCDF"],
		})
	}
	return candidates, nil
}
