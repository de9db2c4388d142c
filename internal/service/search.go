package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/ItsHariii/bump-cli/internal/model"
)

// SearchFoods is a live read against the backend. Results are not cached
// locally and there is no offline path for them; logging what you ate still
// works offline once the food id is known.
func SearchFoods(ctx context.Context, deps *Deps, query string) ([]model.FoodSearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("search query is required")
	}
	return deps.API.SearchFoods(ctx, query)
}
