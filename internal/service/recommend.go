package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/renchinlab/cookware-api/internal/config"
	"github.com/renchinlab/cookware-api/internal/rakuten"
)

// DisclosureLabel marks every recommendation as sponsored content.
const DisclosureLabel = "【PR】"

// DefaultRecipeTitle is used for the rendered heading when the caller
// does not supply a recipe title.
const DefaultRecipeTitle = "レンチンレシピ"

const maxRecommendations = 10

// KeywordDeriver turns a free-text recipe description into product-search
// keywords. Implementations must be deterministic for identical input.
type KeywordDeriver interface {
	Derive(recipeText string) []string
}

// RecommendationService is the business logic layer for cooking-tool
// recommendations.
type RecommendationService struct {
	Cfg      *config.Config
	Searcher rakuten.Searcher
	Deriver  KeywordDeriver
}

// ProductRecommendation is a single affiliate-tagged product in the response.
type ProductRecommendation struct {
	Title           string  `json:"title"`
	URL             string  `json:"url"`
	ImageURL        string  `json:"image_url,omitempty"`
	Price           int     `json:"price,omitempty"`
	ReviewAverage   float64 `json:"review_average,omitempty"`
	ReviewCount     int     `json:"review_count,omitempty"`
	Keyword         string  `json:"keyword,omitempty"`
	DisclosureLabel string  `json:"disclosure_label"`
}

// RecommendationResponse is the response object for the recommendation
// endpoint, including a pre-rendered HTML block for direct embedding.
type RecommendationResponse struct {
	Success  bool                    `json:"success"`
	Products []ProductRecommendation `json:"products"`
	HTML     string                  `json:"html"`
	Count    int                     `json:"count"`
	Message  string                  `json:"message"`
}

// NewRecommendationService is the constructor function for initializing a
// new RecommendationService.
func NewRecommendationService(cfg *config.Config, searcher rakuten.Searcher, deriver KeywordDeriver) *RecommendationService {
	return &RecommendationService{
		Cfg:      cfg,
		Searcher: searcher,
		Deriver:  deriver,
	}
}

// Recommend derives search keywords from the recipe text, queries the
// product catalog per keyword, and shapes the results into a
// disclosure-compliant recommendation list. An empty list is a valid
// success response. Upstream failures abort the request and propagate
// as rakuten error types for the handler to map.
func (s *RecommendationService) Recommend(ctx context.Context, recipeText, recipeTitle string) (*RecommendationResponse, error) {
	if recipeTitle == "" {
		recipeTitle = DefaultRecipeTitle
	}

	keywords := s.Deriver.Derive(recipeText)
	if len(keywords) == 0 {
		return &RecommendationResponse{
			Success:  false,
			Products: []ProductRecommendation{},
			HTML:     "<p>レシピから関連キーワードを抽出できませんでした。</p>",
			Count:    0,
			Message:  "レシピから関連キーワードを抽出できませんでした。",
		}, nil
	}

	var candidates []ProductRecommendation
	for _, kw := range keywords {
		items, err := s.Searcher.SearchItems(ctx, kw)
		if err != nil {
			return nil, fmt.Errorf("failed to search keyword %q: %w", kw, err)
		}
		for _, item := range items {
			rec, ok := s.mapItem(item, kw)
			if !ok {
				continue
			}
			candidates = append(candidates, rec)
		}
	}

	products := dedupeByTitle(candidates)
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].ReviewAverage > products[j].ReviewAverage
	})
	if len(products) > maxRecommendations {
		products = products[:maxRecommendations]
	}
	if products == nil {
		products = []ProductRecommendation{}
	}

	html, err := renderRecommendationHTML(products, recipeTitle)
	if err != nil {
		return nil, fmt.Errorf("failed to render recommendation HTML: %w", err)
	}

	message := "おすすめの料理グッズが見つかりました！"
	if len(products) == 0 {
		message = "おすすめの料理グッズは見つかりませんでした。"
	}

	return &RecommendationResponse{
		Success:  true,
		Products: products,
		HTML:     html,
		Count:    len(products),
		Message:  message,
	}, nil
}

// mapItem builds a recommendation from a raw catalog item. Items without
// a name or without a verifiable affiliate-tagged URL are dropped, so
// every returned recommendation carries both the affiliate identifier
// and the disclosure label.
func (s *RecommendationService) mapItem(item rakuten.Item, keyword string) (ProductRecommendation, bool) {
	if item.Name == "" {
		return ProductRecommendation{}, false
	}
	affiliateURL, ok := sanitizeAffiliateURL(item.AffiliateURL, s.Cfg.EnvVars.RakutenAffiliateID)
	if !ok {
		return ProductRecommendation{}, false
	}
	return ProductRecommendation{
		Title:           item.Name,
		URL:             affiliateURL,
		ImageURL:        item.ImageURL,
		Price:           item.Price,
		ReviewAverage:   item.ReviewAverage,
		ReviewCount:     item.ReviewCount,
		Keyword:         keyword,
		DisclosureLabel: DisclosureLabel,
	}, true
}

// dedupeByTitle collapses near-identical listings by the first 50 runes
// of their title, keeping the first occurrence.
func dedupeByTitle(products []ProductRecommendation) []ProductRecommendation {
	seen := make(map[string]bool, len(products))
	deduped := make([]ProductRecommendation, 0, len(products))
	for _, p := range products {
		key := titleKey(p.Title)
		if seen[key] {
			continue
		}
		seen[key] = true
		deduped = append(deduped, p)
	}
	return deduped
}

func titleKey(title string) string {
	runes := []rune(title)
	if len(runes) > 50 {
		runes = runes[:50]
	}
	return string(runes)
}
