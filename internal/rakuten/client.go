package rakuten

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Item is a single product record from the Ichiba Item Search API,
// reduced to the fields the recommendation pipeline consumes.
type Item struct {
	Name          string  `json:"name"`
	Price         int     `json:"price"`
	ReviewAverage float64 `json:"review_average"`
	ReviewCount   int     `json:"review_count"`
	AffiliateURL  string  `json:"affiliate_url"`
	ImageURL      string  `json:"image_url"`
}

// Searcher handles product search against the Rakuten Ichiba catalog.
type Searcher interface {
	SearchItems(ctx context.Context, keyword string) ([]Item, error)
}

// Client implements Searcher against the Ichiba Item Search API.
type Client struct {
	applicationID string
	affiliateID   string
	endpoint      string
	httpClient    *http.Client
}

// Search parameters mirror the original service contract: top-rated
// items first, capped at ten, with a minimum review average of 4.0.
const (
	searchHits             = 10
	searchMinReviewAverage = "4.0"
	searchSort             = "-reviewAverage"
)

// NewClient creates an Ichiba search client with a bounded request timeout.
func NewClient(applicationID, affiliateID, endpoint string) *Client {
	return &Client{
		applicationID: applicationID,
		affiliateID:   affiliateID,
		endpoint:      endpoint,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type ichibaResponse struct {
	Items []ichibaItemWrapper `json:"Items"`
}

type ichibaItemWrapper struct {
	Item ichibaItem `json:"Item"`
}

type ichibaItem struct {
	ItemName        string        `json:"itemName"`
	ItemPrice       int           `json:"itemPrice"`
	ReviewAverage   float64       `json:"reviewAverage"`
	ReviewCount     int           `json:"reviewCount"`
	AffiliateURL    string        `json:"affiliateUrl"`
	MediumImageURLs []ichibaImage `json:"mediumImageUrls"`
}

type ichibaImage struct {
	ImageURL string `json:"imageUrl"`
}

// SearchItems queries the Ichiba Item Search API for a single keyword.
// Network-level failures return UnavailableError; non-success statuses
// and unparseable payloads return APIError.
func (c *Client) SearchItems(ctx context.Context, keyword string) ([]Item, error) {
	params := url.Values{}
	params.Set("applicationId", c.applicationID)
	params.Set("affiliateId", c.affiliateID)
	params.Set("keyword", keyword)
	params.Set("format", "json")
	params.Set("sort", searchSort)
	params.Set("hits", fmt.Sprintf("%d", searchHits))
	params.Set("minReviewAverage", searchMinReviewAverage)

	reqURL := fmt.Sprintf("%s?%s", c.endpoint, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create ichiba request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, UnavailableError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, UnavailableError{Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, APIError{Status: resp.StatusCode, Body: truncate(string(body), 512)}
	}

	var iResp ichibaResponse
	if err := json.Unmarshal(body, &iResp); err != nil {
		return nil, APIError{Status: resp.StatusCode, Body: truncate(string(body), 512), Err: err}
	}

	items := make([]Item, 0, len(iResp.Items))
	for _, w := range iResp.Items {
		item := Item{
			Name:          w.Item.ItemName,
			Price:         w.Item.ItemPrice,
			ReviewAverage: w.Item.ReviewAverage,
			ReviewCount:   w.Item.ReviewCount,
			AffiliateURL:  w.Item.AffiliateURL,
		}
		if len(w.Item.MediumImageURLs) > 0 {
			item.ImageURL = w.Item.MediumImageURLs[0].ImageURL
		}
		items = append(items, item)
	}
	return items, nil
}

// truncate bounds upstream bodies before they reach logs or error messages.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
