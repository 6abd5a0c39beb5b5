package service

import (
	"strings"
	"testing"
)

func TestFormatYen(t *testing.T) {
	cases := map[int]string{
		0:       "0",
		980:     "980",
		1980:    "1,980",
		123456:  "123,456",
		1000000: "1,000,000",
	}
	for n, want := range cases {
		if got := formatYen(n); got != want {
			t.Errorf("formatYen(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestRenderRecommendationHTML_EscapesTitles(t *testing.T) {
	products := []ProductRecommendation{
		{
			Title:           `<script>alert("x")</script>容器`,
			URL:             "https://item.rakuten.co.jp/shop/item/?afid=abc123.def456",
			Price:           1980,
			DisclosureLabel: DisclosureLabel,
		},
	}

	html, err := renderRecommendationHTML(products, "レンチンレシピ")
	if err != nil {
		t.Fatalf("renderRecommendationHTML() error: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Error("product title was not HTML-escaped")
	}
	if !strings.Contains(html, "¥1,980") {
		t.Error("price not rendered with separator")
	}
}

func TestRenderRecommendationHTML_Empty(t *testing.T) {
	html, err := renderRecommendationHTML(nil, "レンチンレシピ")
	if err != nil {
		t.Fatalf("renderRecommendationHTML() error: %v", err)
	}
	if !strings.Contains(html, "見つかりませんでした") {
		t.Errorf("html = %q, want not-found message", html)
	}
}
