package service

import (
	"bytes"
	"html/template"
	"strconv"
)

// recommendationTemplate renders the embeddable recommendation block.
// Every product link is emitted with rel="sponsored noopener noreferrer";
// URLs reach this template only after affiliate sanitization.
var recommendationTemplate = template.Must(template.New("recommendations").Funcs(template.FuncMap{
	"yen":  formatYen,
	"rank": func(i int) int { return i + 1 },
}).Parse(`<div class="product-recommendations" role="region" aria-label="調理器具のおすすめ一覧">
  <h2>{{.DisclosureLabel}}🍳 {{.Title}}におすすめの料理グッズ</h2>
  <p class="disclosure">
    ※本ページのリンクは<a href="https://www.rakuten.co.jp/" target="_blank" rel="noopener noreferrer">楽天市場</a>のアフィリエイトリンクを含みます。リンク経由のご購入で運営者が報酬を得る場合があります。
  </p>
  <div class="products-grid">
{{- range $i, $p := .Products}}
    <div class="product-card">
      <div class="product-rank">#{{rank $i}}</div>
      <div class="product-info">
        <h3 class="product-name">{{$p.DisclosureLabel}} {{$p.Title}}</h3>
        <div class="product-details">
          <span class="price">¥{{yen $p.Price}}</span>
          <span class="rating">⭐ {{$p.ReviewAverage}} ({{$p.ReviewCount}}件)</span>
        </div>
        <a href="{{$p.URL}}" target="_blank" rel="sponsored noopener noreferrer" class="affiliate-link" aria-label="楽天市場で詳細を見る：{{$p.Title}}">
          楽天市場で詳細を見る
        </a>
      </div>
    </div>
{{- end}}
  </div>
</div>`))

type recommendationTemplateData struct {
	DisclosureLabel string
	Title           string
	Products        []ProductRecommendation
}

// renderRecommendationHTML renders the product list as an embeddable
// HTML block with mandatory sponsorship disclosure.
func renderRecommendationHTML(products []ProductRecommendation, recipeTitle string) (string, error) {
	if len(products) == 0 {
		return "<p>おすすめの料理グッズは見つかりませんでした。</p>", nil
	}

	var buf bytes.Buffer
	data := recommendationTemplateData{
		DisclosureLabel: DisclosureLabel,
		Title:           recipeTitle,
		Products:        products,
	}
	if err := recommendationTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// formatYen renders a price with thousands separators (12345 -> 12,345).
func formatYen(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var buf bytes.Buffer
	lead := len(s) % 3
	if lead > 0 {
		buf.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if buf.Len() > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(s[i : i+3])
	}
	return buf.String()
}
