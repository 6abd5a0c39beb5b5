package testutil

import (
	"fmt"

	"github.com/renchinlab/cookware-api/internal/config"
	"github.com/renchinlab/cookware-api/internal/rakuten"
)

// TestAffiliateID is the affiliate identifier used across test fixtures.
const TestAffiliateID = "abc123.def456"

// TestBearerToken is the shared secret used across test fixtures.
const TestBearerToken = "test-actions-bearer-token"

// TestConfig returns a Config populated for handler and service tests.
func TestConfig() *config.Config {
	return &config.Config{
		EnvVars: config.EnvVars{
			Port:                 "8080",
			RakutenApplicationID: "1000000000000001",
			RakutenAffiliateID:   TestAffiliateID,
			ActionsBearerToken:   TestBearerToken,
			RakutenSearchURL:     "https://app.rakuten.co.jp/services/api/IchibaItem/Search/20220601",
		},
		Keywords: TestKeywordRules(),
	}
}

// TestKeywordRules returns a small rule table mirroring the production one.
func TestKeywordRules() *config.KeywordRules {
	return &config.KeywordRules{
		Rules: []config.KeywordRule{
			{Match: []string{"レンジ", "電子レンジ", "レンチン"}, Keywords: []string{"電子レンジ調理器", "耐熱容器"}},
			{Match: []string{"ゆで卵", "ゆでたまご"}, Keywords: []string{"ゆで卵メーカー"}},
		},
		Defaults: []string{"調理器具"},
	}
}

// TestItem returns a catalog item with a valid affiliate URL.
func TestItem(name string, reviewAverage float64) rakuten.Item {
	return rakuten.Item{
		Name:          name,
		Price:         1980,
		ReviewAverage: reviewAverage,
		ReviewCount:   120,
		AffiliateURL:  fmt.Sprintf("https://hb.afl.rakuten.co.jp/hgc/%s/?pc=https%%3A%%2F%%2Fitem.rakuten.co.jp%%2Fshop%%2Fitem%%2F", TestAffiliateID),
		ImageURL:      "https://thumbnail.image.rakuten.co.jp/@0_mall/shop/cabinet/item.jpg",
	}
}

// TestItems returns a small result set with descending review averages.
func TestItems() []rakuten.Item {
	return []rakuten.Item{
		TestItem("シリコンスチーマー 電子レンジ対応", 4.8),
		TestItem("耐熱ガラスボウル 3点セット", 4.5),
		TestItem("レンジ調理器 ラーメンメーカー", 4.2),
	}
}
