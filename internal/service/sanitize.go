package service

import (
	"net/url"
	"strings"

	"github.com/asaskevich/govalidator"
)

// Affiliate links are only trusted on Rakuten-owned hosts.
var allowedAffiliateHosts = map[string]bool{
	"item.rakuten.co.jp":   true,
	"books.rakuten.co.jp":  true,
	"hb.afl.rakuten.co.jp": true,
	"afl.rakuten.co.jp":    true,
	"www.rakuten.co.jp":    true,
}

// sanitizeAffiliateURL accepts a URL only when it is a well-formed
// http(s) link on an allowed Rakuten host and carries the configured
// affiliate identifier. Anything else is rejected and the item dropped.
func sanitizeAffiliateURL(rawURL, affiliateID string) (string, bool) {
	if rawURL == "" || affiliateID == "" {
		return "", false
	}
	if !govalidator.IsRequestURL(rawURL) {
		return "", false
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}
	if !allowedAffiliateHosts[u.Host] {
		return "", false
	}
	if !strings.Contains(rawURL, affiliateID) {
		return "", false
	}
	return rawURL, true
}
