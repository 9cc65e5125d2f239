package amazon

import (
	"fmt"
	"strings"
)

// Marketplace describes a country-scoped Amazon storefront and the
// endpoints the two backends use to reach it.
type Marketplace struct {
	Country string
	Domain  string
	// Region is the AWS region used for SigV4 signing. Empty for
	// marketplaces the legacy backend does not serve.
	Region string
}

// URL returns the storefront URL, e.g. "www.amazon.co.uk".
func (m Marketplace) URL() string {
	return "www.amazon." + m.Domain
}

// Host returns the legacy API host, e.g. "webservices.amazon.co.uk".
func (m Marketplace) Host() string {
	return "webservices.amazon." + m.Domain
}

// SupportsLegacy reports whether the legacy SigV4 backend serves this
// marketplace.
func (m Marketplace) SupportsLegacy() bool {
	return m.Region != ""
}

// marketplaces is the closed registry of supported storefronts. Fourteen
// of the twenty carry a signing region and are reachable through the
// legacy backend as well.
var marketplaces = map[string]Marketplace{
	"US": {Country: "US", Domain: "com", Region: "us-east-1"},
	"CA": {Country: "CA", Domain: "ca", Region: "us-east-1"},
	"MX": {Country: "MX", Domain: "com.mx", Region: "us-east-1"},
	"BR": {Country: "BR", Domain: "com.br", Region: "us-east-1"},
	"UK": {Country: "UK", Domain: "co.uk", Region: "eu-west-1"},
	"DE": {Country: "DE", Domain: "de", Region: "eu-west-1"},
	"FR": {Country: "FR", Domain: "fr", Region: "eu-west-1"},
	"IT": {Country: "IT", Domain: "it", Region: "eu-west-1"},
	"ES": {Country: "ES", Domain: "es", Region: "eu-west-1"},
	"IN": {Country: "IN", Domain: "in", Region: "eu-west-1"},
	"NL": {Country: "NL", Domain: "nl", Region: "eu-west-1"},
	"TR": {Country: "TR", Domain: "com.tr", Region: "eu-west-1"},
	"JP": {Country: "JP", Domain: "co.jp", Region: "us-west-2"},
	"AU": {Country: "AU", Domain: "com.au", Region: "us-west-2"},
	"SG": {Country: "SG", Domain: "sg"},
	"SE": {Country: "SE", Domain: "se"},
	"PL": {Country: "PL", Domain: "pl"},
	"BE": {Country: "BE", Domain: "com.be"},
	"SA": {Country: "SA", Domain: "sa"},
	"AE": {Country: "AE", Domain: "ae"},
}

// ResolveMarketplace looks up a marketplace by its country code.
// Unknown codes are an invalid-argument error.
func ResolveMarketplace(country string) (Marketplace, error) {
	code := strings.ToUpper(strings.TrimSpace(country))
	m, ok := marketplaces[code]
	if !ok {
		return Marketplace{}, fmt.Errorf("%w: unsupported country code %q", ErrInvalidArgument, country)
	}
	return m, nil
}

// Countries returns the supported country codes in no particular order.
func Countries() []string {
	codes := make([]string, 0, len(marketplaces))
	for code := range marketplaces {
		codes = append(codes, code)
	}
	return codes
}
