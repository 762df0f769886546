package tickersymbols

import (
	"fmt"
	"strings"
)

// Provider identifies a market data namespace for ticker symbols.
type Provider int

const (
	Yahoo Provider = iota
	Google
)

func (p Provider) String() string {
	switch p {
	case Yahoo:
		return "yahoo"
	case Google:
		return "google"
	default:
		return fmt.Sprintf("Provider(%d)", int(p))
	}
}

// ParseProvider accepts the provider key as used in the dataset ("yahoo",
// "google"), ignoring case and surrounding whitespace.
func ParseProvider(s string) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yahoo":
		return Yahoo, nil
	case "google":
		return Google, nil
	}
	return 0, fmt.Errorf("unknown provider %q", s)
}
