// Package pricing models the markets and pricing contexts risk descriptors are
// evaluated against.
package pricing

import (
	"fmt"
	"strings"
	"time"
)

// MarketKind tags the concrete market variant.
type MarketKind string

const (
	KindClose    MarketKind = "close"
	KindLive     MarketKind = "live"
	KindRelative MarketKind = "relative"
)

// Market is a market a pricing context resolves data from.
type Market interface {
	Kind() MarketKind
	String() string
}

// CloseMarket is the end-of-day market. A zero Date means the close of the
// context's pricing date.
type CloseMarket struct {
	Date     time.Time
	Location string
}

// LiveMarket is the intraday market.
type LiveMarket struct {
	Location string
}

// RelativeMarket pairs a base market with a target market for comparative measures.
type RelativeMarket struct {
	From Market
	To   Market
}

// Kind implements Market.
func (CloseMarket) Kind() MarketKind    { return KindClose }
func (LiveMarket) Kind() MarketKind     { return KindLive }
func (RelativeMarket) Kind() MarketKind { return KindRelative }

// String renders "Close" with the date and location when present.
func (m CloseMarket) String() string {
	parts := make([]string, 0, 2)
	if !m.Date.IsZero() {
		parts = append(parts, m.Date.Format(time.DateOnly))
	}
	if m.Location != "" {
		parts = append(parts, m.Location)
	}
	if len(parts) == 0 {
		return "Close"
	}
	return "Close(" + strings.Join(parts, ", ") + ")"
}

func (m LiveMarket) String() string {
	if m.Location == "" {
		return "Live"
	}
	return "Live(" + m.Location + ")"
}

func (m RelativeMarket) String() string {
	return fmt.Sprintf("Relative(%s -> %s)", marketString(m.From), marketString(m.To))
}

func marketString(m Market) string {
	if m == nil {
		return "<none>"
	}
	return m.String()
}

// ParseMarketKind validates a configured market kind.
func ParseMarketKind(s string) (MarketKind, error) {
	switch MarketKind(strings.ToLower(strings.TrimSpace(s))) {
	case KindClose:
		return KindClose, nil
	case KindLive:
		return KindLive, nil
	default:
		return "", fmt.Errorf("unsupported market kind %q (want close or live)", s)
	}
}

// NewMarket builds a base market of the given kind. Relative markets are only
// ever derived, never configured.
func NewMarket(kind MarketKind, location string, date time.Time) (Market, error) {
	switch kind {
	case KindClose:
		return CloseMarket{Date: date, Location: location}, nil
	case KindLive:
		return LiveMarket{Location: location}, nil
	default:
		return nil, fmt.Errorf("cannot build market of kind %q", kind)
	}
}

var (
	_ Market = CloseMarket{}
	_ Market = LiveMarket{}
	_ Market = RelativeMarket{}
)
