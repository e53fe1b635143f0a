package pricing

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"
)

// Context is the narrow view of a pricing context that descriptors depend on:
// read the market, derive a copy with a different market.
type Context interface {
	Market() Market
	WithMarket(m Market) Context
}

// Environment is the default Context implementation.
type Environment struct {
	market      Market
	pricingDate time.Time
	location    string
}

// EnvironmentOptions configure NewEnvironment.
type EnvironmentOptions struct {
	Market      Market
	PricingDate time.Time
	Location    string
}

// NewEnvironment constructs an Environment; a nil market defaults to the close market.
func NewEnvironment(opts EnvironmentOptions) Environment {
	market := opts.Market
	if market == nil {
		market = CloseMarket{Location: opts.Location}
	}
	return Environment{market: market, pricingDate: opts.PricingDate, location: opts.Location}
}

// Market returns the market the environment prices against.
func (e Environment) Market() Market { return e.market }

// PricingDate returns the valuation date; zero means today.
func (e Environment) PricingDate() time.Time { return e.pricingDate }

// Location returns the pricing location.
func (e Environment) Location() string { return e.location }

// WithMarket returns a copy of e evaluated against m; e is unchanged.
func (e Environment) WithMarket(m Market) Context {
	e.market = m
	return e
}

// String summarises the environment for logs.
func (e Environment) String() string {
	date := "today"
	if !e.pricingDate.IsZero() {
		date = e.pricingDate.Format(time.DateOnly)
	}
	return fmt.Sprintf("market=%s date=%s location=%s", marketString(e.market), date, e.location)
}

type contextKey struct{}

type holder struct {
	ctx Context
}

var defaultContext atomic.Pointer[holder]

// SetDefault installs the process-wide fallback context. It is meant to be
// called once during startup.
func SetDefault(pc Context) {
	if pc == nil {
		defaultContext.Store(nil)
		return
	}
	defaultContext.Store(&holder{ctx: pc})
}

// Default returns the process-wide fallback context.
func Default() Context {
	if h := defaultContext.Load(); h != nil {
		return h.ctx
	}
	return NewEnvironment(EnvironmentOptions{})
}

// WithContext scopes pc to calls made with the returned context.
func WithContext(ctx context.Context, pc Context) context.Context {
	return context.WithValue(ctx, contextKey{}, pc)
}

// Current returns the ambient pricing context for ctx.
func Current(ctx context.Context) Context {
	if ctx != nil {
		if pc, ok := ctx.Value(contextKey{}).(Context); ok && pc != nil {
			return pc
		}
	}
	return Default()
}

var _ Context = Environment{}
