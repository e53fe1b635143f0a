package risk

import (
	"fmt"
	"maps"
	"slices"
)

// Registry holds named template descriptors. It is populated during package
// initialisation and only read afterwards.
type Registry struct {
	entries map[string]Descriptor
	symbols []string
	aliases map[string]string
}

// Resolution is the outcome of resolving a name against a Registry.
type Resolution struct {
	Symbol  string
	Measure Descriptor
	// Replacement is set when the requested name is deprecated.
	Replacement string
}

// Deprecated reports whether the resolved name has been retired.
func (r Resolution) Deprecated() bool { return r.Replacement != "" }

// NewRegistry builds an empty registry with the given deprecated-name table.
func NewRegistry(aliases map[string]string) *Registry {
	return &Registry{
		entries: make(map[string]Descriptor),
		aliases: maps.Clone(aliases),
	}
}

// Register adds d under symbol. Registering a symbol twice panics.
func (r *Registry) Register(symbol string, d Descriptor) {
	if _, exists := r.entries[symbol]; exists {
		panic(fmt.Sprintf("risk: measure %q registered twice", symbol))
	}
	r.entries[symbol] = d
	r.symbols = append(r.symbols, symbol)
}

// Lookup returns the descriptor registered under symbol.
func (r *Registry) Lookup(symbol string) (Descriptor, bool) {
	d, ok := r.entries[symbol]
	return d, ok
}

// Symbols lists registered symbols in registration order.
func (r *Registry) Symbols() []string {
	return slices.Clone(r.symbols)
}

// Len returns the number of registered descriptors.
func (r *Registry) Len() int { return len(r.symbols) }

// All returns every registered descriptor ordered by identity key.
func (r *Registry) All() []Descriptor {
	all := make([]Descriptor, 0, len(r.symbols))
	for _, symbol := range r.symbols {
		all = append(all, r.entries[symbol])
	}
	Sort(all)
	return all
}

// DeprecatedAlias returns the replacement for a retired name.
func (r *Registry) DeprecatedAlias(name string) (string, bool) {
	replacement, ok := r.aliases[name]
	return replacement, ok
}

// DeprecatedAliases returns a copy of the retired-name table.
func (r *Registry) DeprecatedAliases() map[string]string {
	return maps.Clone(r.aliases)
}

// Resolve finds the descriptor for name. A deprecated name still resolves to
// its own entry when one is registered, otherwise to its replacement; either
// way the Resolution carries the replacement so callers can warn.
func (r *Registry) Resolve(name string) (Resolution, error) {
	replacement, deprecated := r.aliases[name]
	if d, ok := r.entries[name]; ok {
		res := Resolution{Symbol: name, Measure: d}
		if deprecated {
			res.Replacement = replacement
		}
		return res, nil
	}
	if deprecated {
		if d, ok := r.entries[replacement]; ok {
			return Resolution{Symbol: replacement, Measure: d, Replacement: replacement}, nil
		}
	}
	return Resolution{}, fmt.Errorf("resolve %q: %w", name, ErrUnknownMeasure)
}

// Entry pairs a registered symbol with its descriptor.
type Entry struct {
	Symbol  string
	Measure Descriptor
}

// Entries lists registered entries in registration order.
func (r *Registry) Entries() []Entry {
	entries := make([]Entry, 0, len(r.symbols))
	for _, symbol := range r.symbols {
		entries = append(entries, Entry{Symbol: symbol, Measure: r.entries[symbol]})
	}
	return entries
}
