package codes

import (
	"math"
	"slices"
	"strings"
)

// Locale 文案语言
type Locale string

const (
	LocaleZH Locale = "zh-CN"
	LocaleEN Locale = "en"

	DefaultLocale = LocaleZH
)

// ParseLocale normalizes s to a supported locale. Unknown values map to DefaultLocale.
func ParseLocale(s string) Locale {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "_", "-")
	switch {
	case s == "en" || strings.HasPrefix(s, "en-"):
		return LocaleEN
	default:
		return DefaultLocale
	}
}

// Resolver maps return codes to messages of one locale.
//
// A Resolver never changes after NewResolver returns, so it can be shared
// between goroutines freely.
type Resolver struct {
	locale   Locale
	table    map[Code]string
	fallback string
}

// Option customizes a Resolver.
type Option func(*Resolver)

// WithFallback replaces the message for unmapped codes. Empty values are ignored.
func WithFallback(msg string) Option {
	return func(r *Resolver) {
		if strings.TrimSpace(msg) != "" {
			r.fallback = msg
		}
	}
}

// WithOverrides replaces or adds messages for specific codes.
// Entries with empty text or a code outside the int32 range of MT4 return
// codes are ignored.
func WithOverrides(overrides map[int]string) Option {
	return func(r *Resolver) {
		for code, msg := range overrides {
			if strings.TrimSpace(msg) == "" || code < math.MinInt32 || code > math.MaxInt32 {
				continue
			}
			r.table[Code(code)] = msg
		}
	}
}

// NewResolver builds a resolver for locale.
func NewResolver(locale Locale, opts ...Option) *Resolver {
	locale = ParseLocale(string(locale))
	base := tables[locale]
	r := &Resolver{
		locale:   locale,
		table:    make(map[Code]string, len(base)),
		fallback: fallbacks[locale],
	}
	for k, v := range base {
		r.table[k] = v
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultResolver = NewResolver(DefaultLocale)

// Default returns the shared resolver for DefaultLocale.
func Default() *Resolver { return defaultResolver }

// Message resolves code with the default locale. It never returns an empty string.
func Message(code int) string {
	return defaultResolver.Resolve(code)
}

// Lookup returns the mapped message for code in the default locale.
func Lookup(code int) (string, bool) {
	return defaultResolver.Lookup(code)
}

// Resolve returns the message for code, or the fallback message.
func (r *Resolver) Resolve(code int) string {
	if msg, ok := r.Lookup(code); ok {
		return msg
	}
	return r.fallback
}

// Lookup is an exact-match lookup; reserved and unknown codes report false.
func (r *Resolver) Lookup(code int) (string, bool) {
	msg, ok := r.table[Code(code)]
	return msg, ok
}

// Locale reports the locale the resolver was built for.
func (r *Resolver) Locale() Locale { return r.locale }

// Fallback returns the message Resolve gives unmapped codes.
func (r *Resolver) Fallback() string { return r.fallback }

// Entries lists the resolver's mapped codes in registry order, overrides applied.
// Codes only present through WithOverrides are appended in ascending order.
func (r *Resolver) Entries() []ErrorCode {
	out := make([]ErrorCode, 0, len(r.table))
	seen := make(map[Code]struct{}, len(mappedRows))
	for _, row := range mappedRows {
		seen[row.code] = struct{}{}
		out = append(out, ErrorCode{Numeric: int32(row.code), Symbol: row.symbol, Message: r.table[row.code]})
	}
	var extra []Code
	for c := range r.table {
		if _, ok := seen[c]; !ok {
			extra = append(extra, c)
		}
	}
	slices.Sort(extra)
	for _, c := range extra {
		out = append(out, ErrorCode{Numeric: int32(c), Symbol: c.String(), Message: r.table[c]})
	}
	return out
}
