package codes

import (
	"testing"

	"pgregory.net/rapid"
)

func TestProperty_ResolveIsTotal(t *testing.T) {
	locales := []Locale{LocaleZH, LocaleEN}

	rapid.Check(t, func(t *rapid.T) {
		code := rapid.Int().Draw(t, "code")
		locale := rapid.SampledFrom(locales).Draw(t, "locale")

		msg := NewResolver(locale).Resolve(code)
		if msg == "" {
			t.Fatalf("Resolve(%d) returned empty message for %s", code, locale)
		}
	})
}

func TestProperty_ResolveIsDeterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		code := rapid.Int().Draw(t, "code")

		first := Message(code)
		for i := 0; i < 3; i++ {
			if got := Message(code); got != first {
				t.Fatalf("Message(%d) changed between calls: %q then %q", code, first, got)
			}
		}
	})
}

func TestProperty_LookupAgreesWithResolve(t *testing.T) {
	r := Default()

	rapid.Check(t, func(t *rapid.T) {
		code := rapid.IntRange(-64, 256).Draw(t, "code")

		msg, ok := r.Lookup(code)
		got := r.Resolve(code)
		if ok && got != msg {
			t.Fatalf("Resolve(%d)=%q, Lookup gave %q", code, got, msg)
		}
		if !ok && got != r.Fallback() {
			t.Fatalf("Resolve(%d)=%q, want fallback %q", code, got, r.Fallback())
		}
		if ok && IsReserved(code) {
			t.Fatalf("reserved code %d resolved to a mapped message", code)
		}
	})
}
