package knowledge

import (
	"context"
	"regexp"
	"strings"
)

// offline fact table: intervention surface pattern to purpose label.
var nursingFacts = []struct {
	re      *regexp.Regexp
	purpose string
}{
	{regexp.MustCompile(`high[\s-]?fowler`), PurposeBreathing},
	{regexp.MustCompile(`trendelenburg`), PurposeCirculation},
	{regexp.MustCompile(`left[\s-]?side[\s-]?lying`), PurposeCirculation},
	{regexp.MustCompile(`incentive spirometry`), PurposeBreathing},
	{regexp.MustCompile(`sequential compression`), PurposeCirculation},
	{regexp.MustCompile(`raise.*bed`), PurposeBreathing},
	{regexp.MustCompile(`cold application`), PurposeCirculation},
	{regexp.MustCompile(`heat application`), PurposeCirculation},
}

// Offline is the fixed-rule Helper used when no language model is
// configured or reachable. Lookups are pure pattern matches.
type Offline struct{}

// NewOffline returns the offline Helper.
func NewOffline() *Offline { return &Offline{} }

// InterventionPurpose resolves a term against the built-in fact table and
// falls back to a coarse keyword categorization. Unknown terms return an
// empty label with no error.
func (o *Offline) InterventionPurpose(_ context.Context, term string) (string, error) {
	lower := strings.ToLower(term)
	for _, f := range nursingFacts {
		if f.re.MatchString(lower) {
			return f.purpose, nil
		}
	}
	switch {
	case containsAny(lower, "fowler", "position", "breathing", "oxygen"):
		return PurposeBreathing, nil
	case containsAny(lower, "pressure", "bleeding", "circulation"):
		return PurposeCirculation, nil
	case containsAny(lower, "safety", "alarm", "fall"):
		return PurposeSafety, nil
	}
	return "", nil
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
