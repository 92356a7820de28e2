package proxy

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"moodbank/core/server"
)

// Rule forwards every path starting with Prefix to Target.
type Rule struct {
	Prefix string
	Target *url.URL
}

// Table is an immutable set of rules ordered for longest-prefix lookup.
type Table struct {
	rules []Rule
}

// NewTable validates rules and builds a lookup table.
func NewTable(rules map[string]string) (*Table, error) {
	t := &Table{rules: make([]Rule, 0, len(rules))}

	for prefix, target := range rules {
		if prefix == "" || !strings.HasPrefix(prefix, "/") {
			return nil, fmt.Errorf("proxy prefix %q must start with /", prefix)
		}
		u, err := server.ParseOrigin(target)
		if err != nil {
			return nil, fmt.Errorf("proxy target for %q: %w", prefix, err)
		}
		t.rules = append(t.rules, Rule{Prefix: prefix, Target: u})
	}

	// Longest prefix first; ties cannot happen because keys are unique, the
	// lexical order only keeps Rules() deterministic.
	sort.Slice(t.rules, func(i, j int) bool {
		if len(t.rules[i].Prefix) != len(t.rules[j].Prefix) {
			return len(t.rules[i].Prefix) > len(t.rules[j].Prefix)
		}
		return t.rules[i].Prefix < t.rules[j].Prefix
	})

	return t, nil
}

// Match returns the most specific rule whose prefix starts path.
func (t *Table) Match(path string) (Rule, bool) {
	for _, r := range t.rules {
		if strings.HasPrefix(path, r.Prefix) {
			return r, true
		}
	}
	return Rule{}, false
}

// Rules returns the rules in match order.
func (t *Table) Rules() []Rule {
	out := make([]Rule, len(t.rules))
	copy(out, t.rules)
	return out
}

// Len returns the number of rules.
func (t *Table) Len() int {
	return len(t.rules)
}

// TargetURL joins the rule's origin with the original request URI.
// The path is forwarded unchanged, prefix included, along with the query.
func (r Rule) TargetURL(requestURI string) string {
	if !strings.HasPrefix(requestURI, "/") {
		requestURI = "/" + requestURI
	}
	return r.Target.Scheme + "://" + r.Target.Host + requestURI
}
