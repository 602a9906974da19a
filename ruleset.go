// Copyright 2026 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retryx

// A Ruleset is an immutable, name-keyed collection of rules.
//
// Build a base ruleset with NewRuleset and derive richer ones with
// Extend. Because rulesets never change after construction, a Strategy
// compiles a ruleset into a single decision function once and caches
// it for the strategy's lifetime.
//
// A Ruleset is safe for concurrent use by multiple goroutines.
type Ruleset struct {
	names []string
	rules map[string]Rule
}

// NewRuleset constructs a ruleset from the given rules.
//
// NewRuleset panics if any rule is nil or if two rules in the call
// share a name: declaring the same name twice in one declaration set
// is a structural error, reported when the ruleset is defined rather
// than deferred to first use.
func NewRuleset(rules ...Rule) *Ruleset {
	rs := &Ruleset{rules: make(map[string]Rule, len(rules))}
	rs.overlay(rules)
	return rs
}

// Extend constructs a derived ruleset containing the receiver's rules
// overlaid with the given ones. A rule whose name matches an inherited
// rule replaces it (override); names only present in the parent remain
// visible. The relationship holds transitively through arbitrarily
// long Extend chains. The receiver is not modified.
//
// Extend panics under the same conditions as NewRuleset: a nil rule,
// or two rules in this call sharing a name.
func (rs *Ruleset) Extend(rules ...Rule) *Ruleset {
	child := &Ruleset{
		names: make([]string, len(rs.names), len(rs.names)+len(rules)),
		rules: make(map[string]Rule, len(rs.rules)+len(rules)),
	}
	copy(child.names, rs.names)
	for name, r := range rs.rules {
		child.rules[name] = r
	}
	child.overlay(rules)
	return child
}

// overlay installs rules into the set, replacing inherited rules by
// name and rejecting duplicate declarations within the same call.
func (rs *Ruleset) overlay(rules []Rule) {
	declared := make(map[string]bool, len(rules))
	for _, r := range rules {
		if r == nil {
			panic("retryx: nil rule")
		}
		name := r.Name()
		if name == "" {
			panic("retryx: empty rule name")
		}
		if declared[name] {
			panic("retryx: rule " + name + " declared twice")
		}
		declared[name] = true
		if _, inherited := rs.rules[name]; !inherited {
			rs.names = append(rs.names, name)
		}
		rs.rules[name] = r
	}
}

// Len returns the number of rules in the set. A nil ruleset has length
// zero.
func (rs *Ruleset) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.names)
}

// Names returns the rule names in declaration order. Overridden rules
// keep the position of the rule they replaced.
func (rs *Ruleset) Names() []string {
	if rs == nil {
		return nil
	}
	names := make([]string, len(rs.names))
	copy(names, rs.names)
	return names
}

// Rule returns the rule with the given name, if present.
func (rs *Ruleset) Rule(name string) (Rule, bool) {
	if rs == nil {
		return nil, false
	}
	r, ok := rs.rules[name]
	return r, ok
}

// predicate compiles the ruleset into a single decision function: the
// logical OR of every rule, each gated by its kind. An empty or nil
// ruleset compiles to the fallback policy of retrying on any error and
// never on a successful result, so a bare strategy still provides
// useful retry-on-failure behavior.
func (rs *Ruleset) predicate() func(*State) bool {
	if rs.Len() == 0 {
		return func(s *State) bool {
			return s.Err != nil
		}
	}

	rules := make([]Rule, 0, len(rs.names))
	for _, name := range rs.names {
		rules = append(rules, rs.rules[name])
	}

	return func(s *State) bool {
		retry := false
		for _, r := range rules {
			switch r.Kind() {
			case KindUniversal:
				retry = r.Evaluate(s)
			case KindOnError:
				retry = s.Err != nil && r.Evaluate(s)
			case KindOnResult:
				retry = s.Err == nil && r.Evaluate(s)
			}
			if retry {
				return true
			}
		}
		return false
	}
}
