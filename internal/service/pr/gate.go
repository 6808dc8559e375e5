package pr

import (
	"strings"

	"github-rebac/internal/models"
	"github-rebac/internal/service"
)

// NormalizePattern turns glob-style '*' into the LIKE wildcard '%'.
func NormalizePattern(pattern string) string {
	return strings.ReplaceAll(pattern, "*", "%")
}

// MatchRule returns the rule governing merges into branch, or nil. When
// several rules match, the one with the most literal characters wins and
// ties go to the lowest id.
func MatchRule(rules []*models.BranchProtectionRule, branch string) *models.BranchProtectionRule {
	var best *models.BranchProtectionRule
	bestLiterals := -1

	for _, rule := range rules {
		if !likeMatch(rule.BranchPattern, branch) {
			continue
		}

		n := literalChars(rule.BranchPattern)
		switch {
		case n > bestLiterals:
		case n == bestLiterals && rule.ID < best.ID:
		default:
			continue
		}
		best, bestLiterals = rule, n
	}

	return best
}

// EvaluateMerge decides whether a PR with approvals approved reviews may be
// merged under rule. A nil rule never blocks.
func EvaluateMerge(rule *models.BranchProtectionRule, approvals int, isAdmin bool) error {
	if rule == nil {
		return nil
	}
	if isAdmin && rule.AllowAdminOverride {
		return nil
	}
	if approvals >= rule.RequiredApprovals {
		return nil
	}
	return &service.InsufficientApprovalsError{
		Required: rule.RequiredApprovals,
		Current:  approvals,
	}
}

// likeMatch implements SQL LIKE: '%' matches any run, '_' exactly one
// character, '\' escapes the next character. Matching is case-sensitive.
func likeMatch(pattern, s string) bool {
	p, t := []rune(pattern), []rune(s)
	pi, ti := 0, 0
	starP, starT := -1, 0

	for ti < len(t) {
		if pi < len(p) {
			switch c := p[pi]; {
			case c == '%':
				starP, starT = pi, ti
				pi++
				continue
			case c == '_':
				pi++
				ti++
				continue
			case c == '\\' && pi+1 < len(p):
				if p[pi+1] == t[ti] {
					pi += 2
					ti++
					continue
				}
			case c == t[ti]:
				pi++
				ti++
				continue
			}
		}

		if starP < 0 {
			return false
		}
		starT++
		pi, ti = starP+1, starT
	}

	for pi < len(p) && p[pi] == '%' {
		pi++
	}
	return pi == len(p)
}

func literalChars(pattern string) int {
	p := []rune(pattern)
	n := 0
	for i := 0; i < len(p); i++ {
		switch {
		case p[i] == '%', p[i] == '_':
		case p[i] == '\\' && i+1 < len(p):
			i++
			n++
		default:
			n++
		}
	}
	return n
}
