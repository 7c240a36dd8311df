package engine

// Resolver maps a directive name to a Behavior. The Context holds a
// stack of resolvers; lookups iterate top-to-bottom and the first hit
// wins (spec.md §2 "Name Resolver", §4.2).
type Resolver interface {
	Resolve(name string) (Behavior, bool)
}

// FuzzyResolver is implemented by resolvers that can additionally list
// their known names, used to build an edit-distance suggestion on a
// lookup miss (spec.md §4.2, supplemented by
// original_source/include/cowel/util/levenshtein.hpp).
type FuzzyResolver interface {
	Names() []string
}

// Dispatch walks ctx's resolver stack top to bottom and returns the
// first behavior found for name. If none matches, ok is false and
// suggestion holds the closest known name across all resolvers (by
// Levenshtein distance), if any resolver exposes its name list.
func Dispatch(ctx *Context, name string) (b Behavior, ok bool, suggestion string) {
	for _, r := range ctx.Resolvers() {
		if beh, found := r.Resolve(name); found {
			return beh, true, ""
		}
	}
	return nil, false, fuzzyMatch(ctx, name)
}

func fuzzyMatch(ctx *Context, name string) string {
	best := ""
	bestDist := -1
	for _, r := range ctx.Resolvers() {
		fr, supported := r.(FuzzyResolver)
		if !supported {
			continue
		}
		for _, candidate := range fr.Names() {
			d := levenshtein(name, candidate)
			if bestDist == -1 || d < bestDist {
				bestDist = d
				best = candidate
			}
		}
	}
	// Only suggest names that are plausibly a typo, not an unrelated
	// word; an arbitrary but reasonable cutoff relative to length.
	if bestDist < 0 || bestDist > maxOf(3, len(name)/2) {
		return ""
	}
	return best
}

func maxOf(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// levenshtein computes the edit distance between a and b using the
// classic dynamic-programming recurrence (original_source's
// levenshtein.hpp ports the same algorithm in C++).
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	n, m := len(ra), len(rb)
	if n == 0 {
		return m
	}
	if m == 0 {
		return n
	}
	prev := make([]int, m+1)
	curr := make([]int, m+1)
	for j := 0; j <= m; j++ {
		prev[j] = j
	}
	for i := 1; i <= n; i++ {
		curr[0] = i
		for j := 1; j <= m; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost
			curr[j] = min3(del, ins, sub)
		}
		prev, curr = curr, prev
	}
	return prev[m]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
