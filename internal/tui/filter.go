package tui

import (
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/jask/hanzicards/internal/catalog"
)

// filterLessons returns the indices of lessons matching query, best match
// first. A title containing the query matches exactly; otherwise each word
// of the title is compared by edit distance so small typos still match.
func filterLessons(lessons []catalog.Lesson, query string) []int {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]int, 0, len(lessons))
	if query == "" {
		for i := range lessons {
			out = append(out, i)
		}
		return out
	}

	maxDist := utf8.RuneCountInString(query) / 4
	if maxDist < 1 {
		maxDist = 1
	}

	type match struct {
		idx  int
		dist int
	}
	var matches []match
	for i, l := range lessons {
		if d, ok := lessonDistance(l, query, maxDist); ok {
			matches = append(matches, match{idx: i, dist: d})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].dist < matches[j].dist })
	for _, m := range matches {
		out = append(out, m.idx)
	}
	return out
}

func lessonDistance(l catalog.Lesson, query string, maxDist int) (int, bool) {
	title := strings.ToLower(l.Title)
	if strings.Contains(title, query) || strconv.Itoa(l.ID) == query {
		return 0, true
	}
	best := -1
	for _, word := range strings.Fields(title) {
		d := levenshtein.ComputeDistance(word, query)
		if best < 0 || d < best {
			best = d
		}
	}
	if best < 0 || best > maxDist {
		return 0, false
	}
	return best, true
}
