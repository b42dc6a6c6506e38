// ABOUTME: @mention detection, autocomplete, insertion, and extraction
// ABOUTME: Pure text functions; cursor positions are rune offsets
package mention

import (
	"sort"
	"strings"
	"unicode"

	"github.com/harperreed/refit/models"
)

// ActiveQuery finds the mention being typed at the cursor: the span after
// the nearest preceding '@' that sits at text start or after whitespace, with
// no whitespace between it and the cursor. start is the rune offset of the
// '@' itself.
func ActiveQuery(text string, cursor int) (query string, start int, ok bool) {
	runes := []rune(text)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}

	for i := cursor - 1; i >= 0; i-- {
		r := runes[i]
		if unicode.IsSpace(r) {
			return "", 0, false
		}
		if r != '@' {
			continue
		}
		if i > 0 && !unicode.IsSpace(runes[i-1]) {
			return "", 0, false
		}
		return string(runes[i+1 : cursor]), i, true
	}
	return "", 0, false
}

// Suggest filters the roster by case-insensitive substring match on name or
// role. An empty query returns the full roster.
func Suggest(roster []*models.TeamMember, query string) []*models.TeamMember {
	if query == "" {
		return roster
	}
	q := strings.ToLower(query)
	var out []*models.TeamMember
	for _, m := range roster {
		if strings.Contains(strings.ToLower(m.Name), q) || strings.Contains(strings.ToLower(m.Role), q) {
			out = append(out, m)
		}
	}
	return out
}

// Insert splices the member's display name over the active mention query,
// appends a single space, and returns the new text with the cursor placed
// right after that space. When no mention is active the text is unchanged.
func Insert(text string, cursor int, member *models.TeamMember) (string, int) {
	_, start, ok := ActiveQuery(text, cursor)
	if !ok {
		return text, cursor
	}

	runes := []rune(text)
	if cursor > len(runes) {
		cursor = len(runes)
	}
	inserted := []rune("@" + member.Name + " ")

	out := make([]rune, 0, len(runes)+len(inserted))
	out = append(out, runes[:start]...)
	out = append(out, inserted...)
	out = append(out, runes[cursor:]...)
	return string(out), start + len(inserted)
}

// Extract re-scans finalized text for @Name patterns and resolves each
// against the roster by exact name match, returning member ids in order of
// first appearance. Longer names are tried first so ties are deterministic,
// but a name that prefixes another's still collides; the extraction has no
// disambiguation beyond that.
func Extract(text string, roster []*models.TeamMember) []string {
	ordered := make([]*models.TeamMember, len(roster))
	copy(ordered, roster)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].Name) > len(ordered[j].Name)
	})

	runes := []rune(text)
	var ids []string
	seen := make(map[string]bool)

	for i := 0; i < len(runes); i++ {
		if runes[i] != '@' {
			continue
		}
		if i > 0 && !unicode.IsSpace(runes[i-1]) {
			continue
		}
		rest := string(runes[i+1:])
		for _, m := range ordered {
			if m.Name == "" || !strings.HasPrefix(rest, m.Name) {
				continue
			}
			if !boundaryAfter(rest, m.Name) {
				continue
			}
			if !seen[m.ID] {
				seen[m.ID] = true
				ids = append(ids, m.ID)
			}
			i += len([]rune(m.Name))
			break
		}
	}
	return ids
}

// boundaryAfter requires the matched name to end at text end or before a
// non-name character, so "@Sam" does not fire inside "@Samantha".
func boundaryAfter(rest, name string) bool {
	tail := []rune(strings.TrimPrefix(rest, name))
	if len(tail) == 0 {
		return true
	}
	next := tail[0]
	return !unicode.IsLetter(next) && !unicode.IsDigit(next)
}
