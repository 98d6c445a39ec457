// Package pageset parses page selectors like "all", "1-5", "2-end" or "1,3,5"
// into a canonical zero-based page selection. Selectors are parsed once at the
// edge; everything downstream works with the resolved indices.
package pageset

import (
	"fmt"
	"strconv"
	"strings"
)

// lastPage marks an open-ended range ("2-end", "2-").
const lastPage = -1

// span is an inclusive 1-based page range. End == lastPage means "to the
// final page of the document".
type span struct {
	Start int
	End   int
}

// Selection is a parsed page selector. The zero value selects all pages.
type Selection struct {
	display string
	all     bool
	spans   []span
}

// All reports whether the selection covers every page.
func (s Selection) All() bool {
	return s.all || len(s.spans) == 0
}

// String returns the selector as the caller wrote it ("all" for the zero value).
func (s Selection) String() string {
	if s.display == "" {
		return "all"
	}
	return s.display
}

// Parse parses a page selector. Accepted forms: "" or "all" (every page),
// a single page "3", an inclusive range "1-5", an open range "2-end" or "2-",
// and comma-separated combinations "1,3,5-7". Pages are 1-based in the
// selector syntax.
func Parse(selector string) (Selection, error) {
	trimmed := strings.TrimSpace(selector)
	if trimmed == "" || strings.EqualFold(trimmed, "all") {
		return Selection{display: trimmed, all: true}, nil
	}

	sel := Selection{display: trimmed}
	for _, part := range strings.Split(trimmed, ",") {
		part = strings.TrimSpace(part)
		sp, err := parseToken(part)
		if err != nil {
			return Selection{}, err
		}
		sel.spans = append(sel.spans, sp)
	}
	return sel, nil
}

// parseToken parses a single page token ("3") or a range token ("1-5", "2-end").
func parseToken(part string) (span, error) {
	if part == "" {
		return span{}, fmt.Errorf("empty page token")
	}

	if !strings.Contains(part, "-") {
		page, err := strconv.Atoi(part)
		if err != nil {
			return span{}, fmt.Errorf("invalid page number: %s", part)
		}
		if page < 1 {
			return span{}, fmt.Errorf("page numbers start at 1, got %d", page)
		}
		return span{Start: page, End: page}, nil
	}

	rangeParts := strings.SplitN(part, "-", 2)
	start, err := strconv.Atoi(strings.TrimSpace(rangeParts[0]))
	if err != nil {
		return span{}, fmt.Errorf("invalid start page: %s", rangeParts[0])
	}
	if start < 1 {
		return span{}, fmt.Errorf("page numbers start at 1, got %d", start)
	}

	endToken := strings.TrimSpace(rangeParts[1])
	if endToken == "" || strings.EqualFold(endToken, "end") {
		return span{Start: start, End: lastPage}, nil
	}

	end, err := strconv.Atoi(endToken)
	if err != nil {
		return span{}, fmt.Errorf("invalid end page: %s", rangeParts[1])
	}
	if end < start {
		return span{}, fmt.Errorf("invalid range %s: end before start", part)
	}
	return span{Start: start, End: end}, nil
}

// Resolve returns the selected pages as de-duplicated zero-based indices for
// a document with pageCount pages, in the order they were listed in the
// selector. Pages outside the document are silently dropped.
func (s Selection) Resolve(pageCount int) []int {
	if pageCount <= 0 {
		return nil
	}

	if s.All() {
		indices := make([]int, pageCount)
		for i := range indices {
			indices[i] = i
		}
		return indices
	}

	seen := make(map[int]struct{})
	var indices []int
	for _, sp := range s.spans {
		end := sp.End
		if end == lastPage || end > pageCount {
			end = pageCount
		}
		for page := sp.Start; page <= end; page++ {
			if _, ok := seen[page]; ok {
				continue
			}
			seen[page] = struct{}{}
			indices = append(indices, page-1)
		}
	}
	return indices
}

// First returns the 1-based page number of a single-page selection covering
// only the given page. Used for probing.
func First(page int) Selection {
	return Selection{
		display: strconv.Itoa(page),
		spans:   []span{{Start: page, End: page}},
	}
}
