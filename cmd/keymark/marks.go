package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dshills/keymark/internal/bookmark"
)

var errBadMark = errors.New("mark must look like LINE:COL-LINE:COL[@kind]")

// markSpec is one --mark flag value.
type markSpec struct {
	Raw   string
	Start bookmark.TextLocation
	End   bookmark.TextLocation
	Kind  bookmark.Kind
}

// parseMark parses "L:C-L:C", "L:C-L:C@kind" or "L:C" (an empty span).
func parseMark(s string) (markSpec, error) {
	spec := markSpec{Raw: s, Kind: bookmark.KindBookmark}

	span, kind, hasKind := strings.Cut(strings.TrimSpace(s), "@")
	if hasKind {
		k, ok := bookmark.ParseKind(kind)
		if !ok {
			return markSpec{}, fmt.Errorf("%q: unknown kind %q", s, kind)
		}
		spec.Kind = k
	}

	from, to, isRange := strings.Cut(span, "-")
	start, err := parseLocation(from)
	if err != nil {
		return markSpec{}, fmt.Errorf("%q: %w", s, err)
	}
	end := start
	if isRange {
		if end, err = parseLocation(to); err != nil {
			return markSpec{}, fmt.Errorf("%q: %w", s, err)
		}
	}

	spec.Start, spec.End = start, end
	return spec, nil
}

func parseLocation(s string) (bookmark.TextLocation, error) {
	line, col, ok := strings.Cut(s, ":")
	if !ok {
		return bookmark.TextLocation{}, errBadMark
	}
	l, err := strconv.Atoi(line)
	if err != nil || l < 1 {
		return bookmark.TextLocation{}, errBadMark
	}
	c, err := strconv.Atoi(col)
	if err != nil || c < 1 {
		return bookmark.TextLocation{}, errBadMark
	}
	return bookmark.Loc(l, c), nil
}

// bookmarks builds one bookmark per mark. Members are named after the file
// and the mark's position on the command line.
func bookmarks(file string, specs []markSpec, traits bookmark.TraitsTable) []*bookmark.Bookmark {
	out := make([]*bookmark.Bookmark, len(specs))
	for i, spec := range specs {
		member := bookmark.MemberToken{
			Module: file,
			Token:  uint32(i + 1),
			Name:   fmt.Sprintf("mark%d", i+1),
		}
		out[i] = bookmark.New(member, spec.Start, spec.End,
			bookmark.WithKind(spec.Kind), bookmark.WithTraits(traits))
	}
	return out
}

func parseMarks(values []string) ([]markSpec, error) {
	specs := make([]markSpec, 0, len(values))
	for _, v := range values {
		spec, err := parseMark(v)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}
