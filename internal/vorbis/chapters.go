package vorbis

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/simonhull/finfo/internal/types"
)

// Chapters collects CHAPTERnnn / CHAPTERnnnNAME comment pairs:
//
//	CHAPTER001=00:00:00.000
//	CHAPTER001NAME=Introduction
//	CHAPTER002=00:05:23.500
//
// Chapters without a parsable timestamp are dropped. Each chapter ends
// where the next begins; the last one ends at total, which may be zero.
func Chapters(fields []types.CommentField, total time.Duration) []types.Chapter {
	type marker struct {
		num   int
		start time.Duration
		title string
		valid bool
	}
	byNum := map[int]*marker{}

	get := func(num int) *marker {
		m := byNum[num]
		if m == nil {
			m = &marker{num: num}
			byNum[num] = m
		}
		return m
	}

	for _, f := range fields {
		key, value, ok := f.Split()
		if !ok {
			continue
		}
		key = strings.ToUpper(strings.TrimSpace(key))
		rest, ok := strings.CutPrefix(key, "CHAPTER")
		if !ok {
			continue
		}

		if numStr, isName := strings.CutSuffix(rest, "NAME"); isName {
			if num, err := strconv.Atoi(numStr); err == nil {
				get(num).title = strings.TrimSpace(value)
			}
			continue
		}

		num, err := strconv.Atoi(rest)
		if err != nil {
			continue
		}
		start, err := parseTimestamp(strings.TrimSpace(value))
		if err != nil {
			continue
		}
		m := get(num)
		m.start, m.valid = start, true
	}

	var markers []*marker
	for _, m := range byNum {
		if m.valid {
			markers = append(markers, m)
		}
	}
	if len(markers) == 0 {
		return nil
	}
	slices.SortFunc(markers, func(a, b *marker) int { return cmp.Compare(a.num, b.num) })

	chapters := make([]types.Chapter, len(markers))
	for i, m := range markers {
		end := total
		if i+1 < len(markers) {
			end = markers[i+1].start
		}
		title := m.title
		if title == "" {
			title = fmt.Sprintf("Chapter %d", m.num)
		}
		chapters[i] = types.Chapter{Index: i + 1, Title: title, Start: m.start, End: end}
	}
	return chapters
}

// parseTimestamp accepts HH:MM:SS.mmm, MM:SS.mmm or SS.mmm.
func parseTimestamp(ts string) (time.Duration, error) {
	parts := strings.Split(ts, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("invalid timestamp %q", ts)
	}

	seconds, err := strconv.ParseFloat(parts[len(parts)-1], 64)
	if err != nil || seconds < 0 || seconds >= 60 {
		return 0, fmt.Errorf("invalid seconds in timestamp %q", ts)
	}

	var hours, minutes int
	if len(parts) >= 2 {
		minutes, err = strconv.Atoi(parts[len(parts)-2])
		if err != nil || minutes < 0 || minutes >= 60 {
			return 0, fmt.Errorf("invalid minutes in timestamp %q", ts)
		}
	}
	if len(parts) == 3 {
		hours, err = strconv.Atoi(parts[0])
		if err != nil || hours < 0 {
			return 0, fmt.Errorf("invalid hours in timestamp %q", ts)
		}
	}

	total := float64(hours*3600+minutes*60) + seconds
	return time.Duration(total * float64(time.Second)), nil
}
