// Package datefmt converts between the canonical YYYY-MM-DD storage format and the
// display formats a user can pick in settings.
package datefmt

import (
	"strconv"
	"strings"

	"talktrack/internal/domain"
)

type layout struct {
	order     [3]byte // 'Y', 'M', 'D'
	separator string
}

func layoutOf(f domain.DateFormat) layout {
	switch f {
	case domain.DateFormatSlashYMD:
		return layout{order: [3]byte{'Y', 'M', 'D'}, separator: "/"}
	case domain.DateFormatUS:
		return layout{order: [3]byte{'M', 'D', 'Y'}, separator: "/"}
	case domain.DateFormatSlashDMY:
		return layout{order: [3]byte{'D', 'M', 'Y'}, separator: "/"}
	case domain.DateFormatDotDMY:
		return layout{order: [3]byte{'D', 'M', 'Y'}, separator: "."}
	case domain.DateFormatDashDMY:
		return layout{order: [3]byte{'D', 'M', 'Y'}, separator: "-"}
	default:
		return layout{order: [3]byte{'Y', 'M', 'D'}, separator: "-"}
	}
}

// Format renders a canonical date in format f. Input that is not in the
// 4-2-2 canonical shape is returned unchanged; unknown formats fall back to canonical.
func Format(iso string, f domain.DateFormat) string {
	if iso == "" {
		return ""
	}
	if !domain.IsCanonicalDate(iso) {
		return iso
	}
	parts := map[byte]string{'Y': iso[0:4], 'M': iso[5:7], 'D': iso[8:10]}
	l := layoutOf(f)
	return parts[l.order[0]] + l.separator + parts[l.order[1]] + l.separator + parts[l.order[2]]
}

// Parse converts a date typed in format f back to canonical form.
// It returns "" unless the input has three parts of the right widths with a month in
// 1-12 and a day in 1-31.
func Parse(display string, f domain.DateFormat) string {
	l := layoutOf(f)
	parts := strings.Split(strings.TrimSpace(display), l.separator)
	if len(parts) != 3 {
		return ""
	}
	var year, month, day string
	for i, p := range l.order {
		switch p {
		case 'Y':
			year = parts[i]
		case 'M':
			month = parts[i]
		default:
			day = parts[i]
		}
	}
	if len(year) != 4 || len(month) != 2 || len(day) != 2 {
		return ""
	}
	if !allDigits(year) || !allDigits(month) || !allDigits(day) {
		return ""
	}
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return ""
	}
	return year + "-" + month + "-" + day
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Option describes a selectable format for the settings screen.
// swagger:model DateFormatOption
type Option struct {
	Value   domain.DateFormat `json:"value"`
	Label   string            `json:"label"`
	Example string            `json:"example"`
}

const exampleDate = "2026-01-22"

// Options lists every supported format with a rendered example.
func Options() []Option {
	out := make([]Option, 0, len(domain.DateFormats))
	for _, f := range domain.DateFormats {
		out = append(out, Option{Value: f, Label: string(f), Example: Format(exampleDate, f)})
	}
	return out
}
