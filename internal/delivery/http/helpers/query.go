package helpers

import (
	"net/http"
	"strconv"
	"strings"
)

// QueryBool reads a boolean query parameter. Missing or malformed values yield def.
func QueryBool(r *http.Request, name string, def bool) bool {
	s := r.URL.Query().Get(name)
	if s == "" {
		return def
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return def
	}
	return v
}

// QueryInt reads an integer query parameter. ok is false when the value is present but not an integer.
func QueryInt(r *http.Request, name string, def int) (v int, ok bool) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return def, true
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def, false
	}
	return v, true
}

// QueryList splits a comma separated query parameter, dropping empty items.
func QueryList(r *http.Request, name string) []string {
	var out []string
	for _, part := range strings.Split(r.URL.Query().Get(name), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
