package profile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Relation is one entry of a filter's include list. It encodes as the bare
// relation name, or as {"name":[...]} when it has nested relations.
type Relation struct {
	Name    string
	Include []Relation
}

// Rel builds a Relation including the given nested relations.
func Rel(name string, include ...Relation) Relation {
	return Relation{Name: name, Include: include}
}

func (r Relation) MarshalJSON() ([]byte, error) {
	if len(r.Include) == 0 {
		return marshalJSON(r.Name)
	}
	return marshalJSON(map[string][]Relation{r.Name: r.Include})
}

// Filter is the query filter passed to the remote service in the "filter"
// query parameter. Field order is part of the wire format: where, then
// include.
type Filter struct {
	Where   map[string]any `json:"where,omitempty"`
	Include []Relation     `json:"include,omitempty"`
}

// Include returns a filter that only includes relations.
func Include(relations ...Relation) Filter {
	return Filter{Include: relations}
}

// Encode returns the filter's JSON text, as it is placed in the URL.
func (f Filter) Encode() (string, error) {
	b, err := marshalJSON(f)
	if err != nil {
		return "", fmt.Errorf("failed to encode filter: %w", err)
	}
	return string(b), nil
}

var (
	profileFilter = Include(Rel("likes"), Rel("groups"))
	groupFilter   = Include(
		Rel("posts", Rel("owner"), Rel("comments", Rel("owner"))),
		Rel("members"),
	)
	postFilter = Include(Rel("owner"), Rel("comments", Rel("owner")))
)

// GroupSearchFilter matches groups whose name contains query, ignoring case,
// and includes their members.
func GroupSearchFilter(query string) (Filter, error) {
	pattern, err := ContainsPattern(query)
	if err != nil {
		return Filter{}, err
	}
	return Filter{
		Where:   map[string]any{"name": map[string]string{"regexp": pattern}},
		Include: []Relation{Rel("members")},
	}, nil
}

// ContainsPattern returns the regular expression literal /.*query.*/i. The
// query is not escaped, so it may itself use pattern syntax; it must compile.
func ContainsPattern(query string) (string, error) {
	source := ".*" + query + ".*"
	if _, err := regexp.Compile("(?i)" + source); err != nil {
		return "", fmt.Errorf("invalid query %q: %w", query, err)
	}
	return "/" + escapeSlashes(source) + "/i", nil
}

// escapeSlashes escapes every "/" not already preceded by a backslash.
func escapeSlashes(s string) string {
	var b strings.Builder
	escaped := false
	for _, c := range s {
		if c == '/' && !escaped {
			b.WriteByte('\\')
		}
		escaped = c == '\\' && !escaped
		b.WriteRune(c)
	}
	return b.String()
}

// marshalJSON encodes v without HTML escaping and without a trailing newline.
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
