package models

import (
	"database/sql/driver"
	"fmt"
	"sort"
	"strings"
)

// TagList is an ordered list of tags. It is stored as comma-joined text but
// only ever crosses the store boundary as a parsed list.
type TagList []string

// ParseTagList splits comma-delimited text into trimmed, non-empty tokens.
func ParseTagList(s string) TagList {
	parts := strings.Split(s, ",")
	tags := make(TagList, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func (t TagList) String() string {
	return strings.Join(t, ", ")
}

// Contains reports whether the list holds tag, case-insensitively.
func (t TagList) Contains(tag string) bool {
	for _, v := range t {
		if strings.EqualFold(v, tag) {
			return true
		}
	}
	return false
}

// Value implements driver.Valuer, rendering the storage form.
func (t TagList) Value() (driver.Value, error) {
	return t.String(), nil
}

// Scan implements sql.Scanner, parsing the storage form.
func (t *TagList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*t = nil
	case string:
		*t = ParseTagList(v)
	case []byte:
		*t = ParseTagList(string(v))
	default:
		return fmt.Errorf("cannot scan %T into TagList", src)
	}
	return nil
}

// UnionTags collects the sorted set of distinct tags across several lists.
func UnionTags(lists ...TagList) []string {
	seen := make(map[string]struct{})
	var union []string
	for _, list := range lists {
		for _, tag := range list {
			if _, ok := seen[tag]; !ok {
				seen[tag] = struct{}{}
				union = append(union, tag)
			}
		}
	}
	sort.Strings(union)
	return union
}
