package model

import "strings"

// Category is a user-defined classification rule. Name is the identity
// key; keywords are matched case-insensitively as whole words against
// transaction descriptions. A category with no keywords never matches.
type Category struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// HasKeyword reports whether kw is already in the keyword set
// (case-insensitive).
func (c Category) HasKeyword(kw string) bool {
	for _, k := range c.Keywords {
		if strings.EqualFold(k, kw) {
			return true
		}
	}
	return false
}
