package model

import (
	"strconv"
	"strings"
)

// ItemID identifies an item within one shopping list session.
type ItemID int

// DefaultQuantity is used whenever the typed quantity is blank or not a number.
const DefaultQuantity = 1

// Item is the domain model for a shopping list entry.
type Item struct {
	ID       ItemID `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Editing  bool   `json:"editing"`
}

// ParseQuantity turns user-typed text into a quantity. The text must be a
// 32-bit decimal integer with no surrounding spaces; anything else, and any
// value below 1, becomes DefaultQuantity.
func ParseQuantity(text string) int {
	n, err := strconv.ParseInt(text, 10, 32)
	if err != nil || n < 1 {
		return DefaultQuantity
	}
	return int(n)
}

// IsBlank reports whether a name is empty or only whitespace.
func IsBlank(name string) bool {
	return strings.TrimSpace(name) == ""
}
