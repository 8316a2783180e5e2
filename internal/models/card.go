// internal/models/card.go
package models

import "fmt"

// Color is a card color. Wild cards start as ColorWild and are reassigned to
// a concrete color at the moment they are played.
type Color string

const (
	ColorRed    Color = "red"
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
	ColorWild   Color = "wild"
)

// Colors lists the four concrete (non-wild) colors in canonical order.
var Colors = []Color{ColorRed, ColorBlue, ColorGreen, ColorYellow}

// Value is a card face: "0".."9" or one of the action values.
type Value string

const (
	ValueSkip     Value = "skip"
	ValueReverse  Value = "reverse"
	ValueDrawTwo  Value = "+2"
	ValueDrawFour Value = "+4"
	ValueWild     Value = "wild"
)

// Card is a single UNO card. Once a card reaches the discard pile it is
// immutable, except for the wild-color reassignment that happens on play.
type Card struct {
	Color Color `json:"color"`
	Value Value `json:"value"`
}

// IsWild reports whether the card is a wild or wild draw-four.
func (c Card) IsWild() bool {
	return c.Value == ValueWild || c.Value == ValueDrawFour
}

// IsSpecial reports whether playing the card triggers a rule effect beyond a
// plain discard.
func (c Card) IsSpecial() bool {
	switch c.Value {
	case ValueSkip, ValueReverse, ValueDrawTwo, ValueDrawFour:
		return true
	}
	return false
}

func (c Card) String() string {
	return fmt.Sprintf("%s %s", c.Color, c.Value)
}
