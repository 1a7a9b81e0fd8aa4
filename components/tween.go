package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TweenData drives a looping animation. Value is the sequence's latest
// output; what it means depends on the entity.
type TweenData struct {
	Seq   *gween.Sequence
	Value float64
}

var Tween = donburi.NewComponentType[TweenData]()
