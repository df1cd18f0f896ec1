// Package art holds the dragon template asset and the fixed layout
// constants every size computation in the renderer derives from.
package art

import (
	_ "embed"
	"strings"
)

//go:embed dragon.txt
var dragonFile string

// Dragon is the raw 15-line template. The two slot markers are replaced
// by the renderer with center-padded side dish text.
var Dragon = strings.TrimSuffix(dragonFile, "\n")

const (
	// TemplateLines is the fixed height of the dragon template.
	TemplateLines = 15

	// SlotWidth is the column width of each text slot inside the speech box.
	SlotWidth = 20

	// SlotCapacity is the number of characters one slot holds before the
	// side dish spills into (or past) the second slot.
	SlotCapacity = 8

	// CaptionWidth is the column width captions are centered within.
	CaptionWidth = 60

	Slot1Marker = "$line1$"
	Slot2Marker = "$line2$"
)
