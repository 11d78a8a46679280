package entity

import "encoding/json"

type Hex struct {
	Coord Coord
	Color Color
	Owner Slot
}

type hexJSON struct {
	Q     int   `json:"q"`
	R     int   `json:"r"`
	Color Color `json:"color"`
	Owner *Slot `json:"owner"`
}

func (that *Hex) MarshalJSON() ([]byte, error) {
	return json.Marshal(hexJSON{
		Q:     that.Coord.Q,
		R:     that.Coord.R,
		Color: that.Color,
		Owner: slotOrNil(that.Owner),
	})
}

func (that *Hex) IsOwnedBy(slot Slot) bool {
	return slot != NoSlot && that.Owner == slot
}

func slotOrNil(slot Slot) *Slot {
	if slot == NoSlot {
		return nil
	}
	return &slot
}
