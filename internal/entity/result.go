package entity

import "time"

type Result struct {
	Winner     Slot         `json:"winner"`
	Scores     map[Slot]int `json:"scores"`
	BoardSize  int          `json:"boardSize"`
	FinishedAt time.Time    `json:"finishedAt"`
}
