package model

import "time"

// TableID uniquely identifies a hosted table
type TableID string

// PlayRecord is one committed play in a table's history
type PlayRecord struct {
	Number      int
	Orientation Orientation
	Words       []string
	TilesPlaced int
	Bingo       bool
	Score       int
	PlayedAt    time.Time
}

// Table is a hosted board together with its tile supply.
// Values returned by the table service are snapshots: the board is a copy.
type Table struct {
	ID         TableID
	Board      *Board
	TilesInBag int
	Plays      []PlayRecord
	TotalScore int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
