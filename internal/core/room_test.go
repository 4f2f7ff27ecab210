package core

import "testing"

func TestRoomTypeValues(t *testing.T) {
	tests := []struct {
		room RoomType
		want int
	}{
		{RoomNull, 0},
		{RoomDefault, 1},
		{RoomShop, 2},
		{RoomTreasure, 4},
		{RoomMiniBoss, 6},
		{RoomSecret, 7},
		{RoomCurse, 10},
		{RoomLibrary, 12},
		{RoomSacrifice, 13},
		{RoomDevil, 14},
		{RoomAngel, 15},
		{RoomCleanBedroom, 18},
		{RoomDirtyBedroom, 19},
		{RoomDice, 21},
		{RoomPlanetarium, 24},
	}

	for _, tt := range tests {
		if int(tt.room) != tt.want {
			t.Errorf("%s = %d, want %d", tt.room, int(tt.room), tt.want)
		}
	}
}

func TestParseRoomType(t *testing.T) {
	tests := []struct {
		input   string
		want    RoomType
		wantErr bool
	}{
		{"Treasure Room", RoomTreasure, false},
		{"  planetarium ", RoomPlanetarium, false},
		{"dice room", RoomDice, false},
		{"15", RoomAngel, false},
		{"99", RoomNull, true},
		{"kitchen", RoomNull, true},
	}

	for _, tt := range tests {
		got, err := ParseRoomType(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseRoomType(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRoomType(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestRoomTypeString(t *testing.T) {
	if got := RoomTreasure.String(); got != "Treasure Room" {
		t.Errorf("RoomTreasure.String() = %q", got)
	}
	if got := RoomType(77).String(); got != "RoomType(77)" {
		t.Errorf("Unknown room String() = %q", got)
	}
	if RoomType(77).Valid() {
		t.Error("RoomType(77) should not be valid")
	}
}

func TestAdjacentRoomIndices(t *testing.T) {
	// Grid rows are 13 wide, so the neighbours are ±1 and ±13
	for _, idx := range AdjacentRoomIndices {
		d := idx - StartingRoomIndex
		if d != -13 && d != -1 && d != 1 && d != 13 {
			t.Errorf("Slot %d is not adjacent to %d", idx, StartingRoomIndex)
		}
	}
	if AdjacentRoomIndices != [4]int{71, 83, 85, 97} {
		t.Errorf("Unexpected slot order %v", AdjacentRoomIndices)
	}
}

func TestRoomSet(t *testing.T) {
	s := NewRoomSet(RoomTreasure, RoomShop)
	s.Add(RoomTreasure)
	if s.Len() != 2 {
		t.Errorf("Expected 2 rooms, got %d", s.Len())
	}

	c := s.Clone()
	c.Remove(RoomShop)
	c.Remove(RoomShop)
	if !s.Has(RoomShop) {
		t.Error("Clone should not share storage")
	}
	if c.Has(RoomShop) || !c.Has(RoomTreasure) {
		t.Errorf("Unexpected clone contents %s", c)
	}

	if got := s.String(); got != "{Shop, Treasure Room}" {
		t.Errorf("String() = %q", got)
	}
	if got := NewRoomSet().String(); got != "{}" {
		t.Errorf("Empty String() = %q", got)
	}
}
