package core

import (
	"fmt"
	"sort"
	"strings"
)

// Curse identifies a level-wide modifier. The value is the curse's position
// in the engine's curse bitmask, starting at 1.
type Curse int

const (
	CurseNone Curse = iota
	CurseDarkness
	CurseLabyrinth
	CurseLost
	CurseUnknown
	CurseCursed
	CurseMaze
	CurseBlind
	CurseGiant
)

var curseNames = map[Curse]string{
	CurseNone:      "None",
	CurseDarkness:  "Curse of Darkness",
	CurseLabyrinth: "Curse of the Labyrinth",
	CurseLost:      "Curse of the Lost",
	CurseUnknown:   "Curse of the Unknown",
	CurseCursed:    "Curse of the Cursed",
	CurseMaze:      "Curse of the Maze",
	CurseBlind:     "Curse of the Blind",
	CurseGiant:     "Curse of the Giant",
}

// SearchableCurses are the six curses a run can roll on its first floor.
var SearchableCurses = [6]Curse{
	CurseBlind,
	CurseDarkness,
	CurseLabyrinth,
	CurseLost,
	CurseMaze,
	CurseUnknown,
}

// String returns the in-game display name of the curse.
func (c Curse) String() string {
	if name, ok := curseNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Curse(%d)", int(c))
}

// Mask returns the single-bit mask for c. CurseNone has an empty mask.
func (c Curse) Mask() CurseMask {
	if c <= CurseNone {
		return 0
	}
	return CurseMask(1) << (c - 1)
}

// CurseMask is the engine's bitmask of active level curses.
type CurseMask uint32

// Has reports whether c is active in m.
func (m CurseMask) Has(c Curse) bool {
	bit := c.Mask()
	return bit != 0 && m&bit != 0
}

// Curses returns the active curses in ascending bit order.
func (m CurseMask) Curses() []Curse {
	var out []Curse
	for c := CurseDarkness; c <= CurseGiant; c++ {
		if m.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// String lists active curse names, or "None".
func (m CurseMask) String() string {
	curses := m.Curses()
	if len(curses) == 0 {
		return CurseNone.String()
	}
	names := make([]string, len(curses))
	for i, c := range curses {
		names[i] = c.String()
	}
	return strings.Join(names, ", ")
}

// CurseSet is an unordered set of curses.
type CurseSet map[Curse]struct{}

// NewCurseSet returns a set holding the given curses.
func NewCurseSet(curses ...Curse) CurseSet {
	s := make(CurseSet, len(curses))
	for _, c := range curses {
		s[c] = struct{}{}
	}
	return s
}

// AllCurses returns a fresh set of every searchable curse.
func AllCurses() CurseSet {
	return NewCurseSet(SearchableCurses[:]...)
}

// Add inserts c.
func (s CurseSet) Add(c Curse) { s[c] = struct{}{} }

// Has reports whether c is in the set.
func (s CurseSet) Has(c Curse) bool {
	_, ok := s[c]
	return ok
}

// Len returns the number of curses in the set.
func (s CurseSet) Len() int { return len(s) }

// Mask folds the set into a bitmask.
func (s CurseSet) Mask() CurseMask {
	var m CurseMask
	for c := range s {
		m |= c.Mask()
	}
	return m
}

// AnyActive reports whether at least one member of s is active in m.
func (s CurseSet) AnyActive(m CurseMask) bool {
	return s.Mask()&m != 0
}

// Sorted returns the members in ascending order.
func (s CurseSet) Sorted() []Curse {
	out := make([]Curse, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// String lists the members by display name.
func (s CurseSet) String() string {
	names := make([]string, 0, len(s))
	for _, c := range s.Sorted() {
		names = append(names, c.String())
	}
	return "{" + strings.Join(names, ", ") + "}"
}
