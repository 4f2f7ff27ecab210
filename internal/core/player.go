package core

// PlayerType identifies a playable character. Base-game characters occupy
// the low values; modded characters are assigned ids at load time.
type PlayerType int

// PlayerPossessor is the engine's "no character" value.
const PlayerPossessor PlayerType = -1
