package registry

import "github.com/vovakirdan/trstart/internal/core"

// Base-game player types.
const (
	Isaac core.PlayerType = iota
	Magdalene
	Cain
	Judas
	BlueBaby
	Eve
	Samson
	Azazel
	Lazarus
	Eden
	TheLost
	Lazarus2
	DarkJudas
	Lilith
	Keeper
	Apollyon
	TheForgotten
	TheSoul
	Bethany
	Jacob
	Esau
	IsaacB
	MagdaleneB
	CainB
	JudasB
	BlueBabyB
	EveB
	SamsonB
	AzazelB
	LazarusB
	EdenB
	TheLostB
	LilithB
	KeeperB
	ApollyonB
	TheForgottenB
	BethanyB
	JacobB
	Lazarus2B
	Jacob2B
	TheSoulB
)

// FirstModded is the lowest player type the game hands out to modded characters.
const FirstModded = TheSoulB + 1

func init() {
	base := []Character{
		{ID: Isaac, Name: "Isaac"},
		{ID: Magdalene, Name: "Magdalene"},
		{ID: Cain, Name: "Cain"},
		{ID: Judas, Name: "Judas"},
		{ID: BlueBaby, Name: "???"},
		{ID: Eve, Name: "Eve"},
		{ID: Samson, Name: "Samson"},
		{ID: Azazel, Name: "Azazel"},
		{ID: Lazarus, Name: "Lazarus"},
		{ID: Eden, Name: "Eden"},
		{ID: TheLost, Name: "The Lost"},
		{ID: Lazarus2, Name: "Lazarus II"},
		{ID: DarkJudas, Name: "Dark Judas"},
		{ID: Lilith, Name: "Lilith"},
		{ID: Keeper, Name: "Keeper"},
		{ID: Apollyon, Name: "Apollyon"},
		{ID: TheForgotten, Name: "The Forgotten"},
		{ID: TheSoul, Name: "The Soul"},
		{ID: Bethany, Name: "Bethany"},
		{ID: Jacob, Name: "Jacob"},
		{ID: Esau, Name: "Esau"},
		{ID: IsaacB, Name: "Isaac", Tainted: true},
		{ID: MagdaleneB, Name: "Magdalene", Tainted: true},
		{ID: CainB, Name: "Cain", Tainted: true},
		{ID: JudasB, Name: "Judas", Tainted: true},
		{ID: BlueBabyB, Name: "???", Tainted: true},
		{ID: EveB, Name: "Eve", Tainted: true},
		{ID: SamsonB, Name: "Samson", Tainted: true},
		{ID: AzazelB, Name: "Azazel", Tainted: true},
		{ID: LazarusB, Name: "Lazarus", Tainted: true},
		{ID: EdenB, Name: "Eden", Tainted: true},
		{ID: TheLostB, Name: "The Lost", Tainted: true},
		{ID: LilithB, Name: "Lilith", Tainted: true},
		{ID: KeeperB, Name: "Keeper", Tainted: true},
		{ID: ApollyonB, Name: "Apollyon", Tainted: true},
		{ID: TheForgottenB, Name: "The Forgotten", Tainted: true},
		{ID: BethanyB, Name: "Bethany", Tainted: true},
		{ID: JacobB, Name: "Jacob", Tainted: true},
		{ID: Lazarus2B, Name: "Lazarus (dead)", Tainted: true},
		{ID: Jacob2B, Name: "Jacob (ghost)", Tainted: true},
		{ID: TheSoulB, Name: "The Soul", Tainted: true},
	}
	for _, c := range base {
		Register(c)
	}
}
