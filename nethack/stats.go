// Package nethack reads game state out of the windows NetHack draws with its
// tty interface.
package nethack

import (
	"fmt"

	"golang.org/x/exp/slog"
)

// Level is the experience level shown on the status line. It is one of
// XLvl, XLvlWithExp or HitDice
type Level interface {
	fmt.Stringer
	level()
}

// XLvl is an experience level shown without experience points
type XLvl struct {
	N int
}

// XLvlWithExp is an experience level with experience points (showexp)
type XLvlWithExp struct {
	N   int
	Exp int
}

// HitDice is the level of the monster the hero is polymorphed into
type HitDice struct {
	N int
}

func (XLvl) level()        {}
func (XLvlWithExp) level() {}
func (HitDice) level()     {}

func (l XLvl) String() string        { return fmt.Sprintf("Xp:%d", l.N) }
func (l XLvlWithExp) String() string { return fmt.Sprintf("Xp:%d/%d", l.N, l.Exp) }
func (l HitDice) String() string     { return fmt.Sprintf("HD:%d", l.N) }

// Strength is either NormalStrength or PercentileStrength
type Strength interface {
	fmt.Stringer
	strength()
}

type NormalStrength struct {
	N int
}

// PercentileStrength is exceptional strength (18/xx). 18/** is stored as a
// Pct of 100
type PercentileStrength struct {
	N   int
	Pct int
}

func (NormalStrength) strength()     {}
func (PercentileStrength) strength() {}

func (s NormalStrength) String() string { return fmt.Sprintf("%d", s.N) }

func (s PercentileStrength) String() string {
	if s.Pct >= 100 {
		return fmt.Sprintf("%d/**", s.N)
	}
	return fmt.Sprintf("%d/%02d", s.N, s.Pct)
}

// Class is the title following the character name: a Rank of the hero's
// role, or the Polyform the hero is currently in
type Class interface {
	fmt.Stringer
	class()
}

type Rank struct {
	Title string
}

type Polyform struct {
	Title string
}

func (Rank) class()     {}
func (Polyform) class() {}

func (r Rank) String() string     { return r.Title }
func (p Polyform) String() string { return p.Title }

type Align int

const (
	Lawful Align = iota
	Neutral
	Chaotic
	Unaligned
)

// alignNames is indexed by Align
var alignNames = []string{"Lawful", "Neutral", "Chaotic", "Unaligned"}

func (a Align) String() string {
	if a < 0 || int(a) >= len(alignNames) {
		return "Align(?)"
	}
	return alignNames[a]
}

type Abilities struct {
	Strength Strength
	Dex      int
	Con      int
	Int      int
	Wis      int
	Cha      int
}

// Stats holds the values read from the status window. Each parse overwrites
// the fields it recognizes and leaves the rest alone
type Stats struct {
	Dlvl    int
	Gold    int
	HP      int
	MaxHP   int
	Pw      int
	MaxPw   int
	AC      int
	Level   Level
	Turns   *int // only shown with the time option
	Score   *int // only shown with the showscore option
	Ability Abilities
	Align   Align
	Name    string
	Rank    Class
}

// NewStats returns a Stats with placeholder values for a fresh character
func NewStats() Stats {
	return Stats{
		Dlvl:  1,
		Gold:  0,
		HP:    1,
		MaxHP: 10,
		Pw:    5,
		MaxPw: 10,
		AC:    10,
		Level: XLvl{N: 1},
		Ability: Abilities{
			Strength: NormalStrength{N: 10},
			Dex:      10,
			Con:      10,
			Int:      10,
			Wis:      10,
			Cha:      10,
		},
		Align: Unaligned,
		Name:  "luser",
		Rank:  Rank{Title: "windows hacker"},
	}
}

// LogValue implements slog.LogValuer
func (s Stats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("name", s.Name),
		slog.Any("rank", s.Rank),
		slog.Any("align", s.Align),
		slog.Int("dlvl", s.Dlvl),
		slog.Int("gold", s.Gold),
		slog.String("hp", fmt.Sprintf("%d(%d)", s.HP, s.MaxHP)),
		slog.String("pw", fmt.Sprintf("%d(%d)", s.Pw, s.MaxPw)),
		slog.Int("ac", s.AC),
		slog.Any("level", s.Level),
		slog.Any("st", s.Ability.Strength),
	}
	if s.Turns != nil {
		attrs = append(attrs, slog.Int("turns", *s.Turns))
	}
	if s.Score != nil {
		attrs = append(attrs, slog.Int("score", *s.Score))
	}
	return slog.GroupValue(attrs...)
}
