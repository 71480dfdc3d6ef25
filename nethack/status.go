package nethack

import (
	"strconv"
	"strings"

	"git.sr.ht/~rockorager/nhview/window"
	"golang.org/x/exp/slices"
)

// statusParser holds the state of a single parse
type statusParser struct {
	stats *Stats
	// tokens without a recognized field, in order of appearance
	plain []string
	// an HD: field was applied during this parse
	hitDice bool
}

// fields maps a status field name to the function applying its value.
// Values which don't parse are ignored
var fields = map[string]func(p *statusParser, value string){
	"Dlvl": func(p *statusParser, v string) { setUint(&p.stats.Dlvl, v) },
	"$":    func(p *statusParser, v string) { setUint(&p.stats.Gold, v) },
	"AC": func(p *statusParser, v string) {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			p.stats.AC = int(n)
		}
	},
	"T": func(p *statusParser, v string) {
		if n, ok := parseUint(v); ok {
			p.stats.Turns = &n
		}
	},
	"S": func(p *statusParser, v string) {
		if n, ok := parseUint(v); ok {
			p.stats.Score = &n
		}
	},
	"Dx": func(p *statusParser, v string) { setUint(&p.stats.Ability.Dex, v) },
	"Co": func(p *statusParser, v string) { setUint(&p.stats.Ability.Con, v) },
	"In": func(p *statusParser, v string) { setUint(&p.stats.Ability.Int, v) },
	"Wi": func(p *statusParser, v string) { setUint(&p.stats.Ability.Wis, v) },
	"Ch": func(p *statusParser, v string) { setUint(&p.stats.Ability.Cha, v) },
	"HP": func(p *statusParser, v string) { setCurMax(&p.stats.HP, &p.stats.MaxHP, v) },
	"Pw": func(p *statusParser, v string) { setCurMax(&p.stats.Pw, &p.stats.MaxPw, v) },
	"HD": func(p *statusParser, v string) {
		if n, ok := parseUint(v); ok {
			p.stats.Level = HitDice{N: n}
			p.hitDice = true
		}
	},
	"Xp": func(p *statusParser, v string) {
		lvl, exp, found := strings.Cut(v, "/")
		n, ok := parseUint(lvl)
		if !ok {
			return
		}
		if !found {
			p.stats.Level = XLvl{N: n}
			return
		}
		if xp, ok := parseUint(exp); ok {
			p.stats.Level = XLvlWithExp{N: n, Exp: xp}
		}
	},
	"St": func(p *statusParser, v string) {
		base, pct, found := strings.Cut(v, "/")
		n, ok := parseUint(base)
		if !ok {
			return
		}
		switch {
		case !found:
			p.stats.Ability.Strength = NormalStrength{N: n}
		case pct == "**":
			p.stats.Ability.Strength = PercentileStrength{N: n, Pct: 100}
		default:
			if percent, ok := parseUint(pct); ok {
				p.stats.Ability.Strength = PercentileStrength{N: n, Pct: percent}
			}
		}
	},
}

// ReadStatusLine reads the lines of the status window src into s. Only an
// error reading src is returned; values that don't parse are skipped
func (s *Stats) ReadStatusLine(src window.Source) error {
	lines, err := window.Lines(src)
	if err != nil {
		return err
	}
	s.ParseStatus(lines)
	return nil
}

// ParseStatus updates s from the text of the status window.
//
// Each whitespace separated token of the form Field:value with a known Field
// is applied directly. Everything else is kept in order. If the last kept
// token is an alignment it is applied and dropped. Then, for every "the"
// among the kept tokens, the token before it becomes the character name and
// the token after it the title. The title is a Polyform if an HD: field was
// read in this call, otherwise a Rank.
func (s *Stats) ParseStatus(lines []string) {
	p := &statusParser{stats: s}
	for _, line := range lines {
		for _, token := range strings.Fields(line) {
			field, value, found := strings.Cut(token, ":")
			if !found {
				p.plain = append(p.plain, token)
				continue
			}
			apply, ok := fields[field]
			if !ok {
				p.plain = append(p.plain, token)
				continue
			}
			apply(p, value)
		}
	}

	if n := len(p.plain); n > 0 {
		if i := slices.Index(alignNames, p.plain[n-1]); i >= 0 {
			s.Align = Align(i)
			p.plain = p.plain[:n-1]
		}
	}

	for i := 1; i < len(p.plain)-1; i += 1 {
		if p.plain[i] != "the" {
			continue
		}
		s.Name = p.plain[i-1]
		title := p.plain[i+1]
		if p.hitDice {
			s.Rank = Polyform{Title: title}
		} else {
			s.Rank = Rank{Title: title}
		}
	}
}

func parseUint(v string) (int, bool) {
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

func setUint(dst *int, v string) {
	if n, ok := parseUint(v); ok {
		*dst = n
	}
}

// setCurMax parses a cur(max) value. Either half is applied on its own if it
// parses
func setCurMax(cur *int, maximum *int, v string) {
	parts := strings.Split(strings.ReplaceAll(v, ")", "("), "(")
	if len(parts) < 2 {
		return
	}
	setUint(cur, parts[0])
	setUint(maximum, parts[1])
}
