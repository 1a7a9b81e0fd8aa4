package main

import (
	"fmt"
	"strconv"
	"strings"

	cfg "github.com/automoto/scaaale/config"
)

// scriptKeys maps script letters to actions.
var scriptKeys = map[rune]cfg.ActionID{
	'l': cfg.ActionMoveLeft,
	'r': cfg.ActionMoveRight,
	'j': cfg.ActionJump,
	's': cfg.ActionStretch,
	'x': cfg.ActionRestart,
}

type segment struct {
	ticks   int
	pressed [cfg.ActionCount]bool
}

// script is a list of input segments. "30:r,12:rj,20:." holds right for 30
// ticks, right and jump for 12, then nothing for 20.
type script []segment

func parseScript(s string) (script, error) {
	var out script
	if strings.TrimSpace(s) == "" {
		return out, nil
	}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		n, keys, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("segment %q: want ticks:keys", part)
		}
		ticks, err := strconv.Atoi(n)
		if err != nil || ticks <= 0 {
			return nil, fmt.Errorf("segment %q: bad tick count", part)
		}
		seg := segment{ticks: ticks}
		for _, k := range keys {
			if k == '.' {
				continue
			}
			a, ok := scriptKeys[k]
			if !ok {
				return nil, fmt.Errorf("segment %q: unknown key %q", part, k)
			}
			seg.pressed[a] = true
		}
		out = append(out, seg)
	}
	return out, nil
}

// at returns what is held on tick t, counted from 0. Past the end nothing is.
func (s script) at(t int) [cfg.ActionCount]bool {
	for _, seg := range s {
		if t < seg.ticks {
			return seg.pressed
		}
		t -= seg.ticks
	}
	return [cfg.ActionCount]bool{}
}

func (s script) length() int {
	n := 0
	for _, seg := range s {
		n += seg.ticks
	}
	return n
}
