package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/katalvlaran/algotrace/engine"
	"github.com/katalvlaran/algotrace/playback"
	"github.com/katalvlaran/algotrace/render"
)

// session runs args[0] through an engine.Session, applying the target or
// start flag where the algorithm takes one. With --random the input is
// generated and echoed to w so the run can be repeated by hand.
func (a *app) session(w io.Writer, args []string) (*engine.Session, *playback.Cursor, error) {
	k, err := engine.ParseKind(args[0])
	if err != nil {
		return nil, nil, err
	}
	s, err := a.engine.NewSession(k)
	if err != nil {
		return nil, nil, err
	}

	if a.random {
		if err := s.SetRandom(a.rng()); err != nil {
			return nil, nil, err
		}
		in := s.Input()
		switch {
		case k == engine.Factorial:
			fmt.Fprintf(w, "input: n=%d\n", in.N)
		case k.IsSearch():
			fmt.Fprintf(w, "input: %s target=%g\n", render.Numbers(in.Sequence), in.Target)
		default:
			fmt.Fprintf(w, "input: %s\n", render.Numbers(in.Sequence))
		}
	} else {
		if err := s.SetInput(args[1]); err != nil {
			return nil, nil, err
		}
		if k.IsGraph() && a.start != "" {
			if err := s.SetStart(a.start); err != nil {
				return nil, nil, err
			}
		}
		if k.IsSearch() {
			if err := s.SetTarget(a.target); err != nil {
				return nil, nil, err
			}
		}
	}

	cur, err := s.Run()
	if err != nil {
		return nil, nil, err
	}

	return s, cur, nil
}

func (a *app) rng() *rand.Rand {
	seed := a.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return rand.New(rand.NewPCG(0, seed))
}
