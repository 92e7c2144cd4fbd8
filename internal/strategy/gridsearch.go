package strategy

import (
	"context"
	"fmt"
)

// PitWindow is an inclusive lap range in which one pit stop may fall.
type PitWindow struct {
	From, To int
}

// SearchPitWindows grid-searches pit lap combinations over the given
// windows (one window per planned stop) and returns the fastest result.
// Windows are explored recursively, one decision level per stop, with
// later stops constrained to fall after earlier ones.
func (r *RaceSimulator) SearchPitWindows(ctx context.Context, name string, compounds []string, windows []PitWindow) (*RaceResult, error) {
	if len(compounds) != len(windows)+1 {
		return nil, fmt.Errorf("%d compounds need %d pit windows, have %d", len(compounds), len(compounds)-1, len(windows))
	}
	for i, w := range windows {
		if w.From < 1 || w.To > r.cfg.Laps || w.From > w.To {
			return nil, fmt.Errorf("window %d [%d, %d] outside race of %d laps", i, w.From, w.To, r.cfg.Laps)
		}
	}

	var best *RaceResult
	err := r.searchRecursive(ctx, name, compounds, windows, nil, &best)
	if err != nil {
		return nil, err
	}
	if best == nil {
		return nil, fmt.Errorf("no feasible pit lap combination in the given windows")
	}
	return best, nil
}

func (r *RaceSimulator) searchRecursive(ctx context.Context, name string, compounds []string, windows []PitWindow, chosen []int, best **RaceResult) error {
	if len(chosen) == len(windows) {
		pits := make([]int, len(chosen))
		copy(pits, chosen)

		result, err := r.SimulateStrategy(ctx, Strategy{
			Name:      fmt.Sprintf("%s %v", name, pits),
			Compounds: compounds,
			PitLaps:   pits,
		})
		if err != nil {
			return err
		}
		if *best == nil || result.TotalTime < (*best).TotalTime {
			*best = result
		}
		return nil
	}

	window := windows[len(chosen)]
	from := window.From
	if len(chosen) > 0 && chosen[len(chosen)-1] >= from {
		from = chosen[len(chosen)-1] + 1
	}

	for lap := from; lap <= window.To; lap++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := r.searchRecursive(ctx, name, compounds, windows, append(chosen, lap), best); err != nil {
			return err
		}
	}
	return nil
}
