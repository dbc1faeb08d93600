package bubblecatch

import "time"

// loop drives the simulation at the configured tick rate until the run ends
// or its generation is halted. Each iteration sleeps for whatever is left of
// the tick period after the tick body.
func (g *Game) loop(gen uint64, stop <-chan struct{}) {
	timer := time.NewTimer(g.tickPeriod)
	defer timer.Stop()

	for {
		start := time.Now()
		if _, running := g.advance(gen); !running {
			return
		}

		wait := g.tickPeriod - time.Since(start)
		if wait <= 0 {
			select {
			case <-stop:
				return
			default:
				continue
			}
		}

		timer.Reset(wait)
		select {
		case <-stop:
			return
		case <-timer.C:
		}
	}
}
