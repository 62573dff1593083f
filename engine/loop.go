package engine

import (
	"context"
	"fmt"
)

// Run drives the controller until quit input, context cancellation or a backend error
// Each tick: advance state, render and present, poll and apply input, then pace
func Run(ctx context.Context, c *Controller, b Backend, p Pacer) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		c.Advance()

		if err := b.Present(c.Render()); err != nil {
			return fmt.Errorf("present frame: %w", err)
		}

		in, err := b.Poll()
		if err != nil {
			return fmt.Errorf("poll input: %w", err)
		}
		if c.ApplyInput(in) {
			return nil
		}

		p.WaitTick()
		if d := c.PostTickDelay(); d > 0 {
			p.Delay(d)
		}
	}
}
