package eye

import (
	"context"
	"fmt"
	"time"
)

// Step ticks every animator once, in order, and stops at the first error.
func Step(anims []*Animator, now time.Time) error {
	for i, a := range anims {
		if err := a.Tick(now); err != nil {
			return fmt.Errorf("eye %d: %w", i, err)
		}
	}
	return nil
}

// Run steps the animators back to back, without sleeping, until a surface
// fails or ctx is done. clock nil means time.Now.
//
// Frame rate is bounded only by how long the surfaces take to present.
func Run(ctx context.Context, anims []*Animator, clock func() time.Time) error {
	if clock == nil {
		clock = time.Now
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := Step(anims, clock()); err != nil {
			return err
		}
	}
}
