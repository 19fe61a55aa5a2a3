// Package confirm models the blocking yes/no prompt that guards destructive edits.
package confirm

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Confirmer answers a yes/no question. Returning false means the action is declined.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

// Func adapts a function to the Confirmer interface.
type Func func(ctx context.Context, prompt string) bool

func (f Func) Confirm(ctx context.Context, prompt string) bool {
	return f(ctx, prompt)
}

var (
	// Always accepts every prompt.
	Always Confirmer = Func(func(context.Context, string) bool { return true })
	// Never declines every prompt.
	Never Confirmer = Func(func(context.Context, string) bool { return false })
)

// FromBool returns Always when ok is true and Never otherwise. HTTP handlers use it to
// turn an explicit "confirm" request field into a Confirmer.
func FromBool(ok bool) Confirmer {
	if ok {
		return Always
	}
	return Never
}

// Terminal asks on out and reads the answer from in. Only "y" and "yes" accept.
type Terminal struct {
	In  io.Reader
	Out io.Writer
}

func (t Terminal) Confirm(ctx context.Context, prompt string) bool {
	if ctx.Err() != nil {
		return false
	}
	fmt.Fprintf(t.Out, "%s [y/N]: ", prompt)
	answer, err := bufio.NewReader(t.In).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
