// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package helper

import (
	"context"
	"os"
	"os/signal"
)

// WithInterrupt derives a context that is canceled on the first interrupt.
// The returned stop func releases the signal handler and cancels the
// context; defer it.
func WithInterrupt(ctx context.Context) (context.Context, func()) {
	return signal.NotifyContext(ctx, os.Interrupt)
}
