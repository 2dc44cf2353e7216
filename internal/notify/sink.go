package notify

import "context"

// Channel selects which operator surface a message goes to. The lead channel
// only ever sees accepted leads; everything else lands on the log channel.
type Channel int

const (
	Lead Channel = iota
	Log
)

// Sink delivers one-way status messages and file artifacts to the operator.
// Delivery is fire-and-forget from the pipeline's point of view: errors are
// logged at the call site and never escalate.
type Sink interface {
	Send(ctx context.Context, ch Channel, msg string) error
	SendFile(ctx context.Context, ch Channel, path string) error
}
