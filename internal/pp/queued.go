package pp

// QueuedPP is a pretty printer that queues all printing operations
// (but executes non-printing operations immediately).
// [QueuedPP.Flush] will then execute all queued printing operations.
//
// The server uses one QueuedPP per request so that the messages of
// a request are not interleaved with the messages of other requests.
// QueuedPP itself is not goroutine-safe.
type QueuedPP struct {
	upstream PP
	queue    *[]func()
}

var _ PP = QueuedPP{} //nolint:exhaustruct

// NewQueued creates a new pretty printer that queues all printing operations.
func NewQueued(pp PP) QueuedPP {
	var empty []func()
	return QueuedPP{upstream: pp, queue: &empty}
}

// Verbosity calls [PP.Verbosity] of the upstream.
func (q QueuedPP) Verbosity() Verbosity {
	return q.upstream.Verbosity()
}

// IsShowing calls [PP.IsShowing] of the upstream.
func (q QueuedPP) IsShowing(v Verbosity) bool {
	return q.upstream.IsShowing(v)
}

// Indent calls [PP.Indent] and returns a new queued printer with a new upstream.
// The queue is shared with the original printer.
func (q QueuedPP) Indent() PP {
	q.upstream = q.upstream.Indent()
	return q
}

// BlankLineIfVerbose queues a call to [PP.BlankLineIfVerbose] of the upstream.
func (q QueuedPP) BlankLineIfVerbose() {
	upstream := q.upstream
	*q.queue = append(*q.queue, func() { upstream.BlankLineIfVerbose() })
}

// Infof queues a call to [PP.Infof] of the upstream.
func (q QueuedPP) Infof(emoji Emoji, format string, args ...any) {
	upstream := q.upstream
	*q.queue = append(*q.queue, func() { upstream.Infof(emoji, format, args...) })
}

// Noticef queues a call to [PP.Noticef] of the upstream.
func (q QueuedPP) Noticef(emoji Emoji, format string, args ...any) {
	upstream := q.upstream
	*q.queue = append(*q.queue, func() { upstream.Noticef(emoji, format, args...) })
}

// Suppress queues a call to [PP.Suppress] of the upstream.
func (q QueuedPP) Suppress(id ID) {
	upstream := q.upstream
	*q.queue = append(*q.queue, func() { upstream.Suppress(id) })
}

// InfoOncef queues a call to [PP.InfoOncef] of the upstream.
func (q QueuedPP) InfoOncef(id ID, emoji Emoji, format string, args ...any) {
	upstream := q.upstream
	*q.queue = append(*q.queue, func() { upstream.InfoOncef(id, emoji, format, args...) })
}

// NoticeOncef queues a call to [PP.NoticeOncef] of the upstream.
func (q QueuedPP) NoticeOncef(id ID, emoji Emoji, format string, args ...any) {
	upstream := q.upstream
	*q.queue = append(*q.queue, func() { upstream.NoticeOncef(id, emoji, format, args...) })
}

// Flush executes all queued function calls.
func (q QueuedPP) Flush() {
	for _, f := range *q.queue {
		f()
	}
	*q.queue = nil
}
