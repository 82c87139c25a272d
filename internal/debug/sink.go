package debug

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// Sink is the interface for debug output destinations.
type Sink interface {
	Write(event Event) error
	Flush() error
	Close() error
}

// JSONSink writes events in JSON Lines format.
type JSONSink struct {
	w       *bufio.Writer
	encoder *json.Encoder
}

// NewJSONSink creates a new JSON Lines sink writing to w.
func NewJSONSink(w io.Writer) *JSONSink {
	bw := bufio.NewWriter(w)
	return &JSONSink{
		w:       bw,
		encoder: json.NewEncoder(bw),
	}
}

// Write encodes and writes an event as a JSON line.
func (s *JSONSink) Write(event Event) error {
	return s.encoder.Encode(event)
}

// Flush writes any buffered data to the underlying writer.
func (s *JSONSink) Flush() error {
	return s.w.Flush()
}

// Close flushes the buffer.
func (s *JSONSink) Close() error {
	return s.Flush()
}

// PrettySink writes events in human-readable format.
type PrettySink struct {
	w *bufio.Writer
}

// NewPrettySink creates a new pretty-format sink writing to w.
func NewPrettySink(w io.Writer) *PrettySink {
	return &PrettySink{
		w: bufio.NewWriter(w),
	}
}

// Write formats and writes an event in human-readable format.
func (s *PrettySink) Write(event Event) error {
	fmt.Fprintf(s.w, "[%s] [%s/%s] session=%s\n", event.Timestamp, event.Phase, event.Event, event.SessionID)

	switch d := event.Data.(type) {
	case WriteStartData:
		s.writeStart(d)
	case WriteEndData:
		s.writeEnd(d)
	case PhaseData:
		fmt.Fprintf(s.w, "  phase: %s → %s\n", d.From, d.To)
	case SegmentData:
		s.writeSegment(d)
	case FitData:
		s.writeFit(d)
	case CommitData:
		s.writeCommit(d)
	case BreakData:
		s.writeBreak(d)
	case AnchorData:
		fmt.Fprintf(s.w, "  anchor: %s, rows: %d, placed: %t\n", d.Anchor, d.Rows, d.Placed)
	case PaddingData:
		fmt.Fprintf(s.w, "  axis: %s, marked: %d\n", d.Axis, d.Marked)
	case ErrorData:
		fmt.Fprintf(s.w, "  error (%s): %s\n", d.Type, d.Message)
		if len(d.Context) > 0 {
			s.writeMap(d.Context)
		}
	case map[string]interface{}:
		s.writeMap(d)
	case map[string]int64:
		s.writeMapInt64(d)
	default:
		fmt.Fprintf(s.w, "  data: %+v\n", d)
	}

	return nil
}

func (s *PrettySink) writeStart(d WriteStartData) {
	fmt.Fprintf(s.w, "  text: %q (length: %d)\n", d.Text, d.TextLength)
	fmt.Fprintf(s.w, "  grid: %dx%d, cursor: (%d,%d)\n", d.Width, d.Height, d.CursorX, d.CursorY)
	fmt.Fprintf(s.w, "  direction: %s, justification: %s, anchor: %s\n", d.Direction, d.Justification, d.Anchor)
	fmt.Fprintf(s.w, "  flags: %s\n", strings.Join(d.Flags, "|"))
}

func (s *PrettySink) writeEnd(d WriteEndData) {
	fmt.Fprintf(s.w, "  placed: %t, consumed: %d, remaining: %d\n", d.Placed, d.Consumed, d.Remaining)
	fmt.Fprintf(s.w, "  cursor: (%d,%d), elapsed_us: %d\n", d.CursorX, d.CursorY, d.ElapsedUs)
}

func (s *PrettySink) writeSegment(d SegmentData) {
	fmt.Fprintf(s.w, "  position: %d, length: %d, free_run: %d\n", d.Position, d.Length, d.FreeRun)
	fmt.Fprintf(s.w, "  cursor: (%d,%d), break_pending: %t\n", d.CursorX, d.CursorY, d.BreakPending)
}

func (s *PrettySink) writeFit(d FitData) {
	fmt.Fprintf(s.w, "  reason: %s, free_run: %d\n", d.Reason, d.FreeRun)
	fmt.Fprintf(s.w, "  placed: %d, consumed: %d, resume: %d\n", d.Placed, d.Consumed, d.Resume)
}

func (s *PrettySink) writeCommit(d CommitData) {
	fmt.Fprintf(s.w, "  text: %q at (%d,%d)\n", d.Text, d.StartX, d.StartY)
	fmt.Fprintf(s.w, "  written: %d, result: %s\n", d.Written, d.Result)
}

func (s *PrettySink) writeBreak(d BreakData) {
	fmt.Fprintf(s.w, "  main: %d → %d, advanced: %t, ok: %t\n", d.MainBefore, d.MainAfter, d.Advanced, d.OK)
}

func (s *PrettySink) writeMap(d map[string]interface{}) {
	for k, v := range d {
		fmt.Fprintf(s.w, "  %s: %v\n", k, v)
	}
}

func (s *PrettySink) writeMapInt64(d map[string]int64) {
	for k, v := range d {
		fmt.Fprintf(s.w, "  %s: %d\n", k, v)
	}
}

// Flush writes any buffered data to the underlying writer.
func (s *PrettySink) Flush() error {
	return s.w.Flush()
}

// Close flushes the buffer.
func (s *PrettySink) Close() error {
	return s.Flush()
}

// ZapSink forwards events to a zap logger at debug level.
type ZapSink struct {
	log *zap.Logger
}

// NewZapSink creates a sink that logs every event through log.
func NewZapSink(log *zap.Logger) *ZapSink {
	return &ZapSink{log: log.Named("textgrid")}
}

// Write logs the event with its envelope as structured fields.
func (s *ZapSink) Write(event Event) error {
	s.log.Debug(event.Phase+"/"+event.Event,
		zap.String("session_id", event.SessionID),
		zap.String("ts", event.Timestamp),
		zap.Any("data", event.Data),
	)
	return nil
}

// Flush syncs the underlying logger.
func (s *ZapSink) Flush() error {
	return s.log.Sync()
}

// Close is a no-op; the logger is owned by the caller.
func (s *ZapSink) Close() error {
	return nil
}
