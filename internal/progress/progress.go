// Package progress reports batch position, elapsed time, and an estimated
// time remaining while a controller works through a list of videos.
package progress

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/progress"
	"github.com/mattn/go-isatty"
)

// Tracker derives an estimate of remaining time from elapsed wall time and
// the number of items left.
type Tracker struct {
	total     int64
	position  int64
	startedAt time.Time
	now       func() time.Time
}

func NewTracker(total int64) *Tracker {
	return newTrackerAt(total, time.Now)
}

func newTrackerAt(total int64, now func() time.Time) *Tracker {
	return &Tracker{total: total, startedAt: now(), now: now}
}

// Advance records one finished item and returns the new position.
func (t *Tracker) Advance() int64 {
	t.position++
	return t.position
}

func (t *Tracker) Position() int64 { return t.position }

func (t *Tracker) Total() int64 { return t.total }

func (t *Tracker) Elapsed() time.Duration {
	return t.now().Sub(t.startedAt)
}

// ETA estimates the remaining duration from the average time per finished
// item. It returns zero until at least one item has finished.
func (t *Tracker) ETA() time.Duration {
	if t.position == 0 || t.position >= t.total {
		return 0
	}
	perItem := t.Elapsed() / time.Duration(t.position)
	return perItem * time.Duration(t.total-t.position)
}

// Reporter renders batch progress. The terminal renderer draws a live bar;
// everything else falls back to one log line per item.
type Reporter interface {
	Step(item string)
	Done()
}

// NewReporter picks a renderer for the destination: a live progress bar
// when it is a terminal, structured log lines otherwise.
func NewReporter(out io.Writer, logger *slog.Logger, total int64, message string) Reporter {
	tracker := NewTracker(total)
	if f, ok := out.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return newBarReporter(out, tracker, message)
	}
	return &logReporter{tracker: tracker, logger: logger, message: message}
}

type logReporter struct {
	tracker *Tracker
	logger  *slog.Logger
	message string
}

func (r *logReporter) Step(item string) {
	position := r.tracker.Advance()
	r.logger.Info(r.message,
		"item", item,
		"position", position,
		"total", r.tracker.Total(),
		"eta", r.tracker.ETA().Round(time.Second).String())
}

func (r *logReporter) Done() {
	r.logger.Info(r.message+" finished",
		"total", r.tracker.Total(),
		"elapsed", r.tracker.Elapsed().Round(time.Second).String())
}

type barReporter struct {
	writer  progress.Writer
	bar     *progress.Tracker
	tracker *Tracker
}

func newBarReporter(out io.Writer, tracker *Tracker, message string) *barReporter {
	writer := progress.NewWriter()
	writer.SetOutputWriter(out)
	writer.SetTrackerPosition(progress.PositionRight)
	writer.SetStyle(progress.StyleDefault)
	writer.Style().Visibility.ETA = true

	bar := &progress.Tracker{Message: message, Total: tracker.Total(), Units: progress.UnitsDefault}
	writer.AppendTracker(bar)
	go writer.Render()

	return &barReporter{writer: writer, bar: bar, tracker: tracker}
}

func (r *barReporter) Step(item string) {
	r.tracker.Advance()
	r.bar.UpdateMessage(item)
	r.bar.Increment(1)
}

func (r *barReporter) Done() {
	r.bar.MarkAsDone()
	r.writer.Stop()
}
