package engine

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/securego/findbugs-report"
)

// ErrUnknownEvent is returned for events of an unknown kind.
var ErrUnknownEvent = errors.New("unknown event")

// Header describes a recorded run
type Header struct {
	// Version of the engine which recorded the run, empty if unknown
	Version string
}

// Stream is a recorded run ready to be replayed
type Stream struct {
	dec     Decoder
	header  Header
	pending *Event
	events  int
}

// Open reads the header of the run, if the stream has one.
func Open(dec Decoder) (*Stream, error) {
	s := &Stream{dec: dec}
	ev, err := dec.Decode()
	switch {
	case errors.Is(err, io.EOF):
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("decoding event 1: %w", err)
	}
	s.events++
	if ev.Kind == KindStart {
		s.header.Version = ev.Version
	} else {
		s.pending = &ev
	}
	return s, nil
}

// Header returns the header of the run
func (s *Stream) Header() Header {
	return s.header
}

// Events returns the number of events read so far
func (s *Stream) Events() int {
	return s.events
}

func (s *Stream) next() (Event, error) {
	if s.pending != nil {
		ev := *s.pending
		s.pending = nil
		return ev, nil
	}
	ev, err := s.dec.Decode()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return ev, err
		}
		return ev, fmt.Errorf("decoding event %d: %w", s.events+1, err)
	}
	s.events++
	return ev, nil
}

// Replay feeds the events to the reporter in order. The reporter is
// finished once, on a finish event or at the end of the stream. When the
// stream is broken or ctx is done the reporter is not finished, so no
// report claims to be complete.
func (s *Stream) Replay(ctx context.Context, reporter findbugs.BugReporter) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		ev, err := s.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		done, err := dispatch(ev, reporter)
		if err != nil {
			return fmt.Errorf("event %d: %w", s.events, err)
		}
		if done {
			break
		}
	}
	return reporter.Finish()
}

func dispatch(ev Event, reporter findbugs.BugReporter) (bool, error) {
	switch ev.Kind {
	case KindObserve:
		reporter.ObserveClass(findbugs.DottedClassName(ev.Class))
	case KindBug:
		if ev.Bug == nil {
			return false, errors.New("bug event without bug")
		}
		ev.Bug.ClassName = findbugs.DottedClassName(ev.Bug.ClassName)
		reporter.ReportBug(ev.Bug)
	case KindError:
		if ev.Cause != "" {
			reporter.LogError(ev.Message, errors.New(ev.Cause))
		} else {
			reporter.ReportAnalysisError(findbugs.NewAnalysisError(ev.Message, nil))
		}
	case KindMissing:
		reporter.ReportMissingClass(ev.Class)
	case KindFinish:
		return true, nil
	case KindStart:
		return false, errors.New("start event after the first event")
	default:
		return false, fmt.Errorf("%w %q", ErrUnknownEvent, ev.Kind)
	}
	return false, nil
}

// Replay opens the stream and replays it into the reporter.
func Replay(ctx context.Context, dec Decoder, reporter findbugs.BugReporter) (Header, error) {
	s, err := Open(dec)
	if err != nil {
		return Header{}, err
	}
	return s.Header(), s.Replay(ctx, reporter)
}
