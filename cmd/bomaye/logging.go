package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/bomaye/event"
)

const (
	logDir      = "logs"
	logFileName = "bomaye.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging redirects the standard logger to logs/bomaye.log in debug mode and
// discards it otherwise; the terminal belongs to the screen for the whole run
// A log file over maxLogSize is rotated to a timestamped name first
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("bomaye-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Lmicroseconds)
	return f
}

// setRunID tags every log line of this run
func setRunID(id string) {
	if len(id) > 8 {
		id = id[:8]
	}
	log.SetPrefix("[" + id + "] ")
}

// newLogHandler writes the milestones of a run to the log
func newLogHandler() event.Handler {
	return event.HandlerFunc{
		Types: []event.EventType{
			event.EventNameResolved,
			event.EventWaveformCancelled,
			event.EventBurstComplete,
			event.EventRevealComplete,
			event.EventPresentationFinished,
		},
		Fn: func(ev event.Event) {
			switch p := ev.Payload.(type) {
			case *event.NameResolvedPayload:
				log.Printf("%v %s: %q %q fallback=%t", ev.At, ev.Type, p.First, p.Last, p.Fallback)
			case *event.WaveformCancelledPayload:
				log.Printf("%v %s: %d frames", ev.At, ev.Type, p.Frames)
			case *event.BurstCompletePayload:
				log.Printf("%v %s: %d batches, %d markers, %d ticks", ev.At, ev.Type, p.Batches, p.Markers, p.Ticks)
			default:
				log.Printf("%v %s", ev.At, ev.Type)
			}
		},
	}
}
