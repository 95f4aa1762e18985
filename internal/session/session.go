// Package session holds the message currently shown by the viewer.
package session

import (
	"time"

	"github.com/Zuo-Peng/hl7-viewer/internal/hl7"
	"github.com/rs/zerolog"
)

// Recorder is told about every successful load, e.g. to keep a history.
type Recorder interface {
	RecordOpen(path string, msg *hl7.Message, header hl7.Header, patient hl7.Patient) error
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for load diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithRecorder registers r to be told about every successful load.
func WithRecorder(r Recorder) Option {
	return func(s *Session) { s.recorder = r }
}

type state struct {
	path     string
	msg      *hl7.Message
	header   hl7.Header
	patient  hl7.Patient
	loadedAt time.Time
}

// Session owns the loaded message. A load either replaces everything or
// changes nothing.
type Session struct {
	cur      *state
	log      zerolog.Logger
	recorder Recorder
}

// New returns an empty Session.
func New(opts ...Option) *Session {
	s := &Session{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads and parses path. On error the previously loaded message stays.
func (s *Session) Load(path string) error {
	text, err := hl7.Load(path)
	if err != nil {
		s.log.Debug().Err(err).Str("path", path).Msg("load failed")
		return err
	}

	msg := hl7.Parse(text)
	next := &state{
		path:     path,
		msg:      msg,
		header:   hl7.ExtractHeader(msg),
		patient:  hl7.ExtractPatient(msg),
		loadedAt: time.Now(),
	}
	s.cur = next
	s.log.Debug().Str("path", path).Int("segments", msg.Len()).Msg("loaded")

	if s.recorder != nil {
		if err := s.recorder.RecordOpen(path, msg, next.header, next.patient); err != nil {
			s.log.Warn().Err(err).Str("path", path).Msg("record open")
		}
	}
	return nil
}

func (s *Session) Loaded() bool {
	return s.cur != nil
}

func (s *Session) Path() string {
	if s.cur == nil {
		return ""
	}
	return s.cur.path
}

func (s *Session) LoadedAt() time.Time {
	if s.cur == nil {
		return time.Time{}
	}
	return s.cur.loadedAt
}

func (s *Session) Message() *hl7.Message {
	if s.cur == nil {
		return nil
	}
	return s.cur.msg
}

func (s *Session) Names() []string {
	return s.Message().Names()
}

func (s *Session) Segment(i int) (hl7.Segment, bool) {
	return s.Message().Segment(i)
}

// Patient returns the patient panel values; all Unknown before any load.
func (s *Session) Patient() hl7.Patient {
	if s.cur == nil {
		return hl7.ExtractPatient(nil)
	}
	return s.cur.patient
}

func (s *Session) Header() hl7.Header {
	if s.cur == nil {
		return hl7.ExtractHeader(nil)
	}
	return s.cur.header
}

func (s *Session) Find(term string) (int, bool, error) {
	return hl7.Find(s.Message(), term)
}
