// Package rotation cycles the visible dashboard on a cron schedule.
// The service runs outside the bubbletea loop and injects Msg values
// through Program.Send; the host decides what "next dashboard" means.
package rotation

import (
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/robfig/cron/v3"

	"github.com/jask/clockboard/internal/logx"
)

// Msg announces one schedule firing. The host advances to the next
// dashboard tab when it arrives.
type Msg struct {
	At time.Time
}

// Service owns at most one running cron with a single job. Apply
// reconfigures it in place, so a config reload never leaks a second
// scheduler.
type Service struct {
	mu     sync.Mutex
	parser cron.Parser
	c      *cron.Cron
	send   func(tea.Msg)
	log    logx.Logger
}

func New(send func(tea.Msg), log logx.Logger) *Service {
	return &Service{
		parser: newParser(),
		send:   send,
		log:    log,
	}
}

func newParser() cron.Parser {
	return cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
}

// Validate reports whether spec parses as a rotation schedule. Used by
// the settings form before a bad schedule ever reaches Apply.
func Validate(spec string) error {
	_, err := newParser().Parse(spec)
	return err
}

// Apply replaces the running schedule. Disabled stops rotation
// entirely; otherwise the schedule is evaluated in loc, which should
// be the user's configured timezone.
func (s *Service) Apply(enabled bool, spec string, loc *time.Location) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()
	if !enabled {
		return nil
	}
	if loc == nil {
		loc = time.Local
	}

	sched, err := s.parser.Parse(spec)
	if err != nil {
		return fmt.Errorf("rotation schedule %q: %w", spec, err)
	}

	c := cron.New(cron.WithParser(s.parser), cron.WithLocation(loc))
	c.Schedule(sched, cron.FuncJob(func() {
		now := time.Now().In(loc)
		s.log.Debug("rotation fired", logx.Time("at", now))
		s.send(Msg{At: now})
	}))
	c.Start()
	s.c = c
	s.log.Info("rotation scheduled",
		logx.String("spec", spec),
		logx.String("tz", loc.String()))
	return nil
}

// Active reports whether a schedule is currently running.
func (s *Service) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c != nil
}

// Stop halts rotation and waits for any in-flight job to finish.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

func (s *Service) stopLocked() {
	if s.c == nil {
		return
	}
	<-s.c.Stop().Done()
	s.c = nil
}
