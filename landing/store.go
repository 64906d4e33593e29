package landing

import (
	"log/slog"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Logger is global since we will need it everywhere
var Logger = slog.Default()

// DefaultSuccessDuration is how long the contact confirmation stays visible
const DefaultSuccessDuration = 3 * time.Second

// Field identifies one of the contact form inputs
type Field int

const (
	FieldName Field = iota
	FieldEmail
	FieldMessage
)

// ContactForm holds the three contact form values
type ContactForm struct {
	Name    string
	Email   string
	Message string
}

// Complete reports whether every field has a value
func (f ContactForm) Complete() bool {
	return f.Name != "" && f.Email != "" && f.Message != ""
}

// State is a copy of everything the page renders from
type State struct {
	MenuOpen bool
	Form     ContactForm
	Success  bool
	Visible  map[SectionID]bool
}

// Receipt identifies a local form submission. It never carries field values.
type Receipt struct {
	ID          ulid.ULID
	SubmittedAt time.Time
}

// Timer is a scheduled callback that can be cancelled
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d. f must not be called synchronously.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// SystemScheduler schedules callbacks on the runtime timer
type SystemScheduler struct{}

// AfterFunc wraps time.AfterFunc
func (SystemScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Store owns the page state and notifies subscribers on every change
type Store struct {
	mu sync.Mutex

	menuOpen bool
	form     ContactForm
	success  bool
	visible  map[SectionID]bool

	scheduler       Scheduler
	successDuration time.Duration
	pending         Timer
	generation      uint64
	now             func() time.Time

	nextSub int
	subs    map[int]func()
}

// Option configures a Store
type Option func(*Store)

// WithScheduler replaces the system timer, mostly for tests
func WithScheduler(s Scheduler) Option {
	return func(st *Store) { st.scheduler = s }
}

// WithSuccessDuration sets how long the success banner is shown
func WithSuccessDuration(d time.Duration) Option {
	return func(st *Store) {
		if d > 0 {
			st.successDuration = d
		}
	}
}

// WithClock overrides the receipt timestamp source
func WithClock(now func() time.Time) Option {
	return func(st *Store) { st.now = now }
}

// NewStore creates a store with the menu closed, empty fields and every section hidden
func NewStore(opts ...Option) *Store {
	s := &Store{
		visible:         make(map[SectionID]bool, len(Sections)),
		scheduler:       SystemScheduler{},
		successDuration: DefaultSuccessDuration,
		now:             time.Now,
		subs:            make(map[int]func()),
	}
	for _, id := range Sections {
		s.visible[id] = false
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns a copy of the current state
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	visible := make(map[SectionID]bool, len(s.visible))
	for id, v := range s.visible {
		visible[id] = v
	}
	return State{
		MenuOpen: s.menuOpen,
		Form:     s.form,
		Success:  s.success,
		Visible:  visible,
	}
}

// SuccessDuration returns the configured auto-dismiss delay
func (s *Store) SuccessDuration() time.Duration {
	// successDuration is immutable after NewStore, no lock needed
	return s.successDuration
}

// Subscribe registers fn to run after each state change.
// Call the returned func on dismount.
func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// notify must be called without holding mu
func (s *Store) notify() {
	s.mu.Lock()
	subs := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// ToggleMenu flips the mobile menu open or closed
func (s *Store) ToggleMenu() {
	s.mu.Lock()
	s.menuOpen = !s.menuOpen
	s.mu.Unlock()
	s.notify()
}

// CloseMenu closes the mobile menu if it is open
func (s *Store) CloseMenu() {
	s.mu.Lock()
	changed := s.menuOpen
	s.menuOpen = false
	s.mu.Unlock()
	if changed {
		s.notify()
	}
}

// SetField updates one contact form value
func (s *Store) SetField(f Field, value string) {
	s.mu.Lock()
	var target *string
	switch f {
	case FieldName:
		target = &s.form.Name
	case FieldEmail:
		target = &s.form.Email
	case FieldMessage:
		target = &s.form.Message
	}
	changed := target != nil && *target != value
	if changed {
		*target = value
	}
	s.mu.Unlock()
	if changed {
		s.notify()
	}
}

// SetVisible records whether a section intersects the viewport
func (s *Store) SetVisible(id SectionID, visible bool) {
	s.mu.Lock()
	prev, known := s.visible[id]
	if known && prev != visible {
		s.visible[id] = visible
	}
	s.mu.Unlock()
	if known && prev != visible {
		s.notify()
	}
}

// Submit clears the form, shows the success banner and schedules its
// dismissal. A second submit before expiry restarts the countdown.
func (s *Store) Submit() Receipt {
	s.mu.Lock()
	if s.pending != nil {
		s.pending.Stop()
	}
	s.generation++
	gen := s.generation

	now := s.now()
	receipt := Receipt{
		ID:          newReceiptID(now),
		SubmittedAt: now,
	}

	s.form = ContactForm{}
	s.success = true
	s.pending = s.scheduler.AfterFunc(s.successDuration, func() { s.dismiss(gen) })
	s.mu.Unlock()

	Logger.Info("Contact form submitted locally", "receipt", receipt.ID.String(), "dismissAfter", s.successDuration)
	s.notify()
	return receipt
}

// dismiss hides the banner unless a newer submission superseded gen
func (s *Store) dismiss(gen uint64) {
	s.mu.Lock()
	if gen != s.generation || !s.success {
		s.mu.Unlock()
		return
	}
	s.success = false
	s.pending = nil
	s.mu.Unlock()

	Logger.Debug("Contact success banner dismissed")
	s.notify()
}

func newReceiptID(t time.Time) ulid.ULID {
	id, err := ulid.New(ulid.Timestamp(t), ulid.DefaultEntropy())
	if err != nil {
		return ulid.Make()
	}
	return id
}
