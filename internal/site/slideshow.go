package site

import (
	"context"
	"sync"
	"time"
)

// Tempos do slideshow da página inicial.
const (
	DefaultSlideInterval = 5 * time.Second
	DefaultResumeDelay   = 800 * time.Millisecond
)

type slideEvent int

const (
	eventInteract slideEvent = iota
	eventPause
	eventResume
)

// Slideshow guarda o diapositivo atual e controla o avanço automático.
// Os índices fora do intervalo dão a volta: depois do último vem o primeiro.
type Slideshow struct {
	mu      sync.Mutex
	total   int
	current int
	paused  bool
	events  chan slideEvent
}

func NewSlideshow(total int) *Slideshow {
	return &Slideshow{
		total:  total,
		events: make(chan slideEvent, 8),
	}
}

func (s *Slideshow) Len() int {
	return s.total
}

func (s *Slideshow) Current() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Show mostra o diapositivo i; i >= Len volta ao primeiro e i < 0 vai para o último.
func (s *Slideshow) Show(i int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.showLocked(i)
}

func (s *Slideshow) showLocked(i int) int {
	switch {
	case s.total == 0:
		s.current = 0
	case i >= s.total:
		s.current = 0
	case i < 0:
		s.current = s.total - 1
	default:
		s.current = i
	}
	return s.current
}

func (s *Slideshow) Next() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.showLocked(s.current + 1)
}

func (s *Slideshow) Prev() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.showLocked(s.current - 1)
}

// Goto, GotoNext e GotoPrev são ações do visitante (pontos, setas, teclado):
// mudam o diapositivo e reiniciam o avanço automático após o atraso de retoma.
func (s *Slideshow) Goto(i int) int {
	n := s.Show(i)
	s.signal(eventInteract)
	return n
}

func (s *Slideshow) GotoNext() int {
	n := s.Next()
	s.signal(eventInteract)
	return n
}

func (s *Slideshow) GotoPrev() int {
	n := s.Prev()
	s.signal(eventInteract)
	return n
}

// Pause suspende o avanço automático (cursor sobre o slideshow).
func (s *Slideshow) Pause() {
	s.mu.Lock()
	s.paused = true
	s.mu.Unlock()
	s.signal(eventPause)
}

// Resume retoma o avanço automático de imediato.
func (s *Slideshow) Resume() {
	s.mu.Lock()
	s.paused = false
	s.mu.Unlock()
	s.signal(eventResume)
}

func (s *Slideshow) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

func (s *Slideshow) signal(ev slideEvent) {
	select {
	case s.events <- ev:
	default:
	}
}

// Run avança um diapositivo a cada interval até ctx terminar. Uma ação do
// visitante para o avanço e retoma-o resumeDelay depois, se não estiver em pausa.
func (s *Slideshow) Run(ctx context.Context, interval, resumeDelay time.Duration) {
	if interval <= 0 {
		interval = DefaultSlideInterval
	}
	if resumeDelay < 0 {
		resumeDelay = DefaultResumeDelay
	}

	var (
		ticker *time.Ticker
		tick   <-chan time.Time
		delay  <-chan time.Time
	)
	stop := func() {
		if ticker != nil {
			ticker.Stop()
			ticker = nil
		}
		tick = nil
	}
	start := func() {
		stop()
		if s.Paused() {
			return
		}
		ticker = time.NewTicker(interval)
		tick = ticker.C
	}

	start()
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-tick:
			s.Next()
		case <-delay:
			delay = nil
			start()
		case ev := <-s.events:
			switch ev {
			case eventInteract:
				stop()
				delay = time.After(resumeDelay)
			case eventPause:
				stop()
				delay = nil
			case eventResume:
				delay = nil
				start()
			}
		}
	}
}
