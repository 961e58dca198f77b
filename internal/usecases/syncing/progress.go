package syncing

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type EventKind string

const (
	EventStart        EventKind = "start"
	EventStep         EventKind = "step"
	EventProgress     EventKind = "progress"
	EventStepComplete EventKind = "step-complete"
	EventError        EventKind = "error"
	EventComplete     EventKind = "complete"
)

// Event é uma notificação de progresso da sincronização. Os eventos saem em
// ordem de emissão, com Seq crescente por execução.
type Event struct {
	Seq       int       `json:"seq"`
	Kind      EventKind `json:"kind"`
	Step      string    `json:"step,omitempty"`
	Message   string    `json:"message,omitempty"`
	Processed int       `json:"processed,omitempty"`
	Total     int       `json:"total,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Sink recebe os eventos de progresso. Um erro do sink desliga o reporter;
// a sincronização nunca falha por causa do canal de progresso.
type Sink interface {
	Send(event Event) error
}

// NopSink descarta todos os eventos
type NopSink struct{}

func (NopSink) Send(Event) error { return nil }

type Reporter struct {
	mu     sync.Mutex
	sink   Sink
	seq    int
	every  int
	closed bool
}

// NewReporter cria um reporter que emite eventos de progresso a cada `every`
// registros processados, além dos eventos de início e fim de etapa
func NewReporter(sink Sink, every int) *Reporter {
	if sink == nil {
		sink = NopSink{}
	}
	if every <= 0 {
		every = 1
	}

	return &Reporter{
		sink:  sink,
		every: every,
	}
}

func (r *Reporter) Start(message string) {
	r.emit(Event{Kind: EventStart, Message: message})
}

func (r *Reporter) Step(step string, message string) {
	r.emit(Event{Kind: EventStep, Step: step, Message: message})
}

// Progress emite um evento a cada `every` registros e sempre no último
func (r *Reporter) Progress(step string, processed, total int) {
	if processed%r.every != 0 && processed != total {
		return
	}
	r.emit(Event{Kind: EventProgress, Step: step, Processed: processed, Total: total})
}

func (r *Reporter) StepComplete(step string, message string) {
	r.emit(Event{Kind: EventStepComplete, Step: step, Message: message})
}

func (r *Reporter) Error(message string) {
	r.emit(Event{Kind: EventError, Message: message})
}

func (r *Reporter) Complete(message string) {
	r.emit(Event{Kind: EventComplete, Message: message})
}

func (r *Reporter) emit(event Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}

	r.seq++
	event.Seq = r.seq
	event.Timestamp = time.Now().UTC()

	if err := r.sink.Send(event); err != nil {
		logrus.WithError(err).Warn("Canal de progresso falhou, eventos seguintes serão descartados")
		r.closed = true
	}
}
