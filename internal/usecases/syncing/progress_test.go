package syncing

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type recordingSink struct {
	events  []Event
	failAll bool
}

func (s *recordingSink) Send(event Event) error {
	if s.failAll {
		return errors.New("conexão fechada pelo cliente")
	}
	s.events = append(s.events, event)
	return nil
}

func TestReporter_SequenciaCrescente(t *testing.T) {
	sink := &recordingSink{}
	reporter := NewReporter(sink, 1)

	reporter.Start("início")
	reporter.Step("campaigns", "buscando campanhas")
	reporter.Progress("campaigns", 1, 3)
	reporter.StepComplete("campaigns", "campanhas sincronizadas")
	reporter.Complete("fim")

	assert.Len(t, sink.events, 5)

	for i, event := range sink.events {
		assert.Equal(t, i+1, event.Seq, "Seq deve crescer na ordem de emissão")
		assert.False(t, event.Timestamp.IsZero())
	}

	assert.Equal(t, EventStart, sink.events[0].Kind)
	assert.Equal(t, EventComplete, sink.events[4].Kind)
}

func TestReporter_ProgressRespeitaIntervalo(t *testing.T) {
	sink := &recordingSink{}
	reporter := NewReporter(sink, 10)

	total := 25
	for processed := 1; processed <= total; processed++ {
		reporter.Progress("ad_sets", processed, total)
	}

	// Emite nos múltiplos de 10 e sempre no último registro
	assert.Len(t, sink.events, 3)
	assert.Equal(t, 10, sink.events[0].Processed)
	assert.Equal(t, 20, sink.events[1].Processed)
	assert.Equal(t, 25, sink.events[2].Processed)
}

func TestReporter_SinkComErroDesligaEmissao(t *testing.T) {
	sink := &recordingSink{failAll: true}
	reporter := NewReporter(sink, 1)

	// Nenhuma chamada deve entrar em pânico nem devolver erro ao chamador
	reporter.Start("início")
	reporter.Progress("campaigns", 1, 2)
	reporter.Complete("fim")

	assert.Empty(t, sink.events)
}

func TestReporter_SinkNilUsaNop(t *testing.T) {
	reporter := NewReporter(nil, 0)

	assert.NotPanics(t, func() {
		reporter.Start("início")
		reporter.Progress("campaigns", 1, 1)
	})
}
