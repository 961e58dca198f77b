package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/adlens/creative-audit-api/infrastructure/integrator"
	"github.com/adlens/creative-audit-api/internal/usecases/syncing"
	"github.com/adlens/creative-audit-api/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// TriggerSync executa a sincronização da integração e responde com o
// histórico finalizado. A requisição fica aberta até o fim da execução; para
// acompanhar o progresso use a rota de stream.
func TriggerSync(service syncing.Syncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		integrationID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if integrationID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da integração não informado", nil)
			return
		}

		history, err := service.SyncIntegration(r.Context(), integrationID, syncing.NopSink{})
		if err != nil && history == nil {
			handleSyncError(w, err)
			return
		}

		// Execução failed ainda devolve o histórico; o status vai no corpo
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(history)
	}
}

// StreamSync executa a sincronização emitindo os eventos de progresso como
// server-sent events na própria resposta
func StreamSync(service syncing.Syncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		integrationID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if integrationID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da integração não informado", nil)
			return
		}

		flusher, ok := w.(http.Flusher)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Streaming não suportado pela conexão", nil)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		sink := &sseSink{w: w, flusher: flusher}

		history, err := service.SyncIntegration(r.Context(), integrationID, sink)
		if err != nil && history == nil {
			// Antes de qualquer evento ainda dá para mandar o erro no stream
			sink.sendRaw("error", fmt.Sprintf(`{"message":%q}`, err.Error()))
			return
		}

		payload, err := json.Marshal(history)
		if err != nil {
			logrus.WithError(err).Error("Erro ao serializar histórico para o stream")
			return
		}

		sink.sendRaw("result", string(payload))
	}
}

// GetLatestSync devolve o resultado da sincronização mais recente da integração
func GetLatestSync(service syncing.Syncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		integrationID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if integrationID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da integração não informado", nil)
			return
		}

		history, err := service.LatestSync(integrationID)
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar histórico de sincronização")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar histórico de sincronização", nil)
			return
		}

		if history == nil {
			apiErrors.WriteError(w, apiErrors.ErrSyncHistoryUnavailable, "Nenhuma sincronização registrada para esta integração", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(history)
	}
}

// sseSink escreve os eventos de progresso no formato server-sent events
type sseSink struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

func (s *sseSink) Send(event syncing.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.sendRaw(string(event.Kind), string(payload))
}

func (s *sseSink) sendRaw(eventName, data string) error {
	if _, err := fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", eventName, data); err != nil {
		return err
	}

	s.flusher.Flush()
	return nil
}

func handleSyncError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, syncing.ErrIntegrationNotFound):
		apiErrors.WriteError(w, apiErrors.ErrIntegrationNotFound, "Integração não encontrada", nil)

	case errors.Is(err, syncing.ErrSyncAlreadyInProgress):
		apiErrors.WriteError(w, apiErrors.ErrSyncAlreadyInProgress, "Sincronização já em andamento para esta integração", nil)

	case errors.Is(err, syncing.ErrIntegrationInactive):
		apiErrors.WriteError(w, apiErrors.ErrIntegrationDisabled, "Integração desativada", nil)

	case errors.Is(err, syncing.ErrPlatformNotSupported):
		apiErrors.WriteError(w, apiErrors.ErrPlatformNotSupported, "Plataforma não suportada", nil)

	case integrator.IsTokenInvalid(err):
		apiErrors.WriteError(w, apiErrors.ErrPlatformTokenInvalid, "Token da plataforma inválido, reautorize a integração", nil)

	default:
		logrus.WithError(err).Error("Erro ao executar sincronização")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao executar sincronização", nil)
	}
}
