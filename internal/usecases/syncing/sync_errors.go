package syncing

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de sincronização
var (
	ErrSyncAlreadyInProgress = errors.New("sync already in progress for this integration")
	ErrIntegrationNotFound   = errors.New("integration not found")
	ErrIntegrationInactive   = errors.New("integration is not active")
	ErrPlatformNotSupported  = errors.New("platform not supported")
)

// MappingError indica que um registro vindo da plataforma não pôde ser
// normalizado. O registro é pulado e contado; a sincronização continua.
type MappingError struct {
	Entity     string
	ExternalID string
	Field      string
	Err        error
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("erro ao mapear %s %s (campo %s): %v", e.Entity, e.ExternalID, e.Field, e.Err)
}

func (e *MappingError) Unwrap() error {
	return e.Err
}

// PersistenceError indica falha ao gravar um registro no banco durante a
// reconciliação
type PersistenceError struct {
	Entity     string
	ExternalID string
	Err        error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("erro ao persistir %s %s: %v", e.Entity, e.ExternalID, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
