package integrator

import (
	"errors"
	"fmt"
	"time"

	"github.com/adlens/creative-audit-api/internal/domain"
)

// RateLimitError indica que a plataforma sinalizou limite de requisições.
// O chamador decide quanto esperar antes de tentar de novo; RetryAfter só é
// preenchido quando a plataforma informa o tempo.
type RateLimitError struct {
	Platform   domain.Platform
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s: limite de requisições atingido: %s", e.Platform, e.Message)
}

// TokenInvalidError indica token expirado ou revogado. Não adianta repetir a
// requisição; a integração precisa ser reautorizada.
type TokenInvalidError struct {
	Platform domain.Platform
	Message  string
}

func (e *TokenInvalidError) Error() string {
	return fmt.Sprintf("%s: token de acesso inválido: %s", e.Platform, e.Message)
}

func IsRateLimit(err error) bool {
	var rateLimitErr *RateLimitError
	return errors.As(err, &rateLimitErr)
}

func IsTokenInvalid(err error) bool {
	var tokenErr *TokenInvalidError
	return errors.As(err, &tokenErr)
}
