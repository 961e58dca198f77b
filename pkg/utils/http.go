package utils

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

var downloadClient = &http.Client{Timeout: 30 * time.Second}

// FetchBytes baixa o conteúdo de uma URL respeitando o contexto.
// Usada pelo cache de imagens de criativos.
func FetchBytes(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := downloadClient.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("Error on Request: %s status: %s", url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}

	return data, resp.Header.Get("Content-Type"), nil
}
