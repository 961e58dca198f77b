package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/adlens/creative-audit-api/internal/config"
	"github.com/adlens/creative-audit-api/pkg/utils"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// MediaCache guarda cópias internas das imagens de criativos. As URLs do CDN
// das plataformas expiram; a cópia no bucket garante que o auditor continue
// enxergando a imagem depois disso.
type MediaCache struct {
	client *minio.Client
	cfg    config.MediaCache
}

func NewMediaCache(cfg config.MediaCache) (*MediaCache, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente do object storage: %w", err)
	}

	return &MediaCache{
		client: client,
		cfg:    cfg,
	}, nil
}

// EnsureBucket cria o bucket de mídia caso ainda não exista
func (m *MediaCache) EnsureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.cfg.Bucket)
	if err != nil {
		return err
	}

	if exists {
		return nil
	}

	logrus.WithField("bucket", m.cfg.Bucket).Info("Criando bucket de mídia")

	return m.client.MakeBucket(ctx, m.cfg.Bucket, minio.MakeBucketOptions{})
}

// CacheImage baixa a imagem da URL de origem e grava no bucket, devolvendo a
// URL pública da cópia interna
func (m *MediaCache) CacheImage(ctx context.Context, creativeID, sourceURL string) (string, error) {
	data, contentType, err := utils.FetchBytes(ctx, sourceURL)
	if err != nil {
		return "", fmt.Errorf("erro ao baixar imagem do criativo: %w", err)
	}

	objectName := fmt.Sprintf("creatives/%s%s", creativeID, extensionFor(contentType))

	_, err = m.client.PutObject(ctx, m.cfg.Bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("erro ao gravar imagem no bucket: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(m.cfg.PublicBaseURL, "/"), m.cfg.Bucket, objectName), nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
