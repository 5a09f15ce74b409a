package minio

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/sisters-restaurant/go-backend/internal/cfg"
	"github.com/sisters-restaurant/go-backend/internal/domain"
	"github.com/sisters-restaurant/go-backend/internal/infrastructure"
	"github.com/sisters-restaurant/go-backend/internal/usecase"
	"github.com/sisters-restaurant/go-backend/pkg/e"
	"github.com/sisters-restaurant/go-backend/pkg/jitter"
	"github.com/sisters-restaurant/go-backend/pkg/logger"

	"github.com/google/uuid"
)

// MinioInfrastructure управляет загрузкой и фоновым удалением изображений меню в MinIO.
// minioRepo равен nil, когда учётные данные хранилища не заданы: загрузка
// отключается, удаление становится no-op.
type MinioInfrastructure struct {
	minioRepo   usecase.ImageRepository
	cfg         *cfg.MinIOCfg
	logger      logger.Logger
	shutdownCtx context.Context
	wg          sync.WaitGroup
}

func NewMinioInfrastructure(minioRepo usecase.ImageRepository, cfg *cfg.MinIOCfg, logger logger.Logger, shutdownCtx context.Context) *MinioInfrastructure {
	return &MinioInfrastructure{
		minioRepo:   minioRepo,
		cfg:         cfg,
		logger:      logger,
		shutdownCtx: shutdownCtx,
	}
}

// Enabled сообщает, настроено ли хранилище изображений.
func (m *MinioInfrastructure) Enabled() bool {
	return m.minioRepo != nil
}

// UploadImage загружает одно изображение в MinIO и возвращает публичный URL
// вместе с ключом объекта.
func (m *MinioInfrastructure) UploadImage(ctx context.Context, req *usecase.UploadImageReq) (*usecase.UploadImageRes, error) {
	const op = "MinioInfrastructure.UploadImage"

	if !m.Enabled() {
		return nil, e.Wrap(op, e.ErrImageStoreDisabled)
	}

	if len(req.Data) == 0 {
		return nil, e.Wrap(op, e.ErrEmptyImage)
	}

	if req.Size > m.cfg.MaxFileSize {
		return nil, e.Wrap(op, e.ErrFileTooLarge)
	}

	ext, err := infrastructure.GetExtensionFromMIME(req.MimeType)
	if err != nil {
		return nil, e.Wrap(fmt.Sprintf("%s: invalid mime type %s for %s", op, req.MimeType, req.Name), err)
	}

	imageID := uuid.NewString()
	objKey := fmt.Sprintf("%s/%s-%s.%s", m.cfg.UploadFolder, baseName(req.Name), imageID, ext)

	image := domain.NewImage(imageID, m.cfg.BucketName, objKey, req.Data, req.Size, req.MimeType)

	key, err := m.minioRepo.Upload(ctx, image)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return usecase.NewUploadImageRes(m.minioRepo.PublicURL(key), key), nil
}

// DeleteImage запускает фоновое best-effort удаление объекта по ключу.
// Неудача логируется и никогда не доходит до вызывающего.
func (m *MinioInfrastructure) DeleteImage(key string) {
	if key == "" || !m.Enabled() {
		return
	}
	m.wg.Add(1)
	go m.cleanupKey(key)
}

// cleanupKey удаляет объект из MinIO с экспоненциальной задержкой и jitter.
func (m *MinioInfrastructure) cleanupKey(key string) {
	defer m.wg.Done()
	const (
		op          = "MinioInfrastructure.cleanupKey"
		maxAttempts = 3
		baseBackoff = time.Second
		maxBackoff  = 10 * time.Second
	)

	// Контекст с таймаутом на основе shutdownCtx
	ctx, cancel := context.WithTimeout(m.shutdownCtx, 30*time.Second)
	defer cancel()

	for attempt := 0; attempt < maxAttempts; attempt++ {
		err := m.minioRepo.Delete(ctx, key)
		if err == nil {
			m.logger.Infof("%s: removed stale image object, key=%s", op, key)
			return
		}

		m.logger.Warnf("%s: delete attempt %d failed, key=%s: %v", op, attempt+1, key, err)

		if attempt == maxAttempts-1 {
			break
		}

		select {
		case <-time.After(jitter.ExponentialBackoff(baseBackoff, maxBackoff, attempt, jitter.DefaultJitter)):
		case <-ctx.Done():
			m.logger.Warnf("%s: cleanup interrupted by shutdown, key=%s", op, key)
			return
		}
	}

	m.logger.Warnf("%s: giving up on key=%s after %d attempts", op, key, maxAttempts)
}

// WaitForCleanup ожидает завершения всех фоновых задач удаления с учётом таймаута завершения приложения.
func (m *MinioInfrastructure) WaitForCleanup(shutdownTimeoutCtx context.Context) error {
	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-shutdownTimeoutCtx.Done():
		return fmt.Errorf("minio cleanup timeout during shutdown: %w", shutdownTimeoutCtx.Err())
	}
}

// baseName очищает оригинальное имя файла для использования в ключе объекта.
func baseName(name string) string {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.ReplaceAll(base, " ", "-")
	if base == "" || base == "." {
		base = "image"
	}
	return base
}
