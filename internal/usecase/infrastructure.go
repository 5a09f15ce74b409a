package usecase

import "context"

type ImagesInfra interface {
	// UploadImage загружает изображение в хранилище и возвращает публичный URL и ключ объекта.
	UploadImage(ctx context.Context, req *UploadImageReq) (*UploadImageRes, error)
	// DeleteImage запускает фоновое best-effort удаление объекта по ключу.
	DeleteImage(key string)
	// Enabled сообщает, настроено ли хранилище изображений.
	Enabled() bool
}
