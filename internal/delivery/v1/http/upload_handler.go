package http

import (
	"net/http"

	"github.com/sisters-restaurant/go-backend/internal/usecase"
	"github.com/sisters-restaurant/go-backend/pkg/e"
	"github.com/sisters-restaurant/go-backend/pkg/logger"
)

type UploadHandler struct {
	menuUsecase usecase.MenuUC
	logger      logger.Logger
}

func NewUploadHandler(menuUsecase usecase.MenuUC, logger logger.Logger) *UploadHandler {
	return &UploadHandler{menuUsecase: menuUsecase, logger: logger}
}

// uploadImage принимает multipart-форму с полем image, проверяет тип и
// размер файла и загружает его в хранилище изображений.
func (h *UploadHandler) uploadImage(w http.ResponseWriter, r *http.Request) {
	const (
		maxFileSize = 5 << 20
		// файл плюс служебные данные формы
		maxTotalRequestSize = maxFileSize + (1 << 20)
		maxMemory           = 8 << 20
	)

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		h.logger.Warnf("%d bad upload request: %v", http.StatusBadRequest, err)
		WriteError(w, err)
		return
	}

	files := r.MultipartForm.File["image"]
	if len(files) == 0 {
		h.logger.Warnf("%d upload request without image file", http.StatusBadRequest)
		WriteError(w, e.ErrNoImageFile)
		return
	}
	fh := files[0]

	data, mimeType, err := readFile(fh, maxFileSize)
	if err != nil {
		h.logger.Warnf("%d failed to read upload %s: %v", http.StatusBadRequest, fh.Filename, err)
		WriteError(w, err)
		return
	}

	if !isAllowedImage(fh.Filename, mimeType) {
		h.logger.Warnf("%d rejected upload %s (%s)", http.StatusBadRequest, fh.Filename, mimeType)
		WriteError(w, e.ErrUnsupportedMediaType)
		return
	}

	res, err := h.menuUsecase.UploadImage(r.Context(), usecase.NewUploadImageReq(data, mimeType, int64(len(data)), fh.Filename))
	if err != nil {
		h.logger.Warnf("failed to upload image %s: %v", fh.Filename, err)
		WriteError(w, err)
		return
	}

	h.logger.Infof("uploaded image %s as %s", fh.Filename, res.Key)
	WriteSuccess(w, http.StatusOK, res)
}
