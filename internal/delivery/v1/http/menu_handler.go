package http

import (
	"net/http"

	"github.com/sisters-restaurant/go-backend/internal/usecase"
	"github.com/sisters-restaurant/go-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type MenuHandler struct {
	menuUsecase usecase.MenuUC
	logger      logger.Logger
}

func NewMenuHandler(menuUsecase usecase.MenuUC, logger logger.Logger) *MenuHandler {
	return &MenuHandler{menuUsecase: menuUsecase, logger: logger}
}

// getMenu отдаёт все позиции меню, сгруппированные по разделам.
func (h *MenuHandler) getMenu(w http.ResponseWriter, r *http.Request) {
	menu, err := h.menuUsecase.GetMenu(r.Context())
	if err != nil {
		h.logger.Warnf("failed to fetch menu: %v", err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, menu)
}

// getCategory отдаёт позиции одного раздела.
func (h *MenuHandler) getCategory(w http.ResponseWriter, r *http.Request) {
	items, err := h.menuUsecase.GetCategory(r.Context(), chi.URLParam(r, "category"))
	if err != nil {
		h.logger.Warnf("failed to fetch category items: %v", err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, items)
}

// createItem создаёт позицию в разделе из пути.
func (h *MenuHandler) createItem(w http.ResponseWriter, r *http.Request) {
	var req usecase.CreateItemReq
	if err := decodeJSON(r, &req); err != nil {
		h.logger.Warnf("%d bad create request: %v", http.StatusBadRequest, err)
		WriteError(w, err)
		return
	}
	req.Category = chi.URLParam(r, "category")

	item, err := h.menuUsecase.CreateItem(r.Context(), &req)
	if err != nil {
		h.logger.Warnf("failed to add menu item: %v", err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, item)
}

// updateItem частично обновляет позицию по идентификатору из пути.
func (h *MenuHandler) updateItem(w http.ResponseWriter, r *http.Request) {
	var req usecase.UpdateItemReq
	if err := decodeJSON(r, &req); err != nil {
		h.logger.Warnf("%d bad update request: %v", http.StatusBadRequest, err)
		WriteError(w, err)
		return
	}
	req.ID = chi.URLParam(r, "id")
	req.PathCategory = chi.URLParam(r, "category")

	item, err := h.menuUsecase.UpdateItem(r.Context(), &req)
	if err != nil {
		h.logger.Warnf("failed to update menu item %s: %v", req.ID, err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, item)
}

// deleteItem удаляет позицию; раздел в пути обязан совпадать с сохранённым.
func (h *MenuHandler) deleteItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.menuUsecase.DeleteItem(r.Context(), chi.URLParam(r, "category"), id); err != nil {
		h.logger.Warnf("failed to delete menu item %s: %v", id, err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]string{"message": "Item deleted successfully"})
}
