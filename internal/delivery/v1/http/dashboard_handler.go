package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/sisters-restaurant/go-backend/internal/domain"
	"github.com/sisters-restaurant/go-backend/internal/usecase"
	"github.com/sisters-restaurant/go-backend/pkg/logger"
)

//go:embed templates/dashboard.html
var templatesFS embed.FS

var dashboardTmpl = template.Must(template.ParseFS(templatesFS, "templates/dashboard.html"))

type DashboardHandler struct {
	menuUsecase usecase.MenuUC
	logger      logger.Logger
}

func NewDashboardHandler(menuUsecase usecase.MenuUC, logger logger.Logger) *DashboardHandler {
	return &DashboardHandler{menuUsecase: menuUsecase, logger: logger}
}

type dashboardSection struct {
	Category string
	Items    []usecase.ItemRes
}

type dashboardData struct {
	Sections []dashboardSection
	Total    int
}

// showDashboard отрисовывает страницу с меню, сгруппированным по категориям.
// При ошибке загрузки меню отдаёт страницу с пустыми категориями.
func (h *DashboardHandler) showDashboard(w http.ResponseWriter, r *http.Request) {
	menu, err := h.menuUsecase.GetMenu(r.Context())
	if err != nil {
		h.logger.Errorf(err, "failed to load menu for dashboard")
		menu = make(usecase.GroupedMenuRes, len(domain.Categories))
	}

	data := dashboardData{Sections: make([]dashboardSection, 0, len(domain.Categories))}
	for _, category := range domain.Categories {
		items := menu[string(category)]
		data.Total += len(items)
		data.Sections = append(data.Sections, dashboardSection{
			Category: string(category),
			Items:    items,
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTmpl.Execute(w, data); err != nil {
		h.logger.Errorf(err, "failed to render dashboard")
	}
}
