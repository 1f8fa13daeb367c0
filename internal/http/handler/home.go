package handler

import (
	"html/template"
	"net/http"

	"github.com/61040-fa22/rec5/internal/http/handler/middleware"

	"go.uber.org/zap"
)

var (
	Home     = "GET /{$}"
	Static   = "GET /static/"
	CatchAll = "/"
)

type PageHandler struct {
	logs      *zap.SugaredLogger
	templates *template.Template
	title     string
}

func NewPageHandler(logger *zap.SugaredLogger, templates *template.Template, title string) *PageHandler {
	return &PageHandler{
		logs:      logger,
		templates: templates,
		title:     title,
	}
}

func (h *PageHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "index.html", http.StatusOK, map[string]string{
		"Title": h.title,
	})
}

// HandleNotFound answers every unrouted request with the error page.
func (h *PageHandler) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "error.html", http.StatusBadRequest, map[string]string{
		"Path": r.URL.Path,
	})
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, name string, code int, data any) {
	tmpl := h.templates.Lookup(name)
	if tmpl == nil {
		h.logs.Errorw("template not found",
			"template", name,
			"request_id", middleware.RequestIDFrom(r.Context()))
		http.Error(w, oopsErr, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if err := tmpl.Execute(w, data); err != nil {
		h.logs.Errorw("failed to render template",
			"error", err,
			"template", name,
			"request_id", middleware.RequestIDFrom(r.Context()))
	}
}
