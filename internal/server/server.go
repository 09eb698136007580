// Package server exposes the portal over HTTP. Handlers are thin: they
// pull the submitted payload out of the request, call the pure
// document/billing core, and hand the result to a template or the PDF
// renderer. Nothing is kept between requests.
package server

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"invoiceportal/internal/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/samples/invoices.yaml
var sampleYAML []byte

// Server wraps the Gin engine with the portal routes mounted.
type Server struct {
	engine *gin.Engine
	log    zerolog.Logger
}

// New builds a server with all routes registered.
func New() *Server {
	engine := gin.New()
	engine.Use(RequestLogger(), gin.Recovery())
	tmpl := template.Must(template.New("").Funcs(template.FuncMap{
		"totalsFor": viewTotals,
	}).ParseFS(templateFS, "templates/*.html"))
	engine.SetHTMLTemplate(tmpl)

	s := &Server{
		engine: engine,
		log:    logger.WithComponent("server"),
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.engine.GET("/", s.indexPage)
	s.engine.GET("/help", s.helpPage)
	s.engine.GET("/designer", s.designerPage)
	s.engine.GET("/static/samples/invoices.yaml", s.sampleDocument)

	s.engine.POST("/invoices", s.listInvoices)
	s.engine.POST("/invoice/:id", s.invoiceDetail)
	s.engine.POST("/invoice/:id/pdf", s.invoicePDF)
}

// Handler returns the underlying HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until the listener fails.
func (s *Server) Run(addr string) error {
	s.log.Info().Str("addr", addr).Msg("Starting invoice portal")
	return s.engine.Run(addr)
}
