package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"invoiceportal/internal/billing"
	"invoiceportal/internal/document"
	"invoiceportal/internal/pdf"
	"invoiceportal/pkg/models"
)

func (s *Server) indexPage(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

func (s *Server) helpPage(c *gin.Context) {
	c.HTML(http.StatusOK, "help.html", nil)
}

func (s *Server) designerPage(c *gin.Context) {
	c.HTML(http.StatusOK, "designer.html", gin.H{
		"Sample": string(sampleYAML),
	})
}

func (s *Server) sampleDocument(c *gin.Context) {
	c.Data(http.StatusOK, "application/x-yaml", sampleYAML)
}

// listInvoices renders the list view for the submitted document,
// optionally filtered by status.
func (s *Server) listInvoices(c *gin.Context) {
	raw := s.payload(c)
	doc := document.Extract(document.Parse(raw))

	views, totalsByID := billing.BuildViews(doc)
	filter := s.statusFilter(c)
	filtered := billing.FilterViews(views, filter)
	if filter == "" {
		filter = billing.StatusAll
	}

	c.HTML(http.StatusOK, "invoices.html", gin.H{
		"Views":   filtered,
		"Totals":  totalsByID,
		"Filter":  filter,
		"RawData": string(raw),
	})
}

// invoiceDetail renders the detail view for one invoice, or the
// not-found page when the id does not appear in the document.
func (s *Server) invoiceDetail(c *gin.Context) {
	raw := s.payload(c)
	detail, ok := s.lookup(c, raw)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "invoice_detail.html", gin.H{
		"Detail":  detail,
		"RawData": string(raw),
	})
}

// invoicePDF streams the printable export for one invoice as a PDF
// attachment.
func (s *Server) invoicePDF(c *gin.Context) {
	raw := s.payload(c)
	detail, ok := s.lookup(c, raw)
	if !ok {
		return
	}

	data, err := pdf.Render(detail)
	if err != nil {
		s.log.Error().Err(err).Int("invoice_id", detail.View.ID).Msg("PDF rendering failed")
		c.String(http.StatusInternalServerError, "could not render PDF")
		return
	}

	name := detail.View.Number
	if name == "" {
		name = strconv.Itoa(detail.View.ID)
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%s.pdf", name))
	c.Data(http.StatusOK, "application/pdf", data)
}

// payload returns the submitted document text: the client_data form
// field when present, the raw body otherwise.
func (s *Server) payload(c *gin.Context) []byte {
	if field := c.PostForm("client_data"); field != "" {
		return []byte(field)
	}
	raw, err := c.GetRawData()
	if err != nil {
		return nil
	}
	return raw
}

// statusFilter reads the status token from the form or the query
// string.
func (s *Server) statusFilter(c *gin.Context) string {
	if v := c.PostForm("status"); v != "" {
		return v
	}
	return c.Query("status")
}

// lookup resolves the :id parameter against the submitted document,
// rendering the not-found page on a bad id or a missing invoice.
func (s *Server) lookup(c *gin.Context, raw []byte) (*billing.InvoiceDetail, bool) {
	invoiceID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		s.renderNotFound(c, c.Param("id"))
		return nil, false
	}

	doc := document.Extract(document.Parse(raw))
	detail, err := billing.FindInvoice(doc, invoiceID)
	if err != nil {
		if !errors.Is(err, billing.ErrInvoiceNotFound) {
			s.log.Error().Err(err).Msg("Invoice lookup failed")
		}
		s.renderNotFound(c, c.Param("id"))
		return nil, false
	}
	return detail, true
}

func (s *Server) renderNotFound(c *gin.Context, id string) {
	c.HTML(http.StatusNotFound, "not_found.html", gin.H{"InvoiceID": id})
}

// viewTotals resolves a list-template lookup into the totals-by-id map.
func viewTotals(totals map[string]models.Totals, id int) models.Totals {
	return totals[strconv.Itoa(id)]
}
