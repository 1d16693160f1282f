package web

import (
	"errors"
	"net/http"

	"github.com/jasonnnn886/sheetstore/internal/core"
	"github.com/jasonnnn886/sheetstore/internal/logging"
	"github.com/jasonnnn886/sheetstore/internal/model"
)

// exportMIME is the xlsx content type; exportFilename matches the legacy
// admin download.
const (
	exportMIME     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportFilename = "data_export.xlsx"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// handleStats returns per-entity row counts.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	products, customers, orders, err := s.service.Counts(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, map[string]int64{
		"products":  products,
		"customers": customers,
		"orders":    orders,
	})
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.service.Products(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, products)
}

func (s *Server) handleListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := s.service.Customers(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, customers)
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	status := model.OrderStatus(r.URL.Query().Get("status"))
	if status != "" && !status.Valid() {
		writeError(w, r, http.StatusBadRequest, "invalid status filter")
		return
	}
	orders, err := s.service.Orders(r.Context(), r.URL.Query().Get("search"), status)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, orders)
}

// handleExport streams the full store contents as a workbook download.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	log := logging.FromContext(r.Context())

	w.Header().Set("Content-Type", exportMIME)
	w.Header().Set("Content-Disposition", `attachment; filename=`+exportFilename)

	if err := s.service.ExportTo(r.Context(), w); err != nil {
		// Headers are already sent; all we can do is log.
		log.Error("export download failed", "error", err)
		return
	}
	log.Info("export downloaded")
}

// handleImport accepts a multipart workbook upload and runs the import
// pipeline on it. An optional sheet form value restricts the import.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	log := logging.FromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Import.MaxUploadSize)
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "missing or oversized file upload")
		return
	}
	defer file.Close()

	report, err := s.service.ImportReader(r.Context(), file, r.FormValue("sheet"))
	if err != nil {
		var missing *core.MissingSheetsError
		status := http.StatusUnprocessableEntity
		if errors.As(err, &missing) {
			status = http.StatusBadRequest
		}
		writeError(w, r, status, err.Error())
		return
	}

	log.Info("workbook imported", "file", header.Filename)
	writeJSON(w, map[string]string{"report": report})
}
