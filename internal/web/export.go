package web

import (
	"context"
	"encoding/csv"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gosimple/slug"

	"github.com/RJohnPaul/dms/internal/app/session"
	"github.com/RJohnPaul/dms/internal/client"
	"github.com/RJohnPaul/dms/internal/domain/model"
)

type exporter func(ctx context.Context, api *client.Client) (Table, error)

func exportWith[T any](list func(*client.Client, context.Context) ([]T, error), cols []Column[T], id func(T) int64) exporter {
	return func(ctx context.Context, api *client.Client) (Table, error) {
		records, err := list(api, ctx)
		if err != nil {
			return Table{}, err
		}
		return Project(records, cols, id), nil
	}
}

var exporters = map[string]exporter{
	"incidents": exportWith((*client.Client).ListIncidents, incidentColumns, incidentID),
	"camps":     exportWith((*client.Client).ListCamps, campColumns, campID),
	"donors":    exportWith((*client.Client).ListDonors, donorColumns, donorID),
	"requests":  exportWith((*client.Client).ListRequests, requestColumns, requestID),
}

// exportFilename is e.g. "relief-camps-2024-03-01.csv".
func exportFilename(page string, now time.Time) string {
	return slug.Make("relief "+page+" "+now.Format("2006-01-02")) + ".csv"
}

func (a *App) export(w http.ResponseWriter, r *http.Request) {
	page := chi.URLParam(r, "page")
	build, ok := exporters[page]
	if !ok {
		http.NotFound(w, r)
		return
	}
	sc := session.FromContext(r.Context())
	if !sc.HasPermission(model.PermExportData) {
		a.flashes.add(w, r, flashError, "You do not have permission to export data")
		http.Redirect(w, r, "/"+page, http.StatusSeeOther)
		return
	}

	table, err := build(r.Context(), a.clientFor(sc))
	if err != nil {
		slog.Error("Export failed", "page", page, "error", err)
		a.flashes.add(w, r, flashError, "Failed to export "+page)
		http.Redirect(w, r, "/"+page, http.StatusSeeOther)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+exportFilename(page, time.Now())+`"`)
	cw := csv.NewWriter(w)
	cw.Write(table.Headers)
	for _, row := range table.Rows {
		record := make([]string, len(row.Cells))
		for i, c := range row.Cells {
			record[i] = c.Text
		}
		cw.Write(record)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		slog.Error("Failed to write export", "page", page, "error", err)
	}
}
