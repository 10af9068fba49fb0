package web

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/RJohnPaul/dms/internal/domain/model"
)

// Cell is one rendered table cell. Class is an optional CSS class, used for
// severity and status badges.
type Cell struct {
	Text  string
	Class string
}

// Column projects one field of T into a cell. Formatter may be nil, in which
// case the field is printed as plain text.
type Column[T any] struct {
	Header    string
	Field     func(T) any
	Formatter func(v any, rec T) Cell
}

type Row struct {
	ID         int64
	Cells      []Cell
	CanApprove bool
}

type Table struct {
	Headers []string
	Rows    []Row
}

// Project renders records into a table in the order given, one row per record.
func Project[T any](records []T, cols []Column[T], id func(T) int64) Table {
	t := Table{Headers: make([]string, len(cols)), Rows: make([]Row, 0, len(records))}
	for i, c := range cols {
		t.Headers[i] = c.Header
	}
	for _, rec := range records {
		row := Row{ID: id(rec), Cells: make([]Cell, len(cols))}
		for i, c := range cols {
			v := c.Field(rec)
			if c.Formatter != nil {
				row.Cells[i] = c.Formatter(v, rec)
			} else {
				row.Cells[i] = Cell{Text: display(v)}
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// Filter keeps the rows whose text contains q, ignoring case. An empty query
// keeps everything.
func (t Table) Filter(q string) Table {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return t
	}
	out := Table{Headers: t.Headers, Rows: []Row{}}
	for _, row := range t.Rows {
		for _, c := range row.Cells {
			if strings.Contains(strings.ToLower(c.Text), q) {
				out.Rows = append(out.Rows, row)
				break
			}
		}
	}
	return out
}

// display prints the pointer-heavy model fields; nil prints as empty.
func display(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case *string:
		if x == nil {
			return ""
		}
		return *x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case *int:
		if x == nil {
			return ""
		}
		return strconv.Itoa(*x)
	case *bool:
		if x == nil {
			return ""
		}
		if *x {
			return "Yes"
		}
		return "No"
	case *model.ID:
		if x == nil {
			return ""
		}
		return x.String()
	case *time.Time:
		if x == nil {
			return ""
		}
		return formatDate(*x)
	default:
		return fmt.Sprint(x)
	}
}

func formatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// formatDateString formats a stored date, keeping the raw text when it does
// not parse.
func formatDateString(s *string) string {
	if s == nil || *s == "" {
		return ""
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, *s); err == nil {
			return formatDate(t)
		}
	}
	return *s
}

// severity maps High and Medium to their badge class; anything else is low.
func severity[T any](v any, _ T) Cell {
	s := display(v)
	switch s {
	case "High":
		return Cell{Text: s, Class: "status-high"}
	case "Medium":
		return Cell{Text: s, Class: "status-medium"}
	}
	return Cell{Text: s, Class: "status-low"}
}

func badge[T any](classes map[string]string, fallback string) func(any, T) Cell {
	return func(v any, _ T) Cell {
		s := display(v)
		if c, ok := classes[s]; ok {
			return Cell{Text: s, Class: c}
		}
		return Cell{Text: s, Class: fallback}
	}
}

var incidentColumns = []Column[model.Incident]{
	{Header: "ID", Field: func(i model.Incident) any { return i.ID }},
	{Header: "Description", Field: func(i model.Incident) any { return i.Description }},
	{Header: "Camp", Field: func(i model.Incident) any { return i.CampName }},
	{Header: "Severity", Field: func(i model.Incident) any { return i.Severity }, Formatter: severity[model.Incident]},
	{Header: "Reported By", Field: func(i model.Incident) any { return i.ReportedBy }},
	{Header: "Status", Field: func(i model.Incident) any { return i.Status }},
}

var donorColumns = []Column[model.Donor]{
	{Header: "ID", Field: func(d model.Donor) any { return d.ID }},
	{Header: "Name", Field: func(d model.Donor) any { return d.Name }},
	{Header: "Email", Field: func(d model.Donor) any { return d.Email }},
	{Header: "Donation Type", Field: func(d model.Donor) any { return d.DonationType }},
	{Header: "Date", Field: func(d model.Donor) any { return d.DonationDate }, Formatter: func(v any, d model.Donor) Cell {
		return Cell{Text: formatDateString(d.DonationDate)}
	}},
	{Header: "Status", Field: func(d model.Donor) any { return d.Status }, Formatter: badge[model.Donor](map[string]string{
		model.DonorStatusReceived:  "status-fulfilled",
		model.DonorStatusInTransit: "status-transit",
	}, "status-pending")},
}

var requestColumns = []Column[model.ReliefRequest]{
	{Header: "ID", Field: func(q model.ReliefRequest) any { return q.ID }},
	{Header: "Camp", Field: func(q model.ReliefRequest) any { return q.CampName }},
	{Header: "Resource", Field: func(q model.ReliefRequest) any { return q.ResourceName }},
	{Header: "Quantity", Field: func(q model.ReliefRequest) any { return q.Quantity }},
	{Header: "Priority", Field: func(q model.ReliefRequest) any { return q.Priority }, Formatter: severity[model.ReliefRequest]},
	{Header: "Status", Field: func(q model.ReliefRequest) any { return q.Status }, Formatter: badge[model.ReliefRequest](map[string]string{
		model.RequestStatusFulfilled: "status-fulfilled",
		model.RequestStatusPending:   "status-pending",
	}, "")},
}

var campColumns = []Column[model.Camp]{
	{Header: "ID", Field: func(c model.Camp) any { return c.ID }},
	{Header: "Name", Field: func(c model.Camp) any { return c.Name }},
	{Header: "Location", Field: func(c model.Camp) any { return c.Location }},
	{Header: "Capacity", Field: func(c model.Camp) any { return c.Capacity }},
	{Header: "Occupied", Field: func(c model.Camp) any { return c.CurrentOccupancy }},
	{Header: "Occupancy", Field: func(c model.Camp) any { return c }, Formatter: func(_ any, c model.Camp) Cell {
		return Cell{Text: strconv.Itoa(Occupancy(deref(c.CurrentOccupancy), deref(c.Capacity))) + "%"}
	}},
	{Header: "Status", Field: func(c model.Camp) any { return c.Status }},
}

func incidentID(i model.Incident) int64     { return i.ID }
func donorID(d model.Donor) int64           { return d.ID }
func requestID(q model.ReliefRequest) int64 { return q.ID }
func campID(c model.Camp) int64             { return c.ID }

// markApprovable flags pending request rows.
func markApprovable(t Table, requests []model.ReliefRequest) Table {
	pending := make(map[int64]bool, len(requests))
	for _, q := range requests {
		pending[q.ID] = q.Status != nil && *q.Status == model.RequestStatusPending
	}
	for i := range t.Rows {
		t.Rows[i].CanApprove = pending[t.Rows[i].ID]
	}
	return t
}
