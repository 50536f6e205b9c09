package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"schooladmin_backend/internals/features/reports/catalog"
	"schooladmin_backend/internals/features/reports/render"
	helper "schooladmin_backend/internals/helpers"
	"schooladmin_backend/internals/observability/metrics"
)

const (
	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"
)

type Document struct {
	Filename    string
	ContentType string
	Body        []byte
}

type ReportService struct {
	DB      *gorm.DB
	Catalog *catalog.Catalog
}

func NewReportService(db *gorm.DB, cat *catalog.Catalog) *ReportService {
	return &ReportService{DB: db, Catalog: cat}
}

// Generate runs the catalog projection and hands full rows plus headers to the renderer.
func (s *ReportService) Generate(ctx context.Context, reportType, format string) (doc *Document, err error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = FormatPDF
	}
	if format != FormatPDF && format != FormatXLSX {
		return nil, helper.FieldError("format", "must be one of: pdf xlsx")
	}
	def, ok := s.Catalog.Get(reportType)
	if !ok {
		return nil, helper.FieldError("report_type", "must be one of: "+strings.Join(s.Catalog.Names(), " "))
	}

	start := time.Now()
	defer func() { metrics.ObserveReport(reportType, format, time.Since(start), err) }()

	rows, err := s.fetch(ctx, def)
	if err != nil {
		return nil, helper.Internal(err)
	}
	table := render.Table{
		Title:       def.Title,
		Headers:     def.Headers(),
		Rows:        rows,
		GeneratedAt: time.Now(),
	}

	var body []byte
	switch format {
	case FormatXLSX:
		body, err = render.XLSX(table)
	default:
		body, err = render.PDF(table)
	}
	if err != nil {
		return nil, helper.Internal(fmt.Errorf("render %s %s: %w", reportType, format, err))
	}

	return &Document{
		Filename:    fmt.Sprintf("%s-report-%s.%s", reportType, table.GeneratedAt.Format("20060102"), format),
		ContentType: contentType(format),
		Body:        body,
	}, nil
}

func (s *ReportService) fetch(ctx context.Context, def catalog.Definition) ([]map[string]any, error) {
	q := s.DB.WithContext(ctx).Table(def.Source).Select(strings.Join(def.Projections(), ", "))
	if def.Where != "" {
		q = q.Where(def.Where)
	}
	if def.OrderBy != "" {
		q = q.Order(def.OrderBy)
	}
	rows := make([]map[string]any, 0)
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func contentType(format string) string {
	if format == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/pdf"
}
