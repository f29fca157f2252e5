package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"parking/internal/model"

	"github.com/go-pdf/fpdf"
	"github.com/xuri/excelize/v2"
)

// Export formats and report types accepted by the exporter.
const (
	ExportFormatExcel = "excel"
	ExportFormatPDF   = "pdf"

	ExportTypeIncome    = "ingresos"
	ExportTypeOccupancy = "ocupacion"
	ExportTypeVehicles  = "vehiculos"
)

var (
	ErrUnknownReportType   = errors.New("tipo de reporte no válido")
	ErrUnknownExportFormat = errors.New("formato de exportación no válido")
)

// ExportFile is a rendered report ready to stream as a download.
type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// ExportService renders reports as downloadable Excel or PDF files.
// Every export re-runs the report over the requested window, so the
// file always reflects current data.
type ExportService interface {
	Export(ctx context.Context, reportType, format, dateStart, dateEnd string) (*ExportFile, error)
}

type exportService struct {
	reports ReportService
	now     func() time.Time
}

func NewExportService(reports ReportService) ExportService {
	return &exportService{reports: reports, now: time.Now}
}

func (s *exportService) Export(ctx context.Context, reportType, format, dateStart, dateEnd string) (*ExportFile, error) {
	var title string
	var sections []exportSection

	switch reportType {
	case ExportTypeIncome:
		report, err := s.reports.IncomeReport(ctx, dateStart, dateEnd)
		if err != nil {
			return nil, err
		}
		title = "Reporte de Ingresos"
		sections = incomeSections(report)
	case ExportTypeOccupancy:
		report, err := s.reports.OccupancyReport(ctx, dateStart)
		if err != nil {
			return nil, err
		}
		title = "Reporte de Ocupación"
		sections = occupancySections(report)
	case ExportTypeVehicles:
		report, err := s.reports.VehicleReport(ctx, dateStart, dateEnd)
		if err != nil {
			return nil, err
		}
		title = "Reporte de Vehículos"
		sections = vehicleSections(report)
	default:
		return nil, ErrUnknownReportType
	}

	generated := s.now()
	stamp := generated.Format("20060102-150405")
	switch format {
	case ExportFormatExcel:
		data, err := renderExcel(title, generated, sections)
		if err != nil {
			return nil, err
		}
		return &ExportFile{
			Name:        fmt.Sprintf("reporte-%s-%s.xlsx", reportType, stamp),
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        data,
		}, nil
	case ExportFormatPDF:
		data, err := renderPDF(title, generated, sections)
		if err != nil {
			return nil, err
		}
		return &ExportFile{
			Name:        fmt.Sprintf("reporte-%s-%s.pdf", reportType, stamp),
			ContentType: "application/pdf",
			Data:        data,
		}, nil
	default:
		return nil, ErrUnknownExportFormat
	}
}

// exportSection is one titled table inside an exported report.
type exportSection struct {
	Title   string
	Headers []string
	Rows    [][]string
}

func incomeSections(report *model.IncomeReport) []exportSection {
	summary := exportSection{
		Title:   "Resumen del Período",
		Headers: []string{"Concepto", "Valor"},
		Rows: [][]string{
			{"Período", report.Period.DateStart + " a " + report.Period.DateEnd},
			{"Ingresos Totales", fmt.Sprintf("Q%.2f", report.Totals.TotalIncome)},
			{"Total de Salidas", fmt.Sprintf("%d", report.Totals.TotalExits)},
			{"Promedio por Salida", fmt.Sprintf("Q%.2f", report.Totals.AvgPerExit)},
		},
	}
	if report.Totals.BestDay != nil {
		summary.Rows = append(summary.Rows, []string{
			"Mejor Día",
			fmt.Sprintf("%s (Q%.2f)", report.Totals.BestDay.Date, report.Totals.BestDay.Income),
		})
	}

	daily := exportSection{
		Title:   "Ingresos por Día",
		Headers: []string{"Fecha", "Ingresos", "Salidas", "Promedio"},
	}
	for _, day := range report.DailyIncome {
		avg := 0.0
		if day.Exits > 0 {
			avg = day.Income / float64(day.Exits)
		}
		daily.Rows = append(daily.Rows, []string{
			day.Date,
			fmt.Sprintf("Q%.2f", day.Income),
			fmt.Sprintf("%d", day.Exits),
			fmt.Sprintf("Q%.2f", avg),
		})
	}

	peaks := exportSection{
		Title:   "Horas Pico",
		Headers: []string{"Hora", "Entradas"},
	}
	for _, peak := range report.PeakHours {
		peaks.Rows = append(peaks.Rows, []string{peak.Hour, fmt.Sprintf("%d", peak.Entries)})
	}

	return []exportSection{summary, daily, peaks}
}

func occupancySections(report *model.OccupancyReport) []exportSection {
	hourly := exportSection{
		Title:   "Ocupación por Hora - " + report.Date,
		Headers: []string{"Hora", "Entradas", "Tiempo Promedio (min)"},
	}
	for _, hour := range report.ByHour {
		hourly.Rows = append(hourly.Rows, []string{
			hour.Hour,
			fmt.Sprintf("%d", hour.Entries),
			fmt.Sprintf("%.1f", hour.AvgDuration),
		})
	}

	spaces := exportSection{
		Title:   "Espacios Más Utilizados",
		Headers: []string{"Espacio", "Usos"},
	}
	for _, space := range report.TopSpaces {
		spaces.Rows = append(spaces.Rows, []string{space.Space, fmt.Sprintf("%d", space.Uses)})
	}

	return []exportSection{hourly, spaces}
}

func vehicleSections(report *model.VehicleReport) []exportSection {
	top := exportSection{
		Title:   "Vehículos Más Frecuentes",
		Headers: []string{"Vehículo", "Placa", "Color", "Visitas", "Total Gastado", "Tiempo Promedio (min)"},
	}
	for _, vehicle := range report.TopVehicles {
		top.Rows = append(top.Rows, []string{
			vehicle.Vehicle,
			vehicle.Plate,
			vehicle.Color,
			fmt.Sprintf("%d", vehicle.Visits),
			fmt.Sprintf("Q%.2f", vehicle.TotalSpent),
			fmt.Sprintf("%.1f", vehicle.AvgDuration),
		})
	}

	makes := exportSection{
		Title:   "Marcas Más Comunes",
		Headers: []string{"Marca", "Cantidad"},
	}
	for _, mk := range report.CommonMakes {
		makes.Rows = append(makes.Rows, []string{mk.Make, fmt.Sprintf("%d", mk.Count)})
	}

	return []exportSection{top, makes}
}

func renderExcel(title string, generated time.Time, sections []exportSection) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Reporte"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create title style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E6E6FA"}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", "A1", titleStyle); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheet, "A2", "Generado: "+generated.Format("2006-01-02 15:04")); err != nil {
		return nil, err
	}

	row := 4
	for _, section := range sections {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetCellValue(sheet, cell, section.Title); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, cell, cell, titleStyle); err != nil {
			return nil, err
		}
		row++

		for i, header := range section.Headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			if err := f.SetCellValue(sheet, cell, header); err != nil {
				return nil, err
			}
		}
		first, _ := excelize.CoordinatesToCellName(1, row)
		last, _ := excelize.CoordinatesToCellName(len(section.Headers), row)
		if err := f.SetCellStyle(sheet, first, last, headerStyle); err != nil {
			return nil, err
		}
		row++

		for _, values := range section.Rows {
			for i, value := range values {
				cell, _ := excelize.CoordinatesToCellName(i+1, row)
				if err := f.SetCellValue(sheet, cell, value); err != nil {
					return nil, err
				}
			}
			row++
		}
		row++ // blank row between sections
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func renderPDF(title string, generated time.Time, sections []exportSection) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.AddPage()

	translate := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 24, translate(title), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 14, "Generado: "+generated.Format("2006-01-02 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(10)

	for _, section := range sections {
		if pdf.GetY() > 700 {
			pdf.AddPage()
		}

		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 20, translate(section.Title), "", 1, "L", false, 0, "")

		width := 520.0 / float64(len(section.Headers))
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 250)
		for _, header := range section.Headers {
			pdf.CellFormat(width, 16, translate(header), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "", 9)
		for _, values := range section.Rows {
			if pdf.GetY() > 760 {
				pdf.AddPage()
			}
			for _, value := range values {
				pdf.CellFormat(width, 14, translate(value), "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(10)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize pdf: %w", err)
	}
	return buf.Bytes(), nil
}
