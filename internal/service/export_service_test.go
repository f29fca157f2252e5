package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"parking/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

// stubReports satisfies ReportService with canned data.
type stubReports struct{}

func (stubReports) IncomeReport(ctx context.Context, dateStart, dateEnd string) (*model.IncomeReport, error) {
	best := model.DailyIncome{Date: "2025-03-11", Income: 95, Exits: 12}
	return &model.IncomeReport{
		Period: model.ReportPeriod{DateStart: "2025-02-15", DateEnd: "2025-03-15"},
		Totals: model.IncomeTotals{TotalIncome: 195, TotalExits: 30, AvgPerExit: 6.5, BestDay: &best},
		DailyIncome: []model.DailyIncome{
			{Date: "2025-03-10", Income: 40, Exits: 8},
			best,
		},
		PeakHours: []model.PeakHour{{Hour: "8:00", Entries: 15}},
	}, nil
}

func (stubReports) OccupancyReport(ctx context.Context, date string) (*model.OccupancyReport, error) {
	return &model.OccupancyReport{
		Date:      "2025-03-15",
		ByHour:    []model.HourlyOccupancy{{Hour: "9:00", Entries: 6, AvgDuration: 84.2}},
		TopSpaces: []model.SpaceUsage{{Space: "A01", Uses: 4}},
	}, nil
}

func (stubReports) VehicleReport(ctx context.Context, dateStart, dateEnd string) (*model.VehicleReport, error) {
	return &model.VehicleReport{
		Period: model.ReportPeriod{DateStart: "2025-03-01", DateEnd: "2025-03-31", Days: 31},
		TopVehicles: []model.VehicleRanking{
			{Plate: "ABC123", Vehicle: "Toyota Corolla", Color: "Rojo", Visits: 9, TotalSpent: 120, AvgDuration: 95.5},
		},
		CommonMakes: []model.MakeCount{{Make: "Toyota", Count: 12}},
	}, nil
}

func TestExportExcelRoundTrip(t *testing.T) {
	svc := NewExportService(stubReports{}).(*exportService)
	svc.now = func() time.Time { return time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC) }

	file, err := svc.Export(context.Background(), ExportTypeIncome, ExportFormatExcel, "", "")
	assert.NoError(t, err)
	assert.Equal(t, "reporte-ingresos-20250315-120000.xlsx", file.Name)

	workbook, err := excelize.OpenReader(bytes.NewReader(file.Data))
	assert.NoError(t, err)
	defer workbook.Close()

	title, err := workbook.GetCellValue("Reporte", "A1")
	assert.NoError(t, err)
	assert.Equal(t, "Reporte de Ingresos", title)

	generated, err := workbook.GetCellValue("Reporte", "A2")
	assert.NoError(t, err)
	assert.Equal(t, "Generado: 2025-03-15 12:00", generated)

	section, err := workbook.GetCellValue("Reporte", "A4")
	assert.NoError(t, err)
	assert.Equal(t, "Resumen del Período", section)
}

func TestExportVehiclesExcelHeaders(t *testing.T) {
	svc := NewExportService(stubReports{})

	file, err := svc.Export(context.Background(), ExportTypeVehicles, ExportFormatExcel, "", "")
	assert.NoError(t, err)

	workbook, err := excelize.OpenReader(bytes.NewReader(file.Data))
	assert.NoError(t, err)
	defer workbook.Close()

	header, err := workbook.GetCellValue("Reporte", "A5")
	assert.NoError(t, err)
	assert.Equal(t, "Vehículo", header)

	plate, err := workbook.GetCellValue("Reporte", "B6")
	assert.NoError(t, err)
	assert.Equal(t, "ABC123", plate)
}

func TestExportPDF(t *testing.T) {
	svc := NewExportService(stubReports{})

	file, err := svc.Export(context.Background(), ExportTypeOccupancy, ExportFormatPDF, "", "")
	assert.NoError(t, err)
	assert.Contains(t, file.Name, "reporte-ocupacion-")
	assert.Contains(t, file.Name, ".pdf")
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, bytes.HasPrefix(file.Data, []byte("%PDF")))
}

func TestExportRejectsUnknownInputs(t *testing.T) {
	svc := NewExportService(stubReports{})

	_, err := svc.Export(context.Background(), "nomina", ExportFormatExcel, "", "")
	assert.ErrorIs(t, err, ErrUnknownReportType)

	_, err = svc.Export(context.Background(), ExportTypeIncome, "csv", "", "")
	assert.ErrorIs(t, err, ErrUnknownExportFormat)
}
