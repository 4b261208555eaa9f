package service

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"renta-be-svc/internal/paystatus"
	"renta-be-svc/pkg/logger"
)

// ReportService defines the interface for report generation
type ReportService interface {
	ExportOverdueReport() ([]byte, string, error)
}

// reportService implements ReportService
type reportService struct {
	dashboardService DashboardService
	clock            paystatus.Clock
	logger           *logger.Logger
}

// NewReportService creates a new instance of ReportService
func NewReportService(dashboardService DashboardService, clock paystatus.Clock, logger *logger.Logger) ReportService {
	if clock == nil {
		clock = paystatus.Now
	}
	return &reportService{
		dashboardService: dashboardService,
		clock:            clock,
		logger:           logger,
	}
}

// ExportOverdueReport exports the overdue-property report as an Excel file
func (s *reportService) ExportOverdueReport() ([]byte, string, error) {
	items, err := s.dashboardService.GetOverdueProperties()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get overdue properties: %w", err)
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.WithError(err).Error("Failed to close Excel file")
		}
	}()

	sheetName := "Overdue Report"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headers := []string{"No", "Location", "Property", "Tenant", "Monthly Rent", "Overdue Months", "Months Due", "Total Dues"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#D3D3D3"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err == nil {
		f.SetCellStyle(sheetName, "A1", "H1", headerStyle)
	}

	grandTotal := decimal.Zero
	for i, item := range items {
		row := i + 2
		tenant := "N/A"
		if item.TenantName != nil {
			tenant = *item.TenantName
		}

		rent, _ := item.RentAmount.Float64()
		dues, _ := item.OverdueAmount.Float64()

		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), item.LocationName)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), item.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), tenant)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), rent)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), strings.Join(item.OverdueMonths, ", "))
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), item.OverdueCount)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), dues)

		grandTotal = grandTotal.Add(item.OverdueAmount)
	}

	totalRow := len(items) + 2
	total, _ := grandTotal.Float64()
	f.SetCellValue(sheetName, fmt.Sprintf("G%d", totalRow), "Total")
	f.SetCellValue(sheetName, fmt.Sprintf("H%d", totalRow), total)

	for i := 1; i <= len(headers); i++ {
		col, _ := excelize.ColumnNumberToName(i)
		f.SetColWidth(sheetName, col, col, 18)
	}

	if f.GetSheetName(0) == "Sheet1" && sheetName != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	timestamp := s.clock().Format("20060102_150405")
	filename := fmt.Sprintf("overdue_report_%s.xlsx", timestamp)

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write Excel file: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"filename":   filename,
		"properties": len(items),
	}).Info("Overdue report exported successfully")

	return buffer.Bytes(), filename, nil
}
