package service

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/udyogsetu/udyogsetu-backend/internal/app/model"
)

type ReportService interface {
	RecommendationWorkbook(email string) ([]byte, string, error)
}

type reportService struct {
	profileService ProfileService
}

func NewReportService(profileService ProfileService) ReportService {
	return &reportService{profileService: profileService}
}

// RecommendationWorkbook renders the account's scheme recommendations as an
// XLSX workbook and returns the file bytes plus a download filename.
func (s *reportService) RecommendationWorkbook(email string) ([]byte, string, error) {
	profile, recommendations, err := s.profileService.GetRecommendations(email)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Recommendations"
	f.SetSheetName("Sheet1", sheet)

	writeProfileSummary(f, sheet, profile)

	headerRow := 8
	headers := []string{"Scheme ID", "Scheme Name", "Priority", "Why Matched", "Key Eligibility Signals"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, headerRow)
		f.SetCellValue(sheet, cell, header)
	}

	for i, rec := range recommendations {
		row := headerRow + 1 + i
		values := []interface{}{
			rec.ID,
			rec.SchemeName,
			rec.Priority,
			strings.Join(rec.WhyMatched, "; "),
			strings.Join(rec.KeyEligibilitySignals, "; "),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheet, cell, value)
		}
	}

	f.SetColWidth(sheet, "A", "A", 26)
	f.SetColWidth(sheet, "B", "B", 44)
	f.SetColWidth(sheet, "D", "E", 60)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to render workbook: %w", err)
	}

	filename := fmt.Sprintf("scheme-recommendations-%s.xlsx", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

func writeProfileSummary(f *excelize.File, sheet string, profile *model.BusinessProfile) {
	f.SetCellValue(sheet, "A1", "Business Profile Summary")
	summary := [][2]interface{}{
		{"Business Name", profile.BusinessName},
		{"Business Type", profile.BusinessType},
		{"Sector", profile.Sector},
		{"Primary Need", profile.PrimaryNeed},
		{"Annual Turnover (lakhs)", profile.AnnualTurnoverLakhs},
		{"Funding Need (lakhs)", profile.FundingNeedLakhs},
	}
	for i, pair := range summary {
		labelCell, _ := excelize.CoordinatesToCellName(1, i+2)
		valueCell, _ := excelize.CoordinatesToCellName(2, i+2)
		f.SetCellValue(sheet, labelCell, pair[0])
		f.SetCellValue(sheet, valueCell, pair[1])
	}
}
