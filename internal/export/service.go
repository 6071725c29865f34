// Package export renders batch results into XLSX workbooks for the
// reporting consumers.
package export

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/wegtools/minutes-tracker/internal/entity"
	"github.com/wegtools/minutes-tracker/internal/tracker"
)

const (
	sheetTracker = "Approved_TOPs"
	sheetQA      = "QA_Summary"
	sheetDetail  = "All_TOPs_Detail"
)

type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// WriteWorkbook writes the main workbook: the action tracker, the QA
// summary, and the full per-item detail.
func (s *Service) WriteWorkbook(trackerRows []tracker.Row, items []entity.AgendaItem, qa []entity.QASummary, outPath string) error {
	start := time.Now()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := s.writeTrackerSheet(f, sheetTracker, trackerRows); err != nil {
		return err
	}
	if err := s.writeQASheet(f, sheetQA, qa); err != nil {
		return err
	}
	if err := s.writeDetailSheet(f, sheetDetail, items); err != nil {
		return err
	}
	if err := finalize(f, sheetTracker); err != nil {
		return err
	}
	if err := f.SaveAs(outPath); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"path", outPath,
		"tracker_rows", len(trackerRows),
		"detail_rows", len(items),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// WriteByYearWorkbook writes one sheet per meeting year holding only the
// approved items of that year, plus the QA summary.
func (s *Service) WriteByYearWorkbook(items []entity.AgendaItem, qa []entity.QASummary, outPath string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	byYear := make(map[int][]entity.AgendaItem)
	for _, it := range items {
		if it.Approved == nil || !*it.Approved || it.MeetingDate == nil {
			continue
		}
		year, ok := yearOf(*it.MeetingDate)
		if !ok {
			continue
		}
		byYear[year] = append(byYear[year], it)
	}
	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	firstSheet := sheetQA
	for _, y := range years {
		name := strconv.Itoa(y)
		if err := s.writeDetailSheet(f, name, byYear[y]); err != nil {
			return err
		}
		if firstSheet == sheetQA {
			firstSheet = name
		}
	}
	if err := s.writeQASheet(f, sheetQA, qa); err != nil {
		return err
	}
	if err := finalize(f, firstSheet); err != nil {
		return err
	}
	if err := f.SaveAs(outPath); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.by_year.ok", "path", outPath, "years", len(years))
	return nil
}

func (s *Service) writeTrackerSheet(f *excelize.File, sheet string, rows []tracker.Row) error {
	headers := []string{
		"Meeting Date", "TOP", "Title",
		"Yes", "No", "Abstain",
		"Source File", "Page Start", "Page End",
		"Owner", "Status", "Last Board Action", "Next Steps", "Due Date", "Risk", "Notes",
	}
	if err := writeHeader(f, sheet, headers); err != nil {
		return err
	}
	for i, r := range rows {
		values := []any{
			optStr(r.MeetingDate), r.Number, optStr(r.Title),
			optInt(r.VotesYes), optInt(r.VotesNo), optInt(r.VotesAbstain),
			r.SourceFile, optInt(r.PageStart), optInt(r.PageEnd),
			r.Owner, string(r.Status), r.LastBoardAction, r.NextSteps, r.DueDate, r.RiskFlag, r.Notes,
		}
		if err := writeRow(f, sheet, i+2, values); err != nil {
			return err
		}
	}
	_ = f.SetColWidth(sheet, "A", "A", 12)
	_ = f.SetColWidth(sheet, "C", "C", 48)
	_ = f.SetColWidth(sheet, "G", "G", 42)
	return nil
}

func (s *Service) writeDetailSheet(f *excelize.File, sheet string, items []entity.AgendaItem) error {
	headers := []string{
		"Meeting Date", "TOP", "Title", "Title Issues",
		"Approved", "Explicit Decision",
		"Yes", "No", "Abstain",
		"Source File", "Page Start", "Page End", "Block Length",
	}
	if err := writeHeader(f, sheet, headers); err != nil {
		return err
	}
	for i, it := range items {
		values := []any{
			optStr(it.MeetingDate), it.Number, optStr(it.Title), strings.Join(it.TitleIssues, ","),
			optBool(it.Approved), optBool(it.ExplicitDecision),
			optInt(it.VotesYes), optInt(it.VotesNo), optInt(it.VotesAbstain),
			it.SourceFile, optInt(it.PageStart), optInt(it.PageEnd), it.BlockLen,
		}
		if err := writeRow(f, sheet, i+2, values); err != nil {
			return err
		}
	}
	_ = f.SetColWidth(sheet, "A", "A", 12)
	_ = f.SetColWidth(sheet, "C", "C", 48)
	_ = f.SetColWidth(sheet, "J", "J", 42)
	return nil
}

func (s *Service) writeQASheet(f *excelize.File, sheet string, rows []entity.QASummary) error {
	headers := []string{
		"File", "Meeting Date", "Items", "Approved", "Rejected", "Unknown",
		"Used OCR", "Used Layout", "Avg Chars/Page",
	}
	if err := writeHeader(f, sheet, headers); err != nil {
		return err
	}
	for i, qa := range rows {
		values := []any{
			qa.File, optStr(qa.MeetingDate), qa.ItemCount, qa.ApprovedCount,
			qa.RejectedCount, qa.UnknownCount, qa.UsedOCR, qa.UsedLayout,
			qa.AvgCharsPerPage,
		}
		if err := writeRow(f, sheet, i+2, values); err != nil {
			return err
		}
	}
	_ = f.SetColWidth(sheet, "A", "A", 42)
	return nil
}

func writeHeader(f *excelize.File, sheet string, headers []string) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("new sheet %s: %w", sheet, err)
	}
	return writeRow(f, sheet, 1, toAnySlice(headers))
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("set cell %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}

// finalize drops the default sheet and activates the leading one.
func finalize(f *excelize.File, active string) error {
	if idx, _ := f.GetSheetIndex("Sheet1"); idx != -1 {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return err
		}
	}
	idx, err := f.GetSheetIndex(active)
	if err != nil || idx == -1 {
		return fmt.Errorf("missing sheet %s", active)
	}
	f.SetActiveSheet(idx)
	return nil
}

func yearOf(date string) (int, bool) {
	parts := strings.SplitN(date, "-", 2)
	y, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	return y, true
}

func toAnySlice(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func optStr(s *string) any {
	if s == nil {
		return ""
	}
	return *s
}

func optInt(n *int) any {
	if n == nil {
		return ""
	}
	return *n
}

func optBool(b *bool) any {
	if b == nil {
		return ""
	}
	return *b
}
