package report

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

var exportHeader = []string{
	"rank", "id", "name", "company",
	"budget_score", "authority_score", "need_score", "timeline_score",
	"overall_score", "tier",
	"qualification_factor", "recency_score", "engagement_score",
	"priority_score", "priority_level",
	"recommended_approach",
}

func exportRow(i int, e Entry) []string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	q, p := e.Qualification, e.Prioritization
	return []string{
		strconv.Itoa(i + 1), e.ID, e.Name, e.Company,
		f(q.BudgetScore), f(q.AuthorityScore), f(q.NeedScore), f(q.TimelineScore),
		f(q.OverallScore), string(q.Tier),
		f(p.Factors.QualificationScore), f(p.Factors.RecencyScore), f(p.Factors.EngagementScore),
		f(p.PriorityScore), string(p.PriorityLevel),
		e.RecommendedApproach,
	}
}

// WriteCSV writes the ranking as CSV with a header row.
func WriteCSV(w io.Writer, s Snapshot) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(exportHeader); err != nil {
		return eris.Wrap(err, "report: write CSV header")
	}
	for i, e := range s.PrioritizedLeads {
		if err := cw.Write(exportRow(i, e)); err != nil {
			return eris.Wrap(err, "report: write CSV row")
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return eris.Wrap(err, "report: flush CSV")
	}
	return nil
}

// WriteCSVFile writes the ranking as CSV to path. A failed close is
// reported, since the file may be incomplete.
func WriteCSVFile(path string, s Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "report: create %s", path)
	}
	if err := WriteCSV(f, s); err != nil {
		f.Close() //nolint:errcheck
		return err
	}
	if err := f.Close(); err != nil {
		return eris.Wrapf(err, "report: close %s", path)
	}
	return nil
}

// SheetName is the worksheet WriteXLSX creates.
const SheetName = "Leads"

// WriteXLSX writes the ranking to a single-sheet workbook at path.
// Numeric columns are stored as numbers.
func WriteXLSX(path string, s Snapshot) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet(SheetName)
	if err != nil {
		return eris.Wrap(err, "report: add sheet")
	}

	header := sheet.AddRow()
	for _, h := range exportHeader {
		header.AddCell().SetString(h)
	}

	for i, e := range s.PrioritizedLeads {
		row := sheet.AddRow()
		q, p := e.Qualification, e.Prioritization

		row.AddCell().SetInt(i + 1)
		row.AddCell().SetString(e.ID)
		row.AddCell().SetString(e.Name)
		row.AddCell().SetString(e.Company)
		for _, v := range []float64{q.BudgetScore, q.AuthorityScore, q.NeedScore, q.TimelineScore, q.OverallScore} {
			row.AddCell().SetFloat(v)
		}
		row.AddCell().SetString(string(q.Tier))
		for _, v := range []float64{p.Factors.QualificationScore, p.Factors.RecencyScore, p.Factors.EngagementScore, p.PriorityScore} {
			row.AddCell().SetFloat(v)
		}
		row.AddCell().SetString(string(p.PriorityLevel))
		row.AddCell().SetString(e.RecommendedApproach)
	}

	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "report: save %s", path)
	}
	return nil
}
