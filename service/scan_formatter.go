package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/codeprint-dev/codeprint/domain"
)

// ScanFormatter renders bulk scan reports.
type ScanFormatter struct {
	utils *FormatUtils
}

// NewScanFormatter creates a new scan formatter
func NewScanFormatter() *ScanFormatter {
	return &ScanFormatter{
		utils: NewFormatUtils(),
	}
}

// Format formats the scan response according to the specified format
func (f *ScanFormatter) Format(response *domain.ScanResponse, format domain.OutputFormat) (string, error) {
	switch format {
	case domain.OutputFormatText:
		return f.formatText(response), nil
	case domain.OutputFormatJSON:
		return EncodeJSON(response)
	case domain.OutputFormatYAML:
		return EncodeYAML(response)
	case domain.OutputFormatCSV:
		return f.formatCSV(response)
	default:
		return "", domain.NewUnsupportedFormatError(string(format))
	}
}

// Write formats the response and writes it to the writer
func (f *ScanFormatter) Write(response *domain.ScanResponse, format domain.OutputFormat, writer io.Writer) error {
	output, err := f.Format(response, format)
	if err != nil {
		return err
	}

	if _, err := writer.Write([]byte(output)); err != nil {
		return domain.NewOutputError("failed to write output", err)
	}
	return nil
}

func (f *ScanFormatter) formatText(response *domain.ScanResponse) string {
	var builder strings.Builder

	builder.WriteString(f.utils.FormatMainHeader("Similarity Scan"))

	if response.Summary != nil {
		builder.WriteString(f.utils.FormatSectionHeader("SUMMARY"))
		builder.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, "Files scanned", response.Summary.TotalFiles))
		builder.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, "Files skipped", response.Summary.SkippedFiles))
		builder.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, "Pairs compared", response.Summary.ComparedPairs))
		builder.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, "Pairs flagged", response.Summary.FlaggedPairs))
		builder.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, "Flag threshold", f.utils.FormatScore(response.Summary.FlagThreshold)))
		builder.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, "Duration", f.utils.FormatDuration(response.Duration)))
		builder.WriteString(f.utils.FormatSectionSeparator())
	}

	builder.WriteString(f.formatSuspiciousPairs(response.SuspiciousPairs))
	builder.WriteString(f.formatMatrix(response.Labels, response.Matrix))
	builder.WriteString(f.utils.FormatWarningsSection(response.Warnings))

	return builder.String()
}

func (f *ScanFormatter) formatSuspiciousPairs(pairs []domain.SuspiciousPair) string {
	var builder strings.Builder

	builder.WriteString(f.utils.FormatSectionHeader("SUSPICIOUS PAIRS"))

	if len(pairs) == 0 {
		builder.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, "Result", "no pair crossed the flag threshold"))
		builder.WriteString(f.utils.FormatSectionSeparator())
		return builder.String()
	}

	for i, pair := range pairs {
		builder.WriteString(fmt.Sprintf("  #%d  score %s  confidence %s\n",
			i+1, f.utils.FormatScore(pair.Score), f.utils.FormatConfidenceWithColor(pair.Confidence)))
		builder.WriteString(fmt.Sprintf("      %s\n", pair.FileA))
		builder.WriteString(fmt.Sprintf("      %s\n", pair.FileB))
	}
	builder.WriteString(f.utils.FormatSectionSeparator())

	return builder.String()
}

// formatMatrix renders the full pairwise matrix. Labels are usually file
// paths and far wider than a matrix cell, so rows and columns are keyed by
// a bracketed index and the legend above maps indexes back to labels.
func (f *ScanFormatter) formatMatrix(labels []string, matrix [][]float64) string {
	if len(labels) == 0 || len(matrix) == 0 {
		return ""
	}

	var builder strings.Builder

	builder.WriteString(f.utils.FormatSectionHeader("SIMILARITY MATRIX"))
	for i, label := range labels {
		builder.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, fmt.Sprintf("[%d]", i+1), label))
	}
	builder.WriteString("\n")

	headerWidth := len(fmt.Sprintf("[%d]", len(labels)))
	builder.WriteString(strings.Repeat(" ", SectionPadding+headerWidth))
	for i := range labels {
		builder.WriteString(fmt.Sprintf("%*s", domain.DefaultMatrixCellWidth, fmt.Sprintf("[%d]", i+1)))
	}
	builder.WriteString("\n")

	for i, row := range matrix {
		builder.WriteString(fmt.Sprintf("%s%-*s", strings.Repeat(" ", SectionPadding), headerWidth, fmt.Sprintf("[%d]", i+1)))
		for _, score := range row {
			builder.WriteString(fmt.Sprintf("%*.4f", domain.DefaultMatrixCellWidth, score))
		}
		builder.WriteString("\n")
	}
	builder.WriteString(f.utils.FormatSectionSeparator())

	return builder.String()
}

func (f *ScanFormatter) formatCSV(response *domain.ScanResponse) (string, error) {
	var builder strings.Builder
	w := csv.NewWriter(&builder)

	header := []string{"file_a", "file_b", "score", "confidence", "shared_tokens"}
	if err := w.Write(header); err != nil {
		return "", domain.NewOutputError("failed to write CSV header", err)
	}

	for _, pair := range response.SuspiciousPairs {
		record := []string{
			pair.FileA,
			pair.FileB,
			fmt.Sprintf("%.4f", pair.Score),
			string(pair.Confidence),
			strconv.Itoa(pair.SharedTokens),
		}
		if err := w.Write(record); err != nil {
			return "", domain.NewOutputError("failed to write CSV record", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", domain.NewOutputError("failed to flush CSV output", err)
	}
	return builder.String(), nil
}
