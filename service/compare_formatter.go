package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/codeprint-dev/codeprint/domain"
)

// CompareFormatter renders pairwise comparison reports.
type CompareFormatter struct {
	utils *FormatUtils
}

// NewCompareFormatter creates a new compare formatter
func NewCompareFormatter() *CompareFormatter {
	return &CompareFormatter{
		utils: NewFormatUtils(),
	}
}

// Format formats the comparison response according to the specified format
func (f *CompareFormatter) Format(response *domain.CompareResponse, format domain.OutputFormat) (string, error) {
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
func (f *CompareFormatter) Write(response *domain.CompareResponse, format domain.OutputFormat, writer io.Writer) error {
	output, err := f.Format(response, format)
	if err != nil {
		return err
	}

	if _, err := writer.Write([]byte(output)); err != nil {
		return domain.NewOutputError("failed to write output", err)
	}
	return nil
}

func (f *CompareFormatter) formatText(response *domain.CompareResponse) string {
	var builder strings.Builder

	builder.WriteString(f.utils.FormatMainHeader("Similarity Comparison"))

	builder.WriteString(f.utils.FormatSectionHeader("RESULT"))
	builder.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, "Left", response.LabelA))
	builder.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, "Right", response.LabelB))
	builder.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, "Score", f.utils.FormatScore(response.Score)))
	builder.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, "Confidence", f.utils.FormatConfidenceWithColor(response.Confidence)))
	builder.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, "Status", f.utils.FormatFlag(response.Flagged)))
	builder.WriteString(f.utils.FormatSectionSeparator())

	builder.WriteString(f.utils.FormatSectionHeader("DETAILS"))
	builder.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, "Flag threshold", f.utils.FormatScore(response.FlagThreshold)))
	builder.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, "Shared token types", response.SharedTokens))
	builder.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, "Nodes (left)", response.TotalNodesA))
	builder.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, "Nodes (right)", response.TotalNodesB))
	builder.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, "Duration", f.utils.FormatDuration(response.Duration)))
	builder.WriteString(f.utils.FormatSectionSeparator())

	return builder.String()
}

func (f *CompareFormatter) formatCSV(response *domain.CompareResponse) (string, error) {
	var builder strings.Builder
	w := csv.NewWriter(&builder)

	header := []string{"label_a", "label_b", "score", "confidence", "flagged", "shared_tokens", "total_nodes_a", "total_nodes_b"}
	if err := w.Write(header); err != nil {
		return "", domain.NewOutputError("failed to write CSV header", err)
	}

	record := []string{
		response.LabelA,
		response.LabelB,
		fmt.Sprintf("%.4f", response.Score),
		string(response.Confidence),
		strconv.FormatBool(response.Flagged),
		strconv.Itoa(response.SharedTokens),
		strconv.Itoa(response.TotalNodesA),
		strconv.Itoa(response.TotalNodesB),
	}
	if err := w.Write(record); err != nil {
		return "", domain.NewOutputError("failed to write CSV record", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", domain.NewOutputError("failed to flush CSV output", err)
	}
	return builder.String(), nil
}
