package service

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/codeprint-dev/codeprint/domain"
)

// CorpusListFormatter renders corpus listings.
type CorpusListFormatter struct {
	utils *FormatUtils
}

// NewCorpusListFormatter creates a new corpus list formatter
func NewCorpusListFormatter() *CorpusListFormatter {
	return &CorpusListFormatter{
		utils: NewFormatUtils(),
	}
}

// Format formats the corpus listing according to the specified format
func (f *CorpusListFormatter) Format(response *domain.CorpusListResponse, format domain.OutputFormat) (string, error) {
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
func (f *CorpusListFormatter) Write(response *domain.CorpusListResponse, format domain.OutputFormat, writer io.Writer) error {
	output, err := f.Format(response, format)
	if err != nil {
		return err
	}

	if _, err := writer.Write([]byte(output)); err != nil {
		return domain.NewOutputError("failed to write output", err)
	}
	return nil
}

func (f *CorpusListFormatter) formatText(response *domain.CorpusListResponse) string {
	var builder strings.Builder

	builder.WriteString(f.utils.FormatMainHeader("Corpus Contents"))

	builder.WriteString(f.utils.FormatSectionHeader("SUMMARY"))
	builder.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, "Corpus", response.CorpusPath))
	builder.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, "Entries", len(response.Entries)))
	builder.WriteString(f.utils.FormatSectionSeparator())

	if len(response.Entries) == 0 {
		return builder.String()
	}

	builder.WriteString(f.utils.FormatSectionHeader("ENTRIES"))
	for _, entry := range response.Entries {
		builder.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, entry.ID, strconv.Itoa(entry.TokenCount)+" tokens"))
	}
	builder.WriteString(f.utils.FormatSectionSeparator())

	return builder.String()
}

func (f *CorpusListFormatter) formatCSV(response *domain.CorpusListResponse) (string, error) {
	var builder strings.Builder
	w := csv.NewWriter(&builder)

	header := []string{"id", "token_count"}
	if err := w.Write(header); err != nil {
		return "", domain.NewOutputError("failed to write CSV header", err)
	}

	for _, entry := range response.Entries {
		record := []string{entry.ID, strconv.Itoa(entry.TokenCount)}
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
