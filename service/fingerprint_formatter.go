package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/codeprint-dev/codeprint/domain"
)

// FingerprintFormatter renders structural fingerprint reports.
type FingerprintFormatter struct {
	utils *FormatUtils
}

// NewFingerprintFormatter creates a new fingerprint formatter
func NewFingerprintFormatter() *FingerprintFormatter {
	return &FingerprintFormatter{
		utils: NewFormatUtils(),
	}
}

// Format formats the fingerprint response according to the specified format
func (f *FingerprintFormatter) Format(response *domain.FingerprintResponse, format domain.OutputFormat) (string, error) {
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
func (f *FingerprintFormatter) Write(response *domain.FingerprintResponse, format domain.OutputFormat, writer io.Writer) error {
	output, err := f.Format(response, format)
	if err != nil {
		return err
	}

	if _, err := writer.Write([]byte(output)); err != nil {
		return domain.NewOutputError("failed to write output", err)
	}
	return nil
}

func (f *FingerprintFormatter) formatText(response *domain.FingerprintResponse) string {
	var builder strings.Builder

	builder.WriteString(f.utils.FormatMainHeader("Structural Fingerprint"))

	builder.WriteString(f.utils.FormatSectionHeader("SUMMARY"))
	builder.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, "Label", response.Label))
	builder.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, "Language", response.Language))
	builder.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, "Tokens", response.TokenCount))
	builder.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, "Unique types", response.UniqueTypes))
	builder.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, "Duration", f.utils.FormatDuration(response.Duration)))
	builder.WriteString(f.utils.FormatSectionSeparator())

	if len(response.Weights) > 0 {
		builder.WriteString(f.utils.FormatSectionHeader("WEIGHTS"))
		for _, key := range sortedWeightKeys(response.Weights) {
			builder.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, key, f.utils.FormatScore(response.Weights[key])))
		}
		builder.WriteString(f.utils.FormatSectionSeparator())
	}

	builder.WriteString(f.utils.FormatSectionHeader("TOKEN STRING"))
	builder.WriteString(fmt.Sprintf("%s%s\n", strings.Repeat(" ", SectionPadding), response.TokenString))
	builder.WriteString(f.utils.FormatSectionSeparator())

	return builder.String()
}

// sortedWeightKeys orders fingerprint dimensions by descending weight, then
// by key so equal weights render in a stable order.
func sortedWeightKeys(weights map[string]float64) []string {
	keys := make([]string, 0, len(weights))
	for key := range weights {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if weights[keys[i]] != weights[keys[j]] {
			return weights[keys[i]] > weights[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}

func (f *FingerprintFormatter) formatCSV(response *domain.FingerprintResponse) (string, error) {
	var builder strings.Builder
	w := csv.NewWriter(&builder)

	header := []string{"label", "language", "token_count", "unique_types", "token_string"}
	if err := w.Write(header); err != nil {
		return "", domain.NewOutputError("failed to write CSV header", err)
	}

	record := []string{
		response.Label,
		string(response.Language),
		strconv.Itoa(response.TokenCount),
		strconv.Itoa(response.UniqueTypes),
		response.TokenString,
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
