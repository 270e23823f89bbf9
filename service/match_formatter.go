package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/codeprint-dev/codeprint/domain"
)

// MatchFormatter renders corpus lookup reports.
type MatchFormatter struct {
	utils *FormatUtils
}

// NewMatchFormatter creates a new match formatter
func NewMatchFormatter() *MatchFormatter {
	return &MatchFormatter{
		utils: NewFormatUtils(),
	}
}

// Format formats the match response according to the specified format
func (f *MatchFormatter) Format(response *domain.MatchResponse, format domain.OutputFormat) (string, error) {
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
func (f *MatchFormatter) Write(response *domain.MatchResponse, format domain.OutputFormat, writer io.Writer) error {
	output, err := f.Format(response, format)
	if err != nil {
		return err
	}

	if _, err := writer.Write([]byte(output)); err != nil {
		return domain.NewOutputError("failed to write output", err)
	}
	return nil
}

func (f *MatchFormatter) formatText(response *domain.MatchResponse) string {
	var builder strings.Builder

	builder.WriteString(f.utils.FormatMainHeader("Corpus Match"))

	builder.WriteString(f.utils.FormatSectionHeader("RESULT"))
	builder.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, "Target", response.Label))

	if !response.Found {
		builder.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, "Match", "none"))
		builder.WriteString(f.utils.FormatSectionSeparator())
		builder.WriteString(f.formatCorpusSection(response))
		return builder.String()
	}

	matchedID := ""
	if response.MatchedID != nil {
		matchedID = *response.MatchedID
	}
	builder.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, "Match", matchedID))
	builder.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, "Score", f.utils.FormatScore(response.Score)))
	builder.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, "Confidence", f.utils.FormatConfidenceWithColor(response.Confidence)))
	builder.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, "Status", f.utils.FormatFlag(response.Flagged)))
	builder.WriteString(f.utils.FormatSectionSeparator())

	builder.WriteString(f.utils.FormatSectionHeader("DETAILS"))
	builder.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, "Shared token types", response.SharedTokens))
	builder.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, "Nodes (target)", response.TotalNodesTarget))
	if response.TotalNodesMatch != nil {
		builder.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, "Nodes (match)", *response.TotalNodesMatch))
	}
	builder.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, "Duration", f.utils.FormatDuration(response.Duration)))
	builder.WriteString(f.utils.FormatSectionSeparator())

	builder.WriteString(f.formatCorpusSection(response))
	return builder.String()
}

func (f *MatchFormatter) formatCorpusSection(response *domain.MatchResponse) string {
	var builder strings.Builder

	builder.WriteString(f.utils.FormatSectionHeader("CORPUS"))
	builder.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, "Entries", response.CorpusSize))
	if response.SkippedTokens > 0 {
		builder.WriteString(f.utils.FormatLabelWithIndent(SectionPadding, "Skipped tokens", response.SkippedTokens))
	}
	builder.WriteString(f.utils.FormatSectionSeparator())

	return builder.String()
}

func (f *MatchFormatter) formatCSV(response *domain.MatchResponse) (string, error) {
	var builder strings.Builder
	w := csv.NewWriter(&builder)

	header := []string{"label", "found", "matched_id", "score", "confidence", "flagged", "shared_tokens", "corpus_size", "skipped_tokens"}
	if err := w.Write(header); err != nil {
		return "", domain.NewOutputError("failed to write CSV header", err)
	}

	matchedID := ""
	if response.MatchedID != nil {
		matchedID = *response.MatchedID
	}
	record := []string{
		response.Label,
		strconv.FormatBool(response.Found),
		matchedID,
		fmt.Sprintf("%.4f", response.Score),
		string(response.Confidence),
		strconv.FormatBool(response.Flagged),
		strconv.Itoa(response.SharedTokens),
		strconv.Itoa(response.CorpusSize),
		strconv.Itoa(response.SkippedTokens),
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
