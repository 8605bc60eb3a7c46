package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"textsum/internal/service"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	statStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	noteStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// Write renders reports in format: text, json or yaml.
func Write(w io.Writer, format string, reports []service.Report) error {
	switch format {
	case "text", "":
		return writeText(w, reports)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

func writeText(w io.Writer, reports []service.Report) error {
	var b strings.Builder
	for i, r := range reports {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Text(r))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Text renders one report for a terminal.
func Text(r service.Report) string {
	res := r.Result
	var b strings.Builder
	switch r.Path {
	case "":
	case "-":
		b.WriteString(titleStyle.Render("stdin") + "\n")
	default:
		b.WriteString(titleStyle.Render(r.Path) + "\n")
	}
	if res.Unmodified {
		b.WriteString(titleStyle.Render(res.Message) + "\n\n")
		b.WriteString(res.Summary + "\n")
	} else {
		b.WriteString(titleStyle.Render(fmt.Sprintf("Summary (reduced by %.0f%%)", res.CompressionRatio*100)) + "\n\n")
		b.WriteString(res.Summary + "\n\n")
		b.WriteString(statStyle.Render(fmt.Sprintf("- Compressed %d sentences into %d", res.OriginalSentenceCount, res.SummarySentenceCount)) + "\n")
		b.WriteString(statStyle.Render(fmt.Sprintf("- Saved you from reading %d words", res.WordCountSaved)) + "\n")
		b.WriteString(res.Message + "\n")
	}
	if r.Notice != "" {
		b.WriteString(noteStyle.Render(r.Notice) + "\n")
	}
	return b.String()
}
