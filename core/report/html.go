package report

import (
	"fmt"
	"html/template"
	"os"
	"time"

	"otc-compare/core/reconcile"
)

var htmlTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Marketplace vs Discord - {{.Generated}}</title>
<style>
table { border-collapse: collapse; font-family: sans-serif; font-size: 13px; }
th, td { border: 1px solid #ccc; padding: 4px 8px; }
th { background: #eee; }
td.num { text-align: right; }
</style>
</head>
<body>
<h1>Marketplace vs Discord</h1>
<p>Generated {{.Generated}} &middot; SB reference {{.SBGold}} gold &middot; run {{.RunID}}</p>
<p>{{.Summary.Total}} items: {{.Summary.CheaperOnDiscord}} cheaper on Discord, {{.Summary.CheaperOnMarketplace}} cheaper on Marketplace, {{.Summary.Undetermined}} undetermined</p>
<table>
<tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr>
{{range .Rows}}<tr{{if .Color}} style="background-color: #{{.Color}}"{{end}}>{{range .Cells}}<td>{{.}}</td>{{end}}</tr>
{{end}}</table>
</body>
</html>
`))

// Meta describes the run a report was generated from.
type Meta struct {
	RunID     string
	Generated time.Time
	// SBGold is nil when the reference price was unavailable.
	SBGold *float64
}

type htmlRow struct {
	Color template.CSS
	Cells []string
}

// WriteHTML writes the records as a colour-coded HTML table.
func WriteHTML(path string, records []reconcile.Comparison, meta Meta) error {
	rows := make([]htmlRow, len(records))
	for i, rec := range records {
		values := cells(rec)
		text := make([]string, len(values))
		for j, v := range values {
			text[j] = cellText(v)
		}
		rows[i] = htmlRow{Color: template.CSS(RowColor(rec.Recommendation)), Cells: text}
	}

	sbGold := "unavailable"
	if meta.SBGold != nil {
		sbGold = FormatNumber(meta.SBGold)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	err = htmlTemplate.Execute(f, map[string]any{
		"Generated": meta.Generated.Format(time.RFC1123),
		"RunID":     meta.RunID,
		"SBGold":    sbGold,
		"Summary":   reconcile.Summarize(records),
		"Headers":   Headers,
		"Rows":      rows,
	})
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}
	return nil
}

func cellText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case float64:
		return FormatNumber(&t)
	default:
		return fmt.Sprint(t)
	}
}
