package render

import (
	"bytes"
	"text/template"

	"github.com/pkg/errors"

	"github.com/dshills/privacyscore/internal/schema"
)

type textRenderer struct{}

var textTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"yesno": yesNo,
}).Parse(`Name: {{ .Name }}
Description: {{ .Description }}

Features:
{{ range .FeatureLines }}  - {{ .Label }}: {{ yesno .Enabled }}
{{ end }}
Estimated privacy-strength score: {{ .Score }}/100

Note: This score is a toy heuristic for educational purposes only.
Always rely on official audits, specifications, and documentation.
`))

func (r *textRenderer) Render(report *schema.Report) ([]byte, error) {
	if report == nil {
		return nil, errors.New("render: nil report")
	}
	var buf bytes.Buffer
	if err := textTemplate.Execute(&buf, report); err != nil {
		return nil, errors.Wrap(err, "rendering text")
	}
	return buf.Bytes(), nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
