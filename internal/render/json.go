package render

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/dshills/privacyscore/internal/schema"
)

type jsonRenderer struct{}

func (r *jsonRenderer) Render(report *schema.Report) ([]byte, error) {
	if report == nil {
		return nil, errors.New("render: nil report")
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return nil, errors.Wrap(err, "rendering json")
	}
	return buf.Bytes(), nil
}
