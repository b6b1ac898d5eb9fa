package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/privacyscore/internal/profile"
	"github.com/dshills/privacyscore/internal/schema"
)

func aztecReport() *schema.Report {
	return schema.NewReport(schema.Profile{
		Name:           "Aztec-like L2",
		Description:    "Inspired by Aztec: zk rollup with privacy-preserving smart contracts.",
		UsesZK:         true,
		OpenSource:     true,
		Audited:        true,
		SoundnessFocus: true,
	}, 70)
}

// assertText fails with a character-level diff when got differs from want.
func assertText(t *testing.T, want, got string) {
	t.Helper()
	if want == got {
		return
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(want, got, false)
	t.Errorf("output mismatch (-want +got):\n%s\n\ngot:\n%s", dmp.DiffPrettyText(diffs), got)
}

func TestNewRenderer_JSON(t *testing.T) {
	r, err := NewRenderer("json")
	require.NoError(t, err)
	out, err := r.Render(aztecReport())
	require.NoError(t, err)

	want := `{
  "name": "Aztec-like L2",
  "description": "Inspired by Aztec: zk rollup with privacy-preserving smart contracts.",
  "uses_zk": true,
  "uses_fhe": false,
  "open_source": true,
  "audited": true,
  "soundness_focus": true,
  "score": 70
}
`
	assertText(t, want, string(out))
}

func TestNewRenderer_JSONProducesValidJSON(t *testing.T) {
	r, err := NewRenderer("json")
	require.NoError(t, err)
	out, err := r.Render(aztecReport())
	require.NoError(t, err)

	var decoded schema.Report
	require.NoError(t, json.Unmarshal(out, &decoded), "output: %s", out)
	assert.Equal(t, *aztecReport(), decoded)
}

func TestNewRenderer_JSONEscapesQuotes(t *testing.T) {
	r, err := NewRenderer("json")
	require.NoError(t, err)
	report := schema.NewReport(schema.Profile{
		Name:        `The "Vault" <beta>`,
		Description: "a & b",
	}, 0)
	out, err := r.Render(report)
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, `"name": "The \"Vault\" <beta>",`)
	assert.Contains(t, s, `"description": "a & b",`)
	assert.Contains(t, s, `"score": 0`+"\n}")
}

func TestNewRenderer_Text(t *testing.T) {
	r, err := NewRenderer("text")
	require.NoError(t, err)
	out, err := r.Render(aztecReport())
	require.NoError(t, err)

	want := `Name: Aztec-like L2
Description: Inspired by Aztec: zk rollup with privacy-preserving smart contracts.

Features:
  - Uses zero-knowledge proofs: yes
  - Uses fully homomorphic encryption: no
  - Open source code: yes
  - External audits: yes
  - Formal soundness focus: yes

Estimated privacy-strength score: 70/100

Note: This score is a toy heuristic for educational purposes only.
Always rely on official audits, specifications, and documentation.
`
	assertText(t, want, string(out))
}

func TestNewRenderer_TextDoesNotEscape(t *testing.T) {
	r, err := NewRenderer("text")
	require.NoError(t, err)
	out, err := r.Render(schema.NewReport(schema.Profile{Name: `"Quoted" <x> & y`}, 0))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "Name: \"Quoted\" <x> & y\n"), "got %q", out)
}

func TestNewRenderer_EmptyFormatIsText(t *testing.T) {
	r, err := NewRenderer("")
	require.NoError(t, err)
	assert.IsType(t, &textRenderer{}, r)
}

func TestNewRenderer_UnknownFormat(t *testing.T) {
	_, err := NewRenderer("xml")
	assert.Error(t, err)
}

func TestRender_NilReport(t *testing.T) {
	for _, format := range []string{"text", "json"} {
		r, err := NewRenderer(format)
		require.NoError(t, err)
		_, err = r.Render(nil)
		assert.Error(t, err, format)
	}
}

func TestRenderers_AgreeOnScore(t *testing.T) {
	report := aztecReport()
	report.Score = 55

	text, err := (&textRenderer{}).Render(report)
	require.NoError(t, err)
	js, err := (&jsonRenderer{}).Render(report)
	require.NoError(t, err)

	assert.Contains(t, string(text), "score: 55/100")
	var decoded struct {
		Score int `json:"score"`
	}
	require.NoError(t, json.Unmarshal(js, &decoded))
	assert.Equal(t, 55, decoded.Score)
}

func TestList(t *testing.T) {
	want := `Built-in example profiles related to Web3 privacy and soundness:
- aztec: Aztec-like L2
- zama: Zama-like FHE stack
- soundness: Soundness-focused lab
`
	assertText(t, want, string(List(profile.All())))
}

func TestUnknownProfile(t *testing.T) {
	out := string(UnknownProfile(profile.All()))
	assert.True(t, strings.HasPrefix(out, "Unknown profile key. Available options:\n"), "got %q", out)
	assert.True(t, strings.HasSuffix(out, string(List(profile.All()))), "got %q", out)
}
