package schema

// Profile describes a project's privacy and security posture as a set of
// feature flags plus descriptive text.
type Profile struct {
	Name           string
	Description    string
	UsesZK         bool
	UsesFHE        bool
	OpenSource     bool
	Audited        bool
	SoundnessFocus bool
}

// Feature identifies one of the boolean flags on a Profile.
type Feature string

const (
	FeatureZK         Feature = "zk"
	FeatureFHE        Feature = "fhe"
	FeatureOpenSource Feature = "open-source"
	FeatureAudited    Feature = "audited"
	FeatureSoundness  Feature = "soundness"
)

// Features lists every feature in report order.
var Features = []Feature{
	FeatureZK,
	FeatureFHE,
	FeatureOpenSource,
	FeatureAudited,
	FeatureSoundness,
}

// Label returns the human-readable description used in text reports.
// Returns the raw feature name for an unrecognised feature.
func (f Feature) Label() string {
	switch f {
	case FeatureZK:
		return "Uses zero-knowledge proofs"
	case FeatureFHE:
		return "Uses fully homomorphic encryption"
	case FeatureOpenSource:
		return "Open source code"
	case FeatureAudited:
		return "External audits"
	case FeatureSoundness:
		return "Formal soundness focus"
	default:
		return string(f)
	}
}

// Has reports whether the profile has feature f enabled.
func (p Profile) Has(f Feature) bool {
	switch f {
	case FeatureZK:
		return p.UsesZK
	case FeatureFHE:
		return p.UsesFHE
	case FeatureOpenSource:
		return p.OpenSource
	case FeatureAudited:
		return p.Audited
	case FeatureSoundness:
		return p.SoundnessFocus
	}
	return false
}

// Report is a profile paired with its computed score. Field order matches
// the JSON output key order.
type Report struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	UsesZK         bool   `json:"uses_zk"`
	UsesFHE        bool   `json:"uses_fhe"`
	OpenSource     bool   `json:"open_source"`
	Audited        bool   `json:"audited"`
	SoundnessFocus bool   `json:"soundness_focus"`
	Score          int    `json:"score"`
}

// NewReport builds a Report from p and a score computed by the caller.
func NewReport(p Profile, score int) *Report {
	return &Report{
		Name:           p.Name,
		Description:    p.Description,
		UsesZK:         p.UsesZK,
		UsesFHE:        p.UsesFHE,
		OpenSource:     p.OpenSource,
		Audited:        p.Audited,
		SoundnessFocus: p.SoundnessFocus,
		Score:          score,
	}
}

// Profile returns the profile the report was built from.
func (r *Report) Profile() Profile {
	return Profile{
		Name:           r.Name,
		Description:    r.Description,
		UsesZK:         r.UsesZK,
		UsesFHE:        r.UsesFHE,
		OpenSource:     r.OpenSource,
		Audited:        r.Audited,
		SoundnessFocus: r.SoundnessFocus,
	}
}

// FeatureLine is one row of the features section of a text report.
type FeatureLine struct {
	Label   string
	Enabled bool
}

// FeatureLines returns the report's features in report order.
func (r *Report) FeatureLines() []FeatureLine {
	p := r.Profile()
	lines := make([]FeatureLine, 0, len(Features))
	for _, f := range Features {
		lines = append(lines, FeatureLine{Label: f.Label(), Enabled: p.Has(f)})
	}
	return lines
}
