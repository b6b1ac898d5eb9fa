package profile

import "github.com/dshills/privacyscore/internal/schema"

// Fallback text for custom profiles that omit a name or description.
const (
	DefaultCustomName        = "Custom Web3 project"
	DefaultCustomDescription = "User-defined Web3 project privacy profile."
)

// CustomOptions carries the user-supplied fields of a custom profile.
type CustomOptions struct {
	Name        string
	Description string
	ZK          bool
	FHE         bool
	OpenSource  bool
	Audited     bool
	Soundness   bool
}

// Custom builds a profile from opts, substituting the default name and
// description when they are empty.
func Custom(opts CustomOptions) schema.Profile {
	name := opts.Name
	if name == "" {
		name = DefaultCustomName
	}
	description := opts.Description
	if description == "" {
		description = DefaultCustomDescription
	}
	return schema.Profile{
		Name:           name,
		Description:    description,
		UsesZK:         opts.ZK,
		UsesFHE:        opts.FHE,
		OpenSource:     opts.OpenSource,
		Audited:        opts.Audited,
		SoundnessFocus: opts.Soundness,
	}
}
