package profile

import "github.com/dshills/privacyscore/internal/schema"

func soundness() schema.Profile {
	return schema.Profile{
		Name:           "Soundness-focused lab",
		Description:    "Inspired by soundness research labs: formal verification and proofs first.",
		UsesZK:         true,
		UsesFHE:        false,
		OpenSource:     false,
		Audited:        true,
		SoundnessFocus: true,
	}
}
