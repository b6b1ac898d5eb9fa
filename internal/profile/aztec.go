package profile

import "github.com/dshills/privacyscore/internal/schema"

func aztec() schema.Profile {
	return schema.Profile{
		Name:           "Aztec-like L2",
		Description:    "Inspired by Aztec: zk rollup with privacy-preserving smart contracts.",
		UsesZK:         true,
		UsesFHE:        false,
		OpenSource:     true,
		Audited:        true,
		SoundnessFocus: true,
	}
}
