package profile

import "github.com/dshills/privacyscore/internal/schema"

func zama() schema.Profile {
	return schema.Profile{
		Name:           "Zama-like FHE stack",
		Description:    "Inspired by Zama: fully homomorphic encryption for Web3 and cryptography.",
		UsesZK:         false,
		UsesFHE:        true,
		OpenSource:     true,
		Audited:        false,
		SoundnessFocus: true,
	}
}
