// Package profile holds the built-in example profiles and builds custom
// profiles from command-line input.
package profile

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/dshills/privacyscore/internal/schema"
)

// ErrUnknownProfile is returned by Get when no built-in profile matches the key.
var ErrUnknownProfile = errors.New("unknown profile")

// Entry pairs a registry key with its profile.
type Entry struct {
	Key     string
	Profile schema.Profile
}

// builtins is the registry of built-in profiles in listing order.
var builtins = []Entry{
	{Key: "aztec", Profile: aztec()},
	{Key: "zama", Profile: zama()},
	{Key: "soundness", Profile: soundness()},
}

// Get returns the built-in profile for key. Matching is case-insensitive.
// An unknown key yields an error wrapping ErrUnknownProfile.
func Get(key string) (schema.Profile, error) {
	k := strings.ToLower(key)
	for _, e := range builtins {
		if e.Key == k {
			return e.Profile, nil
		}
	}
	return schema.Profile{}, errors.Wrapf(ErrUnknownProfile, "%q: valid profiles are %s", key, strings.Join(Keys(), ", "))
}

// All returns a copy of the registry in listing order.
func All() []Entry {
	out := make([]Entry, len(builtins))
	copy(out, builtins)
	return out
}

// Keys returns the registry keys in listing order.
func Keys() []string {
	keys := make([]string, 0, len(builtins))
	for _, e := range builtins {
		keys = append(keys, e.Key)
	}
	return keys
}
