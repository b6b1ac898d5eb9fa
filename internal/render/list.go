package render

import (
	"bytes"
	"fmt"

	"github.com/dshills/privacyscore/internal/profile"
)

const (
	listHeader     = "Built-in example profiles related to Web3 privacy and soundness:"
	unknownProfile = "Unknown profile key. Available options:"
)

// List renders the built-in profiles, one "- key: name" line per entry,
// under a fixed header.
func List(entries []profile.Entry) []byte {
	var buf bytes.Buffer
	buf.WriteString(listHeader + "\n")
	for _, e := range entries {
		fmt.Fprintf(&buf, "- %s: %s\n", e.Key, e.Profile.Name)
	}
	return buf.Bytes()
}

// UnknownProfile renders the message shown when a requested key is not in
// the registry, followed by the same listing as List.
func UnknownProfile(entries []profile.Entry) []byte {
	return append([]byte(unknownProfile+"\n"), List(entries)...)
}
