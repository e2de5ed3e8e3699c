// In file: internal/version/version.go

// Package version centralizes the versioning of the logical components
// whose behavior affects cached answers. Including these versions in cache
// keys invalidates stale entries automatically: bump Tools after changing
// any tool's logic, or PromptLogic after changing the prompt templates, and
// previously cached answers stop matching.
package version

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// ComponentVersions holds the version strings for the logical parts of the
// reasoner that shape an answer. Increment manually before deploying a
// change to that component.
var ComponentVersions = struct {
	// Tools covers the registered tool implementations.
	Tools string
	// PromptLogic covers the prompt templates and answer extraction.
	PromptLogic string
}{
	Tools:       "v1.0",
	PromptLogic: "v1.0",
}

// GenerateVersionedCacheKey builds a version-aware cache key for a query:
// prefix, SHA-256 of the query, and the current component versions.
//
// Example: "answercache:a1b2c3...:tv1.0_pv1.0"
func GenerateVersionedCacheKey(prefix, query string) string {
	hasher := sha256.New()
	hasher.Write([]byte(query))
	queryHash := hex.EncodeToString(hasher.Sum(nil))

	versionString := fmt.Sprintf("tv%s_pv%s",
		ComponentVersions.Tools,
		ComponentVersions.PromptLogic,
	)

	return fmt.Sprintf("%s:%s:%s", prefix, queryHash, versionString)
}
