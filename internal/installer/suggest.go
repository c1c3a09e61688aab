// SPDX-License-Identifier: MPL-2.0

package installer

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// suggestName returns the candidate closest to name, if it is close enough
// to be a plausible typo.
func suggestName(name string, candidates []string) (string, bool) {
	best, bestDist := "", -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(strings.ToLower(name), strings.ToLower(c))
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist < 0 || bestDist > max(2, len(name)/3) {
		return "", false
	}
	return best, true
}
