// SPDX-License-Identifier: MPL-2.0

package installer

import "testing"

func TestSuggestName(t *testing.T) {
	t.Parallel()

	candidates := []string{"cargo", "vscode"}
	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"vscod", "vscode", true},
		{"Cargo", "cargo", true},
		{"carg0", "cargo", true},
		{"emacs", "", false},
	}

	for _, tt := range tests {
		got, ok := suggestName(tt.name, candidates)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("suggestName(%q) = (%q, %v), want (%q, %v)", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}
}
