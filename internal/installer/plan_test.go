// SPDX-License-Identifier: MPL-2.0

package installer

import (
	"slices"
	"testing"
)

func TestPlan_Order(t *testing.T) {
	t.Parallel()

	catalog := []Module{
		{ReadableName: "A", Name: "a"},
		{ReadableName: "B", Name: "b"},
		{ReadableName: "C", Name: "c"},
	}

	var plan Plan
	plan.AddDistroModule("arch")
	if err := plan.AddSelection(catalog, []int{1, 0}); err != nil {
		t.Fatalf("AddSelection() returned error: %v", err)
	}

	if want := []string{"arch", "b", "a"}; !slices.Equal(plan.Names(), want) {
		t.Errorf("plan = %v, want %v", plan.Names(), want)
	}
	if plan.Modules[0].ReadableName != "Arch" {
		t.Errorf("distro ReadableName = %q, want Arch", plan.Modules[0].ReadableName)
	}
}

func TestPlan_AddSelectionOutOfRange(t *testing.T) {
	t.Parallel()

	var plan Plan
	if err := plan.AddSelection([]Module{{Name: "a"}}, []int{1}); err == nil {
		t.Error("AddSelection() should reject an out-of-range index")
	}
}

func TestTitleCase(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"arch":                "Arch",
		"opensuse-tumbleweed": "Opensuse Tumbleweed",
		"linux_mint":          "Linux Mint",
		"":                    "",
	}
	for in, want := range tests {
		if got := TitleCase(in); got != want {
			t.Errorf("TitleCase(%q) = %q, want %q", in, got, want)
		}
	}
}
