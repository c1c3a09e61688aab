// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestId_Constants(t *testing.T) {
	ids := []Id{
		MissingRequirementId,
		OSReleaseUnreadableId,
		HomeNotSetId,
		InstallCancelledId,
		DirectoryCreateFailedId,
		CloneFailedId,
		BuildFailedId,
		ShellProfileFailedId,
		ConfigLoadFailedId,
		UnknownModuleId,
	}

	seen := make(map[Id]bool)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("duplicate ID: %d", id)
		}
		seen[id] = true
	}

	if MissingRequirementId != 1 {
		t.Errorf("MissingRequirementId = %d, want 1", MissingRequirementId)
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		id       Id
		wantNil  bool
		contains string
	}{
		{MissingRequirementId, false, "required tool is missing"},
		{OSReleaseUnreadableId, false, "OS release file"},
		{HomeNotSetId, false, "HOME is not set"},
		{InstallCancelledId, false, "Installation cancelled"},
		{DirectoryCreateFailedId, false, "installation directories"},
		{CloneFailedId, false, "download the darling sources"},
		{BuildFailedId, false, "build darling"},
		{ShellProfileFailedId, false, "shell profile"},
		{ConfigLoadFailedId, false, "Failed to load configuration"},
		{UnknownModuleId, false, "Unknown module"},
		{Id(9999), true, "missing"},
	}

	for _, tt := range tests {
		t.Run(tt.contains, func(t *testing.T) {
			issue := Get(tt.id)

			if tt.wantNil {
				if issue != nil {
					t.Errorf("Get(%d) should return nil", tt.id)
				}
				return
			}

			if issue == nil {
				t.Fatalf("Get(%d) returned nil", tt.id)
			}
			if issue.Id() != tt.id {
				t.Errorf("Id() = %d, want %d", issue.Id(), tt.id)
			}
			if !strings.Contains(string(issue.MarkdownMsg()), tt.contains) {
				t.Errorf("Get(%d).MarkdownMsg() should contain %q", tt.id, tt.contains)
			}
		})
	}
}

func TestValuesSorted(t *testing.T) {
	values := Values()
	if len(values) != 10 {
		t.Fatalf("len(Values()) = %d, want 10", len(values))
	}
	for i := 1; i < len(values); i++ {
		if values[i-1].Id() >= values[i].Id() {
			t.Errorf("Values() not sorted at %d: %d >= %d", i, values[i-1].Id(), values[i].Id())
		}
	}
}

func TestIssue_LinksAreCloned(t *testing.T) {
	issue := Get(MissingRequirementId)
	links := issue.ExtLinks()
	if len(links) == 0 {
		t.Fatal("expected external links on the missing requirement issue")
	}
	links[0] = "modified"
	if issue.ExtLinks()[0] == "modified" {
		t.Error("ExtLinks() should return a clone")
	}
}

func TestIssue_Render(t *testing.T) {
	originalRender := render
	defer func() { render = originalRender }()

	var got string
	render = func(in string, _ string) (string, error) {
		got = in
		return in, nil
	}

	out, err := Get(CloneFailedId).Render("dark")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	if out != got {
		t.Error("Render() should return the renderer output")
	}
	if !strings.Contains(got, "## See also:") || !strings.Contains(got, string(darlingRepoLink)) {
		t.Errorf("rendered markdown missing links section:\n%s", got)
	}
}
