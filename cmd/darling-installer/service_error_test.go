// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/darling-package-manager/darling-installer/internal/config"
	"github.com/darling-package-manager/darling-installer/internal/installer"
	"github.com/darling-package-manager/darling-installer/internal/issue"
	"github.com/darling-package-manager/darling-installer/internal/tui"
)

func TestNewServiceError_NilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("newServiceError(nil, ...) should panic")
		}
	}()
	_ = newServiceError(nil, 0, "")
}

func TestServiceError_Unwrap(t *testing.T) {
	base := fmt.Errorf("%w: cargo", installer.ErrMissingRequirement)
	svcErr := newServiceError(base, issue.MissingRequirementId, "")

	if !errors.Is(svcErr, installer.ErrMissingRequirement) {
		t.Error("ServiceError should unwrap to its cause")
	}
	if svcErr.Error() != base.Error() {
		t.Errorf("Error() = %q, want %q", svcErr.Error(), base.Error())
	}
}

func TestRenderServiceError(t *testing.T) {
	t.Run("message only", func(t *testing.T) {
		var buf bytes.Buffer
		renderServiceError(&buf, nil, newServiceError(errors.New("boom"), 0, "styled boom\n"))
		if buf.String() != "styled boom\n" {
			t.Errorf("rendered %q", buf.String())
		}
	})

	t.Run("with issue help", func(t *testing.T) {
		var buf bytes.Buffer
		renderServiceError(&buf, nil, newServiceError(errors.New("boom"), issue.HomeNotSetId, "styled\n"))
		out := buf.String()
		if !strings.HasPrefix(out, "styled\n") {
			t.Errorf("styled message should come first:\n%s", out)
		}
		if len(out) <= len("styled\n") {
			t.Error("issue help was not rendered")
		}
	})

	t.Run("nil", func(t *testing.T) {
		var buf bytes.Buffer
		renderServiceError(&buf, nil, nil)
		if buf.Len() != 0 {
			t.Errorf("nil ServiceError rendered %q", buf.String())
		}
	})
}

func TestClassifyInstallError(t *testing.T) {
	tests := []struct {
		err  error
		want issue.Id
	}{
		{installer.ErrMissingRequirement, issue.MissingRequirementId},
		{installer.ErrOSReleaseUnreadable, issue.OSReleaseUnreadableId},
		{installer.ErrHomeNotSet, issue.HomeNotSetId},
		{installer.ErrCancelled, issue.InstallCancelledId},
		{installer.ErrNoInput, issue.InstallCancelledId},
		{installer.ErrDirectorySetup, issue.DirectoryCreateFailedId},
		{installer.ErrCloneFailed, issue.CloneFailedId},
		{installer.ErrBuildFailed, issue.BuildFailedId},
		{installer.ErrShellProfile, issue.ShellProfileFailedId},
		{installer.ErrUnknownModule, issue.UnknownModuleId},
		{installer.ErrModuleNotApplicable, issue.UnknownModuleId},
		{config.ErrInvalidModuleEntry, issue.ConfigLoadFailedId},
		{tui.ErrInvalidTheme, issue.ConfigLoadFailedId},
		{errors.New("something else"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			wrapped := fmt.Errorf("context: %w", tt.err)
			svcErr := classifyInstallError(wrapped, false)
			if svcErr.IssueID != tt.want {
				t.Errorf("IssueID = %d, want %d", svcErr.IssueID, tt.want)
			}
			if !strings.Contains(svcErr.StyledMessage, tt.err.Error()) {
				t.Errorf("StyledMessage %q should contain %q", svcErr.StyledMessage, tt.err.Error())
			}
		})
	}
}

func TestFormatErrorForDisplay(t *testing.T) {
	ae := issue.NewErrorContext().
		WithOperation("clone sources").
		WithSuggestion("Check your network connection").
		Wrap(installer.ErrCloneFailed).
		BuildError()

	got := formatErrorForDisplay(ae, false)
	if !strings.Contains(got, "Check your network connection") {
		t.Errorf("suggestions missing: %q", got)
	}
	if strings.Contains(got, "Details:") {
		t.Errorf("non-verbose output should not include details: %q", got)
	}
	if got := formatErrorForDisplay(ae, true); !strings.Contains(got, "step:     clone sources") {
		t.Errorf("verbose output should name the failed step: %q", got)
	}

	if got := formatErrorForDisplay(errors.New("plain"), true); got != "plain" {
		t.Errorf("plain error = %q", got)
	}
}
