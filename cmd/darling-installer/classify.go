// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/darling-package-manager/darling-installer/internal/config"
	"github.com/darling-package-manager/darling-installer/internal/installer"
	"github.com/darling-package-manager/darling-installer/internal/issue"
	"github.com/darling-package-manager/darling-installer/internal/tui"
)

// issueRules maps sentinel errors to their help entries. First match wins.
var issueRules = []struct {
	target error
	id     issue.Id
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
	{config.ErrInvalidCloneBackend, issue.ConfigLoadFailedId},
	{tui.ErrInvalidTheme, issue.ConfigLoadFailedId},
}

// classifyInstallError wraps a fatal error in a ServiceError carrying the
// matching issue help and the styled error line.
func classifyInstallError(err error, verbose bool) *ServiceError {
	var id issue.Id
	for _, rule := range issueRules {
		if errors.Is(err, rule.target) {
			id = rule.id
			break
		}
	}
	return newServiceError(err, id, styledErrorLine(err, verbose))
}

func styledErrorLine(err error, verbose bool) string {
	return fmt.Sprintf("\n%s %s\n", ErrorStyle.Render("Error:"), formatErrorForDisplay(err, verbose))
}

// formatErrorForDisplay uses ActionableError formatting when available and
// the plain message otherwise.
func formatErrorForDisplay(err error, verbose bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verbose)
	}
	return err.Error()
}
