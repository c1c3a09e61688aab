// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/darling-package-manager/darling-installer/internal/config"
	"github.com/darling-package-manager/darling-installer/internal/installer"
	"github.com/darling-package-manager/darling-installer/internal/issue"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `darling-installer config` command tree.
func newConfigCommand(app *App, flags *rootFlags) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect installer configuration",
		Long: `Inspect installer configuration.

Configuration is optional and stored in:
  - Linux: ~/.config/darling-installer/config.cue
  - macOS: ~/Library/Application Support/darling-installer/config.cue
  - Windows: %APPDATA%\darling-installer\config.cue`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return showConfig(cmd.Context(), app, flags)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := loadForDisplay(cmd.Context(), app, flags)
			if err != nil {
				return err
			}
			fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			path, err := config.CreateDefaultConfig("")
			if err != nil {
				return err
			}
			fmt.Fprintf(app.stdout, "%s %s\n", SuccessStyle.Render("Configuration file:"), CmdStyle.Render(path))
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			path, err := configFilePath(flags)
			if err != nil {
				return err
			}
			fmt.Fprintln(app.stdout, path)
			return nil
		},
	})

	return cfgCmd
}

// loadForDisplay resolves the effective configuration and the file it was
// read from ("" for defaults).
func loadForDisplay(ctx context.Context, app *App, flags *rootFlags) (*config.Config, string, error) {
	cfg, path, err := app.Config.Resolve(ctx, config.LoadOptions{ConfigFilePath: flags.configPath})
	if err != nil {
		return nil, "", fail(app.stderr, app.newLogger(flags.verbose),
			newServiceError(err, issue.ConfigLoadFailedId, styledErrorLine(err, flags.verbose)))
	}
	return cfg, path, nil
}

func showConfig(ctx context.Context, app *App, flags *rootFlags) error {
	cfg, path, err := loadForDisplay(ctx, app, flags)
	if err != nil {
		return err
	}

	out := app.stdout
	key := CmdStyle.Render
	val := SuccessStyle.Render

	fmt.Fprintln(out, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(out)

	if path == "" {
		fmt.Fprintf(out, "%s: %s\n", key("Config file"), SubtitleStyle.Render("(using defaults)"))
	} else {
		fmt.Fprintf(out, "%s: %s\n", key("Config file"), path)
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "%s: %s\n", key("product"), val(cfg.Product))
	fmt.Fprintf(out, "%s: %s\n", key("repository_url"), val(cfg.RepositoryURL))
	fmt.Fprintf(out, "%s: %s\n", key("requirements"), val(strings.Join(cfg.Requirements, ", ")))
	fmt.Fprintf(out, "%s: %s\n", key("os_release_path"), val(cfg.OSReleasePath))
	fmt.Fprintf(out, "%s: %s\n", key("clone_backend"), val(cfg.CloneBackend.String()))
	fmt.Fprintf(out, "%s: %s\n", key("share_dir"), val(cfg.ShareDir))
	fmt.Fprintf(out, "%s: %s\n", key("work_dir"), val(cfg.WorkDir))
	fmt.Fprintf(out, "%s: %s\n", key("shell_profile"), val(cfg.ShellProfile))
	fmt.Fprintf(out, "%s: %s\n", key("strict"), val(fmt.Sprintf("%v", cfg.Strict)))

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s:\n", key("modules"))
	catalog, err := installer.NewCatalog(cfg.Modules)
	if err != nil {
		return err
	}
	for _, m := range catalog.Modules() {
		fmt.Fprintf(out, "  - %s (%s): %s\n", val(m.Name), m.ReadableName, strings.Join(m.Commands, ", "))
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s:\n", key("ui"))
	fmt.Fprintf(out, "  verbose: %s\n", val(fmt.Sprintf("%v", cfg.UI.Verbose)))
	fmt.Fprintf(out, "  accessible: %s\n", val(fmt.Sprintf("%v", cfg.UI.Accessible)))
	fmt.Fprintf(out, "  theme: %s\n", val(string(cfg.UI.Theme)))

	return nil
}

// configFilePath returns --config when given, otherwise the default location.
func configFilePath(flags *rootFlags) (string, error) {
	if flags.configPath != "" {
		return flags.configPath, nil
	}
	dir, err := config.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, config.ConfigFileName+"."+config.ConfigFileExt), nil
}
