// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

type Id int

const (
	MissingRequirementId Id = iota + 1
	OSReleaseUnreadableId
	HomeNotSetId
	InstallCancelledId
	DirectoryCreateFailedId
	CloneFailedId
	BuildFailedId
	ShellProfileFailedId
	ConfigLoadFailedId
	UnknownModuleId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink
	extLinks []HttpLink // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also:\n"
		for _, link := range i.docLinks {
			extraMd += "- <" + string(link) + ">\n"
		}
		for _, link := range i.extLinks {
			extraMd += "- <" + string(link) + ">\n"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	darlingRepoLink HttpLink = "https://github.com/darling-package-manager/darling"

	missingRequirementIssue = &Issue{
		id: MissingRequirementId,
		mdMsg: `
# A required tool is missing!

darling is built from source, so the installer needs **git** to fetch it and
**cargo** to compile it.

## Things you can try:
- Install git with your distribution's package manager, e.g.
~~~
$ sudo apt install git
~~~
- Install the Rust toolchain (which provides cargo):
~~~
$ curl --proto '=https' --tlsv1.2 -sSf https://sh.rustup.rs | sh
~~~
- Open a new shell so the updated PATH is picked up, then run the installer again.`,
		docLinks: []HttpLink{darlingRepoLink},
		extLinks: []HttpLink{"https://rustup.rs"},
	}

	osReleaseUnreadableIssue = &Issue{
		id: OSReleaseUnreadableId,
		mdMsg: `
# Could not read the OS release file!

The installer reads ` + "`/etc/os-release`" + ` to find out which distribution you are
running, so it can offer the matching darling module.

## Things you can try:
- Check the file permissions:
~~~
$ ls -l /etc/os-release
~~~
- Point the installer at a readable copy:
~~~
$ darling-installer --os-release ./os-release
~~~`,
	}

	homeNotSetIssue = &Issue{
		id: HomeNotSetId,
		mdMsg: `
# HOME is not set!

darling is installed under ` + "`$HOME/.local/share/darling`" + ` and the PATH entry is
written to your shell profile, so the installer needs to know your home directory.

## Things you can try:
~~~
$ export HOME=/home/$(whoami)
~~~`,
	}

	installCancelledIssue = &Issue{
		id: InstallCancelledId,
		mdMsg: `
# Installation cancelled

Nothing was changed on your system. Run the installer again whenever you are ready.`,
	}

	directoryCreateFailedIssue = &Issue{
		id: DirectoryCreateFailedId,
		mdMsg: `
# Could not create the installation directories!

The installer needs write access to ` + "`~/.tmp/darling`" + ` and ` + "`~/.local/share/darling`" + `.

## Things you can try:
- Check ownership of your home directory:
~~~
$ ls -ld ~ ~/.local ~/.local/share
~~~
- Free some disk space and retry.`,
	}

	cloneFailedIssue = &Issue{
		id: CloneFailedId,
		mdMsg: `
# Could not download the darling sources!

## Things you can try:
- Check your network connection.
- Remove a leftover checkout from an earlier attempt:
~~~
$ rm -rf ~/.tmp/darling
~~~
- Switch the clone backend in your config file:
~~~cue
clone_backend: "go-git"
~~~`,
		docLinks: []HttpLink{darlingRepoLink},
	}

	buildFailedIssue = &Issue{
		id: BuildFailedId,
		mdMsg: `
# Could not build darling!

## Things you can try:
- Update your Rust toolchain:
~~~
$ rustup update
~~~
- Build manually to see the full compiler output:
~~~
$ cd ~/.local/share/darling/source && cargo build --release
~~~`,
	}

	shellProfileFailedIssue = &Issue{
		id: ShellProfileFailedId,
		mdMsg: `
# Could not update your shell profile!

darling was built, but the PATH entry could not be saved. Add it yourself:
~~~
export PATH="$PATH:$HOME/.local/share/darling/source/target/release"
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the darling-installer configuration file.

## Configuration file location:
- ` + "`$XDG_CONFIG_HOME/darling-installer/config.cue`" + ` (default ` + "`~/.config`" + `)

## Things you can try:
- Print the defaults:
~~~
$ darling-installer config show
~~~
- Create a default configuration:
~~~
$ darling-installer config init
~~~

## Example configuration:
~~~cue
clone_backend: "git"
shell_profile: ".zshrc"
ui: {
  verbose: true
}
~~~`,
	}

	unknownModuleIssue = &Issue{
		id: UnknownModuleId,
		mdMsg: `
# Unknown module!

Modules passed with ` + "`--module`" + ` must be in the catalog and applicable to this machine.

## Built-in modules:
- **cargo**: Cargo (needs ` + "`cargo`" + `)
- **vscode**: Visual Studio Code (needs ` + "`code`" + ` or ` + "`codium`" + `)`,
	}

	issues = map[Id]*Issue{
		missingRequirementIssue.Id():    missingRequirementIssue,
		osReleaseUnreadableIssue.Id():   osReleaseUnreadableIssue,
		homeNotSetIssue.Id():            homeNotSetIssue,
		installCancelledIssue.Id():      installCancelledIssue,
		directoryCreateFailedIssue.Id(): directoryCreateFailedIssue,
		cloneFailedIssue.Id():           cloneFailedIssue,
		buildFailedIssue.Id():           buildFailedIssue,
		shellProfileFailedIssue.Id():    shellProfileFailedIssue,
		configLoadFailedIssue.Id():      configLoadFailedIssue,
		unknownModuleIssue.Id():         unknownModuleIssue,
	}
)

// Values returns every catalog entry ordered by Id.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		out = append(out, i)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return cmp.Compare(a.id, b.id) })
	return out
}

func Get(id Id) *Issue {
	return issues[id]
}
