// Package setup installs the jump shell function into a shell rc file and
// hosts the interactive prompts used by the CLI.
package setup
