// Package shell generates the POSIX shell function that lets `jump` change the
// directory of the user's interactive shell. The executable only prints the
// resolved path; the generated function captures it and runs cd.
package shell
