// Package cli parses and validates command-line arguments and carries the
// process exit code of a failure. It turns flags into a Config that the
// rinkpath command executes.
package cli
