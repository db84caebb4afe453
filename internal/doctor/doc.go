// Package doctor runs environment diagnostics for jump: settings file,
// alias store, generated shell snippet, and rc-file installation.
package doctor
