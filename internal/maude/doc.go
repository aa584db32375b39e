// Package maude locates the Maude binary and builds its invocation.
//
// The argument set is fixed: the interpreter is always launched in silent,
// fully-interactive line mode so its output stream carries nothing but
// responses and prompts. The only variable part of the invocation is the
// optional list of .maude module files loaded at startup.
package maude
