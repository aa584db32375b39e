// Package subprocess manages a live Maude interpreter process and frames
// its unstructured text output into per-command responses using the
// interactive prompt as the frame delimiter.
package subprocess
