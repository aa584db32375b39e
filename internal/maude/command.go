package maude

const (
	// Prompt is the literal string Maude prints when it is ready for the
	// next command. It doubles as the response frame delimiter: everything
	// between two prompts is one response. If legitimate output ever
	// contains this substring mid-line, framing terminates early; that is
	// a limitation of Maude's textual protocol, not something this package
	// attempts to detect or repair.
	Prompt = "Maude>"

	// QuitCommand is the line sent to request a graceful interpreter exit.
	QuitCommand = "quit"
)

// fixedArgs selects silent, non-wrapped, fully-interactive line mode.
// These are not configurable: the framing algorithm depends on the banner
// being suppressed and on lines not being re-wrapped mid-response.
var fixedArgs = []string{"-no-banner", "-no-wrap", "-no-advise", "-interactive"}

// BuildArgs constructs the Maude command arguments.
//
// moduleFiles are paths to .maude files loaded by the interpreter at
// startup, appended after the fixed flag set in the order given.
func BuildArgs(moduleFiles []string) []string {
	args := make([]string, 0, len(fixedArgs)+len(moduleFiles))
	args = append(args, fixedArgs...)
	args = append(args, moduleFiles...)

	return args
}
