package rhf

import (
	"fmt"
	"io"
	"os"
)

var debugOn = os.Getenv("RHF_DEBUG") == "1"

// debugWriter is the default destination for dbg calls inside the core;
// callers embedding the core in a CLI can still pass their own io.Writer to
// dbg directly where that matters.
var debugWriter io.Writer = os.Stderr

// dbg writes a formatted trace line to w when RHF_DEBUG=1 is set in the
// environment. It is the only logging mechanism the core uses; callers that
// want structured output build it from the values RunSCF returns.
func dbg(w io.Writer, format string, a ...any) {
	if debugOn {
		fmt.Fprintf(w, format, a...)
	}
}
