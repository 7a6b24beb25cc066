package jeod

import (
	"fmt"
	"os"

	kitlog "github.com/go-kit/kit/log"
)

// diagLogger receives one report per invalid input. Reports are non-fatal:
// the offending call returns normally with zero-valued outputs.
var diagLogger kitlog.Logger = kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))

// SetDiagLogger replaces the diagnostic sink, e.g. to route reports into an
// application logger. A nil logger silences diagnostics. The sink is not
// synchronized with in-flight conversions: install it before concurrent use.
func SetDiagLogger(l kitlog.Logger) {
	if l == nil {
		l = kitlog.NewNopLogger()
	}
	diagLogger = l
}

func reportInvalidSequence(op string, seq EulerSequence) {
	if !jeodConfig().diagEnabled {
		return
	}
	diagLogger.Log("at", op, "severity", "error", "category", "invalidEnum",
		"msg", fmt.Sprintf("euler sequence has not been set or is invalid; value=%d", uint8(seq)))
}

func reportZeroNorm(op string) {
	if !jeodConfig().diagEnabled {
		return
	}
	diagLogger.Log("at", op, "severity", "error", "category", "numerical",
		"msg", "cannot normalize a zero norm quaternion")
}
