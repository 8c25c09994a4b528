package builtins

import (
	"time"

	"github.com/AgustinCB/smoked/types"
)

// startTime anchors clock() at process start. Absolute epoch seconds
// do not fit a 32-bit float at useful resolution; elapsed seconds do.
var startTime = time.Now()

// builtinClock returns seconds elapsed since the interpreter started
// clock() -> float
func builtinClock(args []types.Value) types.Result {
	if len(args) != 0 {
		return arityError("clock", 0, len(args))
	}

	return types.Ok(types.NewFloat(float32(time.Since(startTime).Seconds())))
}
