/*
File    : golox/eval/clock.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import "time"

// nowMillis reports the current wall-clock time in milliseconds since
// the Unix epoch, the value the `clock` builtin returns.
func nowMillis() int64 {
	return time.Now().UnixMilli()
}
