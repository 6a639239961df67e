// Package resolver derives the final disposition of a payment from the
// receiver's account number. The mapping is deterministic so the gateway can
// re-derive it on every read instead of caching a decision.
package resolver

import (
	"time"

	"github.com/ZRiley36/dragin-take-home-assignment/gateway-service/model"
)

// FinalStatus maps the last character of the receiver account to a terminal
// status: 0-3 settled, 4-6 returned, 7-9 failed. A trailing non-digit counts
// as 0, so such accounts settle rather than error.
func FinalStatus(receiverAccount string) model.Status {
	digit := 0
	if n := len(receiverAccount); n > 0 {
		if c := receiverAccount[n-1]; c >= '0' && c <= '9' {
			digit = int(c - '0')
		}
	}

	switch {
	case digit <= 3:
		return model.StatusSettled
	case digit <= 6:
		return model.StatusReturned
	default:
		return model.StatusFailed
	}
}

// Resolve returns the payment's status after elapsed time: pending until the
// delay threshold has passed, the receiver-derived terminal status after.
func Resolve(receiverAccount string, elapsed, delay time.Duration) model.Status {
	if elapsed < delay {
		return model.StatusPending
	}
	return FinalStatus(receiverAccount)
}
