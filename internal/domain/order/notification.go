package order

import (
	"fmt"
	"strings"
)

const supportNumber = "233531300654"

// expressMarker in the plan label selects the fast delivery wording.
const expressMarker = "(express)"

// IsExpress reports whether a plan label requests the fast delivery class.
func IsExpress(dataPlan string) bool {
	return strings.Contains(strings.ToLower(dataPlan), expressMarker)
}

// ComposeDeliverySMS builds the confirmation message sent to the buyer
// after a successful charge. Wording depends on the delivery class
// embedded in the plan label.
func ComposeDeliverySMS(dataPlan, recipient, ref string) string {
	window := "30 min–4 hours"
	if IsExpress(dataPlan) {
		window = "5–30 minutes"
	}
	return fmt.Sprintf(
		"Your data purchase of %s for %s will be delivered in %s. Order ID: %s. Support: %s",
		dataPlan, recipient, window, ref, supportNumber,
	)
}
