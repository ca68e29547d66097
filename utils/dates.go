// utils/dates.go
package utils

import "time"

var ist = time.FixedZone("IST", 5*3600+1800)

// FormatEntryTime renders a transaction timestamp the way the ledger screen
// shows it, e.g. "02 Jan, 03:04 PM".
func FormatEntryTime(t time.Time) string {
	return t.In(ist).Format("02 Jan, 03:04 PM")
}
