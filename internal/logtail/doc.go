// Package logtail reads the end of the client log file for the in-app log
// view.
//
// Read keeps a ring buffer of the last N lines, so memory stays bounded by N
// rather than the file size. Parse splits the logfmt lines that the client's
// logrus text formatter writes into time, level, message and the remaining
// fields (request_id, wishlist_id, item_id and so on), which the view uses
// for level filtering and highlighting.
//
//	lines, err := logtail.Read(cfg.LogFile, 400)
//	for _, line := range lines {
//		entry := logtail.Parse(line)
//		if entry.AtLeast("warn") {
//			...
//		}
//	}
package logtail
