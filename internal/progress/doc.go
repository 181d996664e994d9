// Package progress renders download progress as a single text line.
//
// Bar lays out up to three fields in priority order, dropping the ones that
// do not fit the requested width:
//
//	 10% [......                                                        ] 0.00 / 0.00 MB
//	pppp bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb ssssssssssssss
//
// The percentage is always shown first, the bar takes all remaining space,
// and the size field reports megabytes (10^6 bytes). When the total size is
// unknown (zero or negative) the line is just "<current> / unknown".
//
// Printer draws successive bars to a writer, redrawing in place on a
// terminal and printing one line per percent otherwise.
package progress
