// Package narrator prints a human readable walk through decoded jump list
// containers: container identity, DestList entries, shortcut details, shell
// item chains and extra data blocks.
//
// Narration is best effort. Unrecognized shell item, extension block and
// extra block kinds are reported through the logger and skipped.
package narrator
