// Package linefold implements the first pipeline stage: joining physical
// lines whose last non-newline character is a backslash into one logical
// line, so macro bodies can span multiple physical lines.
package linefold

import "regexp"

var continuation = regexp.MustCompile(`\\\r?\n`)

// Fold deletes every backslash immediately followed by a line ending,
// joining the two lines with no inserted space. Grounded on the backslash
// line-join in the original implementation's main() driver.
func Fold(source string) string {
	return continuation.ReplaceAllString(source, "")
}
