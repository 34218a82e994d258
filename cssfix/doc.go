// Package cssfix suggests stylesheet rules for recurring layout defects.
//
// The output is advisory: a commented CSS fragment the author reviews and
// merges by hand, never applied automatically. Heading, table and
// orphan/widow defects each contribute at most one rule block no matter
// how often they occur; whitespace findings are explained per page since
// they have no single-rule remedy.
package cssfix
