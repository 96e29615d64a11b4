package source

import "errors"

// UnsupportedSourceError is returned by a source handed a query it has
// no answer for.
var UnsupportedSourceError = errors.New("unsupported source for this query")
