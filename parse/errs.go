package parse

import "errors"

// ErrParse reports syntactically invalid CSS. It is fatal to the current
// format call; no partial tree is ever returned.
var ErrParse = errors.New("parse error")
