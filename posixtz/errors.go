package posixtz

import "errors"

// ErrSyntax is wrapped by every error Parse returns for a malformed TZ
// string.
var ErrSyntax = errors.New("posixtz: invalid TZ string")
