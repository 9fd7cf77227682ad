package decode

import "errors"

var ErrParse = errors.New("parse error")
