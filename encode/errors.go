// SPDX-License-Identifier: MIT

package encode

import "errors"

// ErrModel indicates that the solver returned a model violating the encoded
// system, i.e. the encoding itself is wrong.
var ErrModel = errors.New("encode: model violates the system")

const (
	opEncode = "Encode"
	opCheck  = "Check"
	opVerify = "Verify"
	opDimacs = "WriteDimacs"
)
