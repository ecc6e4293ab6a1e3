// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wsdeque

import "code.hybscloud.com/iox"

// ErrEmpty indicates Pop or Steal has nothing to return.
//
// This covers both a genuinely empty deque and a race lost against a
// concurrent Pop or Steal. The two cases are deliberately
// indistinguishable; callers retry at their discretion.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency
// with [code.hybscloud.com/lfq]'s ErrWouldBlock.
var ErrEmpty = iox.ErrWouldBlock

// IsEmpty reports whether err indicates Pop/Steal had nothing to return.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsEmpty(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil or ErrEmpty. Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
