// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import "strings"

// CausedSeparator is the line written between two links of the
// cause chain in [Report].
const CausedSeparator = "   Which caused the following issue:"

// Chain returns the causes of err ordered from the root cause to err itself.
// Errors joined with [Join] contribute each of their branches in order,
// root-first, and are not listed themselves. Other errors wrapping several
// errors, such as fmt.Errorf with more than one %w, are listed after
// all of their branches.
func Chain(err error) []error {
	if err == nil {
		return nil
	}
	var out []error
	var walk func(e error)
	walk = func(e error) {
		switch u := e.(type) {
		case interface{ Unwrap() []error }:
			for _, b := range u.Unwrap() {
				if b != nil {
					walk(b)
				}
			}
			if isJoin(e, u.Unwrap()) {
				return
			}
		case interface{ Unwrap() error }:
			if inner := u.Unwrap(); inner != nil {
				walk(inner)
			}
		}
		out = append(out, e)
	}
	walk(err)
	return out
}

// Report renders err as a multi-line description of its cause chain,
// starting with the root cause. Each wrapping error is only reported
// with the text it adds to its cause, so messages built with
// fmt.Errorf("context: %w", err) do not repeat the whole chain.
func Report(err error) string {
	chain := Chain(err)
	var sb strings.Builder
	for i, e := range chain {
		if i > 0 {
			sb.WriteString(CausedSeparator)
			sb.WriteByte('\n')
		}
		sb.WriteString(ownMessage(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// isJoin reports whether e is a plain join of errs, whose message
// is nothing but the messages of errs on separate lines.
func isJoin(e error, errs []error) bool {
	msgs := make([]string, 0, len(errs))
	for _, b := range errs {
		if b != nil {
			msgs = append(msgs, b.Error())
		}
	}
	return e.Error() == strings.Join(msgs, "\n")
}

// ownMessage returns the part of the message of e that is not
// already contained in the message of the error it wraps.
func ownMessage(e error) string {
	msg := e.Error()
	u, ok := e.(interface{ Unwrap() error })
	if !ok {
		return msg
	}
	inner := u.Unwrap()
	if inner == nil {
		return msg
	}
	im := inner.Error()
	if im == "" || !strings.HasSuffix(msg, im) {
		return msg
	}
	own := strings.TrimSuffix(msg, im)
	own = strings.TrimRight(own, ": \n\t")
	if own == "" {
		return msg
	}
	return own
}
