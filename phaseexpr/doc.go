// SPDX-License-Identifier: MIT

// Package phaseexpr evaluates the small arithmetic expressions a user types
// to set a phase, such as "2*pi/3" or "-(pi + 0.5)".
//
// The grammar is deliberately closed:
//
//	expr    = term { ("+" | "-") term }
//	term    = unary { ("*" | "/") unary }
//	unary   = ("+" | "-") unary | primary
//	primary = number | "pi" | "π" | "(" expr ")"
//	number  = digits [ "." digits ] [ ("e" | "E") [ "+" | "-" ] digits ]
//
// There are no variables, calls, attribute lookups or any other way to reach
// code: input that is not in the grammar is rejected with ErrSyntax or
// ErrUnknownIdent, and results that are not finite with ErrNonFinite.
package phaseexpr
