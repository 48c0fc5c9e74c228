// Package validate checks social-network XML documents for well-formedness
// and schema-level semantic rules.
//
// Two validators run over every document. The structural validator enforces
// tag balance with an explicit stack and attributes syntax problems to exact
// source lines. The semantic validator makes two passes over the token
// stream: one to collect every declared user id, one to check id uniqueness,
// required-field presence, and follower/following references against the
// collected set. All findings are gathered into a single line-sorted result;
// validation never stops at the first problem.
package validate
