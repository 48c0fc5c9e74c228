// Package social parses validated documents into a network model and
// answers questions about it: aggregate statistics, JSON export, and post
// search. It sits above the token layer and uses XPath queries over a
// parsed document tree, so it assumes the input is well-formed; run the
// validators first when that is not known.
package social
