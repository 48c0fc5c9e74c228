// Package token turns a raw social-network XML document into a flat stream
// of tag and text tokens.
//
// The scanner is deliberately small: it recognizes opening tags, closing
// tags, self-closing tags, and the text runs between them. It does not
// interpret attributes, comments, CDATA sections, or entities; prolog and
// doctype declarations are carried through as childless tags so that the
// renderers can reproduce them verbatim. Both the validators and the
// renderers consume this one token model, so there is a single definition
// of what counts as a tag.
package token
