// Package xml usage guidelines:
//
// Encoder writes an XML fragment as a sequence of lines. Every element, start
// tag, end tag or pre-rendered child written to an Encoder becomes one line,
// and lines are separated by a single '\n'. No XML declaration is written;
// callers that want one prepend Header themselves.
//
// Value is responsible for writing the content and the close tag of an
// element opened with Encoder.Element. Value operations auto close the
// element.
//
// Text content is escaped with EscapeText, attribute values with EscapeAttr.
package xml
