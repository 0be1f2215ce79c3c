// Package protocol defines the binary wire format between a widget host and
// its thin client: framing, widget events, HTML patches, and control
// messages.
//
// All multi-byte integers use varint encoding (protobuf-style); strings are
// length-prefixed UTF-8. The format favors small frames: a typical widget
// event is under 30 bytes.
package protocol
