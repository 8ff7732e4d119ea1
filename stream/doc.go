// Package stream provides incremental STFU-8 encoding and decoding over the
// standard io interfaces.
//
// The encoders wrap an io.Writer and emit encoded text as element chunks
// arrive; the decoders wrap an io.Reader of encoded text and yield decoded
// elements. Both hold only the fragment of one unfinished token between
// calls: at most three bytes of a split UTF-8 sequence or one dangling lead
// surrogate on the encode side, at most seven bytes of a split escape on the
// decode side. Output is identical to the whole-input functions in the root
// package no matter how the input is chunked.
//
// Encoders must be closed: Close flushes a held fragment, which at end of
// input can no longer combine with anything and is written in escaped form.
//
//	enc := stream.NewByteEncoder(w)
//	io.Copy(enc, src)
//	enc.Close()
//
// Decoders fail fast. The first violation is returned after all elements
// decoded before it, and every subsequent call returns the same error.
package stream
