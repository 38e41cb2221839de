// Package encode implements the VelocyPack builder: an accumulator that
// collects child encodings in memory and emits the minimal-width
// container representation at container close (spec §4.5, 45% of the
// core budget).
//
// Builder mirrors decode.Cursor's shape on the write side: a stack of
// open containers (one frame per nested array/object), pushed on Open*
// and folded into a single encoded value on Close*. Nothing is written
// to the final output until a container's last child has been seen,
// since the container's width and index table both depend on the full
// set of child byte lengths.
package encode
