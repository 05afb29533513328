/*
Package blob wraps byte ranges of varying provenance in a reference counted
object with an explicit ownership contract. Bytes may be a file mapping, memory
owned by a caller or a private duplicate.

A blob is created with a MemoryMode, which states what the producer of the
bytes allows the blob to do with them:

▪︎ Readonly: the bytes must never be written to.

▪︎ ReadonlyMayMakeWritable: the bytes are read-only, but the blob may try to
change the page protection of the underlying memory to make it writable in place.

▪︎ Writable: the bytes belong to the blob and may be modified.

▪︎ Duplicate: accepted by Create only. The blob immediately copies the bytes into
a private buffer and becomes Writable.

Once a blob is made immutable (explicitly, or by creating a sub-blob of it)
it will never become writable again. Immutable blobs may be shared between
goroutines for reading.

Every blob carries a destroy callback which is called exactly once: when the
last reference is dropped, when the bytes are replaced by a private duplicate,
or immediately if the blob cannot be created in the first place.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package blob

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'font.blob'
func tracer() tracing.Trace {
	return tracing.Select("font.blob")
}
