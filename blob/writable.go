package blob

// tryWritable runs the memory mode state machine:
//
//	immutable                 ⇒ fail
//	Writable                  ⇒ ok
//	ReadonlyMayMakeWritable   ⇒ try page-protection promotion, else duplicate
//	Readonly                  ⇒ duplicate
//
// Duplication replaces b's bytes with a private copy and releases the old
// bytes through the destroy callback.
func (b *Blob) tryWritable() bool {
	if b.immutable.Load() {
		return false
	}
	if b.mode == Writable {
		return true
	}
	if b.mode == ReadonlyMayMakeWritable && b.tryWritableInplace() {
		return true
	}
	tracer().Debugf("blob %p: duplicating %d bytes", b, len(b.data))
	dup := make([]byte, len(b.data))
	copy(dup, b.data)
	b.destroyUserData()
	b.mode = Writable
	b.data = dup
	return true
}

// tryWritableInplace asks the OS to make the pages holding b's bytes
// writable. On failure b is downgraded to Readonly.
func (b *Blob) tryWritableInplace() bool {
	tracer().Debugf("blob %p: making writable in place", b)
	if err := protectWritable(b.data); err != nil {
		tracer().Debugf("blob %p: making writable in place failed: %v", b, err)
		b.mode = Readonly
		return false
	}
	b.mode = Writable
	tracer().Debugf("blob %p: successfully made %d bytes writable", b, len(b.data))
	return true
}
