package somgo

// Close releases the weight buffer through the configured Allocator.
//
// Close is idempotent and always returns nil; the error result keeps Map
// usable as an io.Closer. Any other method called after Close is a
// precondition violation.
func (m *Map) Close() error {
	if m == nil || m.closed || m.weights == nil {
		return nil
	}

	m.opts.allocator.Free(m.weights)
	m.weights = nil
	m.closed = true

	m.logger.LogClose(m.step)

	return nil
}
