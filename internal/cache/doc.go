// Package cache memoises answers of native capability queries.
//
// Capability queries such as format support are round-trips into the
// native driver. Their answers do not change while a device is active, so
// they are kept in a bounded memo that belongs to the device capability
// snapshot and is dropped whenever the snapshot is rebuilt.
//
//	m := cache.New[formatQuery, bool](256)
//	ok := m.GetOrCompute(q, func() bool { return queryDriver(q) })
//	m.Reset() // after a device reset
package cache
