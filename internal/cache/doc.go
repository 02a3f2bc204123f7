// Package cache provides a small generic LRU cache.
//
// The font resolver keeps parsed font sources and sized faces here so that
// label rebuilds do not reparse font files.
//
//	c := cache.New[string, int](16)
//	v, err := c.GetOrLoad("key", func() (int, error) { return 42, nil })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
