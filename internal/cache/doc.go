// Package cache provides the generic LRU cache used for font faces.
//
//	faces := cache.New[int, *Face](32)
//	face := faces.GetOrCreate(16, func() *Face { return newFace(16) })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
