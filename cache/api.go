package cache

import "github.com/tinne26/btxt/internal"

// Default cache size value, in bytes.
const DefaultSize = 32*1024*1024 // 32 MiB

// cache size constant verification
func init() {
	if DefaultSize != internal.DefaultCacheSize {
		panic("DefaultSize != internal.DefaultCacheSize")
	}
}

// Returns the current cache capacity. It's either [DefaultSize] or
// the last value set by the user through [SetCapacity]().
func GetCapacity() int {
	return internal.DefaultCache.Capacity()
}

// Sets the maximum cache size, in bytes. The default value is [DefaultSize].
// Values above 1GiB are not allowed.
//
// The cache holds the uploaded textures of font atlases. A 512x512 atlas
// takes about 1MiB, so the default is generous unless you are switching
// between dozens of atlases. Setting the capacity to zero disables caching
// and forces atlases to be re-uploaded on every draw, which you really
// don't want outside tests.
func SetCapacity(bytes int) {
	internal.DefaultCache.SetCapacity(bytes)
}

// Returns an approximation of the number of bytes taken by the atlas
// textures currently stored in the cache.
//
// In Ebitengine this estimation is not particularly reliable, as images
// might or might not include borders, mipmaps, and their internal structure
// might change between versions, causing more or less overhead.
func GetCurrentSize() int {
	return internal.DefaultCache.CurrentSize()
}

// Returns an approximation of the maximum amount of bytes that the cache
// has been filled with at any point of its life.
func GetPeakSize() int {
	return int(internal.DefaultCache.PeakSize())
}

// Returns the number of atlas textures currently cached.
func GetNumEntries() int {
	return internal.DefaultCache.NumEntries()
}
