package internal

import "sync"

import "github.com/tinne26/btxt/core"

// Default cache size value, in bytes.
const DefaultCacheSize = 32*1024*1024 // 32 MiB

const maxCacheSize = 1*1024*1024*1024 // 1 GiB

// Package level cache for atlas textures. Atlases are few and large,
// so unlike glyph caches there's no need for per-renderer instances.
var DefaultCache *Cache = NewCache(DefaultCacheSize)

type cachedTexture struct {
	texture core.Texture
	atlasID uint64
	byteSize uint32
	older *cachedTexture // towards lru
	newer *cachedTexture // towards mru
}

// A byte-size bounded LRU cache of atlas textures, keyed by atlas ID.
// Safe for concurrent use.
type Cache struct {
	entries map[uint64]*cachedTexture
	mru *cachedTexture
	lru *cachedTexture

	mutex sync.Mutex
	capacity uint64
	currentSize uint64
	peakSize uint64 // (max ever size)
}

func NewCache(capacity int) *Cache {
	if capacity < 0 { panic("can't create cache with negative capacity") }
	if capacity > maxCacheSize {
		Logger().Warn("excessive cache capacity requested, limited to 1GiB", "requested", capacity)
		capacity = maxCacheSize
	}
	return &Cache{
		entries: make(map[uint64]*cachedTexture, 4),
		capacity: uint64(capacity),
	}
}

func (self *Cache) SetCapacity(bytes int) {
	if bytes < 0 { panic("can't cache.SetCapacity(bytes) with bytes < 0") }
	if bytes > maxCacheSize {
		Logger().Warn("excessive cache capacity requested, limited to 1GiB", "requested", bytes)
		bytes = maxCacheSize
	}
	self.mutex.Lock()
	self.capacity = uint64(bytes)
	for self.currentSize > self.capacity {
		self.evictOldest()
	}
	self.mutex.Unlock()
}

func (self *Cache) Capacity() int {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return int(self.capacity)
}

func (self *Cache) CurrentSize() int {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return int(self.currentSize)
}

func (self *Cache) PeakSize() uint64 {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.peakSize
}

// Returns the number of textures currently in the cache.
func (self *Cache) NumEntries() int {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return len(self.entries)
}

// Returns the texture cached for the given atlas ID, if any.
// Found entries are bumped to most recently used.
func (self *Cache) GetTexture(atlasID uint64) (core.Texture, bool) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	entry, found := self.entries[atlasID]
	if !found { return nil, false }
	self.unlink(entry)
	self.pushMRU(entry)
	return entry.texture, true
}

// Stores the texture for the given atlas ID, evicting least recently
// used entries as needed. Returns false if the texture can't fit
// within the cache capacity at all, in which case nothing is stored.
func (self *Cache) SetTexture(atlasID uint64, texture core.Texture) bool {
	byteSize := textureByteSize(texture)

	self.mutex.Lock()
	defer self.mutex.Unlock()

	// replacement case
	if prev, found := self.entries[atlasID]; found {
		self.unlink(prev)
		delete(self.entries, atlasID)
		self.currentSize -= uint64(prev.byteSize)
	}

	if uint64(byteSize) > self.capacity { return false }
	for self.currentSize + uint64(byteSize) > self.capacity {
		self.evictOldest()
	}

	entry := &cachedTexture{ texture: texture, atlasID: atlasID, byteSize: byteSize }
	self.entries[atlasID] = entry
	self.pushMRU(entry)
	self.currentSize += uint64(byteSize)
	if self.currentSize > self.peakSize {
		self.peakSize = self.currentSize
	}
	Logger().Debug("atlas texture cached", "atlas", atlasID, "bytes", byteSize, "cacheSize", self.currentSize)
	return true
}

// precondition: cache locked and not empty
func (self *Cache) evictOldest() {
	oldest := self.lru
	if oldest == nil { panic(BrokenCode) }
	self.unlink(oldest)
	delete(self.entries, oldest.atlasID)
	self.currentSize -= uint64(oldest.byteSize)
	oldest.texture = nil // allow texture to be GC'd
	Logger().Debug("atlas texture evicted", "atlas", oldest.atlasID, "bytes", oldest.byteSize)
}

func (self *Cache) unlink(entry *cachedTexture) {
	if entry.older != nil {
		entry.older.newer = entry.newer
	} else {
		self.lru = entry.newer
	}
	if entry.newer != nil {
		entry.newer.older = entry.older
	} else {
		self.mru = entry.older
	}
	entry.older, entry.newer = nil, nil
}

func (self *Cache) pushMRU(entry *cachedTexture) {
	entry.older = self.mru
	if self.mru != nil { self.mru.newer = entry }
	self.mru = entry
	if self.lru == nil { self.lru = entry }
}
