package cache

import "image"
import "sync"
import "sync/atomic"
import "math/rand"

// A concurrent-safe glyph mask cache with memory bounds. Evicts
// entries by random sampling when full.
type MaskCache struct {
	cachedMasks map[[3]uint64]*cachedMaskEntry
	rng *rand.Rand
	rngMutex sync.Mutex
	spaceBytesLeft uint32
	lowestBytesLeft uint32
	byteSizeLimit uint32
	evictions uint32
	mutex sync.RWMutex
}

// Creates a new cache bounded by the given size. Negative values
// will panic.
func NewMaskCache(maxByteSize int) *MaskCache {
	if maxByteSize < 0 { panic("maxByteSize < 0") }
	return &MaskCache {
		cachedMasks: make(map[[3]uint64]*cachedMaskEntry, 128),
		spaceBytesLeft: uint32(maxByteSize),
		lowestBytesLeft: uint32(maxByteSize),
		byteSizeLimit: uint32(maxByteSize),
		rng: rand.New(rand.NewSource(int64(cacheEntryInstant()) ^ 0x36285016_051A1E33)),
	}
}

// Gets the mask associated to the given key. Nil masks are valid
// entries, so the second return value must be checked.
func (self *MaskCache) GetMask(key [3]uint64) (*image.Alpha, bool) {
	self.mutex.RLock()
	entry, found := self.cachedMasks[key]
	self.mutex.RUnlock()
	if !found { return nil, false }
	entry.IncreaseAccessCount()
	return entry.Mask, true
}

// Stores the given mask with the given key. The mask must not be
// modified afterwards. If there's no room and nothing cold enough can
// be evicted, the mask is silently discarded.
func (self *MaskCache) PassMask(key [3]uint64, mask *image.Alpha) {
	const MaxMakeRoomAttempts = 2

	maskEntry, instant := newCachedMaskEntry(mask)
	if maskEntry.ByteSize > atomic.LoadUint32(&self.byteSizeLimit) { return }
	spaceBytesLeft := atomic.LoadUint32(&self.spaceBytesLeft)
	freedSpace := uint32(0)
	if maskEntry.ByteSize > spaceBytesLeft {
		hotness := maskEntry.Hotness(instant)
		missingSpace := maskEntry.ByteSize - spaceBytesLeft
		for i := 0; i < MaxMakeRoomAttempts; i++ {
			freedSpace += self.removeRandEntry(hotness, instant)
			if freedSpace >= missingSpace { break }
		}
		if freedSpace < missingSpace { return }
	}

	self.mutex.Lock()
	defer self.mutex.Unlock()
	if _, maskAlreadyExists := self.cachedMasks[key]; maskAlreadyExists { return }
	if atomic.LoadUint32(&self.spaceBytesLeft) < maskEntry.ByteSize { return }
	newLeft := atomic.AddUint32(&self.spaceBytesLeft, ^uint32(maskEntry.ByteSize - 1))
	if newLeft < atomic.LoadUint32(&self.lowestBytesLeft) {
		atomic.StoreUint32(&self.lowestBytesLeft, newLeft)
	}
	self.cachedMasks[key] = maskEntry
}

// Attempts to remove the coldest entry from a small pool of samples.
// Returns the freed space, already added back to spaceBytesLeft.
//
// spaceBytesLeft is only modified while holding the write lock, so
// a concurrent Clear() can't leave it above the limit.
func (self *MaskCache) removeRandEntry(hotness uint32, instant uint32) uint32 {
	const SampleSize = 10

	self.mutex.RLock()
	var selectedKey [3]uint64
	lowestHotness := ^uint32(0)
	samplesTaken  := 0
	skip := self.randSkip(len(self.cachedMasks))
	for key, entry := range self.cachedMasks {
		if skip > 0 { skip -= 1 ; continue }
		currHotness := entry.Hotness(instant)
		if currHotness < lowestHotness {
			lowestHotness = currHotness
			selectedKey = key
		}
		samplesTaken += 1
		if samplesTaken >= SampleSize { break }
	}
	self.mutex.RUnlock()

	if lowestHotness >= hotness { return 0 }
	self.mutex.Lock()
	defer self.mutex.Unlock()
	entry, stillExists := self.cachedMasks[selectedKey]
	if !stillExists { return 0 }
	delete(self.cachedMasks, selectedKey)
	atomic.AddUint32(&self.spaceBytesLeft, entry.ByteSize)
	atomic.AddUint32(&self.evictions, 1)
	return entry.ByteSize
}

// Map iteration order isn't random enough for small maps, so we also
// skip a random amount of entries before sampling.
func (self *MaskCache) randSkip(numEntries int) int {
	const SampleSize = 10
	if numEntries <= SampleSize { return 0 }
	self.rngMutex.Lock()
	defer self.rngMutex.Unlock()
	return self.rng.Intn(numEntries - SampleSize)
}

// Returns the number of masks currently stored.
func (self *MaskCache) NumEntries() int {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return len(self.cachedMasks)
}

// Returns an approximation of the number of bytes taken by the
// glyph masks currently stored in the cache.
func (self *MaskCache) ApproxByteSize() int {
	return int(atomic.LoadUint32(&self.byteSizeLimit) - atomic.LoadUint32(&self.spaceBytesLeft))
}

// Returns an approximation of the maximum amount of bytes that the
// cache has been filled with at any point of its life.
func (self *MaskCache) PeakSize() int {
	return int(atomic.LoadUint32(&self.byteSizeLimit) - atomic.LoadUint32(&self.lowestBytesLeft))
}

// Returns the number of entries evicted to make room for new ones.
func (self *MaskCache) Evictions() int {
	return int(atomic.LoadUint32(&self.evictions))
}

// Removes all the cached masks. The peak size is preserved.
func (self *MaskCache) Clear() {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	self.cachedMasks = make(map[[3]uint64]*cachedMaskEntry, 128)
	atomic.StoreUint32(&self.spaceBytesLeft, atomic.LoadUint32(&self.byteSizeLimit))
}
