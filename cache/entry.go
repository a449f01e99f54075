package cache

import "image"
import "time"
import "sync/atomic"

// Fixed cost of each entry: map slot, image.Alpha header and bookkeeping.
const entryOverhead = 64

var baseInstant = time.Now()

// Lets tests move time forward without sleeping. One second would be
// 1_000_000_000, half a second 500_000_000, etc.
var testInstantNanosHack int64

// Monotonic time since the package was loaded, downscaled to roughly
// hundredths of a second.
func cacheEntryInstant() uint32 {
	return uint32((int64(time.Since(baseInstant)) + testInstantNanosHack) >> 23)
}

// A cached mask with the information needed to estimate how much the
// entry is being used.
type cachedMaskEntry struct {
	Mask *image.Alpha // read-only
	ByteSize uint32 // read-only
	CreationInstant uint32 // read-only
	accessCount uint32
}

func newCachedMaskEntry(mask *image.Alpha) (*cachedMaskEntry, uint32) {
	instant := cacheEntryInstant()
	return &cachedMaskEntry {
		Mask: mask,
		ByteSize: MaskByteSize(mask),
		CreationInstant: instant,
		accessCount: 1,
	}, instant
}

// Concurrent-safe.
func (self *cachedMaskEntry) IncreaseAccessCount() {
	atomic.AddUint32(&self.accessCount, 1)
}

// A measure of bytes accessed per time. Coldest entries (smallest
// values) are evicted first. Concurrent-safe.
func (self *cachedMaskEntry) Hotness(instant uint32) uint32 {
	const ConstEvictionCost = 1000
	bytesHit := self.ByteSize*atomic.LoadUint32(&self.accessCount)
	elapsed  := instant - self.CreationInstant
	if elapsed == 0 { elapsed = 1 }
	return (ConstEvictionCost + bytesHit)/elapsed
}

// Returns the approximate number of bytes the given mask takes in the
// cache. Nil masks (empty glyphs) are cached too, at the fixed cost.
func MaskByteSize(mask *image.Alpha) uint32 {
	if mask == nil { return entryOverhead }
	return uint32(len(mask.Pix)) + entryOverhead
}
