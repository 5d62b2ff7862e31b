package bitvector

// rankIndex is one super-block's rank record (spec §3 "Rank index",
// §6 "Persisted layout"): an absolute cumulative 1-count, plus seven
// 9-bit relative counters rel1..rel7 giving the count within
// [512k, 512k+64j) minus abs, for j = 1..7. The seven counters are
// packed LSB-first into a 64-bit field (9*7 = 63 bits used, 1 spare),
// kept alongside abs in a 16-byte on-disk record (4 + 8 + 4 padding).
type rankIndex struct {
	abs uint32
	rel uint64
}

const relFieldBits = 9
const relFieldMask = (1 << relFieldBits) - 1

// relN returns rel_n for n in [1,7]. rel_0 is defined as 0 by spec §4.6
// step 2 but is never stored.
func (r rankIndex) relN(n int) uint32 {
	shift := uint((n - 1) * relFieldBits)
	return uint32(r.rel>>shift) & relFieldMask
}

func (r *rankIndex) setRelN(n int, v uint32) {
	shift := uint((n - 1) * relFieldBits)
	r.rel &^= uint64(relFieldMask) << shift
	r.rel |= uint64(v&relFieldMask) << shift
}

// rel1..rel7 give named, bounds-checked-at-compile-time access mirroring
// the original's RankIndex::rel1()..rel7() accessors.
func (r rankIndex) rel1() uint32 { return r.relN(1) }
func (r rankIndex) rel2() uint32 { return r.relN(2) }
func (r rankIndex) rel3() uint32 { return r.relN(3) }
func (r rankIndex) rel4() uint32 { return r.relN(4) }
func (r rankIndex) rel5() uint32 { return r.relN(5) }
func (r rankIndex) rel6() uint32 { return r.relN(6) }
func (r rankIndex) rel7() uint32 { return r.relN(7) }

func (r *rankIndex) setRel1(v uint32) { r.setRelN(1, v) }
func (r *rankIndex) setRel2(v uint32) { r.setRelN(2, v) }
func (r *rankIndex) setRel3(v uint32) { r.setRelN(3, v) }
func (r *rankIndex) setRel4(v uint32) { r.setRelN(4, v) }
func (r *rankIndex) setRel5(v uint32) { r.setRelN(5, v) }
func (r *rankIndex) setRel6(v uint32) { r.setRelN(6, v) }
func (r *rankIndex) setRel7(v uint32) { r.setRelN(7, v) }
