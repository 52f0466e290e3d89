package quack

// Decoded is the result of decoding a sketch against an identifier log: the
// ordered list of log indices whose entries are roots of the sketch's
// polynomial, plus the quantities derived from it. It owns only the index
// list and the log length, never a reference to the sketch or log that
// produced it.
type Decoded struct {
	logLen  int
	indexes []int
}

// Indexes returns the ordered list of log indices decoded as roots, in log
// order. May contain duplicates (log collisions) and may be shorter than
// the sketch's count (an incomplete log).
func (d *Decoded) Indexes() []int {
	return d.indexes
}

// TotalNumMissing is the total number of decoded indices: NumSuffix() +
// NumMissing().
func (d *Decoded) TotalNumMissing() int {
	return len(d.indexes)
}

// NumSuffix is the length of the longest run of consecutive indexes ending
// at logLen-1 — packets that were still in flight when the sketch was
// taken, rather than genuinely dropped.
func (d *Decoded) NumSuffix() int {
	if len(d.indexes) == 0 {
		return 0
	}
	last := d.logLen - 1
	count := 0
	for i := len(d.indexes); i > 0; i-- {
		if d.indexes[i-1] != last {
			break
		}
		last--
		count++
	}
	return count
}

// NumMissing is the number of decoded indices outside the suffix — packets
// more likely to have been dropped than still in flight.
func (d *Decoded) NumMissing() int {
	return d.TotalNumMissing() - d.NumSuffix()
}

// Missing returns the non-suffix prefix of the decoded index list.
func (d *Decoded) Missing() []int {
	return d.indexes[:d.NumMissing()]
}
