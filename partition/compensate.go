package partition

// compensationPolicy repairs buckets that normalization truncated to zero and
// clamps everything to the max, keeping the running sum near the total.
type compensationPolicy func(buckets []int, minPerBucket, maxPerBucket int)

// sharedFlagCompensation walks the buckets once, left to right. A zero bucket
// is forced up to one and raises a flag shared by the remainder of the pass;
// while the flag is up, every later bucket above the minimum pays one unit
// back. The payback lands on whichever buckets happen to follow a zero, so
// compensation is uneven across the sequence. Whatever is still owed after
// this pass is settled by rebalance.
func sharedFlagCompensation(buckets []int, minPerBucket, maxPerBucket int) {
	owing := false
	for i, v := range buckets {
		switch {
		case v == 0:
			buckets[i] = 1
			owing = true
		case v > minPerBucket:
			if owing {
				v--
			}
			buckets[i] = min(v, maxPerBucket)
		default:
			buckets[i] = min(v, maxPerBucket)
		}
	}
}
