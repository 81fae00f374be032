package cursor

import "sort"

// MergeRanges returns the minimal sorted set of ranges covering the same
// positions as the input, with no two ranges overlapping or touching.
//
// The input may be unsorted and may contain duplicates, overlaps or nested
// ranges. It is not modified. Merging is idempotent and independent of the
// input order.
//
// Two passes are made:
//  1. Containment elimination: any range lying inside a different range is
//     dropped, keeping only maximal ranges. Of identical ranges only the first
//     survives.
//  2. Fusion: the survivors are sorted by start and a range is fused into its
//     successor whenever ranges[i].End >= ranges[i+1].Start.
func MergeRanges(ranges []Range) []Range {
	if len(ranges) == 0 {
		return nil
	}

	normalized := make([]Range, len(ranges))
	for i, r := range ranges {
		normalized[i] = NewRange(r.Start, r.End)
	}

	kept := make([]Range, 0, len(normalized))
	for i, r := range normalized {
		if !containedElsewhere(normalized, i) {
			kept = append(kept, r)
		}
	}

	sort.Slice(kept, func(i, j int) bool {
		if kept[i].Start != kept[j].Start {
			return kept[i].Start < kept[j].Start
		}
		return kept[i].End < kept[j].End
	})

	merged := kept[:1]
	for _, r := range kept[1:] {
		last := &merged[len(merged)-1]
		if last.End >= r.Start {
			*last = last.Union(r)
		} else {
			merged = append(merged, r)
		}
	}
	return merged
}

// containedElsewhere reports whether ranges[i] lies inside another entry.
// An identical entry only counts when it appears earlier, so exactly one
// copy of a duplicated range survives.
func containedElsewhere(ranges []Range, i int) bool {
	r := ranges[i]
	for j, other := range ranges {
		if j == i || !other.ContainsRange(r) {
			continue
		}
		if other == r && j > i {
			continue
		}
		return true
	}
	return false
}

// RegionIndex returns the index of the merged region that contains r,
// or -1 if none does. regions must be the output of MergeRanges.
func RegionIndex(regions []Range, r Range) int {
	i := sort.Search(len(regions), func(i int) bool {
		return regions[i].End >= r.End
	})
	if i < len(regions) && regions[i].ContainsRange(r) {
		return i
	}
	return -1
}
