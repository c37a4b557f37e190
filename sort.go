// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

// quicksort sorts ids[left..right] in place by dists[ids[k]] ascending. The
// dists array itself is never permuted; only the index array ids is. Runs
// fall back to insertion sort below a small threshold, and otherwise use a
// median-of-three Hoare partition and recurse into both sides, the larger
// one first; stack depth is O(log N) in expectation.
func quicksort(ids []int, dists []float64, left, right int) {
	if right-left <= 20 {
		insertionSort(ids, dists, left, right)
		return
	}

	mid := (left + right) >> 1
	swapIds(ids, mid, left+1)
	if dists[ids[left]] > dists[ids[right]] {
		swapIds(ids, left, right)
	}
	if dists[ids[left+1]] > dists[ids[right]] {
		swapIds(ids, left+1, right)
	}
	if dists[ids[left]] > dists[ids[left+1]] {
		swapIds(ids, left, left+1)
	}

	i := left + 1
	j := right
	temp := ids[left+1]
	tempDist := dists[temp]
	for {
		for {
			i++
			if dists[ids[i]] >= tempDist {
				break
			}
		}
		for {
			j--
			if dists[ids[j]] <= tempDist {
				break
			}
		}
		if j < i {
			break
		}
		swapIds(ids, i, j)
	}
	ids[left+1] = ids[j]
	ids[j] = temp

	if right-i+1 >= j-left {
		quicksort(ids, dists, i, right)
		quicksort(ids, dists, left, j-1)
	} else {
		quicksort(ids, dists, left, j-1)
		quicksort(ids, dists, i, right)
	}
}

func insertionSort(ids []int, dists []float64, left, right int) {
	for i := left + 1; i <= right; i++ {
		temp := ids[i]
		tempDist := dists[temp]
		j := i - 1
		for j >= left && dists[ids[j]] > tempDist {
			ids[j+1] = ids[j]
			j--
		}
		ids[j+1] = temp
	}
}

func swapIds(ids []int, i, j int) {
	ids[i], ids[j] = ids[j], ids[i]
}
