package spasm

// Partitions enumerates every set-partition of vertices (order within a
// block, and block order, are stable but otherwise arbitrary) as a
// restricted-growth-string generator, replacing more_itertools.set_partitions
// from util.py's partitions_mit: each partition is pushed onto the
// returned channel as it's discovered rather than materializing the full
// Bell-number list up front.
func Partitions(vertices []string) <-chan [][]string {
	ch := make(chan [][]string)
	go func() {
		defer close(ch)
		n := len(vertices)
		if n == 0 {
			return
		}

		rgs := make([]int, n)
		var generate func(i, maxSoFar int)
		generate = func(i, maxSoFar int) {
			if i == n {
				ch <- blocksFromRGS(vertices, rgs, maxSoFar)
				return
			}
			for v := 0; v <= maxSoFar+1; v++ {
				rgs[i] = v
				next := maxSoFar
				if v > maxSoFar {
					next = v
				}
				generate(i+1, next)
			}
		}
		generate(1, 0)
	}()
	return ch
}

func blocksFromRGS(vertices []string, rgs []int, maxBlock int) [][]string {
	blocks := make([][]string, maxBlock+1)
	for i, v := range vertices {
		blocks[rgs[i]] = append(blocks[rgs[i]], v)
	}
	return blocks
}
