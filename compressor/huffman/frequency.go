package huffman

import "sync"

// Symbol is one unit of the input alphabet.
type Symbol = byte

// Weights maps each distinct symbol to a non-negative weight. Only the
// relative order of weights matters to the tree builder.
type Weights map[Symbol]float64

// Frequencies returns the probability of each distinct symbol in seq.
func Frequencies(seq []byte) Weights {
	return WeightsFromCounts(Counts(seq))
}

func Counts(seq []byte) map[Symbol]int {
	var table [256]int
	for _, b := range seq {
		table[b]++
	}
	return countsFromTable(&table)
}

// CountsParallel splits seq into parts chunks, counts each chunk on its own
// goroutine and sums the partial tables.
func CountsParallel(seq []byte, parts int) map[Symbol]int {
	if parts < 1 {
		parts = 1
	}
	if parts > len(seq) {
		parts = max(1, len(seq))
	}
	chunk := (len(seq) + parts - 1) / parts
	tables := make(chan [256]int, parts)
	var wg sync.WaitGroup
	for start := 0; start < len(seq); start += chunk {
		end := min(len(seq), start+chunk)
		wg.Add(1)
		go func(part []byte) {
			defer wg.Done()
			var table [256]int
			for _, b := range part {
				table[b]++
			}
			tables <- table
		}(seq[start:end])
	}
	wg.Wait()
	close(tables)

	var total [256]int
	for table := range tables {
		for i, n := range table {
			total[i] += n
		}
	}
	return countsFromTable(&total)
}

func WeightsFromCounts(counts map[Symbol]int) Weights {
	total := 0
	for _, n := range counts {
		total += n
	}
	w := make(Weights, len(counts))
	if total == 0 {
		return w
	}
	for sym, n := range counts {
		w[sym] = float64(n) / float64(total)
	}
	return w
}

func countsFromTable(table *[256]int) map[Symbol]int {
	counts := make(map[Symbol]int)
	for i, n := range table {
		if n > 0 {
			counts[Symbol(i)] = n
		}
	}
	return counts
}
