// Package heapsort sorts integers with a binary min-heap and draws the heap
// as a small ASCII tree.
//
// Complexity: Build O(n log n), Sort O(n log n), Render O(n).
package heapsort

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadValue indicates a list entry that is not an integer.
var ErrBadValue = errors.New("heapsort: values must be integers")

// Build returns a min-heap holding values, built by inserting them one at a
// time. values is not modified.
func Build(values []int) []int {
	heap := make([]int, len(values))
	for i, v := range values {
		heap[i] = v
		bubbleUp(heap, i)
	}
	return heap
}

// Sort returns values in ascending order. values is not modified.
func Sort(values []int) []int {
	heap := Build(values)
	sorted := make([]int, len(heap))
	for i, j := 0, len(heap)-1; i < len(sorted); i, j = i+1, j-1 {
		sorted[i] = heap[0]
		heap[0] = heap[j]
		bubbleDown(heap, 0, j)
	}
	return sorted
}

// bubbleUp moves heap[i] towards the root while its parent is larger.
func bubbleUp(heap []int, i int) {
	for i > 0 {
		parent := (i+1)/2 - 1
		if heap[parent] <= heap[i] {
			return
		}
		heap[parent], heap[i] = heap[i], heap[parent]
		i = parent
	}
}

// bubbleDown moves heap[i] towards the leaves of heap[:limit], swapping with
// the smaller child while that child is smaller.
func bubbleDown(heap []int, i, limit int) {
	for {
		child := (i+1)*2 - 1
		if child >= limit {
			return
		}
		if child+1 < limit && heap[child] > heap[child+1] {
			child++
		}
		if heap[i] <= heap[child] {
			return
		}
		heap[i], heap[child] = heap[child], heap[i]
		i = child
	}
}

// Render draws heap one level per line, halving the spacing on each level:
//
//	      1
//	  4       2
//	7   9   4   3
//
// Trailing spaces are trimmed. An empty heap renders as "".
func Render(heap []int) string {
	if len(heap) == 0 {
		return ""
	}
	depth := 0
	for i := 1; i <= len(heap); i <<= 1 {
		depth++
	}

	var sb, line strings.Builder
	flush := func() {
		sb.WriteString(strings.TrimRight(line.String(), " "))
		sb.WriteByte('\n')
		line.Reset()
	}
	levelMax, levelPos, step := 1, 1, 4<<(depth-1)
	for _, v := range heap {
		if levelPos > levelMax {
			levelMax <<= 1
			levelPos = 1
			step /= 2
			flush()
		}
		line.WriteString(strings.Repeat(" ", max(step/2-1, 0)))
		line.WriteString(strconv.Itoa(v))
		line.WriteString(strings.Repeat(" ", max(step/2-digits(v)+1, 0)))
		levelPos++
	}
	flush()
	return sb.String()
}

// digits counts the decimal digits of |v|; zero counts as none, matching
// the spacing the tree layout was tuned for.
func digits(v int) int {
	if v < 0 {
		v = -v
	}
	n := 0
	for ; v > 0; v /= 10 {
		n++
	}
	return n
}

// ParseValues parses a comma-separated list such as "3,7,1".
func ParseValues(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadValue, f)
		}
		values = append(values, v)
	}
	return values, nil
}
