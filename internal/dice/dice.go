package dice

import (
	"errors"
	"math/rand/v2"
)

// RollResult is the outcome of rolling a pool of identical dice
type RollResult struct {
	Total    int   // Sum of the kept dice plus bonus
	Rolls    []int // Individual die results, both dice for advantage/disadvantage
	Bonus    int
	Count    int
	Sides    int
	RawTotal int // Total without the bonus
	IsCrit   bool
	IsFumble bool
}

// Roll rolls count dice of the given size and adds bonus
func Roll(count, size, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, errors.New("invalid dice count")
	}

	if size < 1 {
		return nil, errors.New("invalid dice size")
	}

	raw := 0
	out := make([]int, count)
	for i := 0; i < count; i++ {
		out[i] = rand.IntN(size) + 1
		raw += out[i]
	}

	return &RollResult{
		Total:    raw + bonus,
		Rolls:    out,
		Bonus:    bonus,
		Count:    count,
		Sides:    size,
		RawTotal: raw,
	}, nil
}
