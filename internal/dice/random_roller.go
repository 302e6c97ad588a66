package dice

// randomRoller implements Roller with math/rand
type randomRoller struct{}

// NewRandomRoller creates a new random dice roller
func NewRandomRoller() Roller {
	return &randomRoller{}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	result, err := Roll(count, sides, bonus)
	if err != nil {
		return nil, err
	}

	// Check for crit/fumble on d20
	if count == 1 && sides == 20 {
		result.IsCrit = result.Rolls[0] == 20
		result.IsFumble = result.Rolls[0] == 1
	}

	return result, nil
}

// RollWithAdvantage implements Roller.RollWithAdvantage
func (r *randomRoller) RollWithAdvantage(sides, bonus int) (*RollResult, error) {
	return r.rollPair(sides, bonus, func(a, b int) int { return max(a, b) })
}

// RollWithDisadvantage implements Roller.RollWithDisadvantage
func (r *randomRoller) RollWithDisadvantage(sides, bonus int) (*RollResult, error) {
	return r.rollPair(sides, bonus, func(a, b int) int { return min(a, b) })
}

func (r *randomRoller) rollPair(sides, bonus int, keep func(a, b int) int) (*RollResult, error) {
	pair, err := Roll(2, sides, 0)
	if err != nil {
		return nil, err
	}
	return Keep(pair.Rolls[0], pair.Rolls[1], sides, bonus, keep), nil
}

// Keep builds the result of a two-dice roll where keep picks the counted die
func Keep(roll1, roll2, sides, bonus int, keep func(a, b int) int) *RollResult {
	kept := keep(roll1, roll2)

	result := &RollResult{
		Total:    kept + bonus,
		Rolls:    []int{roll1, roll2},
		Bonus:    bonus,
		Count:    1,
		Sides:    sides,
		RawTotal: kept,
	}

	// Check for crit/fumble on d20
	if sides == 20 {
		result.IsCrit = kept == 20
		result.IsFumble = kept == 1
	}

	return result
}
