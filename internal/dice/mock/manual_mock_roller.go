package mockdice

import (
	"fmt"
	"sync"

	"github.com/KirkDiggler/dnd-autoroll/internal/dice"
)

// ManualMockRoller implements dice.Roller for testing with predetermined results
type ManualMockRoller struct {
	mu        sync.Mutex
	rolls     []int
	rollIndex int
}

// NewManualMockRoller creates a new mock dice roller
func NewManualMockRoller() *ManualMockRoller {
	return &ManualMockRoller{
		rolls: []int{},
	}
}

// SetRolls sets multiple roll results
func (m *ManualMockRoller) SetRolls(rolls []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = rolls
	m.rollIndex = 0
}

// Remaining returns how many predetermined rolls are unused
func (m *ManualMockRoller) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rolls) - m.rollIndex
}

func (m *ManualMockRoller) getNextRoll(sides int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rollIndex >= len(m.rolls) {
		return 0, fmt.Errorf("no more predetermined rolls available (used %d of %d)", m.rollIndex, len(m.rolls))
	}

	roll := m.rolls[m.rollIndex]
	if roll < 1 || roll > sides {
		return 0, fmt.Errorf("invalid roll %d for d%d", roll, sides)
	}
	m.rollIndex++
	return roll, nil
}

// Roll implements dice.Roller.Roll
func (m *ManualMockRoller) Roll(count, sides, bonus int) (*dice.RollResult, error) {
	rolls := make([]int, count)
	rawTotal := 0

	for i := 0; i < count; i++ {
		roll, err := m.getNextRoll(sides)
		if err != nil {
			return nil, err
		}
		rolls[i] = roll
		rawTotal += roll
	}

	result := &dice.RollResult{
		Total:    rawTotal + bonus,
		Rolls:    rolls,
		Bonus:    bonus,
		Count:    count,
		Sides:    sides,
		RawTotal: rawTotal,
	}

	if count == 1 && sides == 20 {
		result.IsCrit = rolls[0] == 20
		result.IsFumble = rolls[0] == 1
	}

	return result, nil
}

// RollWithAdvantage implements dice.Roller.RollWithAdvantage
func (m *ManualMockRoller) RollWithAdvantage(sides, bonus int) (*dice.RollResult, error) {
	return m.rollPair(sides, bonus, func(a, b int) int { return max(a, b) })
}

// RollWithDisadvantage implements dice.Roller.RollWithDisadvantage
func (m *ManualMockRoller) RollWithDisadvantage(sides, bonus int) (*dice.RollResult, error) {
	return m.rollPair(sides, bonus, func(a, b int) int { return min(a, b) })
}

func (m *ManualMockRoller) rollPair(sides, bonus int, keep func(a, b int) int) (*dice.RollResult, error) {
	roll1, err := m.getNextRoll(sides)
	if err != nil {
		return nil, err
	}
	roll2, err := m.getNextRoll(sides)
	if err != nil {
		return nil, err
	}
	return dice.Keep(roll1, roll2, sides, bonus, keep), nil
}

// StaticEvaluator implements dice.Evaluator returning fixed totals per expression
type StaticEvaluator struct {
	mu     sync.Mutex
	Totals map[string]int
	Err    error
	Rolled []string
}

// Evaluate implements dice.Evaluator.Evaluate
func (s *StaticEvaluator) Evaluate(expression string) (int, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Rolled = append(s.Rolled, expression)
	if s.Err != nil {
		return 0, "", s.Err
	}
	total, ok := s.Totals[expression]
	if !ok {
		return 0, "", fmt.Errorf("no static total for %q", expression)
	}
	return total, fmt.Sprintf("%s = %d", expression, total), nil
}
