package dice

import (
	"fmt"
	"strings"

	"github.com/vcrini/diceroll"
)

// expressionEvaluator implements Evaluator with github.com/vcrini/diceroll
type expressionEvaluator struct{}

// NewExpressionEvaluator creates an evaluator for free-form dice expressions
func NewExpressionEvaluator() Evaluator {
	return &expressionEvaluator{}
}

// Evaluate implements Evaluator.Evaluate
func (e *expressionEvaluator) Evaluate(expression string) (int, string, error) {
	expr := strings.ReplaceAll(strings.TrimSpace(expression), " ", "")
	if expr == "" {
		return 0, "", fmt.Errorf("empty dice expression")
	}

	total, breakdown, err := diceroll.RollExpression(expr)
	if err != nil {
		return 0, "", fmt.Errorf("failed to roll %q: %w", expression, err)
	}
	return total, breakdown, nil
}
