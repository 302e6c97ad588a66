package itemroll

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/dnd-autoroll/internal/chat"
	"github.com/KirkDiggler/dnd-autoroll/internal/dice"
	dnderr "github.com/KirkDiggler/dnd-autoroll/internal/errors"
	"github.com/KirkDiggler/dnd-autoroll/internal/item"
	"github.com/KirkDiggler/dnd-autoroll/internal/rolls"
	"go.uber.org/zap"
)

// Localization keys used in roll flavor text
const (
	keyAttackRoll   = "DND5E.AttackRoll"
	keyToolCheck    = "DND5E.ToolCheck"
	keyDamageRoll   = "DND5E.DamageRoll"
	keyHealingRoll  = "DND5E.HealingRoll"
	keyOtherFormula = "DND5E.OtherFormulaRoll"
	keyCriticalHit  = "DND5E.CriticalHit"
)

// Service is the default Roller
type Service struct {
	dice      dice.Roller
	evaluator dice.Evaluator
	sink      chat.Sink
	groups    GroupSource
	localizer Localizer
	diceSound string
	logger    *zap.Logger
}

// ServiceConfig holds the dependencies of a Service
type ServiceConfig struct {
	Dice      dice.Roller
	Evaluator dice.Evaluator
	Sink      chat.Sink
	Groups    GroupSource
	Localizer Localizer
	DiceSound string
	Logger    *zap.Logger
}

// NewService creates a Service
func NewService(cfg *ServiceConfig) *Service {
	if cfg == nil {
		panic("config is required")
	}
	if cfg.Dice == nil {
		panic("dice roller is required")
	}
	if cfg.Evaluator == nil {
		panic("dice evaluator is required")
	}
	if cfg.Sink == nil {
		panic("chat sink is required")
	}
	if cfg.Groups == nil {
		panic("formula group source is required")
	}

	svc := &Service{
		dice:      cfg.Dice,
		evaluator: cfg.Evaluator,
		sink:      cfg.Sink,
		groups:    cfg.Groups,
		localizer: cfg.Localizer,
		diceSound: cfg.DiceSound,
		logger:    cfg.Logger,
	}
	if svc.localizer == nil {
		svc.localizer = keyLocalizer{}
	}
	if svc.logger == nil {
		svc.logger = zap.NewNop()
	}
	return svc
}

// RollAttack rolls a d20 plus the item's attack bonus
func (s *Service) RollAttack(ctx context.Context, it *item.Item, opts CheckOptions) (*rolls.Roll, error) {
	if it == nil {
		return nil, dnderr.InvalidArgument("item is required")
	}
	if it.Capabilities().Check != item.CheckAttack {
		return nil, dnderr.InvalidArgumentf("item %s has no attack roll", it.ID)
	}
	return s.rollCheck(ctx, it, it.AttackBonus, keyAttackRoll, opts)
}

// RollToolCheck rolls a d20 plus the item's tool bonus
func (s *Service) RollToolCheck(ctx context.Context, it *item.Item, opts CheckOptions) (*rolls.Roll, error) {
	if it == nil {
		return nil, dnderr.InvalidArgument("item is required")
	}
	if it.Capabilities().Check != item.CheckTool {
		return nil, dnderr.InvalidArgumentf("item %s is not a tool", it.ID)
	}
	return s.rollCheck(ctx, it, it.ToolBonus, keyToolCheck, opts)
}

func (s *Service) rollCheck(ctx context.Context, it *item.Item, bonus int, flavorKey string, opts CheckOptions) (*rolls.Roll, error) {
	tier := rolls.TierFor(opts.Modifiers)

	var (
		result *dice.RollResult
		err    error
		dieExp string
	)
	switch tier {
	case rolls.TierAdvantage:
		result, err = s.dice.RollWithAdvantage(20, bonus)
		dieExp = "2d20kh"
	case rolls.TierDisadvantage:
		result, err = s.dice.RollWithDisadvantage(20, bonus)
		dieExp = "2d20kl"
	default:
		result, err = s.dice.Roll(1, 20, bonus)
		dieExp = "1d20"
	}
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to roll check for item %s", it.ID)
	}

	roll := &rolls.Roll{
		Formula:   withBonus(dieExp, bonus),
		Total:     result.Total,
		Tier:      tier,
		Dice:      result.Rolls,
		Breakdown: joinInts(result.Rolls),
		Crit:      result.IsCrit,
		Fumble:    result.IsFumble,
	}

	s.logger.Debug("rolled check",
		zap.String("item_id", it.ID),
		zap.String("formula", roll.Formula),
		zap.Int("total", roll.Total),
		zap.Stringer("tier", tier))

	if opts.ChatMessage {
		if err := s.emit(ctx, it, roll, s.flavor(it, flavorKey, "")); err != nil {
			return nil, err
		}
	}

	return roll, nil
}

// RollDamage rolls the item's damage, or the parts selected by a formula
// group, scaled up for spells cast above their base level
func (s *Service) RollDamage(ctx context.Context, it *item.Item, opts DamageOptions) (*rolls.Roll, error) {
	if it == nil {
		return nil, dnderr.InvalidArgument("item is required")
	}
	if !it.HasDamage() {
		return nil, dnderr.InvalidArgumentf("item %s has no damage", it.ID)
	}

	parts := append([]item.DamagePart(nil), it.Damage.Parts...)
	label := ""
	if opts.FormulaGroup != nil {
		groups, err := s.groups.GetFormulaGroups(ctx, it.ID)
		if err != nil {
			return nil, dnderr.Wrapf(err, "failed to load formula groups for item %s", it.ID)
		}
		idx := *opts.FormulaGroup
		if idx < 0 || idx >= len(groups) {
			return nil, dnderr.InvalidArgumentf("item %s has no formula group %d", it.ID, idx).
				WithMeta("formula_group", idx)
		}
		parts = groups[idx].Formulas(it)
		if len(groups) > 1 {
			label = groups[idx].Label
		}
		if len(parts) == 0 {
			return nil, dnderr.InvalidArgumentf("formula group %d of item %s selects no damage", idx, it.ID)
		}
	}

	if extra := scalingLevels(it, opts.SpellLevel); extra > 0 {
		scaled, err := scaleFormula(it.Scaling.Formula, extra)
		if err != nil {
			return nil, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument,
				fmt.Sprintf("failed to scale damage of item %s", it.ID))
		}
		parts = append(parts, item.DamagePart{
			Formula: scaled,
			Type:    parts[0].Type,
		})
	}

	// Alt held on a damage roll makes it a critical hit, doubling every die
	critical := opts.Modifiers.Alt && !it.IsHealing()

	roll := &rolls.Roll{Tier: rolls.TierNormal, Crit: critical}
	formulas := make([]string, 0, len(parts))
	breakdowns := make([]string, 0, len(parts))
	for _, part := range parts {
		formula := part.Formula
		if critical {
			doubled, err := criticalFormula(formula)
			if err != nil {
				return nil, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument,
					fmt.Sprintf("failed to double damage formula %q of item %s", part.Formula, it.ID))
			}
			formula = doubled
		}
		total, breakdown, err := s.evaluator.Evaluate(formula)
		if err != nil {
			return nil, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument,
				fmt.Sprintf("failed to roll damage formula %q of item %s", formula, it.ID))
		}
		roll.Total += total
		roll.Parts = append(roll.Parts, rolls.Part{
			Formula:   formula,
			Type:      part.Type,
			Total:     total,
			Breakdown: breakdown,
		})
		formulas = append(formulas, part.Formula)
		breakdowns = append(breakdowns, breakdown)
	}
	roll.Formula = strings.Join(formulas, " + ")
	roll.Breakdown = strings.Join(breakdowns, "; ")

	key := keyDamageRoll
	if it.IsHealing() {
		key = keyHealingRoll
	}
	if critical {
		if label != "" {
			label += ", "
		}
		label += s.localizer.Localize(keyCriticalHit)
	}

	s.logger.Debug("rolled damage",
		zap.String("item_id", it.ID),
		zap.String("formula", roll.Formula),
		zap.Int("total", roll.Total))

	if err := s.emit(ctx, it, roll, s.flavor(it, key, label)); err != nil {
		return nil, err
	}
	return roll, nil
}

// RollFormula rolls the item's freeform formula. Held modifiers have no
// meaning for a freeform formula and are not read.
func (s *Service) RollFormula(ctx context.Context, it *item.Item, _ FormulaOptions) (*rolls.Roll, error) {
	if it == nil {
		return nil, dnderr.InvalidArgument("item is required")
	}
	if it.Formula == "" {
		return nil, dnderr.InvalidArgumentf("item %s has no formula", it.ID)
	}

	total, breakdown, err := s.evaluator.Evaluate(it.Formula)
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument,
			fmt.Sprintf("failed to roll formula %q of item %s", it.Formula, it.ID))
	}

	roll := &rolls.Roll{
		Formula:   it.Formula,
		Total:     total,
		Tier:      rolls.TierNormal,
		Breakdown: breakdown,
	}

	if err := s.emit(ctx, it, roll, s.flavor(it, keyOtherFormula, "")); err != nil {
		return nil, err
	}
	return roll, nil
}

func (s *Service) emit(ctx context.Context, it *item.Item, roll *rolls.Roll, flavor string) error {
	content, err := roll.Render()
	if err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to render roll")
	}

	record := &chat.Record{
		ItemID:  it.ID,
		Content: content,
		Roll:    roll,
		Type:    chat.MessageTypeRoll,
		Sound:   s.diceSound,
		Flavor:  flavor,
	}
	if actor := it.Actor(); actor != nil {
		record.ActorID = actor.ID
	}

	if _, err := s.sink.Create(ctx, record); err != nil {
		return dnderr.Wrapf(err, "failed to emit roll for item %s", it.ID)
	}
	return nil
}

func (s *Service) flavor(it *item.Item, key, label string) string {
	flavor := fmt.Sprintf("%s - %s", it.Name, s.localizer.Localize(key))
	if label != "" {
		flavor += " (" + label + ")"
	}
	return flavor
}

// scalingLevels returns how many levels above its base the item was used at,
// zero when the item does not scale
func scalingLevels(it *item.Item, spellLevel *int) int {
	if spellLevel == nil || it.Scaling.Mode != item.ScalingLevel || it.Scaling.Formula == "" {
		return 0
	}
	return max(*spellLevel-it.Level, 0)
}

var (
	simpleDice = regexp.MustCompile(`^(\d*)d(\d+)$`)
	diceTerm   = regexp.MustCompile(`(\d*)d(\d+)`)
)

// scaleFormula multiplies formula n times, folding plain NdM into (N*n)dM
func scaleFormula(formula string, n int) (string, error) {
	formula = strings.ReplaceAll(formula, " ", "")
	if m := simpleDice.FindStringSubmatch(formula); m != nil {
		count, err := diceCount(m[1])
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%dd%s", count*n, m[2]), nil
	}

	copies := make([]string, n)
	for i := range copies {
		copies[i] = formula
	}
	return strings.Join(copies, "+"), nil
}

// criticalFormula doubles the number of every die in formula, leaving flat
// bonuses alone
func criticalFormula(formula string) (string, error) {
	var err error
	doubled := diceTerm.ReplaceAllStringFunc(formula, func(term string) string {
		m := diceTerm.FindStringSubmatch(term)
		count, convErr := diceCount(m[1])
		if convErr != nil {
			err = convErr
			return term
		}
		return fmt.Sprintf("%dd%s", count*2, m[2])
	})
	if err != nil {
		return "", err
	}
	return doubled, nil
}

func diceCount(s string) (int, error) {
	if s == "" {
		return 1, nil
	}
	count, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid dice count %q: %w", s, err)
	}
	return count, nil
}

func withBonus(die string, bonus int) string {
	switch {
	case bonus > 0:
		return fmt.Sprintf("%s + %d", die, bonus)
	case bonus < 0:
		return fmt.Sprintf("%s - %d", die, -bonus)
	default:
		return die
	}
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}

// keyLocalizer shows raw keys when no catalog is configured
type keyLocalizer struct{}

func (keyLocalizer) Localize(key string) string { return key }
