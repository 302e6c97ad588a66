// Package formulagroups creates an item's formula groups the first time the
// item is used.
package formulagroups

import (
	"context"

	"github.com/KirkDiggler/dnd-autoroll/internal/autoroll"
	"github.com/KirkDiggler/dnd-autoroll/internal/clients/dnd5e"
	dnderr "github.com/KirkDiggler/dnd-autoroll/internal/errors"
	"github.com/KirkDiggler/dnd-autoroll/internal/item"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// KeyDefaultGroup labels the group holding every damage part
const KeyDefaultGroup = "AUTOROLL.DefaultGroup"

// Store is where formula groups live
type Store interface {
	GetFormulaGroups(ctx context.Context, itemID string) ([]item.FormulaGroup, error)
	SetFormulaGroups(ctx context.Context, itemID string, groups []item.FormulaGroup) error
}

// ActorStore persists SRD damage onto the stored copy of an item
type ActorStore interface {
	Get(ctx context.Context, id string) (*item.Actor, error)
	Save(ctx context.Context, actor *item.Actor) error
}

// Initializer gives every item its default formula groups
type Initializer struct {
	store     Store
	actors    ActorStore
	srd       dnd5e.Client
	localizer autoroll.Localizer
	logger    *zap.Logger

	groups singleflight.Group
	lookup singleflight.Group
}

// Config holds the dependencies of an Initializer
type Config struct {
	Store     Store
	Localizer autoroll.Localizer

	// SRD is optional; with it, items linked to the SRD but missing a damage
	// profile are filled in before their groups are built
	SRD dnd5e.Client

	// Actors is optional; with it, SRD damage is saved on the owning actor so
	// later reloads of the item roll the same parts its groups point at
	Actors ActorStore

	Logger *zap.Logger
}

// New creates an Initializer
func New(cfg *Config) *Initializer {
	if cfg == nil {
		panic("config is required")
	}
	if cfg.Store == nil {
		panic("formula group store is required")
	}
	if cfg.Localizer == nil {
		panic("localizer is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Initializer{
		store:     cfg.Store,
		actors:    cfg.Actors,
		srd:       cfg.SRD,
		localizer: cfg.Localizer,
		logger:    logger,
	}
}

var _ autoroll.FormulaInitializer = (*Initializer)(nil)

// Initialize fills in the item's SRD damage when it has none and stores its
// default groups unless the item already has groups. Concurrent calls for the
// same item share one store round trip.
func (i *Initializer) Initialize(ctx context.Context, it *item.Item) error {
	if it == nil {
		return dnderr.InvalidArgument("item is required")
	}

	enriched, err := i.enrich(it)
	if err != nil {
		return err
	}
	if enriched {
		if err := i.saveDamage(ctx, it); err != nil {
			return err
		}
	}

	defaults := i.defaultGroups(it)
	_, err, shared := i.groups.Do(it.ID, func() (any, error) {
		existing, err := i.store.GetFormulaGroups(ctx, it.ID)
		if err != nil {
			return nil, dnderr.Wrapf(err, "failed to read formula groups for item %s", it.ID)
		}
		if existing != nil {
			return nil, nil
		}

		if err := i.store.SetFormulaGroups(ctx, it.ID, defaults); err != nil {
			return nil, dnderr.Wrapf(err, "failed to store formula groups for item %s", it.ID)
		}
		i.logger.Debug("initialized formula groups",
			zap.String("item_id", it.ID),
			zap.Int("groups", len(defaults)))
		return nil, nil
	})
	if shared {
		i.logger.Debug("shared formula group initialization", zap.String("item_id", it.ID))
	}
	return err
}

func (i *Initializer) defaultGroups(it *item.Item) []item.FormulaGroup {
	groups := []item.FormulaGroup{}
	if !it.HasDamage() {
		return groups
	}

	all := make([]int, len(it.Damage.Parts))
	for idx := range all {
		all[idx] = idx
	}
	groups = append(groups, item.FormulaGroup{
		Label:      i.localizer.Localize(KeyDefaultGroup),
		FormulaSet: all,
	})

	if it.IsVersatile() {
		groups = append(groups, item.FormulaGroup{
			Label:      i.localizer.Localize("DND5E.Versatile"),
			FormulaSet: append([]int(nil), all...),
			Versatile:  true,
		})
	}
	return groups
}

// enrich copies the SRD damage profile onto an item linked to the SRD that has
// no damage of its own and reports whether it did. Unknown SRD keys leave the
// item as it is.
func (i *Initializer) enrich(it *item.Item) (bool, error) {
	if i.srd == nil || it.SRDKey == "" || it.HasDamage() {
		return false, nil
	}

	key := string(it.Type) + ":" + it.SRDKey
	v, err, _ := i.lookup.Do(key, func() (any, error) {
		if it.Type == item.TypeSpell {
			return i.srd.GetSpellDamage(it.SRDKey)
		}
		return i.srd.GetWeaponDamage(it.SRDKey)
	})
	if err != nil {
		if dnderr.IsInvalidArgument(err) || dnderr.IsNotFound(err) {
			i.logger.Warn("no SRD damage for item",
				zap.String("item_id", it.ID),
				zap.String("srd_key", it.SRDKey),
				zap.Error(err))
			return false, nil
		}
		return false, dnderr.Wrapf(err, "failed to look up SRD damage for item %s", it.ID)
	}

	damage, _ := v.(*dnd5e.Damage)
	if damage == nil || len(damage.Parts) == 0 {
		return false, nil
	}
	it.Damage.Parts = append([]item.DamagePart(nil), damage.Parts...)
	if it.Damage.Versatile == "" {
		it.Damage.Versatile = damage.Versatile
	}
	return true, nil
}

// saveDamage writes the item's damage onto the stored actor that owns it.
// Items without a stored owner only keep the damage in memory.
func (i *Initializer) saveDamage(ctx context.Context, it *item.Item) error {
	owner := it.Actor()
	if i.actors == nil || owner == nil {
		return nil
	}

	actor, err := i.actors.Get(ctx, owner.ID)
	if err != nil {
		if dnderr.IsNotFound(err) {
			return nil
		}
		return dnderr.Wrapf(err, "failed to load actor %s", owner.ID)
	}
	stored := actor.Item(it.ID)
	if stored == nil {
		return nil
	}
	stored.Damage = item.Damage{
		Parts:     append([]item.DamagePart(nil), it.Damage.Parts...),
		Versatile: it.Damage.Versatile,
	}
	if err := i.actors.Save(ctx, actor); err != nil {
		return dnderr.Wrapf(err, "failed to save SRD damage for item %s", it.ID)
	}
	i.logger.Debug("saved SRD damage",
		zap.String("actor_id", actor.ID),
		zap.String("item_id", it.ID))
	return nil
}
