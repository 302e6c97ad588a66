package dnd5e

import (
	"net/http"

	dnderr "github.com/KirkDiggler/dnd-autoroll/internal/errors"
	apiDnd5e "github.com/fadedpez/dnd5e-api/clients/dnd5e"
	apiEntities "github.com/fadedpez/dnd5e-api/entities"
)

// TODO: add context to functions once the api client accepts one
type client struct {
	client apiDnd5e.Interface
}

type Config struct {
	HttpClient *http.Client
}

func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, dnderr.InvalidArgument("dnd5e client config is required")
	}

	dndClient, err := apiDnd5e.NewDND5eAPI(&apiDnd5e.DND5eAPIConfig{
		Client: cfg.HttpClient,
	})
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to create dnd5e api client")
	}

	return &client{
		client: dndClient,
	}, nil
}

func (c *client) GetWeaponDamage(key string) (*Damage, error) {
	if key == "" {
		return nil, dnderr.InvalidArgument("GetWeaponDamage.key is required")
	}

	response, err := c.client.GetEquipment(key)
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to get equipment "+key)
	}

	weapon, ok := response.(*apiEntities.Weapon)
	if !ok {
		return nil, dnderr.InvalidArgumentf("equipment %s is not a weapon", key)
	}

	return apiWeaponToDamage(weapon), nil
}

func (c *client) GetSpellDamage(key string) (*Damage, error) {
	if key == "" {
		return nil, dnderr.InvalidArgument("GetSpellDamage.key is required")
	}

	response, err := c.client.GetSpell(key)
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to get spell "+key)
	}

	return apiSpellToDamage(response), nil
}
