package commands

import (
	"errors"

	"aboshop/internal/core/domain/model/checkout"
	"aboshop/internal/core/domain/model/kernel"
	"aboshop/internal/pkg/guard"
)

var ErrConfigureSubscriptionCommandIsNotConstructed = errors.New(
	"ConfigureSubscriptionCommand must be created via NewConfigureSubscriptionCommand constructor",
)

// ConfigureSubscriptionCommand represents a submission of the product
// configurator: edition variant, delivery cadence, billing interval,
// start date and delivery notes. Carries a partial configuration.
type ConfigureSubscriptionCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	patch     checkout.ConfigurationPatch

	guard guard.ConstructorGuard
}

// NewConfigureSubscriptionCommand creates a command to submit the
// configurator step. Validates that the session ID is valid; the merged
// configuration is validated against the draft by the handler.
func NewConfigureSubscriptionCommand(sessionID kernel.UUID, patch checkout.ConfigurationPatch) (ConfigureSubscriptionCommand, error) {
	cmd := ConfigureSubscriptionCommand{
		patch: patch,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSessionID(sessionID); err != nil {
		return ConfigureSubscriptionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfigureSubscriptionCommand) Validate() error {
	return c.guard.Validate(ErrConfigureSubscriptionCommandIsNotConstructed)
}

// SessionID returns the checkout session identifier.
func (c ConfigureSubscriptionCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// Patch returns the partial configuration to merge.
func (c ConfigureSubscriptionCommand) Patch() checkout.ConfigurationPatch {
	return c.patch
}

func (c *ConfigureSubscriptionCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}
