package commands

import (
	"errors"

	"laundry/internal/pkg/guard"
)

var ErrRefreshDashboardCommandIsNotConstructed = errors.New(
	"RefreshDashboardCommand must be created via NewRefreshDashboardCommand constructor",
)

// RefreshDashboardCommand recomputes the dashboard statistics snapshot.
type RefreshDashboardCommand struct {
	guard guard.ConstructorGuard
}

func NewRefreshDashboardCommand() RefreshDashboardCommand {
	return RefreshDashboardCommand{guard: guard.NewConstructorGuard()}
}

func (c RefreshDashboardCommand) Validate() error {
	return c.guard.Validate(ErrRefreshDashboardCommandIsNotConstructed)
}
