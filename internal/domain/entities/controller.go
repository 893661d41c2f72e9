package entities

import (
	gitforgeEntities "github.com/rios0rios0/gitforge/pkg/global/domain/entities"
)

// ControllerBind is re-exported from gitforge.
type ControllerBind = gitforgeEntities.ControllerBind

// Controller is re-exported from gitforge: a CLI entry point bound to a
// Cobra subcommand.
type Controller = gitforgeEntities.Controller
