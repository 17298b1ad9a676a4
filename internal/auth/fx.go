package auth

import (
	"github.com/fieldgridlabs/fieldgrid/internal/auth/repository"
	"github.com/fieldgridlabs/fieldgrid/internal/auth/service"
	"go.uber.org/fx"
)

var Module = fx.Module("auth.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
