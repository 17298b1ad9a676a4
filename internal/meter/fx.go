package meter

import (
	"github.com/fieldgridlabs/fieldgrid/internal/meter/repository"
	"github.com/fieldgridlabs/fieldgrid/internal/meter/service"
	"go.uber.org/fx"
)

var Module = fx.Module("meter.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
