//go:build wireinject

package main

import (
	"opal-server/internal/domain"
	"opal-server/internal/infrastructure"
	"opal-server/internal/interfaces"
	"opal-server/internal/interfaces/httpserver/routes"

	"github.com/google/wire"
)

func CreateApplication() (*Application, error) {
	wire.Build(
		domain.ServiceProvider,
		infrastructure.InfrastructureProvider,
		routes.RouteProvider,
		interfaces.InterfacesProvider,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}
