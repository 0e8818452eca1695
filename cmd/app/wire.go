//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/protoform/internal/bootstrap"
	"github.com/yanqian/protoform/internal/domain/summarizer"
	"github.com/yanqian/protoform/internal/infra/config"
	"github.com/yanqian/protoform/internal/infra/datasource"
	"github.com/yanqian/protoform/internal/interface/cli"
	"github.com/yanqian/protoform/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideSummaryConfig,
		provideDataSourceConfig,
		datasource.NewFileSource,
		wire.Bind(new(datasource.Source), new(*datasource.FileSource)),
		summarizer.NewService,
		cli.NewHandler,
		cli.NewRootCommand,
		bootstrap.NewApp,
	)
	return nil, nil
}
