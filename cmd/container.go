package cmd

import (
	"go.uber.org/dig"

	"github.com/retrolabs/retrolog/application"
	"github.com/retrolabs/retrolog/domain"
	"github.com/retrolabs/retrolog/infrastructure/output"
	sourcePkg "github.com/retrolabs/retrolog/infrastructure/source"
	"github.com/retrolabs/retrolog/infrastructure/source/gitcli"
	"github.com/retrolabs/retrolog/infrastructure/source/gogit"
)

// buildGenerateService wires the source registry and output sink into the
// generate service through a dig container.
func buildGenerateService(outputPath string, dryRun bool) (*application.GenerateService, error) {
	container := dig.New()

	if err := container.Provide(buildSourceRegistry); err != nil {
		return nil, err
	}
	if err := container.Provide(func() domain.Sink {
		if dryRun {
			return output.NewStdoutSink()
		}
		return output.NewFileSink(outputPath)
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(application.NewGenerateService); err != nil {
		return nil, err
	}

	var svc *application.GenerateService
	if err := container.Invoke(func(s *application.GenerateService) {
		svc = s
	}); err != nil {
		return nil, err
	}
	return svc, nil
}

func buildSourceRegistry() *sourcePkg.Registry {
	reg := sourcePkg.NewRegistry()
	reg.Register("gitcli", gitcli.New)
	reg.Register("gogit", gogit.New)
	return reg
}
