package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-token-agent/internal/prompt"
	"github.com/MKhiriev/go-token-agent/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	root, a := newRootCmd(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	err := root.ExecuteContext(ctx)
	a.close()
	stop()

	if err != nil {
		prompt.NewColorReporter().ReportError(err)
	}
	os.Exit(exitCode(err))
}
