package main

import (
	"github.com/fzft/go-capset/cmd"
	"github.com/fzft/go-capset/log"
	"go.uber.org/zap"
)

func main() {
	log.InitLogger()
	log.Logger.Info("capset cli", zap.String("build", CapsetBuildIdRaw()))
	cmd.Run()
}
