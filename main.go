package main

import (
	"github.com/OhadRubin/workspace-colors/cmd"
	"github.com/OhadRubin/workspace-colors/config"
	"github.com/OhadRubin/workspace-colors/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())
	cmd.Execute()
}
