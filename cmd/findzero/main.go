package main

import (
	"flag"
	"os"

	log "github.com/golang/glog"

	"github.com/govalues/findzero/cmd/findzero/cmd"
)

func main() {
	defer log.Flush()

	root := cmd.NewRootCommand()
	root.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	_ = flag.Set("logtostderr", "true")

	if err := root.Execute(); err != nil {
		log.Error(err)
		log.Flush()
		os.Exit(1)
	}
}
