package main

import (
	"github.com/spf13/cobra"

	"github.com/bcdannyboy/bsmparity/commands"
)

func main() {
	cobra.CheckErr(commands.NewRootCmd().Execute())
}
