/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"os"

	"github.com/hyperledger-labs/fabric-asset-registry/asset/services/logging"
	"github.com/hyperledger-labs/fabric-asset-registry/cmd/assetctl/cobra/registry"
	"github.com/hyperledger-labs/fabric-asset-registry/cmd/assetctl/cobra/version"
	"github.com/spf13/cobra"
)

var logSpec string

// The main command describes the service and
// defaults to printing the help message.
var mainCmd = &cobra.Command{
	Use:   "assetctl",
	Short: "Operate an asset registry backed by a SQL store.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(logging.Config{Spec: logSpec, Writer: os.Stderr})
	},
}

func main() {
	mainCmd.PersistentFlags().StringVar(&logSpec, "log-spec", "error", "logging specification, e.g. info or asset=debug:error")
	mainCmd.AddCommand(registry.Cmds()...)
	mainCmd.AddCommand(version.Cmd())

	// On failure Cobra prints the usage message and error string, so we only
	// need to exit with a non-0 status
	if mainCmd.Execute() != nil {
		os.Exit(1)
	}
}
