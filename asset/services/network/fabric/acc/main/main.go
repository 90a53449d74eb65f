/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/hyperledger-labs/fabric-asset-registry/asset"
	"github.com/hyperledger-labs/fabric-asset-registry/asset/services/config"
	"github.com/hyperledger-labs/fabric-asset-registry/asset/services/logging"
	"github.com/hyperledger-labs/fabric-asset-registry/asset/services/metrics"
	"github.com/hyperledger-labs/fabric-asset-registry/asset/services/network/fabric/acc"
	"github.com/hyperledger/fabric-chaincode-go/v2/shim"
	"github.com/hyperledger/fabric-lib-go/common/metrics/disabled"
	"github.com/hyperledger/fabric-lib-go/common/metrics/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
)

func main() {
	c, err := config.LoadServerConfig()
	assertNoError(err, "cannot load configuration")

	logging.Init(logging.Config{
		Format: c.LogFormat,
		Spec:   c.LogLevel,
		Writer: os.Stderr,
	})
	logger := logging.MustGetLogger("acc", "main")

	var provider metrics.Provider = &disabled.Provider{}
	if len(c.OperationsAddress) > 0 {
		provider = &prometheus.Provider{}
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		go func() {
			logger.Infof("serving metrics at [%s]", c.OperationsAddress)
			if err := http.ListenAndServe(c.OperationsAddress, mux); err != nil {
				logger.Errorf("operations endpoint stopped: [%s]", err)
			}
		}()
	}

	cc := acc.NewAssetChaincode(metrics.NewObservableRegistry(asset.NewRegistry(), metrics.New(provider)))
	cc.Tracer = otel.Tracer("acc")

	if !c.External() {
		fmt.Println("CC ID or CC address is empty... Running as usual...")
		err := shim.Start(cc)
		assertNoError(err, "cannot start chaincode")
		return
	}

	fmt.Println("Asset Chaincode CCID : " + c.CCID)
	fmt.Println("Asset Chaincode address : " + c.Address)
	fmt.Println("Running Asset Chaincode as service ...")

	tlsProps, err := c.TLSProperties()
	assertNoError(err, "cannot load tls properties")

	server := &shim.ChaincodeServer{
		CCID:     c.CCID,
		Address:  c.Address,
		CC:       cc,
		TLSProps: tlsProps,
	}
	err = server.Start()
	assertNoError(err, "Error starting Asset Chaincode")
}

func assertNoError(err error, msg string) {
	if err != nil {
		panic(fmt.Sprintf("%s: [%s]", msg, err))
	}
}
