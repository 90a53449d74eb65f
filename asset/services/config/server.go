/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package config

import (
	"os"
	"strconv"

	"github.com/hyperledger-labs/fabric-asset-registry/asset/services/logging"
	"github.com/hyperledger/fabric-chaincode-go/v2/shim"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const chaincodeEnvPrefix = "CHAINCODE"

// ServerConfig configures the chaincode process.
// Every field is read from a CHAINCODE_ prefixed environment variable.
type ServerConfig struct {
	CCID               string
	Address            string
	TLS                bool
	TLSKey             string
	TLSCert            string
	TLSCACertsFilePath string
	LogLevel           string
	LogFormat          string
	OperationsAddress  string
}

// LoadServerConfig reads the chaincode configuration from the environment
func LoadServerConfig() (*ServerConfig, error) {
	v := viper.New()
	v.SetEnvPrefix(chaincodeEnvPrefix)
	for _, key := range []string{"id", "server_address", "tls", "tls_key", "tls_cert", "tls_ca_certs", "log_level", "log_format", "operations_address"} {
		if err := v.BindEnv(key); err != nil {
			return nil, errors.Wrapf(err, "failed binding [%s]", key)
		}
	}
	v.SetDefault("log_level", logging.DefaultSpec)
	v.SetDefault("log_format", logging.DefaultFormat)

	c := &ServerConfig{
		CCID:               v.GetString("id"),
		Address:            v.GetString("server_address"),
		TLSKey:             v.GetString("tls_key"),
		TLSCert:            v.GetString("tls_cert"),
		TLSCACertsFilePath: v.GetString("tls_ca_certs"),
		LogLevel:           v.GetString("log_level"),
		LogFormat:          v.GetString("log_format"),
		OperationsAddress:  v.GetString("operations_address"),
	}

	tls := v.GetString("tls")
	if len(tls) == 0 && len(c.TLSKey) > 0 {
		tls = "true"
	}
	if len(tls) > 0 {
		enabled, err := strconv.ParseBool(tls)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot parse [%s]", tls)
		}
		c.TLS = enabled
	}
	return c, nil
}

// External returns true if the chaincode runs as a service the peer connects to
func (c *ServerConfig) External() bool {
	return len(c.CCID) > 0 && len(c.Address) > 0
}

// TLSProperties loads the key material referenced by the configuration
func (c *ServerConfig) TLSProperties() (shim.TLSProperties, error) {
	if !c.TLS {
		return shim.TLSProperties{Disabled: true}, nil
	}
	key, err := os.ReadFile(c.TLSKey)
	if err != nil {
		return shim.TLSProperties{}, errors.Wrapf(err, "cannot read tls key at [%s]", c.TLSKey)
	}
	cert, err := os.ReadFile(c.TLSCert)
	if err != nil {
		return shim.TLSProperties{}, errors.Wrapf(err, "cannot read tls cert at [%s]", c.TLSCert)
	}
	props := shim.TLSProperties{Key: key, Cert: cert}
	if len(c.TLSCACertsFilePath) > 0 {
		props.ClientCACerts, err = os.ReadFile(c.TLSCACertsFilePath)
		if err != nil {
			return shim.TLSProperties{}, errors.Wrapf(err, "cannot read tls ca certs at [%s]", c.TLSCACertsFilePath)
		}
	}
	return props, nil
}
