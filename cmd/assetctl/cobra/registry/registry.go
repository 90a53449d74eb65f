/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package registry

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/hyperledger-labs/fabric-asset-registry/asset"
	"github.com/hyperledger-labs/fabric-asset-registry/asset/services/config"
	"github.com/hyperledger-labs/fabric-asset-registry/asset/services/metrics"
	"github.com/hyperledger-labs/fabric-asset-registry/asset/services/storage/sql"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

const (
	JSON = "json"
	YAML = "yaml"
)

type options struct {
	configPath string
	output     string
	stats      bool
}

// session is a registry bound to an open store
type session struct {
	registry asset.Service
	store    *sql.Store
	provider *metrics.InMemoryProvider
}

// Cmds returns the Cobra Commands operating the registry
func Cmds() []*cobra.Command {
	return []*cobra.Command{
		existsCmd(),
		createCmd(),
		readCmd(),
		updateCmd(),
		deleteCmd(),
		listCmd(),
		historyCmd(),
	}
}

func existsCmd() *cobra.Command {
	return newCmd("exists KEY", "Tell whether an asset exists.", metrics.Exists, []string{"KEY"},
		func(cmd *cobra.Command, s *session, args []string) (interface{}, error) {
			return s.registry.Exists(cmd.Context(), s.store, args[0])
		})
}

func createCmd() *cobra.Command {
	return newCmd("create KEY FIELDS", "Create an asset from a JSON object of fields.", metrics.Create, []string{"KEY", "FIELDS"},
		func(cmd *cobra.Command, s *session, args []string) (interface{}, error) {
			fields, err := asset.FieldsFromBytes([]byte(args[1]))
			if err != nil {
				return nil, errors.WithMessagef(err, "invalid fields for [%s]", args[0])
			}
			return nil, s.registry.Create(cmd.Context(), s.store, args[0], fields)
		})
}

func readCmd() *cobra.Command {
	return newCmd("read KEY", "Print the fields of an asset.", metrics.Read, []string{"KEY"},
		func(cmd *cobra.Command, s *session, args []string) (interface{}, error) {
			return s.registry.Read(cmd.Context(), s.store, args[0])
		})
}

func updateCmd() *cobra.Command {
	return newCmd("update KEY FIELDS", "Merge a JSON object of fields into an asset.", metrics.Update, []string{"KEY", "FIELDS"},
		func(cmd *cobra.Command, s *session, args []string) (interface{}, error) {
			fields, err := asset.FieldsFromBytes([]byte(args[1]))
			if err != nil {
				return nil, errors.WithMessagef(err, "invalid fields for [%s]", args[0])
			}
			return nil, s.registry.Update(cmd.Context(), s.store, args[0], fields)
		})
}

func deleteCmd() *cobra.Command {
	return newCmd("delete KEY", "Delete an asset.", metrics.Delete, []string{"KEY"},
		func(cmd *cobra.Command, s *session, args []string) (interface{}, error) {
			return nil, s.registry.Delete(cmd.Context(), s.store, args[0])
		})
}

func listCmd() *cobra.Command {
	return newCmd("list", "Print every asset.", metrics.ScanAll, nil,
		func(cmd *cobra.Command, s *session, args []string) (interface{}, error) {
			return s.registry.ScanAll(cmd.Context(), s.store)
		})
}

func historyCmd() *cobra.Command {
	return newCmd("history KEY", "Print every stored version of an asset, also after it was deleted.", metrics.HistoryOf, []string{"KEY"},
		func(cmd *cobra.Command, s *session, args []string) (interface{}, error) {
			return s.registry.HistoryOf(cmd.Context(), s.store, args[0])
		})
}

type runFunc func(cmd *cobra.Command, s *session, args []string) (interface{}, error)

func newCmd(use, short, operation string, argNames []string, run runFunc) *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  exactArgs(argNames...),
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.output != JSON && o.output != YAML {
				return errors.Errorf("unsupported output [%s], expected [%s] or [%s]", o.output, JSON, YAML)
			}
			// Parsing of the command line is done so silence cmd usage
			cmd.SilenceUsage = true

			s, err := open(o.configPath)
			if err != nil {
				return err
			}
			defer func() {
				if err := s.store.Close(); err != nil {
					cmd.PrintErrf("failed closing store: %s\n", err)
				}
			}()

			res, err := run(cmd, s, args)
			if err != nil {
				return err
			}
			if o.stats {
				cmd.PrintErrf("%s took %.6fs\n", operation, s.provider.Max("asset_registry_operation_duration", operation))
			}
			if res == nil {
				return nil
			}
			return write(cmd.OutOrStdout(), o.output, res)
		},
	}
	cmd.Flags().StringVarP(&o.configPath, "config", "c", "", "path to the YAML configuration of the store")
	cmd.Flags().StringVarP(&o.output, "output", "o", JSON, "output format, json or yaml")
	cmd.Flags().BoolVar(&o.stats, "stats", false, "print the duration of the operation on stderr")
	return cmd
}

func open(configPath string) (*session, error) {
	c, err := config.LoadStorageConfig(configPath)
	if err != nil {
		return nil, errors.WithMessage(err, "failed loading configuration")
	}
	store, err := sql.Open(c.Opts())
	if err != nil {
		return nil, errors.WithMessagef(err, "failed opening [%s] store", c.Driver)
	}
	provider := metrics.NewInMemoryProvider()
	return &session{
		registry: metrics.NewObservableRegistry(asset.NewRegistry(), metrics.New(provider)),
		store:    store,
		provider: provider,
	}, nil
}

func exactArgs(names ...string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > len(names) {
			return errors.Errorf("trailing args detected")
		}
		if len(args) < len(names) {
			return errors.Errorf("missing arguments, expected %v", names)
		}
		return nil
	}
}

func write(w io.Writer, output string, v interface{}) error {
	if b, ok := v.(bool); ok {
		_, err := fmt.Fprintln(w, strconv.FormatBool(b))
		return err
	}
	var raw []byte
	var err error
	switch output {
	case YAML:
		raw, err = yaml.Marshal(v)
	default:
		raw, err = json.MarshalIndent(v, "", "  ")
		raw = append(raw, '\n')
	}
	if err != nil {
		return errors.Wrap(err, "failed marshalling result")
	}
	_, err = w.Write(raw)
	return err
}
