/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package acc

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime/debug"
	"strconv"

	"github.com/hyperledger-labs/fabric-asset-registry/asset"
	"github.com/hyperledger-labs/fabric-asset-registry/asset/services/logging"
	"github.com/hyperledger/fabric-chaincode-go/v2/shim"
	pb "github.com/hyperledger/fabric-protos-go-apiv2/peer"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

var logger = logging.MustGetLogger("acc")

// AssetChaincode exposes the asset registry as a Fabric chaincode.
// The ledger of the invocation is the store every operation runs against.
type AssetChaincode struct {
	Registry asset.Service
	Tracer   trace.Tracer
}

func NewAssetChaincode(registry asset.Service) *AssetChaincode {
	return &AssetChaincode{
		Registry: registry,
		Tracer:   noop.NewTracerProvider().Tracer("acc"),
	}
}

func (cc *AssetChaincode) Init(stub shim.ChaincodeStubInterface) *pb.Response {
	logger.Debugf("[%s] init asset chaincode", stub.GetTxID())
	return shim.Success(nil)
}

func (cc *AssetChaincode) Invoke(stub shim.ChaincodeStubInterface) (res *pb.Response) {
	txID := stub.GetTxID()
	args := stub.GetArgs()
	if len(args) == 0 {
		return shim.Error("missing parameters")
	}
	f := string(args[0])

	ctx, span := cc.tracer().Start(context.Background(), f, trace.WithAttributes(attribute.String("tx_id", txID)))
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("[%s] invoke triggered panic: %s\n%s\n", txID, r, string(debug.Stack()))
			res = shim.Error(fmt.Sprintf("failed responding [%s]", r))
		}
		if res.Status == shim.OK {
			logger.Debugf("[%s] %s OK", txID, f)
			return
		}
		logger.Errorf("[%s] %s %d: %s", txID, f, res.Status, res.Message)
		span.SetStatus(codes.Error, res.Message)
	}()

	logger.Debugf("[%s] %s", txID, f)
	params := args[1:]
	if animalFunctions[f] {
		cc = &AssetChaincode{Registry: &animalService{Service: cc.Registry}, Tracer: cc.Tracer}
	}
	switch f {
	case AssetExistsFunction, AnimalExistsFunction:
		if len(params) != 1 {
			return arityError(f, "key")
		}
		return cc.Exists(ctx, stub, string(params[0]))
	case CreateAssetFunction:
		if len(params) != 2 {
			return arityError(f, "key", "fields")
		}
		fields, err := asset.FieldsFromBytes(params[1])
		if err != nil {
			return shim.Error(fmt.Sprintf("invalid fields for [%s]: %s", params[0], err))
		}
		return cc.Create(ctx, stub, string(params[0]), fields)
	case CreateAnimalFunction:
		if len(params) != 4 {
			return arityError(f, "id", "animal", "latitude", "longitude")
		}
		return cc.Create(ctx, stub, string(params[0]), animalFields(params[1:]))
	case ReadAssetFunction, ReadAnimalFunction:
		if len(params) != 1 {
			return arityError(f, "key")
		}
		return cc.Read(ctx, stub, string(params[0]))
	case UpdateAssetFunction:
		if len(params) != 2 {
			return arityError(f, "key", "fields")
		}
		fields, err := asset.FieldsFromBytes(params[1])
		if err != nil {
			return shim.Error(fmt.Sprintf("invalid fields for [%s]: %s", params[0], err))
		}
		return cc.Update(ctx, stub, string(params[0]), fields)
	case UpdateAnimalFunction:
		if len(params) != 4 {
			return arityError(f, "id", "animal", "latitude", "longitude")
		}
		return cc.Update(ctx, stub, string(params[0]), animalFields(params[1:]))
	case DeleteAssetFunction, DeleteAnimalFunction:
		if len(params) != 1 {
			return arityError(f, "key")
		}
		return cc.Delete(ctx, stub, string(params[0]))
	case ReadAllAssetsFunction, ReadAllAnimalsFunction:
		if len(params) != 0 {
			return arityError(f)
		}
		return cc.ScanAll(ctx, stub)
	case AssetHistoryFunction, AnimalHistoryFunction:
		if len(params) != 1 {
			return arityError(f, "key")
		}
		return cc.HistoryOf(ctx, stub, string(params[0]))
	default:
		return shim.Error(fmt.Sprintf("function [%s] not recognized", f))
	}
}

func (cc *AssetChaincode) Exists(ctx context.Context, stub shim.ChaincodeStubInterface, key string) *pb.Response {
	exists, err := cc.Registry.Exists(ctx, stub, key)
	if err != nil {
		return shim.Error(err.Error())
	}
	return shim.Success([]byte(strconv.FormatBool(exists)))
}

func (cc *AssetChaincode) Create(ctx context.Context, stub shim.ChaincodeStubInterface, key string, fields asset.Fields) *pb.Response {
	if err := cc.Registry.Create(ctx, stub, key, fields); err != nil {
		return shim.Error(err.Error())
	}
	return shim.Success(nil)
}

func (cc *AssetChaincode) Read(ctx context.Context, stub shim.ChaincodeStubInterface, key string) *pb.Response {
	fields, err := cc.Registry.Read(ctx, stub, key)
	if err != nil {
		return shim.Error(err.Error())
	}
	return marshal(fields)
}

func (cc *AssetChaincode) Update(ctx context.Context, stub shim.ChaincodeStubInterface, key string, fields asset.Fields) *pb.Response {
	if err := cc.Registry.Update(ctx, stub, key, fields); err != nil {
		return shim.Error(err.Error())
	}
	return shim.Success(nil)
}

func (cc *AssetChaincode) Delete(ctx context.Context, stub shim.ChaincodeStubInterface, key string) *pb.Response {
	if err := cc.Registry.Delete(ctx, stub, key); err != nil {
		return shim.Error(err.Error())
	}
	return shim.Success(nil)
}

func (cc *AssetChaincode) ScanAll(ctx context.Context, stub shim.ChaincodeStubInterface) *pb.Response {
	records, err := cc.Registry.ScanAll(ctx, stub)
	if err != nil {
		return shim.Error(err.Error())
	}
	logger.Debugf("[%s] read all assets, found [%d]", stub.GetTxID(), len(records))
	return marshal(records)
}

func (cc *AssetChaincode) HistoryOf(ctx context.Context, stub shim.ChaincodeStubInterface, key string) *pb.Response {
	entries, err := cc.Registry.HistoryOf(ctx, stub, key)
	if err != nil {
		return shim.Error(err.Error())
	}
	return marshal(entries)
}

func (cc *AssetChaincode) tracer() trace.Tracer {
	if cc.Tracer == nil {
		return noop.NewTracerProvider().Tracer("acc")
	}
	return cc.Tracer
}

// animalFields builds the fields of an animal from its animal, latitude, longitude arguments
func animalFields(params [][]byte) asset.Fields {
	return asset.Fields{
		"animal":    string(params[0]),
		"latitude":  string(params[1]),
		"longitude": string(params[2]),
	}
}

func arityError(f string, names ...string) *pb.Response {
	return shim.Error(fmt.Sprintf("function [%s] expects %d arguments %v", f, len(names), names))
}

func marshal(v interface{}) *pb.Response {
	raw, err := json.Marshal(v)
	if err != nil {
		logger.Errorf("failed marshalling response: [%s]", err)
		return shim.Error(errors.Wrap(err, "failed marshalling response").Error())
	}
	return shim.Success(raw)
}
