package resolver

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/Volland/did-auth-oidc-siop/pkg/did"
)

// erc1056ABI covers the single registry view used for fallback resolution.
const erc1056ABI = `[{"constant":true,"inputs":[{"name":"identity","type":"address"}],"name":"identityOwner","outputs":[{"name":"","type":"address"}],"payable":false,"stateMutability":"view","type":"function"}]`

var registryABI = func() abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(erc1056ABI))
	if err != nil {
		panic(err)
	}
	return parsed
}()

// resolveRegistry queries the ERC-1056 registry for the identity owner and
// builds a document whose controller method binds that account address. The
// network segment of the DID selects the eip155 namespace recorded on the
// method.
func (r *Registry) resolveRegistry(ctx context.Context, d *did.DID) (*did.Document, error) {
	if !common.IsHexAddress(d.Address()) {
		return nil, fmt.Errorf("%w: %q is not an account address", did.ErrInvalidDID, d.Address())
	}

	caller := r.caller
	if caller == nil {
		client, err := ethclient.DialContext(ctx, r.cfg.RPCURL)
		if err != nil {
			return nil, fmt.Errorf("dial rpc endpoint: %w", err)
		}
		defer client.Close()
		caller = client
	}

	input, err := registryABI.Pack("identityOwner", common.HexToAddress(d.Address()))
	if err != nil {
		return nil, fmt.Errorf("pack registry call: %w", err)
	}
	registry := common.HexToAddress(r.cfg.RegistryAddress)
	output, err := caller.CallContract(ctx, ethereum.CallMsg{To: &registry, Data: input}, nil)
	if err != nil {
		return nil, fmt.Errorf("registry call failed: %w", err)
	}
	results, err := registryABI.Unpack("identityOwner", output)
	if err != nil {
		return nil, fmt.Errorf("unpack registry response: %w", err)
	}
	owner, ok := results[0].(common.Address)
	if !ok {
		return nil, fmt.Errorf("registry returned unexpected type %T", results[0])
	}

	network := d.Network(r.cfg.defaultNetwork())
	controller := d.String() + "#controller"
	return &did.Document{
		Context: "https://w3id.org/did/v1",
		ID:      d.String(),
		VerificationMethod: []did.VerificationMethod{{
			ID:                  controller,
			Type:                "EcdsaSecp256k1RecoveryMethod2020",
			Controller:          d.String(),
			BlockchainAccountID: fmt.Sprintf("eip155:%s:%s", network, owner.Hex()),
		}},
		Authentication: []any{controller},
	}, nil
}
