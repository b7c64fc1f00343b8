package ledger

import (
	"context"
	"crypto/ecdsa"
	"log"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"

	config "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/config"
	models "github.com/NakulHintya1411/blocpol-voting-sytem-sub000/internal/models"
)

const votingContractABI = `[
	{"type":"function","name":"castVote","stateMutability":"nonpayable","inputs":[{"name":"candidateId","type":"uint256"},{"name":"voter","type":"address"}],"outputs":[]},
	{"type":"function","name":"castDelegatedVote","stateMutability":"nonpayable","inputs":[{"name":"candidateId","type":"uint256"},{"name":"voter","type":"address"}],"outputs":[]},
	{"type":"function","name":"castMixedVote","stateMutability":"nonpayable","inputs":[{"name":"candidateId","type":"uint256"},{"name":"voter","type":"address"}],"outputs":[]}
]`

const defaultGasLimit = uint64(200000)
const defaultTimeout = 60 * time.Second

// EthereumClient invokes the voting contract through a relayer account that
// pays gas on behalf of voters.
type EthereumClient struct {
	client      *ethclient.Client
	contract    common.Address
	contractABI abi.ABI
	chainId     *big.Int
	relayerKey  *ecdsa.PrivateKey
	gasLimit    uint64
	timeout     time.Duration
}

func NewEthereumClient(cfg *config.LedgerConfig) (*EthereumClient, error) {
	client, err := ethclient.Dial(cfg.RpcUrl)
	if err != nil {
		return nil, errors.Wrap(err, "failed to dial ledger rpc")
	}

	relayerKey, err := crypto.ToECDSA(cfg.RelayerKey)
	if err != nil {
		return nil, errors.Wrap(err, "invalid relayer key")
	}

	contractABI, err := abi.JSON(strings.NewReader(votingContractABI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse voting contract abi")
	}

	gasLimit := cfg.GasLimit
	if gasLimit == 0 {
		gasLimit = defaultGasLimit
	}

	timeout := defaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	return &EthereumClient{
		client:      client,
		contract:    cfg.ContractAddress,
		contractABI: contractABI,
		chainId:     big.NewInt(cfg.ChainId),
		relayerKey:  relayerKey,
		gasLimit:    gasLimit,
		timeout:     timeout,
	}, nil
}

// methodForVoteType selects the contract entry point for the vote variant.
// All variants go through the same submit contract, ZK_PROOF submission is
// not implemented.
func methodForVoteType(voteType models.VoteType) (string, error) {
	switch voteType {
	case models.VoteTypeDirect:
		return "castVote", nil
	case models.VoteTypeDelegated:
		return "castDelegatedVote", nil
	case models.VoteTypeMixed:
		return "castMixedVote", nil
	case models.VoteTypeZKProof:
		return "", errors.Errorf("vote type %s has no ledger submission path", voteType)
	}

	return "", errors.Errorf("unknown vote type %s", voteType)
}

// SubmitVote signs and sends the vote transaction, then waits for the mined
// receipt. The submission is detached from the caller's cancellation, once in
// flight it runs to completion within the configured timeout so the chain and
// the local side never disagree about whether a transaction was attempted.
func (ethereumClient *EthereumClient) SubmitVote(ctx context.Context, vote *Vote) (*SubmitResult, error) {
	method, err := methodForVoteType(vote.VoteType)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ethereumClient.timeout)
	defer cancel()

	from := crypto.PubkeyToAddress(ethereumClient.relayerKey.PublicKey)

	nonce, err := ethereumClient.client.PendingNonceAt(ctx, from)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch relayer nonce")
	}

	gasPrice, err := ethereumClient.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch gas price")
	}

	data, err := ethereumClient.contractABI.Pack(method, new(big.Int).SetUint64(vote.CandidateIndex), vote.VoterAddress)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to pack %s call", method)
	}

	tx := types.NewTransaction(nonce, ethereumClient.contract, big.NewInt(0), ethereumClient.gasLimit, gasPrice, data)

	signedTx, err := types.SignTx(tx, types.NewEIP155Signer(ethereumClient.chainId), ethereumClient.relayerKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign vote transaction")
	}

	if err := ethereumClient.client.SendTransaction(ctx, signedTx); err != nil {
		return nil, errors.Wrap(err, "failed to send vote transaction")
	}

	log.Printf("|Ledger| Submitted %s transaction %s", method, signedTx.Hash().Hex())

	receipt, err := bind.WaitMined(ctx, ethereumClient.client, signedTx)
	if err != nil {
		return nil, errors.Wrapf(err, "vote transaction %s was not mined", signedTx.Hash().Hex())
	}

	return &SubmitResult{
		TxHash:      signedTx.Hash().Hex(),
		BlockNumber: receipt.BlockNumber.Uint64(),
		Confirmed:   receipt.Status == types.ReceiptStatusSuccessful,
	}, nil
}
