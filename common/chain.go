package common

import (
	"fmt"
	"strconv"
	"strings"
)

// Chain identifies a network supported by the aggregation API.
// Reference: https://apis.openocean.finance/developer/apis/supported-chains
type Chain int

const (
	Eth Chain = iota
	Bsc
	ZkSyncEra
	Polygon
	Base
	Linea
	Fantom
	Avalanche
	Arbitrum
	Optimism
	Moonriver
	Aurora
	Cronos
	Harmony
	Kava
	MetisAndromeda
	Celo
	Telos
	PolygonZkEVM
	Gnosis
	OpBNB
	Mantle
	Manta
	Scroll
	Blast
	Mode
	Rootstock
	Sei
	Gravity
	Apechain
	Sonic
	Berachain
	MonadTestnet
	UniChain
	Flare
	Swell
	HyperEVM
	Plume
	TAC

	// non EVM chains
	Solana
	Ontology
	Near
	Starknet

	chainCount
)

type chainInfo struct {
	slug    string
	chainID int64 // 0 for non EVM chains
	name    string
}

// chains is indexed by Chain and must list every value declared above.
var chains = [...]chainInfo{
	Eth:            {"eth", 1, "Ethereum"},
	Bsc:            {"bsc", 56, "BNB Chain"},
	ZkSyncEra:      {"zksync", 324, "zkSync Era"},
	Polygon:        {"polygon", 137, "Polygon"},
	Base:           {"base", 8453, "Base"},
	Linea:          {"linea", 59144, "Linea"},
	Fantom:         {"fantom", 250, "Fantom"},
	Avalanche:      {"avax", 43114, "Avalanche"},
	Arbitrum:       {"arbitrum", 42161, "Arbitrum"},
	Optimism:       {"optimism", 10, "Optimism"},
	Moonriver:      {"moonriver", 1285, "Moonriver"},
	Aurora:         {"aurora", 1313161554, "Aurora"},
	Cronos:         {"cronos", 25, "Cronos"},
	Harmony:        {"harmony", 1666600000, "Harmony"},
	Kava:           {"kava", 2222, "Kava"},
	MetisAndromeda: {"metis", 1088, "Metis Andromeda"},
	Celo:           {"celo", 42220, "Celo"},
	Telos:          {"telos", 40, "Telos"},
	PolygonZkEVM:   {"polygon_zkevm", 1101, "Polygon zkEVM"},
	Gnosis:         {"gnosis", 100, "Gnosis"},
	OpBNB:          {"opbnb", 204, "opBNB"},
	Mantle:         {"mantle", 5000, "Mantle"},
	Manta:          {"manta", 169, "Manta"},
	Scroll:         {"scroll", 534352, "Scroll"},
	Blast:          {"blast", 81457, "Blast"},
	Mode:           {"mode", 34443, "Mode"},
	Rootstock:      {"rootstock", 30, "Rootstock"},
	Sei:            {"sei", 1329, "Sei"},
	Gravity:        {"gravity", 1625, "Gravity"},
	Apechain:       {"ape", 33139, "ApeChain"},
	Sonic:          {"sonic", 146, "Sonic"},
	Berachain:      {"bera", 80094, "Berachain"},
	MonadTestnet:   {"monad", 10143, "Monad Testnet"},
	UniChain:       {"uni", 130, "Unichain"},
	Flare:          {"flare", 14, "Flare"},
	Swell:          {"swell", 1923, "Swellchain"},
	HyperEVM:       {"hyperevm", 999, "HyperEVM"},
	Plume:          {"plume", 98866, "Plume"},
	TAC:            {"tac", 239, "TAC"},

	Solana:   {"solana", 0, "Solana"},
	Ontology: {"ont", 0, "Ontology"},
	Near:     {"near", 0, "NEAR"},
	Starknet: {"starknet", 0, "Starknet"},
}

// Fails to compile when a trailing constant has no entry. A missing entry in the middle
// leaves an empty slug, which indexChains skips and the chain tests catch.
var _ = [1]struct{}{}[len(chains)-int(chainCount)]

// chainAliases are names accepted by ParseChain besides the slugs.
var chainAliases = map[string]Chain{
	"avalanche": Avalanche,
}

var chainsBySlug, chainsByID = indexChains()

func indexChains() (map[string]Chain, map[int64]Chain) {
	bySlug := make(map[string]Chain, len(chains)+len(chainAliases))
	byID := make(map[int64]Chain, len(chains))
	for alias, c := range chainAliases {
		bySlug[alias] = c
	}
	for i, info := range chains {
		if info.slug == "" {
			continue
		}
		bySlug[info.slug] = Chain(i)
		if info.chainID != 0 {
			byID[info.chainID] = Chain(i)
		}
	}
	return bySlug, byID
}

// Chains returns every supported chain in declaration order.
func Chains() []Chain {
	out := make([]Chain, 0, chainCount)
	for c := Chain(0); c < chainCount; c++ {
		out = append(out, c)
	}
	return out
}

// Valid reports whether c is one of the declared chains.
func (c Chain) Valid() bool {
	return c >= 0 && c < chainCount
}

// Slug returns the path identifier of c.
func (c Chain) Slug() (string, error) {
	if !c.Valid() {
		return "", fmt.Errorf("unsupported chain: %d", int(c))
	}
	return chains[c].slug, nil
}

// ChainID returns the EVM chain id, 0 for non EVM chains.
func (c Chain) ChainID() int64 {
	if !c.Valid() {
		return 0
	}
	return chains[c].chainID
}

func (c Chain) Name() string {
	if !c.Valid() {
		return ""
	}
	return chains[c].name
}

func (c Chain) IsEVM() bool {
	return c.ChainID() != 0
}

func (c Chain) String() string {
	if !c.Valid() {
		return "Chain(" + strconv.Itoa(int(c)) + ")"
	}
	return chains[c].slug
}

// ParseChain accepts a slug ("bsc"), an alias ("avalanche") or an EVM chain id ("56").
func ParseChain(s string) (Chain, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if c, ok := chainsBySlug[key]; ok {
		return c, nil
	}
	if id, err := strconv.ParseInt(key, 10, 64); err == nil {
		if c, ok := chainsByID[id]; ok {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unsupported chain: %q", s)
}

func (c Chain) MarshalText() ([]byte, error) {
	slug, err := c.Slug()
	if err != nil {
		return nil, err
	}
	return []byte(slug), nil
}

func (c *Chain) UnmarshalText(text []byte) error {
	parsed, err := ParseChain(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
