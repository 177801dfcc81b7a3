package models

import (
	"encoding/json"
	"errors"
	"testing"

	oerrors "finco/openocean/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeResult(t *testing.T) {
	var ok BaseResponse[[]Dex]
	require.NoError(t, json.Unmarshal([]byte(`{"code":200,"data":[{"index":1,"code":"uni","name":"Uniswap"}]}`), &ok))
	dexes, err := ok.Result()
	require.NoError(t, err)
	assert.Len(t, *dexes, 1)

	var failed MsgResponse[TicketData]
	require.NoError(t, json.Unmarshal([]byte(`{"code":400,"msg":"bad referer"}`), &failed))
	_, err = failed.Result()
	var logical *LogicalError
	require.True(t, errors.As(err, &logical))
	assert.Equal(t, 400, logical.Code)
	assert.Equal(t, "bad referer", logical.Message)

	var empty ErrorMsgResponse[CancelLimitOrderData]
	require.NoError(t, json.Unmarshal([]byte(`{"code":200}`), &empty))
	_, err = empty.Result()
	assert.Error(t, err)

	assert.NoError(t, (&CodeResponse{Code: 200}).Err())
	assert.Error(t, (&CodeResponse{Code: 500}).Err())
}

func TestGasPriceLevelShapes(t *testing.T) {
	var data GasPriceData
	body := `{
		"standard": 3000000000,
		"fast": "3500000000",
		"instant": {"legacyGasPrice": 4, "maxPriorityFeePerGas": 1.5, "maxFeePerGas": "40", "waitTimeEstimate": 15000}
	}`
	require.NoError(t, json.Unmarshal([]byte(body), &data))

	assert.False(t, data.Standard.IsEIP1559())
	assert.Equal(t, F64(3e9), data.Standard.Price())
	assert.Equal(t, F64(3.5e9), data.Fast.Price())
	assert.True(t, data.Instant.IsEIP1559())
	assert.Equal(t, F64(40), data.Instant.Price())
	assert.Equal(t, F64(1.5), data.Instant.MaxPriorityFeePerGas)

	var bare GasPriceData
	err := json.Unmarshal([]byte(`{"standard": {"foo": 1}, "fast": 1, "instant": 1}`), &bare)
	var pe *oerrors.ParseError
	require.True(t, errors.As(err, &pe), "%v", err)
	assert.Contains(t, pe.Message, "neither maxFeePerGas nor legacyGasPrice")

	var legacyOnly GasPriceLevel
	require.NoError(t, json.Unmarshal([]byte(`{"legacyGasPrice": 7}`), &legacyOnly))
	assert.True(t, legacyOnly.IsEIP1559())
	assert.Equal(t, F64(7), legacyOnly.Price())

	out, err := json.Marshal(data.Standard)
	require.NoError(t, err)
	assert.Equal(t, `3000000000`, string(out))
}

func TestGaslessSwapResponseErr(t *testing.T) {
	hash := "0xabc"
	assert.NoError(t, (&GaslessSwapResponse{Code: 200, OrderHash: &hash}).Err())

	msg := "permit expired"
	err := (&GaslessSwapResponse{Code: 201, Msg: &msg}).Err()
	assert.EqualError(t, err, "api error: code=201, message=permit expired")
}

func TestZapActionAccessors(t *testing.T) {
	var details ZapDetails
	body := `{
		"initialAmountUsd": "100.5",
		"addedLiquidityUsd": 99,
		"zapImpact": 0.01,
		"actions": [
			{"type":"protocolFee","data":{"address":"0xf","amount":{"symbol":"USDC","name":"USD Coin","address":"0xu","decimals":6,"price":1},"amountUsd":"0.1","zapFeeRate":"0.001"}},
			{"type":"aggregatorSwap","data":{"tokenIn":{"address":"0xu","amount":"50","amountUsd":"50"},"tokenOut":{"address":"0xe","amount":"1","amountUsd":"49.9"},"swapImpact":0.2}},
			{"type":"addLiquidity","data":{"token0":{"address":"0xu","amount":"50","amountUsd":"50"},"token1":{"address":"0xe","amount":"1","amountUsd":"49.9"},"liquidity":"12345"}}
		]
	}`
	require.NoError(t, json.Unmarshal([]byte(body), &details))
	require.Len(t, details.Actions, 3)

	fee, err := details.Actions[0].ProtocolFee()
	require.NoError(t, err)
	assert.Equal(t, 6, fee.Amount.Decimals)

	swap, err := details.Actions[1].AggregatorSwap()
	require.NoError(t, err)
	assert.Equal(t, F64(0.2), swap.SwapImpact)

	liq, err := details.Actions[2].AddLiquidity()
	require.NoError(t, err)
	assert.Equal(t, "12345", liq.Liquidity)

	_, err = details.Actions[0].AddLiquidity()
	assert.ErrorContains(t, err, `not "addLiquidity"`)
	assert.Equal(t, oerrors.KindInternal, oerrors.KindOf(err))
}

func TestZapActionDataIsChecked(t *testing.T) {
	cases := []struct {
		data string
		path string
	}{
		{`{"tokenIn":{"address":"0x"},"swapImpact":{}}`, "data.tokenIn.amount"},
		{`{"tokenIn":{"address":"0x","amount":"1","amountUsd":"1"},"tokenOut":{"address":"0x","amount":"1","amountUsd":"1"},"swapImpact":{}}`, "data.swapImpact"},
		{`{}`, "data.tokenIn"},
		{`[]`, "data"},
		{``, "data"},
	}
	for _, tc := range cases {
		action := ZapAction{Type: ZapActionAggregatorSwap, Data: json.RawMessage(tc.data)}
		_, err := action.AggregatorSwap()
		var pe *oerrors.ParseError
		require.True(t, errors.As(err, &pe), "%s: %v", tc.data, err)
		assert.Equal(t, tc.path, pe.Path, tc.data)
		assert.Equal(t, oerrors.KindParse, oerrors.KindOf(err), tc.data)
	}
}
