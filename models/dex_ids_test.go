package models

import (
	"encoding/json"
	"testing"

	"github.com/google/go-querystring/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDexIDsQueryIsCommaJoined(t *testing.T) {
	params := QuoteParams{
		InTokenAddress:   "0xa",
		OutTokenAddress:  "0xb",
		AmountDecimals:   "1000",
		GasPriceDecimals: "1",
		EnabledDexIDs:    DexIDs{1, 2, 3},
	}
	v, err := query.Values(params)
	require.NoError(t, err)
	assert.Equal(t, []string{"1,2,3"}, v["enabledDexIds"])
	_, present := v["disabledDexIds"]
	assert.False(t, present)
}

func TestDexIDsJSON(t *testing.T) {
	out, err := json.Marshal(DexIDs{5, 8})
	require.NoError(t, err)
	assert.Equal(t, `"5,8"`, string(out))

	var ids DexIDs
	require.NoError(t, json.Unmarshal([]byte(`"5, 8"`), &ids))
	assert.Equal(t, DexIDs{5, 8}, ids)
	require.NoError(t, json.Unmarshal([]byte(`[1,2]`), &ids))
	assert.Equal(t, DexIDs{1, 2}, ids)
	assert.Error(t, json.Unmarshal([]byte(`"1,x"`), &ids))

	empty, err := ParseDexIDs("  ")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestDexIDsOmittedFromBody(t *testing.T) {
	out, err := json.Marshal(DcaCancelParams{OrderHash: "0x1", Signature: "0x2"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"orderHash":"0x1","signature":"0x2"}`, string(out))

	out, err = json.Marshal(DcaCreateParams{MakerAmount: "1", Time: 60, Times: 2, DisabledDexIDs: DexIDs{3}})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"disabledDexIds":"3"`)
	assert.NotContains(t, string(out), `enabledDexIds`)
}
