package inspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fastjson"

	"github.com/paykit-dev/paykit/internal/config"
	"github.com/paykit-dev/paykit/internal/jsonutil"
)

const accountInfo = `{
	"account": "4100175017397",
	"balance": 1000.50,
	"currency": "643",
	"account_type": "professional",
	"identified": true,
	"operation_id": 9007199254740993,
	"datetime": "2015-03-12T10:00:00+03:00",
	"balance_details": {"total": 1000.50}
}`

func mustObject(t *testing.T, s string) *fastjson.Object {
	t.Helper()
	o, err := jsonutil.ParseObject([]byte(s))
	require.NoError(t, err)
	return o
}

func TestExtract_DefaultSchema(t *testing.T) {
	results, err := Extract(mustObject(t, accountInfo), config.Default())
	require.NoError(t, err)
	require.Len(t, results, 7)

	got := make(map[string]string)
	for _, r := range results {
		got[r.Field] = r.Text()
	}
	assert.Equal(t, "4100175017397", got["account"])
	assert.Equal(t, "1000.5", got["balance"])
	assert.Equal(t, "643", got["currency"])
	assert.Equal(t, "professional", got["account_type"])
	assert.Equal(t, "true", got["identified"])
	assert.Equal(t, "9007199254740993", got["operation_id"])
	assert.Equal(t, "2015-03-12T10:00:00+03:00", got["datetime"])

	assert.Equal(t, "account", results[0].Field, "results keep schema order")
}

func TestExtract_OptionalAbsent(t *testing.T) {
	o := mustObject(t, `{"account":"1","balance":"0","currency":643}`)
	results, err := Extract(o, config.Default())
	require.NoError(t, err)

	for _, r := range results {
		switch r.Field {
		case "identified", "operation_id", "datetime":
			assert.False(t, r.Present, "field %s", r.Field)
			assert.Equal(t, Absent, r.Text())
		case "account_type":
			assert.True(t, r.Present)
			assert.Equal(t, "unknown", r.Value)
		}
	}
}

func TestExtract_UnrecognizedAccountType(t *testing.T) {
	s := &config.Schema{Fields: []config.Field{{Name: "account_type", Kind: config.KindAccountType, Mandatory: true}}}
	results, err := Extract(mustObject(t, `{"account_type":"corporate"}`), s)
	require.NoError(t, err)
	assert.Equal(t, "unknown", results[0].Value)
}

func TestExtract_MandatoryMissing(t *testing.T) {
	_, err := Extract(mustObject(t, `{"account":"1","currency":643}`), config.Default())
	require.Error(t, err)
	assert.ErrorIs(t, err, jsonutil.ErrMissingValue)
	assert.Contains(t, err.Error(), "extracting balance")
}

func TestExtract_ParseFailure(t *testing.T) {
	_, err := Extract(mustObject(t, `{"account":"1","balance":"lots","currency":643}`), config.Default())
	require.Error(t, err)
	assert.ErrorIs(t, err, jsonutil.ErrParse)
}

func TestExtract_NilObject(t *testing.T) {
	_, err := Extract(nil, config.Default())
	assert.ErrorIs(t, err, jsonutil.ErrInvalidArgument)
}

func TestFlatten(t *testing.T) {
	results, err := Flatten(mustObject(t, `{"c":{"x":1},"a":1,"b":true}`))
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "a", results[0].Field)
	assert.Equal(t, "1", results[0].Text())
	assert.Equal(t, "b", results[1].Field)
	assert.Equal(t, "true", results[1].Text())
	assert.Equal(t, "c", results[2].Field)
	assert.False(t, results[2].Present)
}
