package reconcile

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvent_DecodesNumericID(t *testing.T) {
	var evt Event
	require.NoError(t, json.Unmarshal([]byte(`{"type":"payment","data":{"id":123456}}`), &evt))
	require.Equal(t, "payment", evt.Type)
	require.Equal(t, "123456", evt.ResourceID())
}

func TestEvent_DecodesStringID(t *testing.T) {
	var evt Event
	require.NoError(t, json.Unmarshal([]byte(`{"type":"subscription_preapproval","data":{"id":"2c93808478a1"}}`), &evt))
	require.Equal(t, "2c93808478a1", evt.ResourceID())
}

func TestEvent_MissingDataID(t *testing.T) {
	var evt Event
	require.NoError(t, json.Unmarshal([]byte(`{"type":"payment"}`), &evt))
	require.Empty(t, evt.ResourceID())
}
