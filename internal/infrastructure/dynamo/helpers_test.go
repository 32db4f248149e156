package dynamo

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUpdateExpr_SingleField(t *testing.T) {
	ue, err := buildUpdateExpr(map[string]interface{}{"name": "Acme"})
	require.NoError(t, err)
	assert.Equal(t, "SET #f0 = :v0", ue.Expr)
	assert.Equal(t, map[string]string{"#f0": "name"}, ue.Names)
	_, ok := ue.Values[":v0"]
	assert.True(t, ok)
}

func TestBuildUpdateExpr_MultipleFields_Deterministic(t *testing.T) {
	updates := map[string]interface{}{
		"name":          "Acme",
		"employee_size": 42,
		"email":         "a@b.com",
	}
	// Call twice to verify determinism.
	ue1, err := buildUpdateExpr(updates)
	require.NoError(t, err)
	ue2, err := buildUpdateExpr(updates)
	require.NoError(t, err)

	assert.Equal(t, ue1.Expr, ue2.Expr)

	// Keys must be sorted: email < employee_size < name
	assert.Equal(t, "email", ue1.Names["#f0"])
	assert.Equal(t, "employee_size", ue1.Names["#f1"])
	assert.Equal(t, "name", ue1.Names["#f2"])
	assert.Equal(t, "SET #f0 = :v0, #f1 = :v1, #f2 = :v2", ue1.Expr)
}

func TestBuildUpdateExpr_ValuesMarshalledCorrectly(t *testing.T) {
	ue, err := buildUpdateExpr(map[string]interface{}{"verified": true})
	require.NoError(t, err)
	av, ok := ue.Values[":v0"]
	require.True(t, ok)
	boolVal, isBool := av.(*types.AttributeValueMemberBOOL)
	require.True(t, isBool)
	assert.True(t, boolVal.Value)
}

func TestBuildUpdateExpr_EmptyMap_ReturnsError(t *testing.T) {
	_, err := buildUpdateExpr(map[string]interface{}{})
	assert.ErrorContains(t, err, "no fields to update")
}

func TestWithUpdatedAt_DoesNotMutateCaller(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	updates := map[string]interface{}{"logo_url": "s3://bucket/logos/c1/logo.png"}

	out := withUpdatedAt(updates, now)

	assert.Equal(t, "2026-09-01T12:00:00Z", out[fieldUpdatedAt])
	assert.Equal(t, "s3://bucket/logos/c1/logo.png", out["logo_url"])
	// The caller's map stays untouched.
	assert.Len(t, updates, 1)
	_, stamped := updates[fieldUpdatedAt]
	assert.False(t, stamped)
}

func TestVerificationAttr(t *testing.T) {
	attr, err := verificationAttr("email")
	require.NoError(t, err)
	assert.Equal(t, fieldEmailVerification, attr)

	attr, err = verificationAttr("phone")
	require.NoError(t, err)
	assert.Equal(t, fieldPhoneVerification, attr)

	_, err = verificationAttr("carrier-pigeon")
	assert.Error(t, err)
}
