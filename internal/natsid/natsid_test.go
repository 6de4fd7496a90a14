// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package natsid_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/jwt/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lockwell/keyforge/internal/natsid"
	"github.com/lockwell/keyforge/internal/seed"
)

func testMaster(t *testing.T) seed.Master {
	t.Helper()
	master, err := seed.DeriveMaster("correct horse battery staple mountain river", uuid.MustParse("00000000-0000-7000-8000-000000000001"))
	require.NoError(t, err)
	return master
}

var fixedTime = time.Unix(1700000000, 0).UTC()

func TestGenerateOperatorIsDeterministic(t *testing.T) {
	master := testMaster(t)

	// Sleeping across a wall-clock second boundary between the two calls
	// would catch a regression back to time.Now()-based IssuedAt/jti
	// stamping: with a live clock the two tokens would differ whenever
	// the calls land in different seconds, intermittently passing this
	// test for the wrong reason.
	op1, err := natsid.GenerateOperator(master, "acme", fixedTime)
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)
	op2, err := natsid.GenerateOperator(master, "acme", fixedTime)
	require.NoError(t, err)

	assert.Equal(t, op1.PublicKey, op2.PublicKey)
	assert.Equal(t, op1.JWT, op2.JWT)
}

func TestOperatorSelfSignedJWTVerifies(t *testing.T) {
	master := testMaster(t)
	op, err := natsid.GenerateOperator(master, "acme", fixedTime)
	require.NoError(t, err)

	claims, err := jwt.DecodeOperatorClaims(op.JWT)
	require.NoError(t, err)
	assert.Equal(t, op.PublicKey, claims.Subject)
	assert.Equal(t, op.PublicKey, claims.Issuer)
}

func TestAccountRequiresOperatorParent(t *testing.T) {
	master := testMaster(t)
	op, err := natsid.GenerateOperator(master, "acme", fixedTime)
	require.NoError(t, err)

	acct, err := natsid.GenerateAccount(master, "engineering", op, fixedTime, nil)
	require.NoError(t, err)

	claims, err := jwt.DecodeAccountClaims(acct.JWT)
	require.NoError(t, err)
	assert.Equal(t, acct.PublicKey, claims.Subject)
	assert.Equal(t, op.PublicKey, claims.Issuer)

	_, err = natsid.GenerateAccount(master, "engineering", acct, fixedTime, nil)
	assert.Error(t, err)
}

func TestAccountLimitsAreEncoded(t *testing.T) {
	master := testMaster(t)
	op, err := natsid.GenerateOperator(master, "acme", fixedTime)
	require.NoError(t, err)

	limits := &natsid.Limits{Conn: 10, Data: 1024, Subs: 50}
	acct, err := natsid.GenerateAccount(master, "engineering", op, fixedTime, limits)
	require.NoError(t, err)

	claims, err := jwt.DecodeAccountClaims(acct.JWT)
	require.NoError(t, err)
	assert.Equal(t, int64(10), claims.Limits.Conn)
	assert.Equal(t, int64(1024), claims.Limits.Data)
	assert.Equal(t, int64(50), claims.Limits.Subs)
}

func TestUserChainVerifiesUnderAccountAndOperator(t *testing.T) {
	master := testMaster(t)

	op, err := natsid.GenerateOperator(master, "acme", fixedTime)
	require.NoError(t, err)
	acct, err := natsid.GenerateAccount(master, "engineering", op, fixedTime, nil)
	require.NoError(t, err)

	perms := &natsid.Permissions{Publish: []string{"orders.>"}, Subscribe: []string{"orders.>", "_INBOX.>"}}
	user, err := natsid.GenerateUser(master, "alice", acct, fixedTime, nil, perms)
	require.NoError(t, err)

	userClaims, err := jwt.DecodeUserClaims(user.JWT)
	require.NoError(t, err)
	assert.Equal(t, user.PublicKey, userClaims.Subject)
	assert.Equal(t, acct.PublicKey, userClaims.Issuer)
	assert.Equal(t, acct.PublicKey, userClaims.IssuerAccount)
	assert.ElementsMatch(t, []string{"orders.>"}, userClaims.Permissions.Pub.Allow)

	accountClaims, err := jwt.DecodeAccountClaims(acct.JWT)
	require.NoError(t, err)
	assert.Equal(t, op.PublicKey, accountClaims.Issuer)
}

func TestUserRequiresAccountParent(t *testing.T) {
	master := testMaster(t)
	op, err := natsid.GenerateOperator(master, "acme", fixedTime)
	require.NoError(t, err)

	_, err = natsid.GenerateUser(master, "alice", op, fixedTime, nil, nil)
	assert.Error(t, err)
}

func TestDistinctUnitsYieldDistinctAccounts(t *testing.T) {
	master := testMaster(t)
	op, err := natsid.GenerateOperator(master, "acme", fixedTime)
	require.NoError(t, err)

	eng, err := natsid.GenerateAccount(master, "engineering", op, fixedTime, nil)
	require.NoError(t, err)
	sales, err := natsid.GenerateAccount(master, "sales", op, fixedTime, nil)
	require.NoError(t, err)

	assert.NotEqual(t, eng.PublicKey, sales.PublicKey)
}

func TestSamePersonNameUnderDifferentAccountsSharesNKeyButNotJWT(t *testing.T) {
	master := testMaster(t)
	op, err := natsid.GenerateOperator(master, "acme", fixedTime)
	require.NoError(t, err)

	eng, err := natsid.GenerateAccount(master, "engineering", op, fixedTime, nil)
	require.NoError(t, err)
	sales, err := natsid.GenerateAccount(master, "sales", op, fixedTime, nil)
	require.NoError(t, err)

	u1, err := natsid.GenerateUser(master, "alice", eng, fixedTime, nil, nil)
	require.NoError(t, err)
	u2, err := natsid.GenerateUser(master, "alice", sales, fixedTime, nil, nil)
	require.NoError(t, err)

	// A person's NATS User NKey is re-derivable from (master, person)
	// alone, independent of which unit most recently issued a JWT for
	// them, so the underlying key is shared across accounts...
	assert.Equal(t, u1.PublicKey, u2.PublicKey)

	// ...but each issued JWT still records the distinct issuing account.
	assert.NotEqual(t, u1.JWT, u2.JWT)
	u1Claims, err := jwt.DecodeUserClaims(u1.JWT)
	require.NoError(t, err)
	u2Claims, err := jwt.DecodeUserClaims(u2.JWT)
	require.NoError(t, err)
	assert.Equal(t, eng.PublicKey, u1Claims.IssuerAccount)
	assert.Equal(t, sales.PublicKey, u2Claims.IssuerAccount)
}

func TestBuildCredsFileContainsJWTAndSeed(t *testing.T) {
	master := testMaster(t)
	op, err := natsid.GenerateOperator(master, "acme", fixedTime)
	require.NoError(t, err)
	acct, err := natsid.GenerateAccount(master, "engineering", op, fixedTime, nil)
	require.NoError(t, err)
	user, err := natsid.GenerateUser(master, "alice", acct, fixedTime, nil, nil)
	require.NoError(t, err)

	creds, err := natsid.BuildCredsFile(user)
	require.NoError(t, err)
	assert.Contains(t, creds, "BEGIN NATS USER JWT")
	assert.Contains(t, creds, "BEGIN USER NKEY SEED")
	assert.Contains(t, creds, user.JWT)
}

func TestBuildCredsFileRejectsNonUser(t *testing.T) {
	master := testMaster(t)
	op, err := natsid.GenerateOperator(master, "acme", fixedTime)
	require.NoError(t, err)

	_, err = natsid.BuildCredsFile(op)
	assert.Error(t, err)
}
