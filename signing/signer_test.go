// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package signing_test

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/code-smell/failure"
	"github.com/optakt/code-smell/signing"
	"github.com/optakt/code-smell/testing/mocks"
)

func TestNewSigner(t *testing.T) {
	vectors := []struct {
		desc    string
		private string
		public  string
	}{
		{
			desc:    "generator point",
			private: "0000000000000000000000000000000000000000000000000000000000000001",
			public:  "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		},
		{
			desc:    "double of generator point",
			private: "0000000000000000000000000000000000000000000000000000000000000002",
			public:  "02c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5",
		},
		{
			desc:    "random key",
			private: mocks.GenericPrivateKey,
			public:  mocks.GenericPublicKey,
		},
	}

	for _, vector := range vectors {
		vector := vector
		t.Run(vector.desc, func(t *testing.T) {
			t.Parallel()

			raw, err := hex.DecodeString(vector.private)
			require.NoError(t, err)

			signer, err := signing.NewSigner(raw)

			require.NoError(t, err)
			assert.Equal(t, vector.public, signer.PublicKey())
		})
	}

	t.Run("handles zero key", func(t *testing.T) {
		t.Parallel()

		_, err := signing.NewSigner(make([]byte, 32))

		assert.Error(t, err)
	})

	t.Run("handles short key", func(t *testing.T) {
		t.Parallel()

		_, err := signing.NewSigner([]byte{0x01, 0x02})

		assert.Error(t, err)
	})
}

func TestSigner_Sign(t *testing.T) {
	signer := mocks.GenericSigner(t)
	halfOrder, _ := new(big.Int).SetString("7fffffffffffffffffffffffffffffff5d576e7357a4501ddfe92f46681b20a0", 16)

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		sig, err := signer.Sign(mocks.GenericBytes)

		require.NoError(t, err)
		assert.Len(t, sig, 128)

		valid, err := signing.Verify(signer.PublicKey(), sig, mocks.GenericBytes)

		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("signatures use low S values", func(t *testing.T) {
		t.Parallel()

		for i := 0; i < 32; i++ {
			sig, err := signer.Sign(mocks.GenericBytes)
			require.NoError(t, err)

			raw, err := hex.DecodeString(sig)
			require.NoError(t, err)

			s := new(big.Int).SetBytes(raw[32:])
			assert.LessOrEqual(t, s.Cmp(halfOrder), 0)
		}
	})

	t.Run("signature does not verify other message", func(t *testing.T) {
		t.Parallel()

		sig, err := signer.Sign(mocks.GenericBytes)
		require.NoError(t, err)

		valid, err := signing.Verify(signer.PublicKey(), sig, []byte("other"))

		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("signature does not verify with other key", func(t *testing.T) {
		t.Parallel()

		raw, err := hex.DecodeString("0000000000000000000000000000000000000000000000000000000000000002")
		require.NoError(t, err)
		other, err := signing.NewSigner(raw)
		require.NoError(t, err)

		sig, err := signer.Sign(mocks.GenericBytes)
		require.NoError(t, err)

		valid, err := signing.Verify(other.PublicKey(), sig, mocks.GenericBytes)

		require.NoError(t, err)
		assert.False(t, valid)
	})
}

func TestVerify(t *testing.T) {
	signer := mocks.GenericSigner(t)
	sig, err := signer.Sign(mocks.GenericBytes)
	require.NoError(t, err)

	t.Run("handles invalid public key hex", func(t *testing.T) {
		t.Parallel()

		_, err := signing.Verify("zz", sig, mocks.GenericBytes)

		assert.Error(t, err)
	})

	t.Run("handles invalid public key prefix", func(t *testing.T) {
		t.Parallel()

		key := "05" + signer.PublicKey()[2:]

		_, err := signing.Verify(key, sig, mocks.GenericBytes)

		assert.Error(t, err)
	})

	t.Run("handles invalid signature hex", func(t *testing.T) {
		t.Parallel()

		_, err := signing.Verify(signer.PublicKey(), "zz", mocks.GenericBytes)

		assert.Error(t, err)
	})
}

func TestSigningFailure(t *testing.T) {
	err := error(failure.Signing{Description: failure.NewDescription("test")})

	assert.ErrorIs(t, err, failure.ErrClient)
}
