// Copyright 2026 The Veil Authors
//
// Use of this source code is governed by an MIT license that is located
// in this project's root folder, and can also be found online at:
//
// https://github.com/veiltext/veil/LICENSE
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cipher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolyShiftCipherKnownVector(t *testing.T) {
	const (
		plainText     = "THISISQUITEALONGMESSAGESOTHEKEYWILLNEEDTOREPEATAFEWTIMES"
		encryptedText = "0LT3WZU5T7LEWZ1NQP36HKP320LPVS50TWZUIPO7VVP0SHXLQS3XTXSZ"
	)

	psc, err := NewPolyShiftCipher("hello")
	assert.Nil(t, err)
	assert.NotNil(t, psc)

	assert.Equal(t, encryptedText, psc.ApplyCipher(plainText, ModeEncrypt))
	assert.Equal(t, plainText, psc.ApplyCipher(encryptedText, ModeDecrypt))
}

func TestPolyShiftCipherKeyCaseIsIrrelevant(t *testing.T) {
	pscLower, err := NewPolyShiftCipher("hello")
	assert.Nil(t, err)

	pscMixed, err := NewPolyShiftCipher("HeLLo")
	assert.Nil(t, err)

	const plainText = "SOMESORTOFMESSAGE123"
	assert.Equal(t,
		pscLower.ApplyCipher(plainText, ModeEncrypt),
		pscMixed.ApplyCipher(plainText, ModeEncrypt))
}

func TestPolyShiftCipherKeyValidation(t *testing.T) {
	psc, err := NewPolyShiftCipher("hello")
	assert.Nil(t, err)
	assert.NotNil(t, psc)

	for _, keyText := range []string{"1340", "-10", ";[]'.", "", "hell0"} {
		psc, err = NewPolyShiftCipher(keyText)
		assert.Nil(t, psc)

		var invalidKeyErr *InvalidKeyError
		assert.ErrorAs(t, err, &invalidKeyErr)
	}
}

func TestPolyShiftCipherRoundTripWithDigits(t *testing.T) {
	psc, err := NewPolyShiftCipher("key")
	assert.Nil(t, err)

	const plainText = "MEETAT0900HOURS2MORROW"
	encrypted := psc.ApplyCipher(plainText, ModeEncrypt)
	assert.NotEqual(t, plainText, encrypted)
	assert.Equal(t, plainText, psc.ApplyCipher(encrypted, ModeDecrypt))
}

func TestPolyShiftCipherChunkAlignmentIsKeyLength(t *testing.T) {
	psc, err := NewPolyShiftCipher("hello")
	assert.Nil(t, err)
	assert.Equal(t, 5, psc.ChunkAlignment())

	psc, err = NewPolyShiftCipher("a")
	assert.Nil(t, err)
	assert.Equal(t, 1, psc.ChunkAlignment())
}

func TestPolyShiftCipherEmptyInput(t *testing.T) {
	psc, err := NewPolyShiftCipher("hello")
	assert.Nil(t, err)
	assert.Equal(t, "", psc.ApplyCipher("", ModeEncrypt))
}
