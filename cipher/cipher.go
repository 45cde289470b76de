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
	"fmt"
	"strings"
)

type Mode int

const (
	ModeEncrypt Mode = iota
	ModeDecrypt
)

func (m Mode) String() string {
	if m == ModeDecrypt {
		return "decrypt"
	}

	return "encrypt"
}

type Type int

const (
	TypeUnknown Type = iota
	TypeCaesar
	TypePlayfair
	TypeVigenere
)

func (t Type) String() string {
	switch t {
	case TypeCaesar:
		return "caesar"
	case TypePlayfair:
		return "playfair"
	case TypeVigenere:
		return "vigenere"
	}

	return "unknown"
}

// TextToCipherType transforms a command line cipher name into a Type value.
func TextToCipherType(text string) Type {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "caesar":
		return TypeCaesar
	case "playfair":
		return TypePlayfair
	case "vigenere":
		return TypeVigenere
	}

	return TypeUnknown
}

// Cipher is the one capability every variant provides.  An instance owns its
// validated key material, is immutable after construction, and ApplyCipher is
// a pure function of its inputs, so instances are safe to share across
// concurrent workers.
type Cipher interface {
	// ApplyCipher transforms text in the requested mode.
	ApplyCipher(text string, mode Mode) string

	// ChunkAlignment declares how the input may be partitioned for parallel
	// processing and still produce output identical to a single sequential
	// call.  Returns:
	//   - 0 if the variant must process the whole message in one call
	//   - 1 if any chunk boundary is safe
	//   - n > 1 if chunk boundaries must fall on multiples of n
	ChunkAlignment() int
}

// New validates keyText against the rules of the requested variant and
// returns the constructed instance.  Key validation failures are returned as
// an *InvalidKeyError before any transform work can begin.
func New(cipherType Type, keyText string) (Cipher, error) {
	switch cipherType {
	case TypeCaesar:
		return NewShiftCipher(keyText)
	case TypePlayfair:
		return NewDigraphCipher(keyText)
	case TypeVigenere:
		return NewPolyShiftCipher(keyText)
	}

	return nil, fmt.Errorf("unknown cipher type value: %d", int(cipherType))
}
